package models

type Genre struct {
	ID   string `json:"idGenre"`
	Name string `json:"name"`
}

// GenreCreateRequest is the payload for POST /genre and PUT /genre/{id}.
type GenreCreateRequest struct {
	Name string `json:"name"`
}
