package models

// AuthorSimple is the row shape returned by the paginated author listing.
type AuthorSimple struct {
	ID          string `json:"idAuthor"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// Author is the full record returned by GET /author/{id}.
type Author struct {
	AuthorSimple
	Books []BookSimple `json:"books"`
}

// AuthorCreateRequest is the payload for POST /author and PUT /author/{id}.
// Books carries book ids only.
type AuthorCreateRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	ImageURL    string   `json:"imageUrl"`
	Books       []string `json:"books"`
}
