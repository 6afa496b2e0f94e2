package models

// Source identifies an ingestion source that file uploads are attributed to.
type Source struct {
	ID          string `json:"idSource"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type SourceCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
