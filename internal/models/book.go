package models

// BookSimple is the denormalized book summary embedded in author details.
type BookSimple struct {
	ID    string `json:"idBook"`
	Title string `json:"title"`
}
