package models

// SearchResults groups search hits by category. Categories are never merged or ranked against each other.
type SearchResults struct {
	Players     []Player     `json:"players"`
	Tournaments []Tournament `json:"tournaments"`
	Federations []Federation `json:"federations"`
}
