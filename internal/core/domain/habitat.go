package domain

// Habitat groups animals living in the same enclosure.
type Habitat struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Comment     string `json:"comment,omitempty"`
}
