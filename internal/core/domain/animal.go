package domain

// Animal is a resident of the zoo.
type Animal struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Description string `json:"description"`
	Condition   string `json:"condition"`
	BreedID     *int64 `json:"breed_id,omitempty"`
	HabitatID   *int64 `json:"habitat_id,omitempty"`
	// Clicks is filled from the click counter, never from the relational store.
	Clicks int64 `json:"clicks"`
}

// PopularAnimalsLimit caps the popular animals listing.
const PopularAnimalsLimit = 10
