package domain

import "time"

// VetReport records a veterinarian's visit to an animal.
type VetReport struct {
	ID        int64     `json:"id"`
	AnimalID  int64     `json:"animal_id"`
	Condition string    `json:"condition"`
	Comment   string    `json:"comment,omitempty"`
	VisitedOn time.Time `json:"visited_on"`
}
