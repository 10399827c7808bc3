package domain

import "time"

// Review is a visitor comment. It is hidden from the public listing until a
// staff member validates it.
type Review struct {
	ID        int64     `json:"id"`
	Pseudonym string    `json:"pseudonym"`
	Comment   string    `json:"comment"`
	Validated bool      `json:"validated"`
	CreatedAt time.Time `json:"created_at"`
}
