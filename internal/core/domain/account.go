package domain

import "time"

// Account models a staff member able to authenticate against the API.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"roleId"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is what a verified token proves about its bearer.
type Identity struct {
	AccountID int64
	Role      Role
}
