package model

import "time"

// AdminCredential is the single owner login. At most one row ever exists;
// it is lazily created on the first admin login attempt.
type AdminCredential struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
