package model

import "time"

// VipUser is a time-limited subscriber account. The password hash is never
// serialized to clients.
type VipUser struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	ExpiryDate   time.Time `json:"expiry_date"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// VipUserSummary is the listing shape exposed to the admin UI.
type VipUserSummary struct {
	ID         int64     `json:"id"`
	Username   string    `json:"username"`
	ExpiryDate time.Time `json:"expiry_date"`
	CreatedAt  time.Time `json:"created_at"`
}
