package model

// Session roles carried in signed session tokens.
const (
	RoleVip   = "vip"
	RoleAdmin = "admin"
)

// SessionClaims is the identity claim embedded in a signed session cookie.
// Admin sessions carry a fixed subject rather than an opaque marker, so every
// protected call verifies a real identity binding.
type SessionClaims struct {
	Sub      int64  `json:"sub"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Iat      int64  `json:"iat"`
	Exp      int64  `json:"exp"`
	Iss      string `json:"iss"`
}
