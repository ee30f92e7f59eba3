package models

// Roles an account can hold. Registration always produces RoleUser;
// RoleAdmin exists only via the startup seed.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           int    `json:"id"`
	Username     string `json:"username"`
	Role         string `json:"role"`
	PasswordHash string `json:"-"` // never leaves the service boundary
}
