package domain

import "time"

// Role enumerates account roles. Authorization decisions always re-read the
// persisted role; the role embedded in a token is a snapshot only.
type Role string

const (
	RoleClient Role = "CLIENT"
	RoleArtist Role = "ARTIST"
	RoleAdmin  Role = "ADMIN"
)

// ValidRole reports whether r is a known role.
func ValidRole(r Role) bool {
	switch r {
	case RoleClient, RoleArtist, RoleAdmin:
		return true
	}
	return false
}

// User is the domain model for platform accounts.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
