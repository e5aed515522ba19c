package domain

import "time"

// ArtistProfile extends a user account with artist-facing data. Rating and
// ReviewCount are derived from the reviews table and rewritten on every
// review mutation; they are never patched incrementally.
type ArtistProfile struct {
	ID              string
	UserID          string
	Bio             string
	Specialties     []string
	ExperienceYears int
	PortfolioImages []string
	Available       bool
	Rating          float64
	ReviewCount     int
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
