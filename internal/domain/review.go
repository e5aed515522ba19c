package domain

import "time"

// Review is a client's rating of an artist. At most one review exists per
// (reviewer, artist) pair; later submissions overwrite the prior row.
type Review struct {
	ID         string
	ReviewerID string
	ArtistID   string
	Rating     int
	Comment    string
	Images     []string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
