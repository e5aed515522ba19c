package domain

import "time"

// Design references a generated design artifact owned by a client. Bookings
// may reference a design; the reference is only valid for the owner.
type Design struct {
	ID        string
	OwnerID   string
	Prompt    string
	ImageURL  string
	CreatedAt time.Time
}
