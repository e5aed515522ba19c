package domain

import "time"

// BookingStatus enumerates lifecycle states for bookings.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// ConsultationType enumerates how a consultation takes place.
type ConsultationType string

const (
	ConsultationVirtual  ConsultationType = "VIRTUAL"
	ConsultationInPerson ConsultationType = "IN_PERSON"
	ConsultationOnSite   ConsultationType = "ON_SITE"
)

// ValidConsultationType reports whether t is a known consultation type.
func ValidConsultationType(t ConsultationType) bool {
	switch t {
	case ConsultationVirtual, ConsultationInPerson, ConsultationOnSite:
		return true
	}
	return false
}

// Booking is the aggregate for consultation requests. Bookings are never
// physically deleted; terminal states are COMPLETED and CANCELLED.
type Booking struct {
	ID               string
	ClientID         string
	ArtistID         *string
	DesignID         *string
	ConsultationType ConsultationType
	Status           BookingStatus
	ScheduledAt      time.Time
	EventDate        *time.Time
	ConfirmationCode string
	Notes            string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
