package events

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventBookingCreated       EventType = "booking_created"
	EventBookingStatusChanged EventType = "booking_status_changed"
	EventBookingCancelled     EventType = "booking_cancelled"
	EventReviewSubmitted      EventType = "review_submitted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	ActorID   string      `json:"actor_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// UserRegisteredPayload payload.
type UserRegisteredPayload struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// BookingCreatedPayload payload.
type BookingCreatedPayload struct {
	BookingID        string                  `json:"booking_id"`
	ConfirmationCode string                  `json:"confirmation_code"`
	ClientEmail      string                  `json:"client_email"`
	ConsultationType domain.ConsultationType `json:"consultation_type"`
	ScheduledAt      time.Time               `json:"scheduled_at"`
}

// BookingStatusChangedPayload payload.
type BookingStatusChangedPayload struct {
	BookingID string               `json:"booking_id"`
	OldStatus domain.BookingStatus `json:"old_status"`
	NewStatus domain.BookingStatus `json:"new_status"`
}

// BookingCancelledPayload payload.
type BookingCancelledPayload struct {
	BookingID        string `json:"booking_id"`
	ConfirmationCode string `json:"confirmation_code"`
}

// ReviewSubmittedPayload payload.
type ReviewSubmittedPayload struct {
	ArtistID string `json:"artist_id"`
	Rating   int    `json:"rating"`
}
