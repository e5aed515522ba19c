package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// CreateBookingRequest payload.
type CreateBookingRequest struct {
	ArtistID         *string                 `json:"artist_id"`
	DesignID         *string                 `json:"design_id"`
	ConsultationType domain.ConsultationType `json:"consultation_type"`
	ScheduledAt      time.Time               `json:"scheduled_at"`
	EventDate        *time.Time              `json:"event_date"`
	Notes            string                  `json:"notes"`
}

// SetBookingStatusRequest payload.
type SetBookingStatusRequest struct {
	Status domain.BookingStatus `json:"status"`
}

// BookingResponse response.
type BookingResponse struct {
	ID               string                  `json:"id"`
	ClientID         string                  `json:"client_id"`
	ArtistID         *string                 `json:"artist_id"`
	DesignID         *string                 `json:"design_id"`
	ConsultationType domain.ConsultationType `json:"consultation_type"`
	Status           domain.BookingStatus    `json:"status"`
	ScheduledAt      time.Time               `json:"scheduled_at"`
	EventDate        *time.Time              `json:"event_date"`
	ConfirmationCode string                  `json:"confirmation_code"`
	Notes            string                  `json:"notes"`
	CreatedAt        time.Time               `json:"created_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// NewBookingResponse maps a domain booking.
func NewBookingResponse(booking *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:               booking.ID,
		ClientID:         booking.ClientID,
		ArtistID:         booking.ArtistID,
		DesignID:         booking.DesignID,
		ConsultationType: booking.ConsultationType,
		Status:           booking.Status,
		ScheduledAt:      booking.ScheduledAt,
		EventDate:        booking.EventDate,
		ConfirmationCode: booking.ConfirmationCode,
		Notes:            booking.Notes,
		CreatedAt:        booking.CreatedAt,
		UpdatedAt:        booking.UpdatedAt,
	}
}

// NewBookingListResponse maps a booking slice.
func NewBookingListResponse(bookings []domain.Booking) []BookingResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for i := range bookings {
		result = append(result, NewBookingResponse(&bookings[i]))
	}
	return result
}
