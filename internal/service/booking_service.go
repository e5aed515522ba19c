package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/events"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// codeRetryAttempts bounds regeneration after a confirmation-code collision.
const codeRetryAttempts = 3

// BookingService coordinates the booking lifecycle.
type BookingService struct {
	bookings   repository.BookingRepository
	designs    repository.DesignRepository
	artists    repository.ArtistRepository
	users      repository.UserRepository
	dispatcher events.Dispatcher
}

// BookingDependencies bundles repositories for the booking service.
type BookingDependencies struct {
	BookingRepo repository.BookingRepository
	DesignRepo  repository.DesignRepository
	ArtistRepo  repository.ArtistRepository
	UserRepo    repository.UserRepository
	Dispatcher  events.Dispatcher
}

// BookingCreateInput describes booking creation payload.
type BookingCreateInput struct {
	ArtistID         *string
	DesignID         *string
	ConsultationType domain.ConsultationType
	ScheduledAt      time.Time
	EventDate        *time.Time
	Notes            string
}

// BookingListFilter describes listing filters.
type BookingListFilter struct {
	Statuses []domain.BookingStatus
	Limit    int
	Offset   int
}

// NewBookingService constructs the service.
func NewBookingService(deps BookingDependencies) *BookingService {
	return &BookingService{
		bookings:   deps.BookingRepo,
		designs:    deps.DesignRepo,
		artists:    deps.ArtistRepo,
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create requests a new consultation for a client. The confirmation code is
// regenerated and the insert retried when the unique index reports a
// collision. The confirmation notification is dispatched asynchronously and
// its outcome never affects the created booking.
func (s *BookingService) Create(ctx context.Context, clientID, clientEmail string, input BookingCreateInput) (*domain.Booking, error) {
	if !domain.ValidConsultationType(input.ConsultationType) {
		return nil, apperrors.NewValidationError("invalid consultation type", map[string]any{
			"consultation_type": input.ConsultationType,
		})
	}
	if input.ScheduledAt.IsZero() {
		return nil, apperrors.NewValidationError("scheduled_at required", nil)
	}

	if input.DesignID != nil {
		design, err := s.designs.GetByID(ctx, *input.DesignID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("design", nil)
			}
			return nil, err
		}
		// a foreign design is invisible to this requester
		if design.OwnerID != clientID {
			return nil, apperrors.NewNotFound("design", nil)
		}
	}

	if input.ArtistID != nil {
		if _, err := s.artists.GetByID(ctx, *input.ArtistID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return nil, apperrors.NewNotFound("artist", nil)
			}
			return nil, err
		}
	}

	booking := &domain.Booking{
		ClientID:         clientID,
		ArtistID:         input.ArtistID,
		DesignID:         input.DesignID,
		ConsultationType: input.ConsultationType,
		Status:           domain.BookingStatusPending,
		ScheduledAt:      input.ScheduledAt,
		EventDate:        input.EventDate,
		Notes:            strings.TrimSpace(input.Notes),
	}

	var createErr error
	for attempt := 0; attempt < codeRetryAttempts; attempt++ {
		code, err := GenerateConfirmationCode()
		if err != nil {
			return nil, err
		}
		booking.ConfirmationCode = code

		createErr = s.bookings.Create(ctx, booking)
		if createErr == nil {
			break
		}
		if !repository.IsUniqueViolation(createErr) {
			return nil, createErr
		}
	}
	if createErr != nil {
		return nil, apperrors.NewInternalError(createErr)
	}

	s.publish(events.Event{
		Type:    events.EventBookingCreated,
		ActorID: clientID,
		Payload: events.BookingCreatedPayload{
			BookingID:        booking.ID,
			ConfirmationCode: booking.ConfirmationCode,
			ClientEmail:      clientEmail,
			ConsultationType: booking.ConsultationType,
			ScheduledAt:      booking.ScheduledAt,
		},
	})
	return booking, nil
}

// SetStatus moves a booking forward through its lifecycle. Only an admin or
// the assigned artist may do this; the role is read from the store, not from
// the caller's credential.
func (s *BookingService) SetStatus(ctx context.Context, actorID, bookingID string, newStatus domain.BookingStatus) (*domain.Booking, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("identity not found")
		}
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, err
	}

	if err := s.authorizeStatusChange(ctx, actor, booking); err != nil {
		return nil, err
	}

	if !isValidTransition(booking.Status, newStatus) {
		return nil, apperrors.NewInvalidTransition("illegal status transition", map[string]any{
			"from": booking.Status,
			"to":   newStatus,
		})
	}

	updated, err := s.bookings.UpdateStatusIf(ctx, bookingID, booking.Status, newStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// a concurrent writer moved the booking first
			return nil, apperrors.NewInvalidTransition("booking status changed concurrently", nil)
		}
		return nil, err
	}

	s.publish(events.Event{
		Type:    events.EventBookingStatusChanged,
		ActorID: actorID,
		Payload: events.BookingStatusChangedPayload{
			BookingID: updated.ID,
			OldStatus: booking.Status,
			NewStatus: updated.Status,
		},
	})
	return updated, nil
}

// Cancel cancels a booking on behalf of its owner or an admin. The status
// check and the transition are one conditional update, so a booking already
// in a terminal state is left untouched.
func (s *BookingService) Cancel(ctx context.Context, actorID, bookingID string) (*domain.Booking, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("identity not found")
		}
		return nil, err
	}

	booking, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("booking", nil)
		}
		return nil, err
	}

	if booking.ClientID != actor.ID && actor.Role != domain.RoleAdmin {
		return nil, apperrors.NewForbidden("not allowed to cancel this booking")
	}

	cancelled, err := s.bookings.CancelIfActive(ctx, bookingID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewInvalidTransition("booking is not cancellable", map[string]any{
				"status": booking.Status,
			})
		}
		return nil, err
	}

	s.publish(events.Event{
		Type:    events.EventBookingCancelled,
		ActorID: actorID,
		Payload: events.BookingCancelledPayload{
			BookingID:        cancelled.ID,
			ConfirmationCode: cancelled.ConfirmationCode,
		},
	})
	return cancelled, nil
}

// List returns bookings visible to staff callers: admins see everything,
// artists only their own assignments.
func (s *BookingService) List(ctx context.Context, actorID string, filter BookingListFilter) ([]domain.Booking, error) {
	actor, err := s.users.GetByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewUnauthorized("identity not found")
		}
		return nil, err
	}

	repoFilter := repository.BookingFilter{
		Statuses: filter.Statuses,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	}

	switch actor.Role {
	case domain.RoleAdmin:
		// unscoped
	case domain.RoleArtist:
		profile, err := s.artists.GetByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return []domain.Booking{}, nil
			}
			return nil, err
		}
		repoFilter.ArtistID = &profile.ID
	default:
		return nil, apperrors.NewForbidden("insufficient role")
	}

	return s.bookings.ListWithFilter(ctx, repoFilter)
}

// ListMine returns the caller's own bookings.
func (s *BookingService) ListMine(ctx context.Context, clientID string, filter BookingListFilter) ([]domain.Booking, error) {
	return s.bookings.ListWithFilter(ctx, repository.BookingFilter{
		ClientID: &clientID,
		Statuses: filter.Statuses,
		Limit:    filter.Limit,
		Offset:   filter.Offset,
	})
}

func (s *BookingService) authorizeStatusChange(ctx context.Context, actor *domain.User, booking *domain.Booking) error {
	if actor.Role == domain.RoleAdmin {
		return nil
	}
	if actor.Role == domain.RoleArtist && booking.ArtistID != nil {
		profile, err := s.artists.GetByUserID(ctx, actor.ID)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewForbidden("not the assigned artist")
			}
			return err
		}
		if profile.ID == *booking.ArtistID {
			return nil
		}
	}
	return apperrors.NewForbidden("not allowed to change booking status")
}

// Bookings only move forward; CANCELLED is reachable from the two non-terminal
// states and COMPLETED/CANCELLED accept nothing.
var allowedTransitions = map[domain.BookingStatus][]domain.BookingStatus{
	domain.BookingStatusPending:   {domain.BookingStatusConfirmed, domain.BookingStatusCancelled},
	domain.BookingStatusConfirmed: {domain.BookingStatusCompleted, domain.BookingStatusCancelled},
	domain.BookingStatusCompleted: {},
	domain.BookingStatusCancelled: {},
}

func isValidTransition(current, next domain.BookingStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func (s *BookingService) publish(event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(context.Background(), event)
}
