package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
)

// BookingFilter captures listing parameters.
type BookingFilter struct {
	ClientID *string
	ArtistID *string
	Statuses []domain.BookingStatus
	Limit    int
	Offset   int
}

// BookingRepository encapsulates booking persistence. Status changes go
// through conditional updates so the check and the transition are one
// statement against current persisted state.
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	UpdateStatusIf(ctx context.Context, id string, expected, next domain.BookingStatus) (*domain.Booking, error)
	CancelIfActive(ctx context.Context, id string) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
}

type bookingRepository struct {
	pool Querier
}

// NewBookingRepository instantiates repository.
func NewBookingRepository(pool Querier) BookingRepository {
	return &bookingRepository{pool: pool}
}

const bookingColumns = `id, client_id, artist_id, design_id, consultation_type, status,
               scheduled_at, event_date, confirmation_code, notes, created_at, updated_at`

func (r *bookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	const query = `
        INSERT INTO bookings (client_id, artist_id, design_id, consultation_type, status,
                              scheduled_at, event_date, confirmation_code, notes)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		booking.ClientID,
		booking.ArtistID,
		booking.DesignID,
		booking.ConsultationType,
		booking.Status,
		booking.ScheduledAt,
		booking.EventDate,
		booking.ConfirmationCode,
		booking.Notes,
	).Scan(&booking.ID, &booking.CreatedAt, &booking.UpdatedAt)
}

func (r *bookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id=$1`
	var booking domain.Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, id), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatusIf transitions status only when the row still holds the
// expected status. pgx.ErrNoRows means the precondition no longer held.
func (r *bookingRepository) UpdateStatusIf(ctx context.Context, id string, expected, next domain.BookingStatus) (*domain.Booking, error) {
	query := `
        UPDATE bookings SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status=$3
        RETURNING ` + bookingColumns
	var booking domain.Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query, next, id, expected), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CancelIfActive cancels a booking still in a cancellable status.
func (r *bookingRepository) CancelIfActive(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
        UPDATE bookings SET status=$1, updated_at=NOW()
        WHERE id=$2 AND status IN ($3,$4)
        RETURNING ` + bookingColumns
	var booking domain.Booking
	if err := scanBooking(r.pool.QueryRow(ctx, query,
		domain.BookingStatusCancelled, id,
		domain.BookingStatusPending, domain.BookingStatusConfirmed,
	), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) ListWithFilter(ctx context.Context, filter BookingFilter) ([]domain.Booking, error) {
	base := `SELECT ` + bookingColumns + ` FROM bookings`
	clauses := []string{"1=1"}
	args := []any{}

	if filter.ClientID != nil {
		args = append(args, *filter.ClientID)
		clauses = append(clauses, fmt.Sprintf("client_id=$%d", len(args)))
	}
	if filter.ArtistID != nil {
		args = append(args, *filter.ArtistID)
		clauses = append(clauses, fmt.Sprintf("artist_id=$%d", len(args)))
	}
	if len(filter.Statuses) > 0 {
		placeholders := make([]string, len(filter.Statuses))
		for i, status := range filter.Statuses {
			args = append(args, status)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		clauses = append(clauses, fmt.Sprintf("status IN (%s)", strings.Join(placeholders, ",")))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY scheduled_at DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		if err := scanBooking(rows, &booking); err != nil {
			return nil, err
		}
		result = append(result, booking)
	}
	return result, rows.Err()
}

func scanBooking(row pgx.Row, booking *domain.Booking) error {
	return row.Scan(
		&booking.ID,
		&booking.ClientID,
		&booking.ArtistID,
		&booking.DesignID,
		&booking.ConsultationType,
		&booking.Status,
		&booking.ScheduledAt,
		&booking.EventDate,
		&booking.ConfirmationCode,
		&booking.Notes,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
}
