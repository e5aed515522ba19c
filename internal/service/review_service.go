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

// ReviewService maintains reviews and the derived artist aggregates.
type ReviewService struct {
	reviews    repository.ReviewRepository
	artists    repository.ArtistRepository
	dispatcher events.Dispatcher
}

// NewReviewService constructs the service.
func NewReviewService(reviews repository.ReviewRepository, artists repository.ArtistRepository, dispatcher events.Dispatcher) *ReviewService {
	return &ReviewService{reviews: reviews, artists: artists, dispatcher: dispatcher}
}

// Submit upserts the reviewer's review for an artist and recomputes the
// artist's rating and review count in the same transaction. A second
// submission by the same reviewer overwrites the first; no history is kept.
func (s *ReviewService) Submit(ctx context.Context, reviewerID, artistID string, rating int, comment string, images []string) (*domain.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{
			"rating": rating,
		})
	}

	if _, err := s.artists.GetByID(ctx, artistID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("artist", nil)
		}
		return nil, err
	}

	review := &domain.Review{
		ReviewerID: reviewerID,
		ArtistID:   artistID,
		Rating:     rating,
		Comment:    strings.TrimSpace(comment),
		Images:     images,
	}
	if err := s.reviews.UpsertWithRecompute(ctx, review); err != nil {
		return nil, err
	}

	s.publish(events.Event{
		Type:    events.EventReviewSubmitted,
		ActorID: reviewerID,
		Payload: events.ReviewSubmittedPayload{
			ArtistID: artistID,
			Rating:   rating,
		},
	})
	return review, nil
}

// Delete removes the reviewer's review for an artist; the aggregate is
// recomputed from the remaining rows in the same transaction.
func (s *ReviewService) Delete(ctx context.Context, reviewerID, artistID string) error {
	err := s.reviews.DeleteWithRecompute(ctx, reviewerID, artistID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("review", nil)
		}
		return err
	}
	return nil
}

func (s *ReviewService) publish(event events.Event) {
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
