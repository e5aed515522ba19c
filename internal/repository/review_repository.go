package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
)

// ReviewRepository encapsulates review persistence. Every mutation rewrites
// the artist aggregate from the full review set inside the same transaction,
// so the aggregate cannot drift from the rows it is derived from.
type ReviewRepository interface {
	UpsertWithRecompute(ctx context.Context, review *domain.Review) error
	DeleteWithRecompute(ctx context.Context, reviewerID, artistID string) error
	GetByReviewerAndArtist(ctx context.Context, reviewerID, artistID string) (*domain.Review, error)
}

type reviewRepository struct {
	pool Querier
}

// NewReviewRepository instantiates repository.
func NewReviewRepository(pool Querier) ReviewRepository {
	return &reviewRepository{pool: pool}
}

// The artist row lock serializes concurrent writers per artist; the aggregate
// is recomputed from all rows, never patched from the previous value.
const recomputeAggregates = `
        UPDATE artist_profiles SET
            rating = COALESCE((SELECT AVG(rating) FROM reviews WHERE artist_id=$1), 0),
            review_count = (SELECT COUNT(*) FROM reviews WHERE artist_id=$1),
            updated_at = NOW()
        WHERE id=$1`

const lockArtist = `SELECT id FROM artist_profiles WHERE id=$1 FOR UPDATE`

func (r *reviewRepository) UpsertWithRecompute(ctx context.Context, review *domain.Review) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var lockedID string
	if err := tx.QueryRow(ctx, lockArtist, review.ArtistID).Scan(&lockedID); err != nil {
		return err
	}

	const upsert = `
        INSERT INTO reviews (reviewer_id, artist_id, rating, comment, images)
        VALUES ($1,$2,$3,$4,$5)
        ON CONFLICT (reviewer_id, artist_id) DO UPDATE
            SET rating=EXCLUDED.rating, comment=EXCLUDED.comment, images=EXCLUDED.images, updated_at=NOW()
        RETURNING id, created_at, updated_at`
	if err := tx.QueryRow(ctx, upsert,
		review.ReviewerID,
		review.ArtistID,
		review.Rating,
		review.Comment,
		review.Images,
	).Scan(&review.ID, &review.CreatedAt, &review.UpdatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, recomputeAggregates, review.ArtistID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *reviewRepository) DeleteWithRecompute(ctx context.Context, reviewerID, artistID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	var lockedID string
	if err := tx.QueryRow(ctx, lockArtist, artistID).Scan(&lockedID); err != nil {
		return err
	}

	const del = `DELETE FROM reviews WHERE reviewer_id=$1 AND artist_id=$2`
	cmd, err := tx.Exec(ctx, del, reviewerID, artistID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}

	if _, err := tx.Exec(ctx, recomputeAggregates, artistID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *reviewRepository) GetByReviewerAndArtist(ctx context.Context, reviewerID, artistID string) (*domain.Review, error) {
	const query = `
        SELECT id, reviewer_id, artist_id, rating, comment, images, created_at, updated_at
        FROM reviews WHERE reviewer_id=$1 AND artist_id=$2`
	var review domain.Review
	if err := r.pool.QueryRow(ctx, query, reviewerID, artistID).Scan(
		&review.ID,
		&review.ReviewerID,
		&review.ArtistID,
		&review.Rating,
		&review.Comment,
		&review.Images,
		&review.CreatedAt,
		&review.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &review, nil
}
