package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/booking-service/internal/domain"
)

// ArtistRepository encapsulates artist profile persistence.
type ArtistRepository interface {
	CreateWithPromotion(ctx context.Context, profile *domain.ArtistProfile) error
	GetByID(ctx context.Context, id string) (*domain.ArtistProfile, error)
	GetByUserID(ctx context.Context, userID string) (*domain.ArtistProfile, error)
	List(ctx context.Context) ([]domain.ArtistProfile, error)
	SetAvailability(ctx context.Context, userID string, available bool) (*domain.ArtistProfile, error)
}

type artistRepository struct {
	pool Querier
}

// NewArtistRepository instantiates repository.
func NewArtistRepository(pool Querier) ArtistRepository {
	return &artistRepository{pool: pool}
}

const artistColumns = `id, user_id, bio, specialties, experience_years, portfolio_images,
               available, rating, review_count, created_at, updated_at`

// CreateWithPromotion inserts the profile and promotes the owning account
// from CLIENT to ARTIST in the same transaction. Admin accounts keep their
// role.
func (r *artistRepository) CreateWithPromotion(ctx context.Context, profile *domain.ArtistProfile) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	const insert = `
        INSERT INTO artist_profiles (user_id, bio, specialties, experience_years, portfolio_images, available)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id, rating, review_count, created_at, updated_at`
	if err := tx.QueryRow(ctx, insert,
		profile.UserID,
		profile.Bio,
		profile.Specialties,
		profile.ExperienceYears,
		profile.PortfolioImages,
		profile.Available,
	).Scan(&profile.ID, &profile.Rating, &profile.ReviewCount, &profile.CreatedAt, &profile.UpdatedAt); err != nil {
		return err
	}

	const promote = `UPDATE users SET role=$1, updated_at=NOW() WHERE id=$2 AND role=$3`
	if _, err := tx.Exec(ctx, promote, domain.RoleArtist, profile.UserID, domain.RoleClient); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *artistRepository) GetByID(ctx context.Context, id string) (*domain.ArtistProfile, error) {
	query := `SELECT ` + artistColumns + ` FROM artist_profiles WHERE id=$1`
	return r.fetchSingle(ctx, query, id)
}

func (r *artistRepository) GetByUserID(ctx context.Context, userID string) (*domain.ArtistProfile, error) {
	query := `SELECT ` + artistColumns + ` FROM artist_profiles WHERE user_id=$1`
	return r.fetchSingle(ctx, query, userID)
}

func (r *artistRepository) fetchSingle(ctx context.Context, query string, arg any) (*domain.ArtistProfile, error) {
	var profile domain.ArtistProfile
	if err := scanArtist(r.pool.QueryRow(ctx, query, arg), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *artistRepository) List(ctx context.Context) ([]domain.ArtistProfile, error) {
	query := `SELECT ` + artistColumns + ` FROM artist_profiles ORDER BY rating DESC, created_at ASC`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.ArtistProfile
	for rows.Next() {
		var profile domain.ArtistProfile
		if err := scanArtist(rows, &profile); err != nil {
			return nil, err
		}
		result = append(result, profile)
	}
	return result, rows.Err()
}

func (r *artistRepository) SetAvailability(ctx context.Context, userID string, available bool) (*domain.ArtistProfile, error) {
	query := `
        UPDATE artist_profiles SET available=$1, updated_at=NOW()
        WHERE user_id=$2
        RETURNING ` + artistColumns
	var profile domain.ArtistProfile
	if err := scanArtist(r.pool.QueryRow(ctx, query, available, userID), &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

func scanArtist(row pgx.Row, profile *domain.ArtistProfile) error {
	return row.Scan(
		&profile.ID,
		&profile.UserID,
		&profile.Bio,
		&profile.Specialties,
		&profile.ExperienceYears,
		&profile.PortfolioImages,
		&profile.Available,
		&profile.Rating,
		&profile.ReviewCount,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
}
