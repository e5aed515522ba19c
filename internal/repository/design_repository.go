package repository

import (
	"context"

	"github.com/spec-kit/booking-service/internal/domain"
)

// DesignRepository encapsulates design artifact persistence.
type DesignRepository interface {
	Create(ctx context.Context, design *domain.Design) error
	GetByID(ctx context.Context, id string) (*domain.Design, error)
	ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Design, error)
}

type designRepository struct {
	pool Querier
}

// NewDesignRepository instantiates repository.
func NewDesignRepository(pool Querier) DesignRepository {
	return &designRepository{pool: pool}
}

func (r *designRepository) Create(ctx context.Context, design *domain.Design) error {
	const query = `
        INSERT INTO designs (owner_id, prompt, image_url)
        VALUES ($1,$2,$3)
        RETURNING id, created_at`
	return r.pool.QueryRow(ctx, query,
		design.OwnerID,
		design.Prompt,
		design.ImageURL,
	).Scan(&design.ID, &design.CreatedAt)
}

func (r *designRepository) GetByID(ctx context.Context, id string) (*domain.Design, error) {
	const query = `
        SELECT id, owner_id, prompt, image_url, created_at
        FROM designs WHERE id=$1`
	var design domain.Design
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&design.ID,
		&design.OwnerID,
		&design.Prompt,
		&design.ImageURL,
		&design.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &design, nil
}

func (r *designRepository) ListByOwner(ctx context.Context, ownerID string, limit, offset int) ([]domain.Design, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	const query = `
        SELECT id, owner_id, prompt, image_url, created_at
        FROM designs WHERE owner_id=$1
        ORDER BY created_at DESC LIMIT $2 OFFSET $3`
	rows, err := r.pool.Query(ctx, query, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Design
	for rows.Next() {
		var design domain.Design
		if err := rows.Scan(
			&design.ID,
			&design.OwnerID,
			&design.Prompt,
			&design.ImageURL,
			&design.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, design)
	}
	return result, rows.Err()
}
