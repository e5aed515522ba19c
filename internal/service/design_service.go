package service

import (
	"context"
	"strings"

	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/repository"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// DesignService records design artifacts for clients. Generation itself
// happens in an external collaborator; only the ownership record lives here.
type DesignService struct {
	designs repository.DesignRepository
}

// NewDesignService constructs the service.
func NewDesignService(designs repository.DesignRepository) *DesignService {
	return &DesignService{designs: designs}
}

// Create records a design owned by the caller.
func (s *DesignService) Create(ctx context.Context, ownerID, prompt, imageURL string) (*domain.Design, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return nil, apperrors.NewValidationError("prompt required", nil)
	}
	design := &domain.Design{
		OwnerID:  ownerID,
		Prompt:   prompt,
		ImageURL: imageURL,
	}
	if err := s.designs.Create(ctx, design); err != nil {
		return nil, err
	}
	return design, nil
}

// ListMine returns the caller's designs.
func (s *DesignService) ListMine(ctx context.Context, ownerID string, limit, offset int) ([]domain.Design, error) {
	return s.designs.ListByOwner(ctx, ownerID, limit, offset)
}
