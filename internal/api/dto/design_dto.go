package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// CreateDesignRequest payload.
type CreateDesignRequest struct {
	Prompt   string `json:"prompt"`
	ImageURL string `json:"image_url"`
}

// DesignResponse response.
type DesignResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"owner_id"`
	Prompt    string    `json:"prompt"`
	ImageURL  string    `json:"image_url"`
	CreatedAt time.Time `json:"created_at"`
}

// NewDesignResponse maps a domain design.
func NewDesignResponse(design *domain.Design) DesignResponse {
	return DesignResponse{
		ID:        design.ID,
		OwnerID:   design.OwnerID,
		Prompt:    design.Prompt,
		ImageURL:  design.ImageURL,
		CreatedAt: design.CreatedAt,
	}
}
