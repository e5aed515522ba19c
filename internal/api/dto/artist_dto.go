package dto

import (
	"time"

	"github.com/spec-kit/booking-service/internal/domain"
)

// CreateArtistProfileRequest payload.
type CreateArtistProfileRequest struct {
	Bio             string   `json:"bio"`
	Specialties     []string `json:"specialties"`
	ExperienceYears int      `json:"experience_years"`
	PortfolioImages []string `json:"portfolio_images"`
}

// SetAvailabilityRequest payload.
type SetAvailabilityRequest struct {
	Available bool `json:"available"`
}

// SubmitReviewRequest payload.
type SubmitReviewRequest struct {
	Rating  int      `json:"rating"`
	Comment string   `json:"comment"`
	Images  []string `json:"images"`
}

// ArtistResponse response.
type ArtistResponse struct {
	ID              string    `json:"id"`
	UserID          string    `json:"user_id"`
	Bio             string    `json:"bio"`
	Specialties     []string  `json:"specialties"`
	ExperienceYears int       `json:"experience_years"`
	PortfolioImages []string  `json:"portfolio_images"`
	Available       bool      `json:"available"`
	Rating          float64   `json:"rating"`
	ReviewCount     int       `json:"review_count"`
	CreatedAt       time.Time `json:"created_at"`
}

// NewArtistResponse maps a domain profile.
func NewArtistResponse(profile *domain.ArtistProfile) ArtistResponse {
	return ArtistResponse{
		ID:              profile.ID,
		UserID:          profile.UserID,
		Bio:             profile.Bio,
		Specialties:     profile.Specialties,
		ExperienceYears: profile.ExperienceYears,
		PortfolioImages: profile.PortfolioImages,
		Available:       profile.Available,
		Rating:          profile.Rating,
		ReviewCount:     profile.ReviewCount,
		CreatedAt:       profile.CreatedAt,
	}
}

// ReviewResponse response.
type ReviewResponse struct {
	ID         string    `json:"id"`
	ReviewerID string    `json:"reviewer_id"`
	ArtistID   string    `json:"artist_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	Images     []string  `json:"images"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewReviewResponse maps a domain review.
func NewReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		ReviewerID: review.ReviewerID,
		ArtistID:   review.ArtistID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Images:     review.Images,
		CreatedAt:  review.CreatedAt,
		UpdatedAt:  review.UpdatedAt,
	}
}
