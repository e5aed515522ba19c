package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// ArtistsHandler exposes artist profile and review endpoints.
type ArtistsHandler struct {
	artists *service.ArtistService
	reviews *service.ReviewService
}

// NewArtistsHandler constructs handler.
func NewArtistsHandler(artists *service.ArtistService, reviews *service.ReviewService) *ArtistsHandler {
	return &ArtistsHandler{artists: artists, reviews: reviews}
}

// List handles GET /artists.
func (h *ArtistsHandler) List(c *fiber.Ctx) error {
	profiles, err := h.artists.List(c.Context())
	if err != nil {
		return err
	}
	result := make([]dto.ArtistResponse, 0, len(profiles))
	for i := range profiles {
		result = append(result, dto.NewArtistResponse(&profiles[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}

// Get handles GET /artists/:id.
func (h *ArtistsHandler) Get(c *fiber.Ctx) error {
	profile, err := h.artists.Get(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewArtistResponse(profile)})
}

// CreateProfile handles POST /artists.
func (h *ArtistsHandler) CreateProfile(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	var req dto.CreateArtistProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.artists.CreateProfile(c.Context(), claims.UserID, service.ArtistProfileInput{
		Bio:             req.Bio,
		Specialties:     req.Specialties,
		ExperienceYears: req.ExperienceYears,
		PortfolioImages: req.PortfolioImages,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewArtistResponse(profile)})
}

// SetAvailability handles PATCH /artists/availability.
func (h *ArtistsHandler) SetAvailability(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	var req dto.SetAvailabilityRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	profile, err := h.artists.SetAvailability(c.Context(), claims.UserID, req.Available)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewArtistResponse(profile)})
}

// SubmitReview handles POST /artists/:id/review.
func (h *ArtistsHandler) SubmitReview(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	var req dto.SubmitReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	review, err := h.reviews.Submit(c.Context(), claims.UserID, c.Params("id"), req.Rating, req.Comment, req.Images)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewReviewResponse(review)})
}

// DeleteReview handles DELETE /artists/:id/review.
func (h *ArtistsHandler) DeleteReview(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	if err := h.reviews.Delete(c.Context(), claims.UserID, c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}
