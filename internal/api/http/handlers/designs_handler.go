package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// DesignsHandler exposes design artifact endpoints.
type DesignsHandler struct {
	designs *service.DesignService
}

// NewDesignsHandler constructs handler.
func NewDesignsHandler(designs *service.DesignService) *DesignsHandler {
	return &DesignsHandler{designs: designs}
}

// Create handles POST /designs.
func (h *DesignsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	var req dto.CreateDesignRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	design, err := h.designs.Create(c.Context(), claims.UserID, req.Prompt, req.ImageURL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewDesignResponse(design)})
}

// ListMine handles GET /designs.
func (h *DesignsHandler) ListMine(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	designs, err := h.designs.ListMine(c.Context(), claims.UserID, c.QueryInt("limit", 20), c.QueryInt("offset", 0))
	if err != nil {
		return err
	}

	result := make([]dto.DesignResponse, 0, len(designs))
	for i := range designs {
		result = append(result, dto.NewDesignResponse(&designs[i]))
	}
	return c.JSON(fiber.Map{"data": result})
}
