package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/booking-service/internal/api/dto"
	"github.com/spec-kit/booking-service/internal/auth"
	"github.com/spec-kit/booking-service/internal/domain"
	"github.com/spec-kit/booking-service/internal/service"
	apperrors "github.com/spec-kit/booking-service/pkg/util"
)

// BookingsHandler exposes booking lifecycle endpoints.
type BookingsHandler struct {
	bookings *service.BookingService
}

// NewBookingsHandler constructs handler.
func NewBookingsHandler(bookings *service.BookingService) *BookingsHandler {
	return &BookingsHandler{bookings: bookings}
}

// Create handles POST /bookings.
func (h *BookingsHandler) Create(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	var req dto.CreateBookingRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	booking, err := h.bookings.Create(c.Context(), claims.UserID, claims.Email, service.BookingCreateInput{
		ArtistID:         req.ArtistID,
		DesignID:         req.DesignID,
		ConsultationType: req.ConsultationType,
		ScheduledAt:      req.ScheduledAt,
		EventDate:        req.EventDate,
		Notes:            req.Notes,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// SetStatus handles PATCH /bookings/:id/status.
func (h *BookingsHandler) SetStatus(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	var req dto.SetBookingStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Status == "" {
		return apperrors.NewValidationError("status required", nil)
	}

	booking, err := h.bookings.SetStatus(c.Context(), claims.UserID, c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// Cancel handles POST /bookings/:id/cancel.
func (h *BookingsHandler) Cancel(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	booking, err := h.bookings.Cancel(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingResponse(booking)})
}

// List handles GET /bookings for admins and artists.
func (h *BookingsHandler) List(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	bookings, err := h.bookings.List(c.Context(), claims.UserID, listFilterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingListResponse(bookings)})
}

// ListMine handles GET /bookings/mine.
func (h *BookingsHandler) ListMine(c *fiber.Ctx) error {
	claims, ok := auth.ClaimsFromContext(c)
	if !ok {
		return apperrors.NewAuthenticationRequired("missing credential")
	}

	bookings, err := h.bookings.ListMine(c.Context(), claims.UserID, listFilterFromQuery(c))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewBookingListResponse(bookings)})
}

func listFilterFromQuery(c *fiber.Ctx) service.BookingListFilter {
	filter := service.BookingListFilter{
		Limit:  c.QueryInt("limit", 20),
		Offset: c.QueryInt("offset", 0),
	}
	if raw := c.Query("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, domain.BookingStatus(strings.ToUpper(strings.TrimSpace(s))))
		}
	}
	return filter
}
