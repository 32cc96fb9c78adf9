package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/coworkly/SpaceBooker/internal/domain"
	"github.com/coworkly/SpaceBooker/internal/handler/dto"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type ReservationSvc interface {
	Create(ctx context.Context, input domain.ReservationInput) (*domain.ReservationDetails, error)
	Update(ctx context.Context, id string, input domain.ReservationInput) (*domain.ReservationDetails, error)
	Cancel(ctx context.Context, id string) error
	GetByID(ctx context.Context, id string) (*domain.ReservationDetails, error)
	List(ctx context.Context) ([]*domain.ReservationDetails, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.ReservationDetails, error)
	ListBySpace(ctx context.Context, spaceID string) ([]*domain.ReservationDetails, error)
}

type Handler struct {
	reservationService ReservationSvc
}

func NewHandler(reservationService ReservationSvc) *Handler {
	return &Handler{reservationService: reservationService}
}

func (h *Handler) CreateReservation(c *ginext.Context) {
	input, ok := h.bindReservationInput(c)
	if !ok {
		return
	}

	details, err := h.reservationService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToReservationResponse(details))
}

func (h *Handler) UpdateReservation(c *ginext.Context) {
	id, ok := pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	input, ok := h.bindReservationInput(c)
	if !ok {
		return
	}

	details, err := h.reservationService.Update(c.Request.Context(), id, input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(details))
}

func (h *Handler) CancelReservation(c *ginext.Context) {
	id, ok := pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	if err := h.reservationService.Cancel(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "cancelled"})
}

func (h *Handler) GetReservation(c *ginext.Context) {
	id, ok := pathID(c, "invalid reservation id")
	if !ok {
		return
	}

	details, err := h.reservationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponse(details))
}

func (h *Handler) ListReservations(c *ginext.Context) {
	details, err := h.reservationService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(details))
}

func (h *Handler) ListUserReservations(c *ginext.Context) {
	id, ok := pathID(c, "invalid user id")
	if !ok {
		return
	}

	details, err := h.reservationService.ListByUser(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(details))
}

func (h *Handler) ListSpaceReservations(c *ginext.Context) {
	id, ok := pathID(c, "invalid space id")
	if !ok {
		return
	}

	details, err := h.reservationService.ListBySpace(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReservationResponses(details))
}

func (h *Handler) bindReservationInput(c *ginext.Context) (domain.ReservationInput, bool) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return domain.ReservationInput{}, false
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid start_time format, expected RFC3339"})
		return domain.ReservationInput{}, false
	}

	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid end_time format, expected RFC3339"})
		return domain.ReservationInput{}, false
	}

	// Offsets are accepted on the wire but normalized away: validation,
	// conflict detection and storage all operate on UTC clock time.
	return domain.ReservationInput{
		UserID:    req.UserID,
		SpaceID:   req.SpaceID,
		StartTime: start.UTC(),
		EndTime:   end.UTC(),
		Notes:     req.Notes,
	}, true
}

func pathID(c *ginext.Context, msg string) (string, bool) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: msg})
		return "", false
	}
	return id, true
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrSpaceNotFound),
		errors.Is(err, domain.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrReservationConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrDirectoryUnavailable):
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: "directory service unavailable"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
