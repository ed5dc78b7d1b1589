package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/nvrd0/SlotBooker/internal/domain"
	"github.com/nvrd0/SlotBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type SlotSvc interface {
	List(ctx context.Context, dateFilter string) ([]*domain.Slot, error)
	Create(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error)
	CreateBulk(ctx context.Context, input domain.BulkCreateInput) ([]*domain.Slot, error)
	Update(ctx context.Context, id string, patch domain.SlotPatch) (*domain.Slot, error)
	Delete(ctx context.Context, id string) error
}

type BookingSvc interface {
	Reserve(ctx context.Context, slotID string, client domain.ClientInfo) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.BookingWithSlot, error)
}

type Handler struct {
	slotService    SlotSvc
	bookingService BookingSvc
}

func NewHandler(slotService SlotSvc, bookingService BookingSvc) *Handler {
	return &Handler{
		slotService:    slotService,
		bookingService: bookingService,
	}
}

// Slots

func (h *Handler) ListSlots(c *ginext.Context) {
	slots, err := h.slotService.List(c.Request.Context(), c.Query("date"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.SlotResponse, 0, len(slots))
	for _, s := range slots {
		resp = append(resp, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CreateSlot(c *ginext.Context) {
	var req dto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.CreateSlotInput{
		Debut:     req.Debut,
		Fin:       req.Fin,
		Date:      req.Date,
		Start:     req.Start,
		End:       req.End,
		Available: req.Disponible,
	}

	slot, err := h.slotService.Create(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToSlotResponse(slot))
}

func (h *Handler) BulkCreateSlots(c *ginext.Context) {
	var req dto.BulkCreateSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	input := domain.BulkCreateInput{
		Date:            req.Date,
		IntervalMinutes: req.IntervalMinutes,
	}
	for _, rng := range req.Ranges {
		input.Ranges = append(input.Ranges, domain.TimeRange{Start: rng.Start, End: rng.End})
	}

	created, err := h.slotService.CreateBulk(c.Request.Context(), input)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.BulkCreateSlotsResponse{
		Count: len(created),
		Items: make([]dto.SlotResponse, 0, len(created)),
	}
	for _, s := range created {
		resp.Items = append(resp.Items, dto.ToSlotResponse(s))
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *Handler) UpdateSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid slot id"})
		return
	}

	var req dto.UpdateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	var patch domain.SlotPatch
	if req.Debut != nil {
		debut, err := time.Parse(time.RFC3339, *req.Debut)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid debut, expected RFC3339"})
			return
		}
		patch.StartsAt = &debut
	}
	if req.Fin != nil {
		fin, err := time.Parse(time.RFC3339, *req.Fin)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid fin, expected RFC3339"})
			return
		}
		patch.EndsAt = &fin
	}
	patch.Available = req.Disponible

	slot, err := h.slotService.Update(c.Request.Context(), id, patch)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToSlotResponse(slot))
}

func (h *Handler) DeleteSlot(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid slot id"})
		return
	}

	if err := h.slotService.Delete(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Créneau supprimé"})
}

// Bookings

func (h *Handler) CreateBooking(c *ginext.Context) {
	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})
		return
	}

	slotID := req.CreneauID
	if slotID == "" {
		slotID = req.SlotID
	}

	client := domain.ClientInfo{
		FirstName: req.ClientPrenom,
		LastName:  req.ClientNom,
		Email:     req.ClientEmail,
	}

	booking, err := h.bookingService.Reserve(c.Request.Context(), slotID, client)
	if err != nil {
		h.handleReserveError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *Handler) ListBookings(c *ginext.Context) {
	bookings, err := h.bookingService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		resp = append(resp, dto.ToBookingWithSlotResponse(b))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) CancelBooking(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "invalid booking id"})
		return
	}

	booking, err := h.bookingService.Cancel(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CancelBookingResponse{
		Message: "Rendez-vous annulé",
		Rdv:     dto.ToBookingResponse(booking),
	})
}

// handleReserveError keeps the historical contract of the booking endpoint:
// a missing or unavailable slot answers 400, not 404 or 409.
func (h *Handler) handleReserveError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "creneauId requis"})

	case errors.Is(err, domain.ErrSlotNotFound):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Créneau introuvable"})

	case errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Créneau non disponible"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Erreur serveur"})
	}
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Créneau introuvable"})

	case errors.Is(err, domain.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Message: "Rendez-vous introuvable"})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: err.Error()})

	case errors.Is(err, domain.ErrSlotUnavailable):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Créneau non disponible"})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Message: "Erreur serveur"})
	}
}
