package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvrd0/SlotBooker/internal/domain"
	"github.com/nvrd0/SlotBooker/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	slotRepo    ports.SlotRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	slotRepo ports.SlotRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		slotRepo:    slotRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

// Reserve creates a confirmed booking against an available slot and flips the
// slot to unavailable. The availability re-check and both writes happen in
// one repository transaction, so of two concurrent reservations of the same
// slot exactly one succeeds and the other gets ErrSlotUnavailable.
func (s *BookingService) Reserve(ctx context.Context, slotID string, client domain.ClientInfo) (*domain.Booking, error) {
	if slotID == "" {
		return nil, fmt.Errorf("%w: creneauId is required", domain.ErrValidation)
	}

	slot, err := s.slotRepo.GetByID(ctx, slotID)
	if err != nil {
		return nil, fmt.Errorf("check slot: %w", err)
	}

	if !slot.Available {
		return nil, domain.ErrSlotUnavailable
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:        uuid.New().String(),
		SlotID:    slotID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Email:     client.Email,
		Status:    domain.BookingStatusConfirmed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	slot.Available = false

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("slot_id", slotID),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), booking, slot)

	return booking, nil
}

// Cancel is idempotent: cancelling an already cancelled booking returns it
// unchanged. Otherwise the booking transitions to ANNULE and its slot is
// re-opened best-effort (a slot deleted in the meantime is not an error).
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	if booking.Status == domain.BookingStatusCancelled {
		return booking, nil
	}

	if err = s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, domain.ErrBookingNotFound) {
			// Lost a concurrent cancel. The stored state is what counts.
			return s.bookingRepo.GetByID(ctx, id)
		}
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	booking.Status = domain.BookingStatusCancelled

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("slot_id", booking.SlotID),
	)

	slot, err := s.slotRepo.GetByID(ctx, booking.SlotID)
	if err != nil {
		slot = nil
	}
	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), booking, slot)

	return booking, nil
}

func (s *BookingService) List(ctx context.Context) ([]*domain.BookingWithSlot, error) {
	return s.bookingRepo.ListWithSlots(ctx)
}
