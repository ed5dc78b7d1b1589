package ports

import (
	"context"

	"github.com/nvrd0/SlotBooker/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
	ListWithSlots(ctx context.Context) ([]*domain.BookingWithSlot, error)
}
