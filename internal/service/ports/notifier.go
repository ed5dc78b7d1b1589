package ports

import (
	"context"

	"github.com/nvrd0/SlotBooker/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, b *domain.Booking, slot *domain.Slot)
	NotifyBookingCancelled(ctx context.Context, b *domain.Booking, slot *domain.Slot)
}
