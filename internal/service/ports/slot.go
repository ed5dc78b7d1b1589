package ports

import (
	"context"
	"time"

	"github.com/nvrd0/SlotBooker/internal/domain"
)

type SlotRepo interface {
	Create(ctx context.Context, s *domain.Slot) error
	GetByID(ctx context.Context, id string) (*domain.Slot, error)
	List(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error)
	Update(ctx context.Context, s *domain.Slot) error
	Delete(ctx context.Context, id string) error
	ExistsByWindow(ctx context.Context, startsAt, endsAt time.Time) (bool, error)
}
