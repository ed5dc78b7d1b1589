package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nvrd0/SlotBooker/internal/domain"
	"github.com/nvrd0/SlotBooker/internal/service/ports"
)

// Wall-clock layouts of the wire contract. Local dates and times are
// resolved in server-local time, not UTC.
const (
	dayLayout  = "2006-01-02"
	timeLayout = "15:04"
)

type SlotService struct {
	repo ports.SlotRepo
}

func NewSlotService(repo ports.SlotRepo) *SlotService {
	return &SlotService{repo: repo}
}

// List returns slots ordered by start time. A non-empty dateFilter
// (YYYY-MM-DD) restricts the result to slots starting within that local
// calendar day.
func (s *SlotService) List(ctx context.Context, dateFilter string) ([]*domain.Slot, error) {
	var from, to *time.Time
	if dateFilter != "" {
		day, err := time.ParseInLocation(dayLayout, dateFilter, time.Local)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid date filter, expected YYYY-MM-DD", domain.ErrValidation)
		}
		next := day.AddDate(0, 0, 1)
		from, to = &day, &next
	}

	return s.repo.List(ctx, from, to)
}

func (s *SlotService) Create(ctx context.Context, input domain.CreateSlotInput) (*domain.Slot, error) {
	startsAt, endsAt, err := resolveWindow(input)
	if err != nil {
		return nil, err
	}

	available := true
	if input.Available != nil {
		available = *input.Available
	}

	slot := &domain.Slot{
		ID:        uuid.New().String(),
		StartsAt:  startsAt,
		EndsAt:    endsAt,
		Available: available,
	}

	if err := s.repo.Create(ctx, slot); err != nil {
		return nil, fmt.Errorf("create slot: %w", err)
	}

	return slot, nil
}

// CreateBulk partitions each range of the given local day into consecutive
// interval-sized windows and creates a slot per window, skipping windows that
// already exist and ranges that do not parse. A trailing remainder shorter
// than the interval is dropped. The batch is not atomic.
func (s *SlotService) CreateBulk(ctx context.Context, input domain.BulkCreateInput) ([]*domain.Slot, error) {
	if len(input.Ranges) == 0 {
		return nil, fmt.Errorf("%w: ranges is required", domain.ErrValidation)
	}
	if input.IntervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: intervalMinutes must be positive", domain.ErrValidation)
	}
	interval := time.Duration(input.IntervalMinutes) * time.Minute

	var created []*domain.Slot
	for _, rng := range input.Ranges {
		rangeStart, err := parseLocal(input.Date, rng.Start)
		if err != nil {
			continue
		}
		rangeEnd, err := parseLocal(input.Date, rng.End)
		if err != nil {
			continue
		}

		for ws := rangeStart; !ws.Add(interval).After(rangeEnd); ws = ws.Add(interval) {
			we := ws.Add(interval)

			exists, err := s.repo.ExistsByWindow(ctx, ws, we)
			if err != nil {
				return nil, fmt.Errorf("check slot window: %w", err)
			}
			if exists {
				continue
			}

			slot := &domain.Slot{
				ID:        uuid.New().String(),
				StartsAt:  ws,
				EndsAt:    we,
				Available: true,
			}
			if err := s.repo.Create(ctx, slot); err != nil {
				return nil, fmt.Errorf("create slot: %w", err)
			}
			created = append(created, slot)
		}
	}

	return created, nil
}

func (s *SlotService) Update(ctx context.Context, id string, patch domain.SlotPatch) (*domain.Slot, error) {
	slot, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	if patch.StartsAt != nil {
		slot.StartsAt = *patch.StartsAt
	}
	if patch.EndsAt != nil {
		slot.EndsAt = *patch.EndsAt
	}
	if patch.Available != nil {
		slot.Available = *patch.Available
	}

	if !slot.EndsAt.After(slot.StartsAt) {
		return nil, fmt.Errorf("%w: fin must be after debut", domain.ErrValidation)
	}

	if err := s.repo.Update(ctx, slot); err != nil {
		return nil, fmt.Errorf("update slot: %w", err)
	}

	return slot, nil
}

// Delete removes a slot unconditionally, even when a confirmed booking still
// references it. Cancellation treats the missing slot as non-fatal.
func (s *SlotService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func resolveWindow(input domain.CreateSlotInput) (time.Time, time.Time, error) {
	var startsAt, endsAt time.Time
	var err error

	switch {
	case input.Debut != "" && input.Fin != "":
		if startsAt, err = time.Parse(time.RFC3339, input.Debut); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid debut, expected RFC3339", domain.ErrValidation)
		}
		if endsAt, err = time.Parse(time.RFC3339, input.Fin); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid fin, expected RFC3339", domain.ErrValidation)
		}

	case input.Date != "" && input.Start != "" && input.End != "":
		if startsAt, err = parseLocal(input.Date, input.Start); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date/start", domain.ErrValidation)
		}
		if endsAt, err = parseLocal(input.Date, input.End); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("%w: invalid date/end", domain.ErrValidation)
		}

	default:
		return time.Time{}, time.Time{}, fmt.Errorf("%w: debut/fin or date/start/end required", domain.ErrValidation)
	}

	if !endsAt.After(startsAt) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: fin must be after debut", domain.ErrValidation)
	}

	return startsAt, endsAt, nil
}

func parseLocal(day, clock string) (time.Time, error) {
	return time.ParseInLocation(dayLayout+" "+timeLayout, day+" "+clock, time.Local)
}
