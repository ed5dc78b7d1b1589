package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/nvrd0/SlotBooker/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type SlotRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewSlotRepo(db *dbpg.DB) *SlotRepository {
	return &SlotRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.Slot) error {
	query := `INSERT INTO slots (id, starts_at, ends_at, available, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		s.ID, s.StartsAt, s.EndsAt, s.Available, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert slot: %w", err)
	}
	s.CreatedAt = now
	s.UpdatedAt = now

	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.Slot, error) {
	query := `SELECT id, starts_at, ends_at, available, created_at, updated_at
			  FROM slots
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get slot: %w", err)
	}

	var s domain.Slot
	if err = row.Scan(&s.ID, &s.StartsAt, &s.EndsAt, &s.Available, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSlotNotFound
		}
		return nil, fmt.Errorf("scan slot: %w", err)
	}

	return &s, nil
}

// List returns slots ordered by start time ascending. When from/to are
// non-nil only slots with starts_at in [from, to) are returned.
func (r *SlotRepository) List(ctx context.Context, from, to *time.Time) ([]*domain.Slot, error) {
	query := `SELECT id, starts_at, ends_at, available, created_at, updated_at
			  FROM slots
			  WHERE ($1::timestamptz IS NULL OR starts_at >= $1)
			    AND ($2::timestamptz IS NULL OR starts_at < $2)
			  ORDER BY starts_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var res []*domain.Slot
	for rows.Next() {
		var s domain.Slot
		if err = rows.Scan(&s.ID, &s.StartsAt, &s.EndsAt, &s.Available, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan slot: %w", err)
		}
		res = append(res, &s)
	}

	return res, rows.Err()
}

func (r *SlotRepository) Update(ctx context.Context, s *domain.Slot) error {
	query := `UPDATE slots
			  SET starts_at = $2, ends_at = $3, available = $4, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, s.ID, s.StartsAt, s.EndsAt, s.Available)
	if err != nil {
		return fmt.Errorf("update slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM slots WHERE id=$1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete slot: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("slot rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrSlotNotFound
	}

	return nil
}

// ExistsByWindow reports whether a slot with exactly this start/end pair
// already exists. Bulk creation uses it to deduplicate sub-windows.
func (r *SlotRepository) ExistsByWindow(ctx context.Context, startsAt, endsAt time.Time) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM slots WHERE starts_at=$1 AND ends_at=$2)`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, startsAt, endsAt)
	if err != nil {
		return false, fmt.Errorf("check slot window: %w", err)
	}

	var exists bool
	if err = row.Scan(&exists); err != nil {
		return false, fmt.Errorf("scan slot window: %w", err)
	}

	return exists, nil
}
