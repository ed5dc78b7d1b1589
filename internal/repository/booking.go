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

type BookingRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewBookingRepo(db *dbpg.DB) *BookingRepository {
	return &BookingRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create inserts the booking and flips its slot to unavailable as one
// transaction. The slot row is locked first, so two concurrent reservations
// of the same slot serialize: the second one sees available=false and fails.
func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	slotQuery := `SELECT available FROM slots WHERE id = $1 FOR UPDATE`
	var available bool
	if err = tx.QueryRowContext(ctx, slotQuery, b.SlotID).Scan(&available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrSlotNotFound
		}
		return fmt.Errorf("lock slot: %w", err)
	}

	if !available {
		return domain.ErrSlotUnavailable
	}

	query := `INSERT INTO bookings (id, slot_id, first_name, last_name, email, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = tx.ExecContext(
		ctx, query, b.ID, b.SlotID,
		b.FirstName, b.LastName, b.Email,
		b.Status, b.CreatedAt, b.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}

	flipQuery := `UPDATE slots SET available = false, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, flipQuery, b.SlotID); err != nil {
		return fmt.Errorf("flip slot availability: %w", err)
	}

	return tx.Commit()
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	query := `SELECT id, slot_id, first_name, last_name, email, status, created_at, updated_at
			  FROM bookings
			  WHERE id=$1`
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	var b domain.Booking
	if err = row.Scan(
		&b.ID, &b.SlotID, &b.FirstName, &b.LastName,
		&b.Email, &b.Status, &b.CreatedAt, &b.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("scan booking: %w", err)
	}

	return &b, nil
}

// Cancel marks a confirmed booking cancelled and re-opens its slot. The slot
// update is best-effort: a slot deleted in the meantime does not fail the
// cancellation. Returns ErrBookingNotFound when no confirmed booking matched.
func (r *BookingRepository) Cancel(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE bookings
			  SET status = $2, updated_at = now()
			  WHERE id = $1 AND status = $3
			  RETURNING slot_id`
	var slotID string
	if err = tx.QueryRowContext(
		ctx, query, id,
		domain.BookingStatusCancelled, domain.BookingStatusConfirmed,
	).Scan(&slotID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrBookingNotFound
		}
		return fmt.Errorf("cancel booking: %w", err)
	}

	reopenQuery := `UPDATE slots SET available = true, updated_at = now() WHERE id = $1`
	if _, err = tx.ExecContext(ctx, reopenQuery, slotID); err != nil {
		return fmt.Errorf("reopen slot: %w", err)
	}

	return tx.Commit()
}

// ListWithSlots returns all bookings newest-first with their slot rows
// joined. Bookings whose slot was deleted come back with a nil slot.
func (r *BookingRepository) ListWithSlots(ctx context.Context) ([]*domain.BookingWithSlot, error) {
	query := `SELECT b.id, b.slot_id, b.first_name, b.last_name, b.email, b.status, b.created_at, b.updated_at,
					 s.id, s.starts_at, s.ends_at, s.available, s.created_at, s.updated_at
			  FROM bookings b
			  LEFT JOIN slots s ON s.id = b.slot_id
			  ORDER BY b.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var res []*domain.BookingWithSlot
	for rows.Next() {
		var item domain.BookingWithSlot
		var (
			slotID             sql.NullString
			startsAt, endsAt   sql.NullTime
			available          sql.NullBool
			createdAt, updated sql.NullTime
		)
		if err = rows.Scan(
			&item.Booking.ID, &item.Booking.SlotID, &item.Booking.FirstName, &item.Booking.LastName,
			&item.Booking.Email, &item.Booking.Status, &item.Booking.CreatedAt, &item.Booking.UpdatedAt,
			&slotID, &startsAt, &endsAt, &available, &createdAt, &updated,
		); err != nil {
			return nil, fmt.Errorf("scan booking: %w", err)
		}

		if slotID.Valid {
			item.Slot = &domain.Slot{
				ID:        slotID.String,
				StartsAt:  startsAt.Time,
				EndsAt:    endsAt.Time,
				Available: available.Bool,
				CreatedAt: createdAt.Time,
				UpdatedAt: updated.Time,
			}
		}

		res = append(res, &item)
	}

	return res, rows.Err()
}
