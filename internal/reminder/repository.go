package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SlotRepository defines operations for managing reminder slots.
//
//go:generate mockgen -source=repository.go -destination=../mocks/reminder/mock_repository.go -package=mock_reminder
type SlotRepository interface {
	// FindPendingOnOrBefore returns the user's allocatable slots (PENDING or
	// RESCHEDULED) scheduled on or before the date, including overdue
	// carried forward.
	FindPendingOnOrBefore(ctx context.Context, userID int64, date time.Time) ([]Slot, error)
	// CountSentOn returns how many slots are already SENT for the user and date.
	CountSentOn(ctx context.Context, userID int64, date time.Time) (int, error)
	// CountPendingPerDayAfter returns pending slot counts per scheduled date
	// strictly after the given date.
	CountPendingPerDayAfter(ctx context.Context, userID int64, date time.Time) (map[time.Time]int, error)
	// ApplyAllocation persists a full allocation partition in one transaction.
	ApplyAllocation(ctx context.Context, allocation Allocation) error
	Create(ctx context.Context, slot *Slot) error
	UpdateStatus(ctx context.Context, slotID int64, status Status) error
	ListUserIDsWithPending(ctx context.Context, date time.Time) ([]int64, error)
}

// DBSlotRepository implements SlotRepository using MySQL.
type DBSlotRepository struct {
	db *sqlx.DB
}

// NewDBSlotRepository creates a new DBSlotRepository.
func NewDBSlotRepository(db *sqlx.DB) *DBSlotRepository {
	return &DBSlotRepository{db: db}
}

// FindPendingOnOrBefore returns pending slots due on or before the date,
// ordered by creation so allocation input is a stable snapshot.
func (r *DBSlotRepository) FindPendingOnOrBefore(ctx context.Context, userID int64, date time.Time) ([]Slot, error) {
	var slots []Slot
	if err := r.db.SelectContext(ctx, &slots,
		"SELECT * FROM reminder_slots WHERE user_id = ? AND status IN (?, ?) AND scheduled_date <= ? ORDER BY id",
		userID, StatusPending, StatusRescheduled, dateOnly(date)); err != nil {
		return nil, fmt.Errorf("db.SelectContext(pending reminder_slots) > %w", err)
	}
	return slots, nil
}

// CountSentOn returns the number of SENT slots for the user on the date.
func (r *DBSlotRepository) CountSentOn(ctx context.Context, userID int64, date time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM reminder_slots WHERE user_id = ? AND status = ? AND scheduled_date = ?",
		userID, StatusSent, dateOnly(date)); err != nil {
		return 0, fmt.Errorf("db.GetContext(count sent reminder_slots) > %w", err)
	}
	return count, nil
}

// CountPendingPerDayAfter returns pending counts keyed by scheduled date for
// dates strictly after the given one.
func (r *DBSlotRepository) CountPendingPerDayAfter(ctx context.Context, userID int64, date time.Time) (map[time.Time]int, error) {
	rows := []struct {
		ScheduledDate time.Time `db:"scheduled_date"`
		Count         int       `db:"count"`
	}{}
	if err := r.db.SelectContext(ctx, &rows,
		`SELECT scheduled_date, COUNT(*) AS count FROM reminder_slots
		WHERE user_id = ? AND status IN (?, ?) AND scheduled_date > ?
		GROUP BY scheduled_date`,
		userID, StatusPending, StatusRescheduled, dateOnly(date)); err != nil {
		return nil, fmt.Errorf("db.SelectContext(pending per day) > %w", err)
	}

	counts := make(map[time.Time]int, len(rows))
	for _, row := range rows {
		counts[dateOnly(row.ScheduledDate)] = row.Count
	}
	return counts, nil
}

// ApplyAllocation persists every slot transition of an allocation run in one
// transaction, so a user's allocation is a single atomic unit.
func (r *DBSlotRepository) ApplyAllocation(ctx context.Context, allocation Allocation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, slot := range allocation.ToSend {
		if _, err := tx.ExecContext(ctx,
			"UPDATE reminder_slots SET status = ?, scheduled_date = ? WHERE id = ?",
			StatusSent, slot.ScheduledDate, slot.ID); err != nil {
			return fmt.Errorf("tx.ExecContext(mark sent %d) > %w", slot.ID, err)
		}
	}
	for _, slot := range allocation.ToReschedule {
		if _, err := tx.ExecContext(ctx,
			"UPDATE reminder_slots SET status = ?, scheduled_date = ?, reschedule_count = ? WHERE id = ?",
			StatusRescheduled, slot.ScheduledDate, slot.RescheduleCount, slot.ID); err != nil {
			return fmt.Errorf("tx.ExecContext(reschedule %d) > %w", slot.ID, err)
		}
	}
	for _, slot := range allocation.ToSkip {
		if _, err := tx.ExecContext(ctx,
			"UPDATE reminder_slots SET status = ? WHERE id = ?",
			StatusSkipped, slot.ID); err != nil {
			return fmt.Errorf("tx.ExecContext(skip %d) > %w", slot.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// Create inserts a new pending slot.
func (r *DBSlotRepository) Create(ctx context.Context, slot *Slot) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO reminder_slots (user_id, subject_id, scheduled_date, status, reschedule_count, weight)
		VALUES (?, ?, ?, ?, ?, ?)`,
		slot.UserID, slot.SubjectID, dateOnly(slot.ScheduledDate), slot.Status,
		slot.RescheduleCount, slot.Weight)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert reminder_slot) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	slot.ID = id
	return nil
}

// UpdateStatus transitions a slot's status, used for user actions such as
// DONE, SKIPPED and CANCELLED.
func (r *DBSlotRepository) UpdateStatus(ctx context.Context, slotID int64, status Status) error {
	if _, err := r.db.ExecContext(ctx,
		"UPDATE reminder_slots SET status = ? WHERE id = ?", status, slotID); err != nil {
		return fmt.Errorf("db.ExecContext(update reminder_slot status) > %w", err)
	}
	return nil
}

// ListUserIDsWithPending returns the users that have at least one pending
// slot due on or before the date. The batch runner partitions by this list.
func (r *DBSlotRepository) ListUserIDsWithPending(ctx context.Context, date time.Time) ([]int64, error) {
	var userIDs []int64
	if err := r.db.SelectContext(ctx, &userIDs,
		"SELECT DISTINCT user_id FROM reminder_slots WHERE status IN (?, ?) AND scheduled_date <= ? ORDER BY user_id",
		StatusPending, StatusRescheduled, dateOnly(date)); err != nil {
		return nil, fmt.Errorf("db.SelectContext(users with pending) > %w", err)
	}
	return userIDs, nil
}
