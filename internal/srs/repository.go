package srs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// ItemRepository defines operations for managing review items and their
// review logs.
//
//go:generate mockgen -source=repository.go -destination=../mocks/srs/mock_repository.go -package=mock_srs
type ItemRepository interface {
	FindByID(ctx context.Context, itemID int64) (*Item, error)
	FindByCard(ctx context.Context, cardID int64) (*Item, error)
	Create(ctx context.Context, item *Item) error
	// UpdateRated persists a rated item together with its pre-rating
	// snapshot in one transaction, guarded by the item version.
	UpdateRated(ctx context.Context, item *Item, snapshot *Snapshot) error
	// UpdateUndone persists an undone item and removes the consumed
	// review-log row in one transaction, guarded by the item version.
	UpdateUndone(ctx context.Context, item *Item, snapshotID int64) error
	FindLatestSnapshot(ctx context.Context, itemID int64) (*Snapshot, error)
	FindDueByUser(ctx context.Context, userID int64, date time.Time) ([]Item, error)
}

// DBItemRepository implements ItemRepository using MySQL.
type DBItemRepository struct {
	db *sqlx.DB
}

// NewDBItemRepository creates a new DBItemRepository.
func NewDBItemRepository(db *sqlx.DB) *DBItemRepository {
	return &DBItemRepository{db: db}
}

// FindByID returns the review item with the given ID, or nil if not found.
func (r *DBItemRepository) FindByID(ctx context.Context, itemID int64) (*Item, error) {
	var item Item
	err := r.db.GetContext(ctx, &item, "SELECT * FROM review_items WHERE id = ?", itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(review_item) > %w", err)
	}
	return &item, nil
}

// FindByCard returns the review item owned by the given card, or nil if the
// card has never been studied.
func (r *DBItemRepository) FindByCard(ctx context.Context, cardID int64) (*Item, error) {
	var item Item
	err := r.db.GetContext(ctx, &item, "SELECT * FROM review_items WHERE card_id = ?", cardID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(review_item by card) > %w", err)
	}
	return &item, nil
}

// Create inserts a new review item in its initial state.
func (r *DBItemRepository) Create(ctx context.Context, item *Item) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO review_items (card_id, user_id, box, interval_days, due_date, review_count, lapse_count, version)
		VALUES (?, ?, ?, ?, ?, ?, ?, 1)`,
		item.CardID, item.UserID, item.Box, item.IntervalDays, item.DueDate,
		item.ReviewCount, item.LapseCount)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert review_item) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	item.ID = id
	item.Version = 1
	return nil
}

// UpdateRated writes the rated item and its review-log snapshot atomically.
// The WHERE version guard serializes concurrent ratings on the same item:
// the loser gets ErrVersionConflict instead of a torn state.
func (r *DBItemRepository) UpdateRated(ctx context.Context, item *Item, snapshot *Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := r.updateItemTx(ctx, tx, item); err != nil {
		return err
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO review_logs (item_id, rating, box, interval_days, due_date, review_count, lapse_count, last_reviewed_at, rated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		snapshot.ItemID, snapshot.Rating, snapshot.Box, snapshot.IntervalDays,
		snapshot.DueDate, snapshot.ReviewCount, snapshot.LapseCount,
		snapshot.LastReviewedAt, snapshot.RatedAt)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(insert review_log) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	snapshot.ID = id

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

// UpdateUndone writes the restored item and deletes the consumed review-log
// row atomically.
func (r *DBItemRepository) UpdateUndone(ctx context.Context, item *Item, snapshotID int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := r.updateItemTx(ctx, tx, item); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM review_logs WHERE id = ?", snapshotID); err != nil {
		return fmt.Errorf("tx.ExecContext(delete review_log) > %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	return nil
}

func (r *DBItemRepository) updateItemTx(ctx context.Context, tx *sqlx.Tx, item *Item) error {
	result, err := tx.ExecContext(ctx,
		`UPDATE review_items
		SET box = ?, interval_days = ?, due_date = ?, review_count = ?, lapse_count = ?, last_reviewed_at = ?, version = version + 1
		WHERE id = ? AND version = ? AND deleted_at IS NULL`,
		item.Box, item.IntervalDays, item.DueDate, item.ReviewCount,
		item.LapseCount, item.LastReviewedAt, item.ID, item.Version)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(update review_item) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: item %d version %d", ErrVersionConflict, item.ID, item.Version)
	}
	item.Version++
	return nil
}

// FindLatestSnapshot returns the most recent review-log row for an item, or
// nil if the item has never been rated.
func (r *DBItemRepository) FindLatestSnapshot(ctx context.Context, itemID int64) (*Snapshot, error) {
	var snapshot Snapshot
	err := r.db.GetContext(ctx, &snapshot,
		"SELECT * FROM review_logs WHERE item_id = ? ORDER BY rated_at DESC, id DESC LIMIT 1", itemID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(latest review_log) > %w", err)
	}
	return &snapshot, nil
}

// FindDueByUser returns the user's non-deleted items due on or before the date.
func (r *DBItemRepository) FindDueByUser(ctx context.Context, userID int64, date time.Time) ([]Item, error) {
	var items []Item
	if err := r.db.SelectContext(ctx, &items,
		"SELECT * FROM review_items WHERE user_id = ? AND due_date <= ? AND deleted_at IS NULL ORDER BY id",
		userID, DateOnly(date)); err != nil {
		return nil, fmt.Errorf("db.SelectContext(due review_items) > %w", err)
	}
	return items, nil
}
