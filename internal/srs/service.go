// Package srs implements the box-ladder spaced-repetition scheduler: a
// per-item state machine that maps each rating to a new box, interval and
// due date, with snapshot-based undo.
package srs

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Clock supplies the current time. Extracted so scheduling is testable
// without waiting for real days to pass.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Service orchestrates rating and undo: load, schedule, persist as one
// atomic unit.
type Service struct {
	scheduler *Scheduler
	items     ItemRepository
	clock     Clock
}

// NewService creates a new Service.
func NewService(scheduler *Scheduler, items ItemRepository, clock Clock) *Service {
	return &Service{
		scheduler: scheduler,
		items:     items,
		clock:     clock,
	}
}

// Rate applies a rating to the item and persists the result together with
// the undo snapshot. Concurrent ratings on the same item are serialized by
// the repository's version guard.
func (s *Service) Rate(ctx context.Context, itemID int64, rating Rating) (*Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("items.FindByID(%d) > %w", itemID, err)
	}
	if item == nil {
		return nil, fmt.Errorf("srs: item %d not found", itemID)
	}

	updated, snapshot, err := s.scheduler.Rate(*item, rating, s.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := s.items.UpdateRated(ctx, &updated, &snapshot); err != nil {
		return nil, fmt.Errorf("items.UpdateRated(%d) > %w", itemID, err)
	}

	slog.Debug("rated item",
		"item_id", itemID,
		"rating", rating.String(),
		"box", updated.Box,
		"interval_days", updated.IntervalDays,
		"due_date", updated.DueDate.Format(time.DateOnly))
	return &updated, nil
}

// Undo reverts the most recent rating, restoring the exact prior state tuple.
func (s *Service) Undo(ctx context.Context, itemID int64) (*Item, error) {
	item, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("items.FindByID(%d) > %w", itemID, err)
	}
	if item == nil {
		return nil, fmt.Errorf("srs: item %d not found", itemID)
	}
	if item.Deleted() {
		return nil, fmt.Errorf("%w: item %d", ErrItemDeleted, itemID)
	}

	snapshot, err := s.items.FindLatestSnapshot(ctx, itemID)
	if err != nil {
		return nil, fmt.Errorf("items.FindLatestSnapshot(%d) > %w", itemID, err)
	}
	if snapshot == nil {
		return nil, fmt.Errorf("%w: item %d", ErrNoReviewLog, itemID)
	}

	restored := s.scheduler.Undo(*item, *snapshot)
	if err := s.items.UpdateUndone(ctx, &restored, snapshot.ID); err != nil {
		return nil, fmt.Errorf("items.UpdateUndone(%d) > %w", itemID, err)
	}

	slog.Debug("undid rating", "item_id", itemID, "box", restored.Box)
	return &restored, nil
}

// StartStudying ensures a review item exists for the card, creating the
// initial box-1 state on first access.
func (s *Service) StartStudying(ctx context.Context, cardID, userID int64) (*Item, error) {
	item, err := s.items.FindByCard(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("items.FindByCard(%d) > %w", cardID, err)
	}
	if item != nil {
		return item, nil
	}

	created := NewItem(cardID, userID, s.clock.Now())
	if err := s.items.Create(ctx, &created); err != nil {
		return nil, fmt.Errorf("items.Create(card %d) > %w", cardID, err)
	}
	return &created, nil
}
