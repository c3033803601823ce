package srs

import "time"

// Item holds the per-card spaced-repetition state in box-ladder mode.
// It is created on first access of a newly authored card, mutated only by
// the box scheduler, and soft-deleted via its parent card's cascade.
type Item struct {
	ID             int64      `db:"id"`
	CardID         int64      `db:"card_id"`
	UserID         int64      `db:"user_id"`
	Box            int        `db:"box"`
	IntervalDays   int        `db:"interval_days"`
	DueDate        time.Time  `db:"due_date"`
	ReviewCount    int        `db:"review_count"`
	LapseCount     int        `db:"lapse_count"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	Version        int64      `db:"version"`
	DeletedAt      *time.Time `db:"deleted_at"`
	CreatedAt      time.Time  `db:"created_at"`
	UpdatedAt      time.Time  `db:"updated_at"`
}

// NewItem creates the initial review state for a card: box 1, due on the
// creation date. "New" is not a distinct state, just ReviewCount == 0.
func NewItem(cardID, userID int64, today time.Time) Item {
	return Item{
		CardID:       cardID,
		UserID:       userID,
		Box:          1,
		IntervalDays: 1,
		DueDate:      DateOnly(today),
	}
}

// Deleted reports whether the item has been soft-deleted.
func (i Item) Deleted() bool {
	return i.DeletedAt != nil
}

// Due reports whether the item is due on the given date.
func (i Item) Due(today time.Time) bool {
	return !i.DueDate.After(DateOnly(today))
}

// Mature reports whether the item has reached the mature box threshold.
func (i Item) Mature(threshold int) bool {
	return i.Box >= threshold
}

// Snapshot is the exact pre-rating tuple retained for undo. It is persisted
// as a review-log row so that reverting the most recent rating restores the
// item byte for byte.
type Snapshot struct {
	ID             int64      `db:"id"`
	ItemID         int64      `db:"item_id"`
	Rating         Rating     `db:"rating"`
	Box            int        `db:"box"`
	IntervalDays   int        `db:"interval_days"`
	DueDate        time.Time  `db:"due_date"`
	ReviewCount    int        `db:"review_count"`
	LapseCount     int        `db:"lapse_count"`
	LastReviewedAt *time.Time `db:"last_reviewed_at"`
	RatedAt        time.Time  `db:"rated_at"`
}

// DateOnly truncates a time to midnight UTC. Scheduling compares whole days,
// never times of day.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
