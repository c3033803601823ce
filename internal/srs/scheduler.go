package srs

import (
	"fmt"
	"time"
)

// ForgottenAction controls what happens to an item's box after a forgotten
// rating.
type ForgottenAction string

const (
	// ForgottenReset moves the item back to box 1.
	ForgottenReset ForgottenAction = "reset"
	// ForgottenMoveDown moves the item down by MoveDownBoxes, clamped to box 1.
	ForgottenMoveDown ForgottenAction = "move_down"
)

const (
	// TotalBoxes is the number of stages in the box ladder.
	TotalBoxes = 7
	// MatureBoxThreshold is the box at or above which an item counts as mature.
	MatureBoxThreshold = 5
)

// DefaultBoxIntervals is the default box→interval table in days.
// It must stay monotonically increasing.
var DefaultBoxIntervals = []int{1, 2, 4, 7, 14, 30, 60}

// Config holds the box scheduler settings.
type Config struct {
	TotalBoxes         int             `mapstructure:"total_boxes"`
	BoxIntervals       []int           `mapstructure:"box_intervals"`
	ForgottenAction    ForgottenAction `mapstructure:"forgotten_action"`
	MoveDownBoxes      int             `mapstructure:"move_down_boxes" validate:"omitempty,min=1,max=3"`
	MatureBoxThreshold int             `mapstructure:"mature_box_threshold"`
}

// DefaultConfig returns the stock 7-box ladder configuration.
func DefaultConfig() Config {
	return Config{
		TotalBoxes:         TotalBoxes,
		BoxIntervals:       DefaultBoxIntervals,
		ForgottenAction:    ForgottenReset,
		MoveDownBoxes:      1,
		MatureBoxThreshold: MatureBoxThreshold,
	}
}

// Validate checks the interval table against the box count and rejects
// non-monotone tables.
func (c Config) Validate() error {
	if c.TotalBoxes < 1 {
		return fmt.Errorf("srs: total boxes %d must be at least 1", c.TotalBoxes)
	}
	if len(c.BoxIntervals) != c.TotalBoxes {
		return fmt.Errorf("srs: %d box intervals configured for %d boxes", len(c.BoxIntervals), c.TotalBoxes)
	}
	for i, interval := range c.BoxIntervals {
		if interval < 1 {
			return fmt.Errorf("srs: box %d interval %d must be at least 1 day", i+1, interval)
		}
		if i > 0 && interval <= c.BoxIntervals[i-1] {
			return fmt.Errorf("srs: box intervals must be monotonically increasing, box %d (%d) <= box %d (%d)",
				i+1, interval, i, c.BoxIntervals[i-1])
		}
	}
	switch c.ForgottenAction {
	case ForgottenReset, ForgottenMoveDown:
	default:
		return fmt.Errorf("srs: unknown forgotten action %q", c.ForgottenAction)
	}
	if c.ForgottenAction == ForgottenMoveDown && (c.MoveDownBoxes < 1 || c.MoveDownBoxes > 3) {
		return fmt.Errorf("srs: move down boxes %d out of range [1, 3]", c.MoveDownBoxes)
	}
	return nil
}

// Scheduler advances or regresses an item's review state after each rating.
// It is stateless and side-effect free; persistence belongs to the caller.
type Scheduler struct {
	config Config
}

// NewScheduler creates a Scheduler after validating the config.
func NewScheduler(config Config) (*Scheduler, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config.Validate() > %w", err)
	}
	return &Scheduler{config: config}, nil
}

// Rate applies a rating to the item at the given time and returns the updated
// item together with the pre-rating snapshot the caller must retain for undo.
// The input item is not mutated. All field updates form one atomic unit: the
// caller persists the returned item as a whole or not at all.
func (s *Scheduler) Rate(item Item, rating Rating, now time.Time) (Item, Snapshot, error) {
	if !rating.Valid() {
		return Item{}, Snapshot{}, fmt.Errorf("%w: %d", ErrInvalidRating, int(rating))
	}
	if item.Deleted() {
		return Item{}, Snapshot{}, fmt.Errorf("%w: item %d", ErrItemDeleted, item.ID)
	}

	snapshot := snapshotOf(item, rating, now)
	today := DateOnly(now)

	if rating.Remembered() {
		if item.Box < s.config.TotalBoxes {
			item.Box++
		}
		item.IntervalDays = s.config.BoxIntervals[item.Box-1]
	} else {
		switch s.config.ForgottenAction {
		case ForgottenMoveDown:
			item.Box -= s.config.MoveDownBoxes
			if item.Box < 1 {
				item.Box = 1
			}
		default:
			item.Box = 1
		}
		item.LapseCount++
		item.IntervalDays = 1
	}

	item.DueDate = today.AddDate(0, 0, item.IntervalDays)
	item.ReviewCount++
	reviewedAt := now
	item.LastReviewedAt = &reviewedAt

	return item, snapshot, nil
}

// Undo restores the item to its exact pre-rating tuple from the snapshot.
func (s *Scheduler) Undo(item Item, snapshot Snapshot) Item {
	item.Box = snapshot.Box
	item.IntervalDays = snapshot.IntervalDays
	item.DueDate = snapshot.DueDate
	item.ReviewCount = snapshot.ReviewCount
	item.LapseCount = snapshot.LapseCount
	item.LastReviewedAt = copyTime(snapshot.LastReviewedAt)
	return item
}

func snapshotOf(item Item, rating Rating, now time.Time) Snapshot {
	return Snapshot{
		ItemID:         item.ID,
		Rating:         rating,
		Box:            item.Box,
		IntervalDays:   item.IntervalDays,
		DueDate:        item.DueDate,
		ReviewCount:    item.ReviewCount,
		LapseCount:     item.LapseCount,
		LastReviewedAt: copyTime(item.LastReviewedAt),
		RatedAt:        now,
	}
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
