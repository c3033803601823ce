package reminder

import (
	"errors"
	"fmt"
	"time"
)

// Status is the lifecycle state of a reminder slot.
type Status string

const (
	StatusPending     Status = "PENDING"
	StatusSent        Status = "SENT"
	StatusDone        Status = "DONE"
	StatusSkipped     Status = "SKIPPED"
	StatusRescheduled Status = "RESCHEDULED"
	StatusCancelled   Status = "CANCELLED"
)

// ExhaustPolicy decides what happens to a slot whose reschedule budget is
// spent.
type ExhaustPolicy string

const (
	// ExhaustForce delivers the slot with top priority on the next run.
	ExhaustForce ExhaustPolicy = "force"
	// ExhaustDrop marks the slot SKIPPED.
	ExhaustDrop ExhaustPolicy = "drop"
)

// Sentinel errors for the reminder package.
var (
	// ErrAllocationRunning is returned when an allocation run for the same
	// user and date is already in flight.
	ErrAllocationRunning = errors.New("reminder: allocation already running for user and date")
)

// Slot is one scheduled review notification for an item or set.
type Slot struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	SubjectID       int64     `db:"subject_id"`
	ScheduledDate   time.Time `db:"scheduled_date"`
	Status          Status    `db:"status"`
	RescheduleCount int       `db:"reschedule_count"`
	// Weight is the word count of the underlying set; heavier subjects are
	// reviewed first.
	Weight    int       `db:"weight"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// Overdue reports whether the slot was scheduled strictly before the date.
func (s Slot) Overdue(date time.Time) bool {
	return s.ScheduledDate.Before(dateOnly(date))
}

// Config holds the reminder allocation settings.
type Config struct {
	MaxPerDay      int           `mapstructure:"max_per_day" validate:"omitempty,min=1"`
	MaxReschedules int           `mapstructure:"max_reschedules" validate:"omitempty,min=0"`
	ExhaustPolicy  ExhaustPolicy `mapstructure:"exhaust_policy"`
}

// DefaultConfig returns the stock reminder settings: three reminders per
// user per day, two reschedules before force delivery.
func DefaultConfig() Config {
	return Config{
		MaxPerDay:      3,
		MaxReschedules: 2,
		ExhaustPolicy:  ExhaustForce,
	}
}

// Validate rejects unusable allocation settings.
func (c Config) Validate() error {
	if c.MaxPerDay < 1 {
		return fmt.Errorf("reminder: max per day %d must be at least 1", c.MaxPerDay)
	}
	if c.MaxReschedules < 0 {
		return fmt.Errorf("reminder: max reschedules %d must not be negative", c.MaxReschedules)
	}
	switch c.ExhaustPolicy {
	case ExhaustForce, ExhaustDrop:
	default:
		return fmt.Errorf("reminder: unknown exhaust policy %q", c.ExhaustPolicy)
	}
	return nil
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
