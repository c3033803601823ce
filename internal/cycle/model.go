package cycle

import (
	"errors"
	"time"
)

// SetStatus is the lifecycle state of a study set.
type SetStatus string

const (
	SetNotStarted SetStatus = "NOT_STARTED"
	SetLearning   SetStatus = "LEARNING"
	SetReviewing  SetStatus = "REVIEWING"
	SetMastered   SetStatus = "MASTERED"
)

// CycleStatus is the lifecycle state of a single review cycle.
type CycleStatus string

const (
	CycleActive   CycleStatus = "ACTIVE"
	CycleFinished CycleStatus = "FINISHED"
)

// ReviewsPerCycle is the number of reviews that completes a cycle.
const ReviewsPerCycle = 5

// Sentinel errors for the cycle package. Check with errors.Is.
var (
	// ErrInvalidScore is returned for scores outside [0, 100].
	ErrInvalidScore = errors.New("cycle: score out of range")

	// ErrCycleAlreadyActive is returned when starting a cycle on a set
	// that already has a non-finished one.
	ErrCycleAlreadyActive = errors.New("cycle: set already has an active cycle")

	// ErrCycleComplete is returned when recording a review on a finished
	// cycle. Finished cycles are immutable history.
	ErrCycleComplete = errors.New("cycle: cycle already complete")

	// ErrVersionConflict is returned when an optimistic update loses the
	// set version check.
	ErrVersionConflict = errors.New("cycle: set version conflict")
)

// StudySet is a learning set reviewed in cycles of exactly five reviews.
type StudySet struct {
	ID                 int64      `db:"id"`
	UserID             int64      `db:"user_id"`
	Name               string     `db:"name"`
	Status             SetStatus  `db:"status"`
	CurrentCycle       int        `db:"current_cycle"`
	WordCount          int        `db:"word_count"`
	NextCycleStartDate *time.Time `db:"next_cycle_start_date"`
	LastCycleEndDate   *time.Time `db:"last_cycle_end_date"`
	Version            int64      `db:"version"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

// Cycle is one bounded run of five reviews for a study set. At most one
// cycle per set is ACTIVE at a time; this is enforced at write time, not by
// shared mutable state.
type Cycle struct {
	ID                 int64       `db:"id"`
	SetID              int64       `db:"set_id"`
	CycleNo            int         `db:"cycle_no"`
	Status             CycleStatus `db:"status"`
	StartedAt          time.Time   `db:"started_at"`
	FinishedAt         *time.Time  `db:"finished_at"`
	AvgScore           *float64    `db:"avg_score"`
	NextCycleDelayDays *int        `db:"next_cycle_delay_days"`
}

// Review is a single scored review within a cycle. Reviews are append-only:
// once a cycle finishes, its reviews and average are fixed forever.
type Review struct {
	ID         int64     `db:"id"`
	CycleID    int64     `db:"cycle_id"`
	ReviewNo   int       `db:"review_no"`
	Score      int       `db:"score"`
	ReviewedAt time.Time `db:"reviewed_at"`
}
