package cycle

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Repository defines operations for managing study sets, cycles and reviews.
//
//go:generate mockgen -source=repository.go -destination=../mocks/cycle/mock_repository.go -package=mock_cycle
type Repository interface {
	FindSet(ctx context.Context, setID int64) (*StudySet, error)
	FindCycle(ctx context.Context, cycleID int64) (*Cycle, error)
	FindActiveCycle(ctx context.Context, setID int64) (*Cycle, error)
	MaxCycleNo(ctx context.Context, setID int64) (int, error)
	CreateCycle(ctx context.Context, c *Cycle) error
	UpdateSet(ctx context.Context, set *StudySet) error
	FindReviews(ctx context.Context, cycleID int64) ([]Review, error)
	CreateReview(ctx context.Context, review *Review) error
	// FinishCycle marks the cycle finished and applies the set transition
	// in one transaction, guarded by the set version.
	FinishCycle(ctx context.Context, c *Cycle, set *StudySet) error
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

// FindSet returns the study set with the given ID, or nil if not found.
func (r *DBRepository) FindSet(ctx context.Context, setID int64) (*StudySet, error) {
	var set StudySet
	err := r.db.GetContext(ctx, &set, "SELECT * FROM study_sets WHERE id = ?", setID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(study_set) > %w", err)
	}
	return &set, nil
}

// FindCycle returns the cycle with the given ID, or nil if not found.
func (r *DBRepository) FindCycle(ctx context.Context, cycleID int64) (*Cycle, error) {
	var c Cycle
	err := r.db.GetContext(ctx, &c, "SELECT * FROM cycles WHERE id = ?", cycleID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(cycle) > %w", err)
	}
	return &c, nil
}

// FindActiveCycle returns the set's ACTIVE cycle, or nil if none exists.
func (r *DBRepository) FindActiveCycle(ctx context.Context, setID int64) (*Cycle, error) {
	var c Cycle
	err := r.db.GetContext(ctx, &c,
		"SELECT * FROM cycles WHERE set_id = ? AND status = ?", setID, CycleActive)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("db.GetContext(active cycle) > %w", err)
	}
	return &c, nil
}

// MaxCycleNo returns the highest cycle number allocated for the set, or 0.
func (r *DBRepository) MaxCycleNo(ctx context.Context, setID int64) (int, error) {
	var maxNo sql.NullInt64
	if err := r.db.GetContext(ctx, &maxNo,
		"SELECT MAX(cycle_no) FROM cycles WHERE set_id = ?", setID); err != nil {
		return 0, fmt.Errorf("db.GetContext(max cycle_no) > %w", err)
	}
	return int(maxNo.Int64), nil
}

// CreateCycle inserts a new cycle. The at-most-one-active-cycle invariant
// is checked by the caller before insert and enforced at finish time by the
// status-guarded update.
func (r *DBRepository) CreateCycle(ctx context.Context, c *Cycle) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO cycles (set_id, cycle_no, status, started_at) VALUES (?, ?, ?, ?)",
		c.SetID, c.CycleNo, c.Status, c.StartedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert cycle) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	c.ID = id
	return nil
}

// UpdateSet persists set fields under the optimistic version guard.
func (r *DBRepository) UpdateSet(ctx context.Context, set *StudySet) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE study_sets
		SET status = ?, current_cycle = ?, next_cycle_start_date = ?, last_cycle_end_date = ?, version = version + 1
		WHERE id = ? AND version = ?`,
		set.Status, set.CurrentCycle, set.NextCycleStartDate, set.LastCycleEndDate,
		set.ID, set.Version)
	if err != nil {
		return fmt.Errorf("db.ExecContext(update study_set) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: set %d version %d", ErrVersionConflict, set.ID, set.Version)
	}
	set.Version++
	return nil
}

// FindReviews returns the cycle's reviews ordered by review number.
func (r *DBRepository) FindReviews(ctx context.Context, cycleID int64) ([]Review, error) {
	var reviews []Review
	if err := r.db.SelectContext(ctx, &reviews,
		"SELECT * FROM cycle_reviews WHERE cycle_id = ? ORDER BY review_no", cycleID); err != nil {
		return nil, fmt.Errorf("db.SelectContext(cycle_reviews) > %w", err)
	}
	return reviews, nil
}

// CreateReview inserts a new review row.
func (r *DBRepository) CreateReview(ctx context.Context, review *Review) error {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO cycle_reviews (cycle_id, review_no, score, reviewed_at) VALUES (?, ?, ?, ?)",
		review.CycleID, review.ReviewNo, review.Score, review.ReviewedAt)
	if err != nil {
		return fmt.Errorf("db.ExecContext(insert cycle_review) > %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("result.LastInsertId() > %w", err)
	}
	review.ID = id
	return nil
}

// FinishCycle marks the cycle FINISHED and advances the parent set in one
// transaction so the multi-field transition is never partially applied.
func (r *DBRepository) FinishCycle(ctx context.Context, c *Cycle, set *StudySet) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("db.BeginTxx() > %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		`UPDATE cycles
		SET status = ?, finished_at = ?, avg_score = ?, next_cycle_delay_days = ?
		WHERE id = ? AND status = ?`,
		CycleFinished, c.FinishedAt, c.AvgScore, c.NextCycleDelayDays,
		c.ID, CycleActive); err != nil {
		return fmt.Errorf("tx.ExecContext(finish cycle) > %w", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE study_sets
		SET status = ?, current_cycle = ?, next_cycle_start_date = ?, last_cycle_end_date = ?, version = version + 1
		WHERE id = ? AND version = ?`,
		set.Status, set.CurrentCycle, set.NextCycleStartDate, set.LastCycleEndDate,
		set.ID, set.Version)
	if err != nil {
		return fmt.Errorf("tx.ExecContext(update study_set) > %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("result.RowsAffected() > %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: set %d version %d", ErrVersionConflict, set.ID, set.Version)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("tx.Commit() > %w", err)
	}
	set.Version++
	return nil
}
