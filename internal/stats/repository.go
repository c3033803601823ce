package stats

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// Repository defines the count queries backing a rollup.
//
//go:generate mockgen -source=repository.go -destination=../mocks/stats/mock_repository.go -package=mock_stats
type Repository interface {
	// CountDue returns how many live items are due on or before the date.
	CountDue(ctx context.Context, userID int64, date time.Time) (int, error)
	// CountNew returns how many live items have never been reviewed.
	CountNew(ctx context.Context, userID int64) (int, error)
	// CountMature returns how many live items sit at or above the box threshold.
	CountMature(ctx context.Context, userID int64, boxThreshold int) (int, error)
}

// DBRepository implements Repository using MySQL.
type DBRepository struct {
	db *sqlx.DB
}

// NewDBRepository creates a new DBRepository.
func NewDBRepository(db *sqlx.DB) *DBRepository {
	return &DBRepository{db: db}
}

func (r *DBRepository) CountDue(ctx context.Context, userID int64, date time.Time) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM review_items WHERE user_id = ? AND deleted_at IS NULL AND due_date <= ?",
		userID, dateOnly(date)); err != nil {
		return 0, fmt.Errorf("db.GetContext(count due review_items) > %w", err)
	}
	return count, nil
}

func (r *DBRepository) CountNew(ctx context.Context, userID int64) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM review_items WHERE user_id = ? AND deleted_at IS NULL AND review_count = 0",
		userID); err != nil {
		return 0, fmt.Errorf("db.GetContext(count new review_items) > %w", err)
	}
	return count, nil
}

func (r *DBRepository) CountMature(ctx context.Context, userID int64, boxThreshold int) (int, error) {
	var count int
	if err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM review_items WHERE user_id = ? AND deleted_at IS NULL AND box >= ?",
		userID, boxThreshold); err != nil {
		return 0, fmt.Errorf("db.GetContext(count mature review_items) > %w", err)
	}
	return count, nil
}
