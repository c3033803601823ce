package cycle

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (*DBRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBRepository_FindActiveCycle(t *testing.T) {
	startedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	t.Run("found", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery("SELECT \\* FROM cycles WHERE set_id = \\? AND status = \\?").
			WithArgs(int64(5), CycleActive).
			WillReturnRows(sqlmock.NewRows([]string{"id", "set_id", "cycle_no", "status", "started_at"}).
				AddRow(20, 5, 2, CycleActive, startedAt))

		c, err := repo.FindActiveCycle(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 2, c.CycleNo)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("none active returns nil", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery("SELECT \\* FROM cycles WHERE set_id = \\? AND status = \\?").
			WithArgs(int64(5), CycleActive).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		c, err := repo.FindActiveCycle(context.Background(), 5)
		require.NoError(t, err)
		assert.Nil(t, c)
	})
}

func TestDBRepository_MaxCycleNo(t *testing.T) {
	t.Run("existing cycles", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery("SELECT MAX\\(cycle_no\\) FROM cycles").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(3))

		maxNo, err := repo.MaxCycleNo(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 3, maxNo)
	})

	t.Run("no cycles yields zero", func(t *testing.T) {
		repo, mock := newRepository(t)
		mock.ExpectQuery("SELECT MAX\\(cycle_no\\) FROM cycles").
			WithArgs(int64(5)).
			WillReturnRows(sqlmock.NewRows([]string{"max"}).AddRow(nil))

		maxNo, err := repo.MaxCycleNo(context.Background(), 5)
		require.NoError(t, err)
		assert.Equal(t, 0, maxNo)
	})
}

func TestDBRepository_FinishCycle(t *testing.T) {
	finishedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	nextStart := time.Date(2025, 3, 19, 0, 0, 0, 0, time.UTC)
	avg := 80.0
	delay := 9

	newFixtures := func() (*Cycle, *StudySet) {
		c := &Cycle{
			ID:                 20,
			SetID:              5,
			CycleNo:            2,
			Status:             CycleFinished,
			FinishedAt:         &finishedAt,
			AvgScore:           &avg,
			NextCycleDelayDays: &delay,
		}
		set := &StudySet{
			ID:                 5,
			Status:             SetReviewing,
			CurrentCycle:       2,
			NextCycleStartDate: &nextStart,
			LastCycleEndDate:   &finishedAt,
			Version:            4,
		}
		return c, set
	}

	t.Run("finishes cycle and advances set", func(t *testing.T) {
		repo, mock := newRepository(t)
		c, set := newFixtures()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cycles").
			WithArgs(CycleFinished, &finishedAt, &avg, &delay, int64(20), CycleActive).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE study_sets").
			WithArgs(SetReviewing, 2, &nextStart, &finishedAt, int64(5), int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.FinishCycle(context.Background(), c, set))
		assert.Equal(t, int64(5), set.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("version conflict rolls back", func(t *testing.T) {
		repo, mock := newRepository(t)
		c, set := newFixtures()

		mock.ExpectBegin()
		mock.ExpectExec("UPDATE cycles").
			WithArgs(CycleFinished, &finishedAt, &avg, &delay, int64(20), CycleActive).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE study_sets").
			WithArgs(SetReviewing, 2, &nextStart, &finishedAt, int64(5), int64(4)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.FinishCycle(context.Background(), c, set)
		assert.ErrorIs(t, err, ErrVersionConflict)
		assert.Equal(t, int64(4), set.Version)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBRepository_CreateReview(t *testing.T) {
	reviewedAt := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	repo, mock := newRepository(t)
	mock.ExpectExec("INSERT INTO cycle_reviews").
		WithArgs(int64(20), 3, 85, reviewedAt).
		WillReturnResult(sqlmock.NewResult(33, 1))

	review := Review{CycleID: 20, ReviewNo: 3, Score: 85, ReviewedAt: reviewedAt}
	require.NoError(t, repo.CreateReview(context.Background(), &review))
	assert.Equal(t, int64(33), review.ID)
}
