package reminder

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ntgptit/repeatwise/internal/testutil"
)

func newSlotRepository(t *testing.T) (*DBSlotRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBSlotRepository(sqlx.NewDb(db, "mysql")), mock
}

func TestDBSlotRepository_FindPendingOnOrBefore(t *testing.T) {
	today := testutil.Date(2025, 3, 10)

	t.Run("returns allocatable slots", func(t *testing.T) {
		repo, mock := newSlotRepository(t)
		mock.ExpectQuery("SELECT \\* FROM reminder_slots").
			WithArgs(int64(7), StatusPending, StatusRescheduled, today).
			WillReturnRows(sqlmock.NewRows(
				[]string{"id", "user_id", "subject_id", "scheduled_date", "status", "reschedule_count", "weight"}).
				AddRow(1, 7, 100, today, StatusPending, 0, 50).
				AddRow(2, 7, 200, today, StatusRescheduled, 1, 30))

		slots, err := repo.FindPendingOnOrBefore(context.Background(), 7, today)
		require.NoError(t, err)
		require.Len(t, slots, 2)
		assert.Equal(t, StatusRescheduled, slots[1].Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newSlotRepository(t)
		mock.ExpectQuery("SELECT \\* FROM reminder_slots").
			WithArgs(int64(7), StatusPending, StatusRescheduled, today).
			WillReturnError(assert.AnError)

		_, err := repo.FindPendingOnOrBefore(context.Background(), 7, today)
		assert.Error(t, err)
	})
}

func TestDBSlotRepository_CountPendingPerDayAfter(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	repo, mock := newSlotRepository(t)
	mock.ExpectQuery("SELECT scheduled_date, COUNT\\(\\*\\)").
		WithArgs(int64(7), StatusPending, StatusRescheduled, today).
		WillReturnRows(sqlmock.NewRows([]string{"scheduled_date", "count"}).
			AddRow(testutil.Date(2025, 3, 11), 3).
			AddRow(testutil.Date(2025, 3, 12), 1))

	counts, err := repo.CountPendingPerDayAfter(context.Background(), 7, today)
	require.NoError(t, err)
	assert.Equal(t, map[int]int{11: 3, 12: 1}, func() map[int]int {
		byDay := make(map[int]int, len(counts))
		for day, count := range counts {
			byDay[day.Day()] = count
		}
		return byDay
	}())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSlotRepository_ApplyAllocation(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	tomorrow := testutil.Date(2025, 3, 11)

	allocation := Allocation{
		ToSend: []Slot{
			{ID: 1, UserID: 7, ScheduledDate: today, Status: StatusSent},
		},
		ToReschedule: []Slot{
			{ID: 2, UserID: 7, ScheduledDate: tomorrow, Status: StatusRescheduled, RescheduleCount: 1},
		},
		ToSkip: []Slot{
			{ID: 3, UserID: 7, ScheduledDate: today, Status: StatusSkipped},
		},
	}

	t.Run("applies all transitions in one transaction", func(t *testing.T) {
		repo, mock := newSlotRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reminder_slots SET status = \\?, scheduled_date = \\? WHERE id = \\?").
			WithArgs(StatusSent, today, int64(1)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE reminder_slots SET status = \\?, scheduled_date = \\?, reschedule_count = \\?").
			WithArgs(StatusRescheduled, tomorrow, 1, int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectExec("UPDATE reminder_slots SET status = \\? WHERE id = \\?").
			WithArgs(StatusSkipped, int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ApplyAllocation(context.Background(), allocation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rolls back on failure", func(t *testing.T) {
		repo, mock := newSlotRepository(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE reminder_slots").
			WithArgs(StatusSent, today, int64(1)).
			WillReturnError(assert.AnError)
		mock.ExpectRollback()

		assert.Error(t, repo.ApplyAllocation(context.Background(), allocation))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDBSlotRepository_Create(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	repo, mock := newSlotRepository(t)
	mock.ExpectExec("INSERT INTO reminder_slots").
		WithArgs(int64(7), int64(100), today, StatusPending, 0, 50).
		WillReturnResult(sqlmock.NewResult(42, 1))

	slot := Slot{UserID: 7, SubjectID: 100, ScheduledDate: today, Status: StatusPending, Weight: 50}
	require.NoError(t, repo.Create(context.Background(), &slot))
	assert.Equal(t, int64(42), slot.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDBSlotRepository_ListUserIDsWithPending(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	repo, mock := newSlotRepository(t)
	mock.ExpectQuery("SELECT DISTINCT user_id FROM reminder_slots").
		WithArgs(StatusPending, StatusRescheduled, today).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(1).AddRow(7))

	userIDs, err := repo.ListUserIDsWithPending(context.Background(), today)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 7}, userIDs)
	assert.NoError(t, mock.ExpectationsWereMet())
}
