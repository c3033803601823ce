package stats_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_stats "github.com/ntgptit/repeatwise/internal/mocks/stats"
	"github.com/ntgptit/repeatwise/internal/srs"
	"github.com/ntgptit/repeatwise/internal/stats"
	"github.com/ntgptit/repeatwise/internal/testutil"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time {
	return c.now
}

func TestService_GetRollup(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	clock := &stepClock{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}

	ctrl := gomock.NewController(t)
	repo := mock_stats.NewMockRepository(ctrl)
	repo.EXPECT().CountDue(gomock.Any(), int64(7), today).Return(12, nil)
	repo.EXPECT().CountNew(gomock.Any(), int64(7)).Return(4, nil)
	repo.EXPECT().CountMature(gomock.Any(), int64(7), srs.MatureBoxThreshold).Return(9, nil)

	service := stats.NewService(repo, stats.DefaultConfig(), clock)

	rollup, err := service.GetRollup(context.Background(), 7, today)
	require.NoError(t, err)
	assert.Equal(t, 12, rollup.DueCount)
	assert.Equal(t, 4, rollup.NewCount)
	assert.Equal(t, 9, rollup.MatureCount)
	assert.Equal(t, today, rollup.Date)

	// Within the TTL the repository is not queried again.
	cached, err := service.GetRollup(context.Background(), 7, today)
	require.NoError(t, err)
	assert.Equal(t, rollup, cached)

	count, err := service.GetDueCount(context.Background(), 7, today)
	require.NoError(t, err)
	assert.Equal(t, 12, count)
}

func TestService_GetRollup_TTLExpiry(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	clock := &stepClock{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}

	ctrl := gomock.NewController(t)
	repo := mock_stats.NewMockRepository(ctrl)
	repo.EXPECT().CountDue(gomock.Any(), int64(7), today).Return(12, nil).Times(2)
	repo.EXPECT().CountNew(gomock.Any(), int64(7)).Return(4, nil).Times(2)
	repo.EXPECT().CountMature(gomock.Any(), int64(7), srs.MatureBoxThreshold).Return(9, nil).Times(2)

	service := stats.NewService(repo, stats.Config{CacheTTL: time.Minute}, clock)

	_, err := service.GetRollup(context.Background(), 7, today)
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Minute)
	_, err = service.GetRollup(context.Background(), 7, today)
	require.NoError(t, err)
}

func TestService_GetRollup_Invalidate(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	clock := &stepClock{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}

	ctrl := gomock.NewController(t)
	repo := mock_stats.NewMockRepository(ctrl)
	repo.EXPECT().CountDue(gomock.Any(), int64(7), today).Return(12, nil).Times(2)
	repo.EXPECT().CountNew(gomock.Any(), int64(7)).Return(4, nil).Times(2)
	repo.EXPECT().CountMature(gomock.Any(), int64(7), srs.MatureBoxThreshold).Return(9, nil).Times(2)

	service := stats.NewService(repo, stats.DefaultConfig(), clock)

	_, err := service.GetRollup(context.Background(), 7, today)
	require.NoError(t, err)

	service.Invalidate(7)
	_, err = service.GetRollup(context.Background(), 7, today)
	require.NoError(t, err)
}

func TestService_GetRollup_RepositoryError(t *testing.T) {
	today := testutil.Date(2025, 3, 10)
	clock := &stepClock{now: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)}

	ctrl := gomock.NewController(t)
	repo := mock_stats.NewMockRepository(ctrl)
	repo.EXPECT().CountDue(gomock.Any(), int64(7), today).Return(0, assert.AnError)

	service := stats.NewService(repo, stats.DefaultConfig(), clock)

	_, err := service.GetRollup(context.Background(), 7, today)
	assert.ErrorIs(t, err, assert.AnError)
}
