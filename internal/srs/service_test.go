package srs_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	mock_srs "github.com/ntgptit/repeatwise/internal/mocks/srs"
	"github.com/ntgptit/repeatwise/internal/srs"
	"github.com/ntgptit/repeatwise/internal/testutil"
)

func newService(t *testing.T, items srs.ItemRepository, now time.Time) *srs.Service {
	t.Helper()

	scheduler, err := srs.NewScheduler(srs.DefaultConfig())
	require.NoError(t, err)
	return srs.NewService(scheduler, items, testutil.FixedClock{Time: now})
}

func TestService_Rate(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		rating  srs.Rating
		setup   func(items *mock_srs.MockItemRepository)
		wantErr error
		wantBox int
	}{
		{
			name:   "rates and persists item with snapshot",
			rating: srs.RatingGood,
			setup: func(items *mock_srs.MockItemRepository) {
				items.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(&srs.Item{ID: 1, Box: 2, IntervalDays: 2, ReviewCount: 1, Version: 3}, nil)
				items.EXPECT().UpdateRated(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, item *srs.Item, snapshot *srs.Snapshot) error {
						assert.Equal(t, 3, item.Box)
						assert.Equal(t, int64(3), item.Version)
						assert.Equal(t, 2, snapshot.Box)
						assert.Equal(t, srs.RatingGood, snapshot.Rating)
						return nil
					})
			},
			wantBox: 3,
		},
		{
			name:   "invalid rating never reaches the repository",
			rating: srs.Rating(42),
			setup: func(items *mock_srs.MockItemRepository) {
				items.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(&srs.Item{ID: 1, Box: 2, IntervalDays: 2}, nil)
			},
			wantErr: srs.ErrInvalidRating,
		},
		{
			name:   "deleted item rejected",
			rating: srs.RatingGood,
			setup: func(items *mock_srs.MockItemRepository) {
				deletedAt := now
				items.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(&srs.Item{ID: 1, Box: 2, IntervalDays: 2, DeletedAt: &deletedAt}, nil)
			},
			wantErr: srs.ErrItemDeleted,
		},
		{
			name:   "version conflict propagates",
			rating: srs.RatingGood,
			setup: func(items *mock_srs.MockItemRepository) {
				items.EXPECT().FindByID(gomock.Any(), int64(1)).
					Return(&srs.Item{ID: 1, Box: 2, IntervalDays: 2, Version: 3}, nil)
				items.EXPECT().UpdateRated(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(srs.ErrVersionConflict)
			},
			wantErr: srs.ErrVersionConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			items := mock_srs.NewMockItemRepository(ctrl)
			tt.setup(items)

			got, err := newService(t, items, now).Rate(context.Background(), 1, tt.rating)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantBox, got.Box)
		})
	}
}

func TestService_Undo(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("restores the snapshot tuple and consumes the log", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := mock_srs.NewMockItemRepository(ctrl)

		reviewedAt := now.AddDate(0, 0, -2)
		items.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(&srs.Item{
				ID: 1, Box: 3, IntervalDays: 4,
				DueDate:        testutil.Date(2025, 3, 14),
				ReviewCount:    2, Version: 4,
				LastReviewedAt: &now,
			}, nil)
		items.EXPECT().FindLatestSnapshot(gomock.Any(), int64(1)).
			Return(&srs.Snapshot{
				ID: 9, ItemID: 1, Rating: srs.RatingGood,
				Box: 2, IntervalDays: 2,
				DueDate:        testutil.Date(2025, 3, 10),
				ReviewCount:    1,
				LastReviewedAt: &reviewedAt,
				RatedAt:        now,
			}, nil)
		items.EXPECT().UpdateUndone(gomock.Any(), gomock.Any(), int64(9)).
			DoAndReturn(func(_ context.Context, item *srs.Item, _ int64) error {
				assert.Equal(t, 2, item.Box)
				assert.Equal(t, 2, item.IntervalDays)
				assert.Equal(t, testutil.Date(2025, 3, 10), item.DueDate)
				assert.Equal(t, 1, item.ReviewCount)
				require.NotNil(t, item.LastReviewedAt)
				assert.Equal(t, reviewedAt, *item.LastReviewedAt)
				return nil
			})

		got, err := newService(t, items, now).Undo(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, 2, got.Box)
	})

	t.Run("never-rated item has nothing to undo", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := mock_srs.NewMockItemRepository(ctrl)

		items.EXPECT().FindByID(gomock.Any(), int64(1)).
			Return(&srs.Item{ID: 1, Box: 1, IntervalDays: 1}, nil)
		items.EXPECT().FindLatestSnapshot(gomock.Any(), int64(1)).Return(nil, nil)

		_, err := newService(t, items, now).Undo(context.Background(), 1)
		assert.ErrorIs(t, err, srs.ErrNoReviewLog)
	})
}

func TestService_StartStudying(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	t.Run("creates initial state on first access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := mock_srs.NewMockItemRepository(ctrl)

		items.EXPECT().FindByCard(gomock.Any(), int64(7)).Return(nil, nil)
		items.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item *srs.Item) error {
				assert.Equal(t, 1, item.Box)
				assert.Equal(t, 0, item.ReviewCount)
				assert.Equal(t, testutil.Date(2025, 3, 10), item.DueDate)
				item.ID = 55
				return nil
			})

		got, err := newService(t, items, now).StartStudying(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.Equal(t, int64(55), got.ID)
	})

	t.Run("returns existing state untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		items := mock_srs.NewMockItemRepository(ctrl)

		existing := &srs.Item{ID: 55, CardID: 7, Box: 4}
		items.EXPECT().FindByCard(gomock.Any(), int64(7)).Return(existing, nil)

		got, err := newService(t, items, now).StartStudying(context.Background(), 7, 3)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})
}
