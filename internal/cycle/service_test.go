package cycle_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ntgptit/repeatwise/internal/cycle"
	mock_cycle "github.com/ntgptit/repeatwise/internal/mocks/cycle"
	"github.com/ntgptit/repeatwise/internal/testutil"
)

func newService(t *testing.T, repo cycle.Repository, now time.Time) *cycle.Service {
	t.Helper()

	service, err := cycle.NewService(repo, cycle.DefaultDelayConfig(), testutil.FixedClock{Time: now})
	require.NoError(t, err)
	return service
}

func TestService_StartCycle(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		setup       func(repo *mock_cycle.MockRepository)
		wantErr     error
		wantCycleNo int
	}{
		{
			name: "starts first cycle and moves set to learning",
			setup: func(repo *mock_cycle.MockRepository) {
				repo.EXPECT().FindSet(gomock.Any(), int64(1)).
					Return(&cycle.StudySet{ID: 1, Status: cycle.SetNotStarted, CurrentCycle: 1, Version: 1}, nil)
				repo.EXPECT().FindActiveCycle(gomock.Any(), int64(1)).Return(nil, nil)
				repo.EXPECT().MaxCycleNo(gomock.Any(), int64(1)).Return(0, nil)
				repo.EXPECT().CreateCycle(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *cycle.Cycle) error {
						c.ID = 10
						return nil
					})
				repo.EXPECT().UpdateSet(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, set *cycle.StudySet) error {
						assert.Equal(t, cycle.SetLearning, set.Status)
						return nil
					})
			},
			wantCycleNo: 1,
		},
		{
			name: "starts follow-up cycle with next number",
			setup: func(repo *mock_cycle.MockRepository) {
				repo.EXPECT().FindSet(gomock.Any(), int64(1)).
					Return(&cycle.StudySet{ID: 1, Status: cycle.SetReviewing, CurrentCycle: 4, Version: 3}, nil)
				repo.EXPECT().FindActiveCycle(gomock.Any(), int64(1)).Return(nil, nil)
				repo.EXPECT().MaxCycleNo(gomock.Any(), int64(1)).Return(3, nil)
				repo.EXPECT().CreateCycle(gomock.Any(), gomock.Any()).Return(nil)
			},
			wantCycleNo: 4,
		},
		{
			name: "active cycle blocks a second start",
			setup: func(repo *mock_cycle.MockRepository) {
				repo.EXPECT().FindSet(gomock.Any(), int64(1)).
					Return(&cycle.StudySet{ID: 1, Status: cycle.SetLearning}, nil)
				repo.EXPECT().FindActiveCycle(gomock.Any(), int64(1)).
					Return(&cycle.Cycle{ID: 7, SetID: 1, CycleNo: 2, Status: cycle.CycleActive}, nil)
			},
			wantErr: cycle.ErrCycleAlreadyActive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_cycle.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := newService(t, repo, now).StartCycle(context.Background(), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCycleNo, got.CycleNo)
			assert.Equal(t, cycle.CycleActive, got.Status)
			assert.Equal(t, now, got.StartedAt)
		})
	}
}

func TestService_RecordReview(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

	activeCycle := func() *cycle.Cycle {
		return &cycle.Cycle{ID: 10, SetID: 1, CycleNo: 2, Status: cycle.CycleActive}
	}
	existingReviews := func(scores ...int) []cycle.Review {
		reviews := make([]cycle.Review, 0, len(scores))
		for i, score := range scores {
			reviews = append(reviews, cycle.Review{ID: int64(i + 1), CycleID: 10, ReviewNo: i + 1, Score: score})
		}
		return reviews
	}

	tests := []struct {
		name         string
		score        int
		setup        func(repo *mock_cycle.MockRepository)
		wantErr      error
		wantFinished bool
		wantReviewNo int
		wantAvg      float64
		wantDelay    int
	}{
		{
			name:    "score below range rejected",
			score:   -1,
			setup:   func(repo *mock_cycle.MockRepository) {},
			wantErr: cycle.ErrInvalidScore,
		},
		{
			name:    "score above range rejected",
			score:   101,
			setup:   func(repo *mock_cycle.MockRepository) {},
			wantErr: cycle.ErrInvalidScore,
		},
		{
			name:  "review on finished cycle rejected",
			score: 80,
			setup: func(repo *mock_cycle.MockRepository) {
				finished := activeCycle()
				finished.Status = cycle.CycleFinished
				repo.EXPECT().FindCycle(gomock.Any(), int64(10)).Return(finished, nil)
			},
			wantErr: cycle.ErrCycleComplete,
		},
		{
			name:  "mid-cycle review appends with next number",
			score: 70,
			setup: func(repo *mock_cycle.MockRepository) {
				repo.EXPECT().FindCycle(gomock.Any(), int64(10)).Return(activeCycle(), nil)
				repo.EXPECT().FindReviews(gomock.Any(), int64(10)).Return(existingReviews(80, 90), nil)
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, review *cycle.Review) error {
						review.ID = 3
						return nil
					})
			},
			wantReviewNo: 3,
		},
		{
			name:  "fifth review finishes the cycle",
			score: 60,
			setup: func(repo *mock_cycle.MockRepository) {
				repo.EXPECT().FindCycle(gomock.Any(), int64(10)).Return(activeCycle(), nil)
				repo.EXPECT().FindReviews(gomock.Any(), int64(10)).Return(existingReviews(80, 90, 70, 100), nil)
				repo.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil)
				repo.EXPECT().FindSet(gomock.Any(), int64(1)).
					Return(&cycle.StudySet{ID: 1, Status: cycle.SetLearning, CurrentCycle: 2, WordCount: 50, Version: 2}, nil)
				repo.EXPECT().FinishCycle(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, c *cycle.Cycle, set *cycle.StudySet) error {
						assert.Equal(t, cycle.CycleFinished, c.Status)
						require.NotNil(t, c.AvgScore)
						assert.Equal(t, 80.0, *c.AvgScore)
						assert.Equal(t, cycle.SetReviewing, set.Status)
						assert.Equal(t, 3, set.CurrentCycle)
						require.NotNil(t, set.NextCycleStartDate)
						// delay = round(10 − 0.2×20 + 0.05×50) = 9
						assert.Equal(t, testutil.Date(2025, 3, 19), *set.NextCycleStartDate)
						return nil
					})
			},
			wantFinished: true,
			wantReviewNo: 5,
			wantAvg:      80,
			wantDelay:    9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock_cycle.NewMockRepository(ctrl)
			tt.setup(repo)

			got, err := newService(t, repo, now).RecordReview(context.Background(), 10, tt.score)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantReviewNo, got.Review.ReviewNo)
			assert.Equal(t, tt.wantFinished, got.Finished)
			if tt.wantFinished {
				assert.Equal(t, tt.wantAvg, got.AvgScore)
				assert.Equal(t, tt.wantDelay, got.DelayDays)
			}
		})
	}
}

// A sixth review can never slip in: even if the cycle row is still ACTIVE,
// the stored review count bounds the cycle at five.
func TestService_RecordReview_SixthReviewRejected(t *testing.T) {
	now := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	ctrl := gomock.NewController(t)
	repo := mock_cycle.NewMockRepository(ctrl)

	repo.EXPECT().FindCycle(gomock.Any(), int64(10)).
		Return(&cycle.Cycle{ID: 10, SetID: 1, CycleNo: 1, Status: cycle.CycleActive}, nil)
	reviews := make([]cycle.Review, cycle.ReviewsPerCycle)
	for i := range reviews {
		reviews[i] = cycle.Review{CycleID: 10, ReviewNo: i + 1, Score: 80}
	}
	repo.EXPECT().FindReviews(gomock.Any(), int64(10)).Return(reviews, nil)

	_, err := newService(t, repo, now).RecordReview(context.Background(), 10, 75)
	assert.ErrorIs(t, err, cycle.ErrCycleComplete)
}
