package cycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextCycleDelay(t *testing.T) {
	cfg := DelayConfig{
		BaseDelayDays: 10,
		ScorePenalty:  0.2,
		SizeScaling:   0.05,
		MinDelayDays:  1,
		MaxDelayDays:  60,
	}

	tests := []struct {
		name      string
		avgScore  float64
		wordCount int
		want      int
	}{
		{
			// raw = 10 − 0.2×20 + 0.05×50 = 8.5, rounded half away from zero
			name:      "worked example",
			avgScore:  80,
			wordCount: 50,
			want:      9,
		},
		{
			// raw = 10 − 0 + 0 = 10
			name:      "perfect score small set",
			avgScore:  100,
			wordCount: 0,
			want:      10,
		},
		{
			// raw = 10 − 20 + 0.5 = −9.5, clamped to min
			name:      "poor score clamped to min",
			avgScore:  0,
			wordCount: 10,
			want:      1,
		},
		{
			// raw = 10 − 0 + 100 = 110, clamped to max
			name:      "huge set clamped to max",
			avgScore:  100,
			wordCount: 2000,
			want:      60,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NextCycleDelay(cfg, tt.avgScore, tt.wordCount))
		})
	}
}

// The delay is monotone in both inputs: a better average never shortens it,
// a bigger set never shortens it.
func TestNextCycleDelay_Monotone(t *testing.T) {
	cfg := DefaultDelayConfig()

	prev := NextCycleDelay(cfg, 0, 100)
	for score := 5; score <= 100; score += 5 {
		got := NextCycleDelay(cfg, float64(score), 100)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}

	prev = NextCycleDelay(cfg, 80, 0)
	for wordCount := 10; wordCount <= 500; wordCount += 10 {
		got := NextCycleDelay(cfg, 80, wordCount)
		assert.GreaterOrEqual(t, got, prev)
		prev = got
	}
}

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name    string
		scores  []int
		want    float64
	}{
		{name: "empty", scores: nil, want: 0},
		{name: "single", scores: []int{70}, want: 70},
		{name: "full cycle", scores: []int{80, 90, 70, 100, 60}, want: 80},
		{name: "non integer mean", scores: []int{70, 75}, want: 72.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := make([]Review, 0, len(tt.scores))
			for i, score := range tt.scores {
				reviews = append(reviews, Review{ReviewNo: i + 1, Score: score})
			}
			assert.Equal(t, tt.want, AverageScore(reviews))
		})
	}
}

func TestDelayConfig_Validate(t *testing.T) {
	require.NoError(t, DefaultDelayConfig().Validate())

	bad := DefaultDelayConfig()
	bad.MaxDelayDays = 0
	assert.Error(t, bad.Validate())

	bad = DefaultDelayConfig()
	bad.MinDelayDays = 0
	assert.Error(t, bad.Validate())
}

func TestValidScore(t *testing.T) {
	assert.True(t, ValidScore(0))
	assert.True(t, ValidScore(100))
	assert.False(t, ValidScore(-1))
	assert.False(t, ValidScore(101))
}
