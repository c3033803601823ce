// Package cycle tracks reviews per study-set cycle, decides cycle
// completion, and computes the delay before a set re-enters review.
package cycle

import (
	"fmt"
	"math"
)

// DelayConfig holds the constants of the next-cycle delay formula:
//
//	delay = clamp(base − penalty×(100−avg) + scaling×wordCount, min, max)
//
// The formula is linear and monotone in both score and set size: a better
// average pushes the next cycle further out, and a bigger set earns a longer
// delay to offset its review cost.
type DelayConfig struct {
	BaseDelayDays float64 `mapstructure:"base_delay_days"`
	ScorePenalty  float64 `mapstructure:"score_penalty"`
	SizeScaling   float64 `mapstructure:"size_scaling"`
	MinDelayDays  int     `mapstructure:"min_delay_days"`
	MaxDelayDays  int     `mapstructure:"max_delay_days"`
}

// DefaultDelayConfig returns the stock delay constants.
func DefaultDelayConfig() DelayConfig {
	return DelayConfig{
		BaseDelayDays: 10,
		ScorePenalty:  0.2,
		SizeScaling:   0.05,
		MinDelayDays:  1,
		MaxDelayDays:  60,
	}
}

// Validate rejects configs whose clamp bounds are inverted.
func (c DelayConfig) Validate() error {
	if c.MinDelayDays < 1 {
		return fmt.Errorf("cycle: min delay %d must be at least 1 day", c.MinDelayDays)
	}
	if c.MaxDelayDays < c.MinDelayDays {
		return fmt.Errorf("cycle: max delay %d below min delay %d", c.MaxDelayDays, c.MinDelayDays)
	}
	return nil
}

// NextCycleDelay computes the delay in days before the next cycle starts.
// The raw linear value is rounded half away from zero, then clamped.
func NextCycleDelay(cfg DelayConfig, avgScore float64, wordCount int) int {
	raw := cfg.BaseDelayDays - cfg.ScorePenalty*(100-avgScore) + cfg.SizeScaling*float64(wordCount)
	delay := int(math.Round(raw))
	if delay < cfg.MinDelayDays {
		return cfg.MinDelayDays
	}
	if delay > cfg.MaxDelayDays {
		return cfg.MaxDelayDays
	}
	return delay
}

// AverageScore computes the arithmetic mean of review scores.
func AverageScore(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, review := range reviews {
		sum += review.Score
	}
	return float64(sum) / float64(len(reviews))
}

// ValidScore reports whether the score is within [0, 100].
func ValidScore(score int) bool {
	return score >= 0 && score <= 100
}

// Outcome is the result of recording a review.
type Outcome struct {
	Review    Review
	Finished  bool
	AvgScore  float64
	DelayDays int
}
