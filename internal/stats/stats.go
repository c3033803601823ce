// Package stats derives per-user review counts from scheduling state. The
// counts are read-heavy and change slowly, so they are served from a small
// in-process cache with a TTL instead of hitting the database on every call.
package stats

import (
	"time"
)

// Rollup is a point-in-time summary of a user's review state.
type Rollup struct {
	UserID      int64     `json:"user_id"`
	Date        time.Time `json:"date"`
	DueCount    int       `json:"due_count"`
	NewCount    int       `json:"new_count"`
	MatureCount int       `json:"mature_count"`
	ComputedAt  time.Time `json:"computed_at"`
}

// Config controls rollup caching.
type Config struct {
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// DefaultConfig returns the default stats configuration.
func DefaultConfig() Config {
	return Config{
		CacheTTL: 5 * time.Minute,
	}
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
