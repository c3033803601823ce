// Package testutil provides shared test helpers: a fixed clock and config
// file fixtures.
package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FixedClock is a Clock implementation that always returns the same time.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed time.
func (c FixedClock) Now() time.Time {
	return c.Time
}

// Date builds a midnight-UTC date, the form scheduling code compares.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// SetupTestConfig writes a minimal config file into tmpDir and returns its
// path.
func SetupTestConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configContent := `database:
  host: localhost
  port: 3306
  database: repeatwise_test
  username: repeatwise
  password: repeatwise
srs:
  total_boxes: 7
  box_intervals: [1, 2, 4, 7, 14, 30, 60]
  forgotten_action: reset
  move_down_boxes: 1
  mature_box_threshold: 5
cycle:
  base_delay_days: 10
  score_penalty: 0.2
  size_scaling: 0.05
  min_delay_days: 1
  max_delay_days: 60
reminder:
  max_per_day: 3
  max_reschedules: 2
  exhaust_policy: force
scheduler:
  expression: "0 8 * * *"
  worker_count: 4
notifier:
  channel: log
  retry_attempts: 3
stats:
  cache_ttl: 5m
`

	configPath := filepath.Join(tmpDir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configContent), 0644))
	return configPath
}

// WriteConfig writes arbitrary config content into tmpDir and returns the
// file path.
func WriteConfig(t *testing.T, tmpDir, content string) string {
	t.Helper()

	configPath := filepath.Join(tmpDir, fmt.Sprintf("config-%d.yaml", time.Now().UnixNano()))
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	return configPath
}
