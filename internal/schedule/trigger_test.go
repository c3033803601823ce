package schedule

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRunner struct {
	runs atomic.Int32
}

func (r *countingRunner) Run(context.Context, time.Time) error {
	r.runs.Add(1)
	return nil
}

func TestNewTrigger(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{name: "default", expression: ""},
		{name: "every minute", expression: "* * * * *"},
		{name: "daily", expression: "0 8 * * *"},
		{name: "six fields rejected", expression: "0 0 8 * * *", wantErr: true},
		{name: "garbage rejected", expression: "not a cron", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTrigger(&countingRunner{}, Config{Expression: tt.expression})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestTrigger_StartStop(t *testing.T) {
	runner := &countingRunner{}
	trigger, err := NewTrigger(runner, Config{Expression: "0 8 * * *"})
	require.NoError(t, err)

	trigger.Start(context.Background())
	trigger.Stop()
	assert.Equal(t, int32(0), runner.runs.Load())
}

func TestTrigger_StopBeforeStart(t *testing.T) {
	trigger, err := NewTrigger(&countingRunner{}, DefaultConfig())
	require.NoError(t, err)
	trigger.Stop()
}
