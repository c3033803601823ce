// Package schedule fires the daily reminder batch on a cron expression. The
// allocation itself stays framework-free; this package only decides when to
// call it.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
)

// cronParser uses standard 5-field cron expressions (minute, hour, dom, month, dow).
var cronParser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// DefaultExpression fires the batch every morning at 08:00.
const DefaultExpression = "0 8 * * *"

// BatchRunner runs one reminder allocation batch for a date.
type BatchRunner interface {
	Run(ctx context.Context, date time.Time) error
}

// Config controls the periodic trigger and its batch parallelism.
type Config struct {
	Expression  string `mapstructure:"expression"`
	WorkerCount int    `mapstructure:"worker_count"`
}

// DefaultConfig returns the default trigger configuration.
func DefaultConfig() Config {
	return Config{Expression: DefaultExpression, WorkerCount: 4}
}

// Trigger runs a BatchRunner on a cron schedule.
type Trigger struct {
	runner   BatchRunner
	schedule cron.Schedule
	expr     string

	cancel context.CancelFunc
	done   chan struct{}
}

// NewTrigger parses the expression and creates a stopped Trigger.
func NewTrigger(runner BatchRunner, config Config) (*Trigger, error) {
	expr := config.Expression
	if expr == "" {
		expr = DefaultExpression
	}
	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("cronParser.Parse(%q) > %w", expr, err)
	}
	return &Trigger{
		runner:   runner,
		schedule: schedule,
		expr:     expr,
	}, nil
}

// Start launches the trigger loop. It returns immediately; ticks run on a
// background goroutine until Stop or context cancellation.
func (t *Trigger) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	t.cancel = cancel
	t.done = make(chan struct{})

	go t.loop(ctx)
	slog.Info("reminder trigger started", "expression", t.expr)
}

// Stop cancels the trigger loop and waits for an in-flight tick to finish.
func (t *Trigger) Stop() {
	if t.cancel == nil {
		return
	}
	t.cancel()
	<-t.done
	slog.Info("reminder trigger stopped")
}

func (t *Trigger) loop(ctx context.Context) {
	defer close(t.done)

	for {
		next := t.schedule.Next(time.Now())
		timer := time.NewTimer(time.Until(next))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case now := <-timer.C:
			if err := t.runner.Run(ctx, now); err != nil {
				slog.Error("reminder batch failed", "error", err)
			}
		}
	}
}
