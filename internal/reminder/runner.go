package reminder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultWorkerCount bounds how many users are allocated in parallel.
const DefaultWorkerCount = 4

// Runner fans a daily allocation batch out over all users with due
// reminders. Users share no allocation state, so partitions run in
// parallel; each user's run is its own atomic unit, and an aborted batch
// never rolls back partitions that already committed.
type Runner struct {
	service *Service
	slots   SlotRepository
	workers int
}

// NewRunner creates a new Runner. workers <= 0 falls back to
// DefaultWorkerCount.
func NewRunner(service *Service, slots SlotRepository, workers int) *Runner {
	if workers <= 0 {
		workers = DefaultWorkerCount
	}
	return &Runner{
		service: service,
		slots:   slots,
		workers: workers,
	}
}

// BatchResult summarizes one batch run.
type BatchResult struct {
	Users       int
	Sent        int
	Rescheduled int
	Skipped     int
}

// RunBatch allocates reminders for every user with pending slots due on the
// date. It stops handing out new partitions once the context is cancelled.
func (r *Runner) RunBatch(ctx context.Context, date time.Time) (BatchResult, error) {
	userIDs, err := r.slots.ListUserIDsWithPending(ctx, date)
	if err != nil {
		return BatchResult{}, fmt.Errorf("slots.ListUserIDsWithPending() > %w", err)
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	results := make([]Allocation, len(userIDs))
	for i, userID := range userIDs {
		i, userID := i, userID
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			allocation, err := r.service.AllocateReminders(groupCtx, userID, date)
			if err != nil {
				// Another run already holds this user's partition; skip it
				// rather than failing the whole batch.
				if errors.Is(err, ErrAllocationRunning) {
					slog.Warn("skipping user partition", "user_id", userID, "error", err)
					return nil
				}
				return fmt.Errorf("AllocateReminders(user %d) > %w", userID, err)
			}
			results[i] = allocation
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return BatchResult{}, err
	}

	result := BatchResult{Users: len(userIDs)}
	for _, allocation := range results {
		result.Sent += len(allocation.ToSend)
		result.Rescheduled += len(allocation.ToReschedule)
		result.Skipped += len(allocation.ToSkip)
	}

	slog.Info("reminder batch complete",
		"date", dateOnly(date).Format(time.DateOnly),
		"users", result.Users,
		"sent", result.Sent,
		"rescheduled", result.Rescheduled,
		"skipped", result.Skipped)
	return result, nil
}
