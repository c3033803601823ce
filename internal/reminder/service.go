package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Notifier delivers a selected reminder. Delivery is fire-and-forget from
// the allocator's point of view: failures are logged, never rolled back
// into allocation state.
//
//go:generate mockgen -source=service.go -destination=../mocks/reminder/mock_notifier.go -package=mock_reminder Notifier
type Notifier interface {
	Dispatch(ctx context.Context, userID, subjectID int64) error
}

// Service runs reminder allocation for one user at a time. Runs for the
// same (user, date) are serialized with a keyed lock; two racing runs would
// both see the same free capacity and break the daily cap.
type Service struct {
	slots    SlotRepository
	notifier Notifier
	config   Config
	clock    Clock

	mu      sync.Mutex
	running map[string]struct{}
}

// NewService creates a new Service.
func NewService(slots SlotRepository, notifier Notifier, config Config, clock Clock) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config.Validate() > %w", err)
	}
	return &Service{
		slots:    slots,
		notifier: notifier,
		config:   config,
		clock:    clock,
		running:  make(map[string]struct{}),
	}, nil
}

// AllocateReminders reads the user's due reminders, partitions them under
// the daily cap, persists the partition atomically, and dispatches the
// selected slots.
func (s *Service) AllocateReminders(ctx context.Context, userID int64, date time.Time) (Allocation, error) {
	day := dateOnly(date)

	release, err := s.acquire(userID, day)
	if err != nil {
		return Allocation{}, err
	}
	defer release()

	pending, err := s.slots.FindPendingOnOrBefore(ctx, userID, day)
	if err != nil {
		return Allocation{}, fmt.Errorf("slots.FindPendingOnOrBefore(%d) > %w", userID, err)
	}
	if len(pending) == 0 {
		return Allocation{}, nil
	}

	sentToday, err := s.slots.CountSentOn(ctx, userID, day)
	if err != nil {
		return Allocation{}, fmt.Errorf("slots.CountSentOn(%d) > %w", userID, err)
	}

	scheduledAhead, err := s.slots.CountPendingPerDayAfter(ctx, userID, day)
	if err != nil {
		return Allocation{}, fmt.Errorf("slots.CountPendingPerDayAfter(%d) > %w", userID, err)
	}

	allocation := Allocate(pending, day, sentToday, scheduledAhead, s.config)
	if err := s.slots.ApplyAllocation(ctx, allocation); err != nil {
		return Allocation{}, fmt.Errorf("slots.ApplyAllocation(%d) > %w", userID, err)
	}

	slog.Info("allocated reminders",
		"user_id", userID,
		"date", day.Format(time.DateOnly),
		"sent", len(allocation.ToSend),
		"rescheduled", len(allocation.ToReschedule),
		"skipped", len(allocation.ToSkip))

	s.dispatch(ctx, allocation.ToSend)
	return allocation, nil
}

// dispatch hands the selected slots to the notifier. Failures do not undo
// the allocation; the notifier owns its retries.
func (s *Service) dispatch(ctx context.Context, toSend []Slot) {
	for _, slot := range toSend {
		if err := s.notifier.Dispatch(ctx, slot.UserID, slot.SubjectID); err != nil {
			slog.Warn("reminder dispatch failed",
				"user_id", slot.UserID,
				"subject_id", slot.SubjectID,
				"error", err)
		}
	}
}

// MarkDone records the user acting on a reminder.
func (s *Service) MarkDone(ctx context.Context, slotID int64) error {
	if err := s.slots.UpdateStatus(ctx, slotID, StatusDone); err != nil {
		return fmt.Errorf("slots.UpdateStatus(%d, DONE) > %w", slotID, err)
	}
	return nil
}

// MarkSkipped records the user skipping a reminder.
func (s *Service) MarkSkipped(ctx context.Context, slotID int64) error {
	if err := s.slots.UpdateStatus(ctx, slotID, StatusSkipped); err != nil {
		return fmt.Errorf("slots.UpdateStatus(%d, SKIPPED) > %w", slotID, err)
	}
	return nil
}

// Schedule creates a pending slot for a subject that became due.
func (s *Service) Schedule(ctx context.Context, userID, subjectID int64, date time.Time, weight int) (*Slot, error) {
	slot := Slot{
		UserID:        userID,
		SubjectID:     subjectID,
		ScheduledDate: dateOnly(date),
		Status:        StatusPending,
		Weight:        weight,
	}
	if err := s.slots.Create(ctx, &slot); err != nil {
		return nil, fmt.Errorf("slots.Create(user %d subject %d) > %w", userID, subjectID, err)
	}
	return &slot, nil
}

func (s *Service) acquire(userID int64, day time.Time) (func(), error) {
	key := fmt.Sprintf("%d:%s", userID, day.Format(time.DateOnly))

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.running[key]; ok {
		return nil, fmt.Errorf("%w: user %d date %s", ErrAllocationRunning, userID, day.Format(time.DateOnly))
	}
	s.running[key] = struct{}{}

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.running, key)
	}, nil
}
