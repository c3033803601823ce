package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Clock supplies the current time.
type Clock interface {
	Now() time.Time
}

// Service orchestrates cycle lifecycle operations against the repository.
type Service struct {
	repo        Repository
	delayConfig DelayConfig
	clock       Clock
}

// NewService creates a new Service.
func NewService(repo Repository, delayConfig DelayConfig, clock Clock) (*Service, error) {
	if err := delayConfig.Validate(); err != nil {
		return nil, fmt.Errorf("delayConfig.Validate() > %w", err)
	}
	return &Service{
		repo:        repo,
		delayConfig: delayConfig,
		clock:       clock,
	}, nil
}

// StartCycle opens a new ACTIVE cycle for the set. At most one cycle per set
// may be active; a second start fails with ErrCycleAlreadyActive.
func (s *Service) StartCycle(ctx context.Context, setID int64) (*Cycle, error) {
	set, err := s.repo.FindSet(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindSet(%d) > %w", setID, err)
	}
	if set == nil {
		return nil, fmt.Errorf("cycle: set %d not found", setID)
	}

	active, err := s.repo.FindActiveCycle(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindActiveCycle(%d) > %w", setID, err)
	}
	if active != nil {
		return nil, fmt.Errorf("%w: set %d cycle %d", ErrCycleAlreadyActive, setID, active.CycleNo)
	}

	maxNo, err := s.repo.MaxCycleNo(ctx, setID)
	if err != nil {
		return nil, fmt.Errorf("repo.MaxCycleNo(%d) > %w", setID, err)
	}

	c := Cycle{
		SetID:     setID,
		CycleNo:   maxNo + 1,
		Status:    CycleActive,
		StartedAt: s.clock.Now(),
	}
	if err := s.repo.CreateCycle(ctx, &c); err != nil {
		return nil, fmt.Errorf("repo.CreateCycle(set %d) > %w", setID, err)
	}

	if set.Status == SetNotStarted {
		set.Status = SetLearning
		if err := s.repo.UpdateSet(ctx, set); err != nil {
			return nil, fmt.Errorf("repo.UpdateSet(%d) > %w", setID, err)
		}
	}

	slog.Debug("started cycle", "set_id", setID, "cycle_no", c.CycleNo)
	return &c, nil
}

// RecordReview appends a scored review to the cycle. The fifth review
// finishes the cycle: the average score is fixed, the next-cycle delay is
// computed, and the parent set is rescheduled in one transaction.
func (s *Service) RecordReview(ctx context.Context, cycleID int64, score int) (*Outcome, error) {
	if !ValidScore(score) {
		return nil, fmt.Errorf("%w: %d not in [0, 100]", ErrInvalidScore, score)
	}

	c, err := s.repo.FindCycle(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindCycle(%d) > %w", cycleID, err)
	}
	if c == nil {
		return nil, fmt.Errorf("cycle: cycle %d not found", cycleID)
	}
	if c.Status == CycleFinished {
		return nil, fmt.Errorf("%w: cycle %d", ErrCycleComplete, cycleID)
	}

	reviews, err := s.repo.FindReviews(ctx, cycleID)
	if err != nil {
		return nil, fmt.Errorf("repo.FindReviews(%d) > %w", cycleID, err)
	}
	if len(reviews) >= ReviewsPerCycle {
		return nil, fmt.Errorf("%w: cycle %d has %d reviews", ErrCycleComplete, cycleID, len(reviews))
	}

	review := Review{
		CycleID:    cycleID,
		ReviewNo:   len(reviews) + 1,
		Score:      score,
		ReviewedAt: s.clock.Now(),
	}
	if err := s.repo.CreateReview(ctx, &review); err != nil {
		return nil, fmt.Errorf("repo.CreateReview(cycle %d) > %w", cycleID, err)
	}

	outcome := Outcome{Review: review}
	if review.ReviewNo < ReviewsPerCycle {
		return &outcome, nil
	}

	reviews = append(reviews, review)
	if err := s.finishCycle(ctx, c, reviews, &outcome); err != nil {
		return nil, err
	}
	return &outcome, nil
}

func (s *Service) finishCycle(ctx context.Context, c *Cycle, reviews []Review, outcome *Outcome) error {
	set, err := s.repo.FindSet(ctx, c.SetID)
	if err != nil {
		return fmt.Errorf("repo.FindSet(%d) > %w", c.SetID, err)
	}
	if set == nil {
		return fmt.Errorf("cycle: set %d not found", c.SetID)
	}

	avg := AverageScore(reviews)
	delay := NextCycleDelay(s.delayConfig, avg, set.WordCount)
	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nextStart := today.AddDate(0, 0, delay)

	c.Status = CycleFinished
	c.FinishedAt = &now
	c.AvgScore = &avg
	c.NextCycleDelayDays = &delay

	set.Status = SetReviewing
	set.CurrentCycle++
	set.NextCycleStartDate = &nextStart
	set.LastCycleEndDate = &now

	if err := s.repo.FinishCycle(ctx, c, set); err != nil {
		return fmt.Errorf("repo.FinishCycle(%d) > %w", c.ID, err)
	}

	outcome.Finished = true
	outcome.AvgScore = avg
	outcome.DelayDays = delay

	slog.Info("finished cycle",
		"set_id", c.SetID,
		"cycle_no", c.CycleNo,
		"avg_score", avg,
		"delay_days", delay,
		"next_cycle_start", nextStart.Format(time.DateOnly))
	return nil
}
