package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ntgptit/repeatwise/internal/cycle"
	"github.com/ntgptit/repeatwise/internal/srs"
)

func newCycleCommand() *cobra.Command {
	cycleCommand := &cobra.Command{
		Use:   "cycle",
		Short: "Cycle commands for set-based studying",
	}

	cycleCommand.AddCommand(newCycleStartCommand())
	cycleCommand.AddCommand(newCycleReviewCommand())

	return cycleCommand
}

func newCycleStartCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "start <set-id>",
		Short: "Start a new review cycle for a study set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setID, err := parseID(args[0], "set id")
			if err != nil {
				return err
			}

			service, cleanup, err := newCycleService()
			if err != nil {
				return err
			}
			defer cleanup()

			c, err := service.StartCycle(cmd.Context(), setID)
			if err != nil {
				return err
			}

			fmt.Printf("Started cycle %d for set %d\n", c.CycleNo, setID)
			return nil
		},
	}
}

func newCycleReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review <cycle-id> <score>",
		Short: "Record a scored review (0-100) for a cycle",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cycleID, err := parseID(args[0], "cycle id")
			if err != nil {
				return err
			}
			score, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid score: %q", args[1])
			}

			service, cleanup, err := newCycleService()
			if err != nil {
				return err
			}
			defer cleanup()

			outcome, err := service.RecordReview(cmd.Context(), cycleID, score)
			if err != nil {
				return err
			}

			if !outcome.Finished {
				fmt.Printf("Recorded review %d of %d with score %d\n",
					outcome.Review.ReviewNo, cycle.ReviewsPerCycle, score)
				return nil
			}
			color.Green("Cycle complete: average score %.1f, next cycle starts in %d days (%s)",
				outcome.AvgScore, outcome.DelayDays,
				time.Now().UTC().AddDate(0, 0, outcome.DelayDays).Format(time.DateOnly))
			return nil
		},
	}
}

func newCycleService() (*cycle.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}

	service, err := cycle.NewService(cycle.NewDBRepository(db), cfg.Cycle, srs.SystemClock{})
	if err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to create cycle service: %w", err)
	}
	return service, func() { _ = db.Close() }, nil
}
