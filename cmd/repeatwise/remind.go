package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ntgptit/repeatwise/internal/reminder"
	"github.com/ntgptit/repeatwise/internal/schedule"
)

func newRemindCommand() *cobra.Command {
	remindCommand := &cobra.Command{
		Use:   "remind",
		Short: "Reminder allocation commands",
	}

	remindCommand.AddCommand(newRemindRunCommand())
	remindCommand.AddCommand(newRemindServeCommand())

	return remindCommand
}

func newRemindRunCommand() *cobra.Command {
	var dateArg string
	command := &cobra.Command{
		Use:   "run",
		Short: "Run one reminder allocation batch for all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			date := time.Now().UTC()
			if dateArg != "" {
				parsed, err := time.Parse(time.DateOnly, dateArg)
				if err != nil {
					return fmt.Errorf("invalid date %q, expected YYYY-MM-DD", dateArg)
				}
				date = parsed
			}

			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			service, slots, err := newReminderService(cfg, db)
			if err != nil {
				return err
			}

			runner := reminder.NewRunner(service, slots, cfg.Scheduler.WorkerCount)
			result, err := runner.RunBatch(cmd.Context(), date)
			if err != nil {
				return err
			}

			fmt.Printf("Allocated reminders for %d users: %d sent, %d rescheduled, %d skipped\n",
				result.Users, result.Sent, result.Rescheduled, result.Skipped)
			return nil
		},
	}
	command.Flags().StringVar(&dateArg, "date", "", "allocation date (YYYY-MM-DD, default today)")
	return command
}

func newRemindServeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the reminder batch on a cron schedule until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = db.Close()
			}()

			service, slots, err := newReminderService(cfg, db)
			if err != nil {
				return err
			}
			runner := reminder.NewRunner(service, slots, cfg.Scheduler.WorkerCount)

			trigger, err := schedule.NewTrigger(&batchRunner{runner: runner}, cfg.Scheduler)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			trigger.Start(ctx)
			fmt.Printf("Reminder scheduler running (%s), press Ctrl+C to stop\n", cfg.Scheduler.Expression)
			<-ctx.Done()
			trigger.Stop()
			return nil
		},
	}
}

// batchRunner adapts the reminder Runner to the trigger's contract.
type batchRunner struct {
	runner *reminder.Runner
}

func (r *batchRunner) Run(ctx context.Context, date time.Time) error {
	_, err := r.runner.RunBatch(ctx, date)
	return err
}
