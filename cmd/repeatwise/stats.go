package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ntgptit/repeatwise/internal/srs"
	"github.com/ntgptit/repeatwise/internal/stats"
)

func newStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats <user-id>",
		Short: "Show review counts for a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, err := parseID(args[0], "user id")
			if err != nil {
				return err
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

			service := stats.NewService(stats.NewDBRepository(db), cfg.Stats, srs.SystemClock{})
			rollup, err := service.GetRollup(cmd.Context(), userID, time.Now().UTC())
			if err != nil {
				return err
			}

			fmt.Printf("User %d on %s\n", userID, rollup.Date.Format(time.DateOnly))
			fmt.Printf("  due:    %d\n", rollup.DueCount)
			fmt.Printf("  new:    %d\n", rollup.NewCount)
			fmt.Printf("  mature: %d\n", rollup.MatureCount)
			return nil
		},
	}
}
