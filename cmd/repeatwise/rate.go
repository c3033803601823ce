package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ntgptit/repeatwise/internal/srs"
)

func newRateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rate <item-id> <rating>",
		Short: "Rate a review item (again, hard, good or easy)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0], "item id")
			if err != nil {
				return err
			}
			rating, err := srs.ParseRating(args[1])
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

			service, err := newSRSService(cfg, db)
			if err != nil {
				return err
			}

			item, err := service.Rate(cmd.Context(), itemID, rating)
			if err != nil {
				return err
			}

			if rating.Remembered() {
				color.Green("Item %d moved to box %d, next review on %s",
					item.ID, item.Box, item.DueDate.Format(time.DateOnly))
			} else {
				color.Red("Item %d dropped to box %d, next review on %s",
					item.ID, item.Box, item.DueDate.Format(time.DateOnly))
			}
			return nil
		},
	}
}

func newUndoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "undo <item-id>",
		Short: "Revert the most recent rating of a review item",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, err := parseID(args[0], "item id")
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

			service, err := newSRSService(cfg, db)
			if err != nil {
				return err
			}

			item, err := service.Undo(cmd.Context(), itemID)
			if err != nil {
				return err
			}

			fmt.Printf("Item %d restored to box %d, due on %s\n",
				item.ID, item.Box, item.DueDate.Format(time.DateOnly))
			return nil
		},
	}
}

func newStudyCommand() *cobra.Command {
	var userID int64
	command := &cobra.Command{
		Use:   "study <card-id>",
		Short: "Start studying a card, creating its box-1 review state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cardID, err := parseID(args[0], "card id")
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

			service, err := newSRSService(cfg, db)
			if err != nil {
				return err
			}

			item, err := service.StartStudying(cmd.Context(), cardID, userID)
			if err != nil {
				return err
			}

			fmt.Printf("Card %d is in box %d, due on %s\n",
				cardID, item.Box, item.DueDate.Format(time.DateOnly))
			return nil
		},
	}
	command.Flags().Int64Var(&userID, "user", 1, "owner user id")
	return command
}
