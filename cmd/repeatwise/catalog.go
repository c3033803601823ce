package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ntgptit/repeatwise/internal/catalog"
	"github.com/ntgptit/repeatwise/internal/srs"
)

func newCatalogCommand() *cobra.Command {
	catalogCommand := &cobra.Command{
		Use:   "catalog",
		Short: "Manage the folder, deck and card tree",
	}

	catalogCommand.AddCommand(newCatalogAddCommand())
	catalogCommand.AddCommand(newCatalogListCommand())
	catalogCommand.AddCommand(newCatalogRemoveCommand())

	return catalogCommand
}

func newCatalogAddCommand() *cobra.Command {
	var (
		userID    int64
		parentID  int64
		wordCount int
	)
	command := &cobra.Command{
		Use:   "add <kind> <name>",
		Short: "Add a folder, deck or card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := parseKind(args[0])
			if err != nil {
				return err
			}

			service, cleanup, err := newCatalogService()
			if err != nil {
				return err
			}
			defer cleanup()

			var parent *int64
			if parentID > 0 {
				parent = &parentID
			}
			node, err := service.CreateNode(cmd.Context(), userID, parent, kind, args[1], wordCount)
			if err != nil {
				return err
			}

			fmt.Printf("Created %s %d (%s)\n", node.Kind, node.ID, node.Name)
			return nil
		},
	}
	command.Flags().Int64Var(&userID, "user", 1, "owner user id")
	command.Flags().Int64Var(&parentID, "parent", 0, "parent node id (omit for a root folder)")
	command.Flags().IntVar(&wordCount, "words", 0, "word count used as reminder weight")
	return command
}

func newCatalogListCommand() *cobra.Command {
	var userID int64
	command := &cobra.Command{
		Use:   "ls <node-id>",
		Short: "List the children of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := parseID(args[0], "node id")
			if err != nil {
				return err
			}

			service, cleanup, err := newCatalogService()
			if err != nil {
				return err
			}
			defer cleanup()

			children, err := service.ListChildren(cmd.Context(), userID, nodeID)
			if err != nil {
				return err
			}

			for _, child := range children {
				fmt.Printf("%d\t%s\t%s\n", child.ID, child.Kind, child.Name)
			}
			return nil
		},
	}
	command.Flags().Int64Var(&userID, "user", 1, "owner user id")
	return command
}

func newCatalogRemoveCommand() *cobra.Command {
	var userID int64
	command := &cobra.Command{
		Use:   "rm <node-id>",
		Short: "Soft-delete a node and everything beneath it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			nodeID, err := parseID(args[0], "node id")
			if err != nil {
				return err
			}

			service, cleanup, err := newCatalogService()
			if err != nil {
				return err
			}
			defer cleanup()

			if err := service.Cascade(cmd.Context(), userID, nodeID); err != nil {
				return err
			}

			fmt.Printf("Deleted node %d and its subtree\n", nodeID)
			return nil
		},
	}
	command.Flags().Int64Var(&userID, "user", 1, "owner user id")
	return command
}

func newCatalogService() (*catalog.Service, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	db, err := openDatabase(cfg)
	if err != nil {
		return nil, nil, err
	}

	service := catalog.NewService(catalog.NewDBRepository(db), srs.SystemClock{})
	return service, func() { _ = db.Close() }, nil
}

func parseKind(arg string) (catalog.Kind, error) {
	switch arg {
	case "folder":
		return catalog.KindFolder, nil
	case "deck":
		return catalog.KindDeck, nil
	case "card":
		return catalog.KindCard, nil
	default:
		return "", fmt.Errorf("invalid kind %q, expected folder, deck or card", arg)
	}
}
