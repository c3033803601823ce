package main

import (
	"fmt"
	"io/fs"
	"sort"

	"github.com/spf13/cobra"

	"github.com/ntgptit/repeatwise/schemas"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply embedded schema migrations",
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

			files, err := migrationFiles()
			if err != nil {
				return err
			}

			for _, file := range files {
				content, err := schemas.Migrations.ReadFile(file)
				if err != nil {
					return fmt.Errorf("failed to read migration %s: %w", file, err)
				}
				if _, err := db.ExecContext(cmd.Context(), string(content)); err != nil {
					return fmt.Errorf("failed to apply migration %s: %w", file, err)
				}
				fmt.Printf("Applied %s\n", file)
			}
			return nil
		},
	}
}

// migrationFiles returns the embedded migration paths in lexical order, which
// is also application order given the numeric file prefixes.
func migrationFiles() ([]string, error) {
	var files []string
	err := fs.WalkDir(schemas.Migrations, "migrations", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)
	return files, nil
}
