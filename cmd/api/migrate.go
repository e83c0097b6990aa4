package main

import (
	"github.com/spf13/cobra"

	dbpkg "github.com/BruksfildServices01/handyman-marketplace/internal/db"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update database tables",
	RunE:  runMigrate,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	gdb, err := openDatabase(cfg, log)
	if err != nil {
		return err
	}
	if err := dbpkg.Migrate(gdb); err != nil {
		return err
	}

	cmd.Println("Migrations applied.")
	return nil
}
