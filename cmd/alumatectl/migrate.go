package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geniusdynamics/alumate-sub010/core/config"
	"github.com/geniusdynamics/alumate-sub010/core/db"
)

func migrateCmd() *cobra.Command {
	m := &cobra.Command{Use: "migrate", Short: "Manage the database schema"}
	m.AddCommand(migrateDirectionCmd("up", "Apply all pending migrations", db.MigrateUp))
	m.AddCommand(migrateDirectionCmd("down", "Roll back the most recent migration", db.MigrateDown))
	m.AddCommand(migrateStatusCmd())
	return m
}

func migrateDirectionCmd(use, short string, direction db.MigrationDirection) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, _ config.Config, database *db.DB) error {
				if err := database.Migrate(ctx, direction); err != nil {
					return err
				}
				return printVersion(ctx, database)
			})
		},
	}
}

func migrateStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the current schema version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(cmd.Context(), func(ctx context.Context, _ config.Config, database *db.DB) error {
				return printVersion(ctx, database)
			})
		},
	}
}

func printVersion(ctx context.Context, database *db.DB) error {
	version, err := database.MigrationVersion(ctx)
	if err != nil {
		return err
	}
	if viper.GetBool("json") {
		return printJSON(map[string]int64{"version": version})
	}
	fmt.Printf("schema version %d\n", version)
	return nil
}
