package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geniusdynamics/alumate-sub010/common/id"
	"github.com/geniusdynamics/alumate-sub010/common/logger"
	"github.com/geniusdynamics/alumate-sub010/core/config"
	"github.com/geniusdynamics/alumate-sub010/core/db"
)

var rootCmd = &cobra.Command{
	Use:   "alumatectl",
	Short: "Alumate operator CLI",
	Long: `alumatectl runs operator tasks against the Alumate database:
schema migrations, counter recounts and drift reconciliation, and minting
bearer tokens for local testing.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("ALUMATECTL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
}

func registerCommands() {
	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(recountCmd())
	rootCmd.AddCommand(reconcileCmd())
	rootCmd.AddCommand(tokenCmd())
}

// withDB loads the CLI config and hands fn an initialised database.
func withDB(ctx context.Context, fn func(ctx context.Context, cfg config.Config, database *db.DB) error) error {
	cfg, err := config.Load(config.ServiceTypeCLI)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	logger.Setup(cfg)

	if err := id.Init(cfg.NodeID); err != nil {
		return fmt.Errorf("initializing id generator: %w", err)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "alumate.cli"})
	return fn(ctx, cfg, database)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
