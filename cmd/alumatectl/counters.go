package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/geniusdynamics/alumate-sub010/core/config"
	"github.com/geniusdynamics/alumate-sub010/core/db"
	"github.com/geniusdynamics/alumate-sub010/internal/model"
	"github.com/geniusdynamics/alumate-sub010/internal/service"
	"github.com/geniusdynamics/alumate-sub010/internal/store"
)

func counterService(database *db.DB) service.CounterService {
	stores := store.NewStores(database.Queries())
	return service.NewCounterService(service.NewTxRunner(database), stores.Celebrations(), stores.Fundraisers())
}

func recountCmd() *cobra.Command {
	r := &cobra.Command{Use: "recount", Short: "Recompute a denormalized counter from its source rows"}
	r.AddCommand(recountTargetCmd("celebration", "Recount congratulations on a celebration", service.CounterService.RecountCelebration))
	r.AddCommand(recountTargetCmd("fundraiser", "Recompute a fundraiser's raised amount", service.CounterService.RecountFundraiser))
	return r
}

func recountTargetCmd(kind, short string, recount func(service.CounterService, context.Context, int64) (model.Recount, error)) *cobra.Command {
	return &cobra.Command{
		Use:   kind + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			targetID, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid %s id %q", kind, args[0])
			}
			return withDB(cmd.Context(), func(ctx context.Context, _ config.Config, database *db.DB) error {
				result, err := recount(counterService(database), ctx, targetID)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(result)
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Kind", "ID", "Previous", "Current", "Corrected"})
				tw.AppendRow(table.Row{kind, result.ID, result.Previous, result.Current, result.Drifted()})
				tw.Render()
				return nil
			})
		},
	}
}

func reconcileCmd() *cobra.Command {
	var limit int32
	cmd := &cobra.Command{
		Use:   "reconcile",
		Short: "Recount every drifted celebration and fundraiser counter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive")
			}
			return withDB(cmd.Context(), func(ctx context.Context, _ config.Config, database *db.DB) error {
				result, err := counterService(database).ReconcileDrift(ctx, limit)
				if viper.GetBool("json") {
					if printErr := printJSON(result); printErr != nil {
						return printErr
					}
					return err
				}
				tw := table.NewWriter()
				tw.SetOutputMirror(os.Stdout)
				tw.AppendHeader(table.Row{"Celebrations", "Fundraisers", "Corrected", "Failed"})
				tw.AppendRow(table.Row{result.Celebrations, result.Fundraisers, result.Corrected, result.Failed})
				tw.Render()
				return err
			})
		},
	}
	cmd.Flags().Int32Var(&limit, "limit", 500, "maximum drifted rows to recount per counter")
	return cmd
}
