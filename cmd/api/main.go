// @title HabitGrid API
// @description Habit tracker with streaks and a merged code activity grid
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/cleanup"
	"github.com/limbo/habitgrid/pkg/config"
	"github.com/limbo/habitgrid/pkg/logger"
	"github.com/spf13/cobra"
)

func init() {
	service.InitValidator()
}

var (
	envFile string
	cfg     *config.Config
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "habitgrid",
		Short:         "Habit tracker with streaks and a merged code activity grid",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("env-file") {
				loaded, err := config.Load(envFile)
				if err != nil {
					return err
				}
				cfg = loaded
			} else {
				cfg = config.New()
			}
			return logger.Init(logger.Config{Debug: cfg.Log.Debug, Dir: cfg.Log.Dir})
		},
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", config.DefaultEnvFile, "dotenv file loaded before reading the environment")
	root.AddCommand(newServeCmd(), newMigrateCmd(), newStreaksCmd(), newSyncCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	cleanup.CleanUp()
	if err != nil {
		slog.Error("command failed", slog.String("error", err.Error()))
		log.SetFlags(0)
		log.Fatal(err)
	}
}
