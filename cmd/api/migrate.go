package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down|status|version]",
		Short:     "Apply database migrations",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"up", "down", "status", "version"},
		RunE: func(cmd *cobra.Command, args []string) error {
			command := "up"
			if len(args) == 1 {
				command = args[0]
			}
			return migrate(cmd.Context(), command)
		},
	}
}

func migrate(ctx context.Context, command string) error {
	db, err := sql.Open("pgx", cfg.Postgres.ConnString())
	if err != nil {
		return errors.New("opening database error: " + err.Error())
	}
	defer db.Close()
	if err = db.PingContext(ctx); err != nil {
		return errors.New("pinging database error: " + err.Error())
	}
	if err = goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err = goose.Run(command, db, cfg.MigrationsDir); err != nil {
		return errors.New("migration " + command + " error: " + err.Error())
	}
	slog.Info("migrations done", slog.String("command", command), slog.String("dir", cfg.MigrationsDir))
	return nil
}
