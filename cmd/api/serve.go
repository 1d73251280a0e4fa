package main

import (
	"errors"
	"log/slog"

	"github.com/limbo/habitgrid/internal/api"
	jwtservice "github.com/limbo/habitgrid/pkg/jwt_service"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if cfg.JWTSecret == "" {
				return errors.New("JWT_SECRET is required")
			}
			if cfg.MigrateOnStart {
				if err := migrate(ctx, "up"); err != nil {
					return err
				}
			}
			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			serv := api.New(&api.ServicesList{
				UserService:     a.users,
				HabitsService:   a.habits,
				ChecksService:   a.checks,
				SourcesService:  a.sources,
				ActivityService: a.activity,
				JWTService:      jwtservice.New(cfg.JWTSecret),
				Health:          a.pool,
			})
			slog.Info("clock ready", slog.String("timezone", cfg.Timezone), slog.String("today", a.clock.Now().Format("2006-01-02")))
			return serv.Run(ctx, cfg.APIAddress)
		},
	}
}
