package main

import (
	"log/slog"

	"github.com/limbo/habitgrid/internal/activity"
	"github.com/spf13/cobra"
)

func newSyncCmd() *cobra.Command {
	var (
		username string
		opts     activity.RefreshOptions
	)
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Refresh the activity grid of a user from its sources",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			a, err := newApp(ctx, cfg)
			if err != nil {
				return err
			}
			user, err := a.users.GetByName(ctx, username)
			if err != nil {
				return err
			}
			cache, err := a.activity.RefreshActivity(ctx, user.ID, opts)
			if err != nil {
				return err
			}
			total := 0
			for _, n := range cache.DailyCounts {
				total += n
			}
			slog.Info("activity synced",
				slog.String("user", user.Name),
				slog.Int("days", len(cache.DailyCounts)),
				slog.Int("events", total),
			)
			return nil
		},
	}
	cmd.Flags().StringVarP(&username, "user", "u", "", "name of the user to sync")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "ignore the cache TTL")
	cmd.Flags().IntVar(&opts.Days, "days", 0, "trailing days to fetch (default ACTIVITY_DAYS)")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
