package main

import (
	"bufio"
	"io"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/limbo/habitgrid/pkg/clock"
	"github.com/limbo/habitgrid/pkg/streak"
	"github.com/spf13/cobra"
)

type streaksOutput struct {
	Today string `json:"today"`
	streak.Result
	FrozenDays []string `json:"frozen_days"`
}

// newStreaksCmd computes streaks for dates given as args or one per line on stdin.
func newStreaksCmd() *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "streaks [YYYY-MM-DD...]",
		Short: "Compute streaks and frozen days offline",
		RunE: func(cmd *cobra.Command, args []string) error {
			dates := args
			if len(dates) == 0 {
				read, err := readDates(cmd.InOrStdin())
				if err != nil {
					return err
				}
				dates = read
			}
			var clk clock.Clock
			if today != "" {
				d, err := streak.ParseDate(today)
				if err != nil {
					return err
				}
				clk = clock.Fixed(d)
			} else {
				c, err := newClock(cfg)
				if err != nil {
					return err
				}
				clk = c
			}
			now := clk.Now()
			res, err := streak.Compute(dates, now)
			if err != nil {
				return err
			}
			frozen, err := streak.FrozenDays(dates)
			if err != nil {
				return err
			}
			return sonic.ConfigDefault.NewEncoder(cmd.OutOrStdout()).Encode(streaksOutput{
				Today:      streak.FormatDate(now),
				Result:     res,
				FrozenDays: frozen,
			})
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "date treated as today (default: now in TIMEZONE)")
	return cmd
}

func readDates(r io.Reader) ([]string, error) {
	var dates []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		dates = append(dates, line)
	}
	return dates, sc.Err()
}
