// Package streak computes habit streaks over sets of YYYY-MM-DD completion dates.
//
// Days are civil dates: no time zone conversion happens here, the caller formats
// its dates and "today" in the same location.
package streak

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

const Layout = "2006-01-02"

// intensityWindow is how many previous days are looked at when grading a grid cell.
const intensityWindow = 10

var ErrInvalidDate = errors.New("invalid date")

type Result struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// ParseDate parses a YYYY-MM-DD string into midnight UTC of that civil date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(Layout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// FormatDate returns the civil date of t in t's own location.
func FormatDate(t time.Time) string {
	return t.Format(Layout)
}

// civil drops the time of day and the location, keeping the calendar date.
func civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// parseSet parses and deduplicates dates, returning them sorted ascending.
func parseSet(dates []string) ([]time.Time, map[string]struct{}, error) {
	set := make(map[string]struct{}, len(dates))
	days := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		d, err := ParseDate(s)
		if err != nil {
			return nil, nil, err
		}
		key := FormatDate(d)
		if _, ok := set[key]; ok {
			continue
		}
		set[key] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days, set, nil
}

// FrozenDays returns the missed days that count as completed: a day is frozen when
// both its neighbours are completions, and only the first such day of a calendar
// month is granted. The result is sorted ascending.
func FrozenDays(completions []string) ([]string, error) {
	days, _, err := parseSet(completions)
	if err != nil {
		return nil, err
	}
	return frozen(days), nil
}

// frozen walks consecutive completions: only a pair two days apart sandwiches a
// missed day, and pairs come in date order so the first gap of a month wins.
func frozen(days []time.Time) []string {
	result := make([]string, 0)
	granted := make(map[string]struct{})
	for i := 1; i < len(days); i++ {
		gap := days[i-1].AddDate(0, 0, 1)
		if !gap.AddDate(0, 0, 1).Equal(days[i]) {
			continue
		}
		month := gap.Format("2006-01")
		if _, ok := granted[month]; ok {
			continue
		}
		granted[month] = struct{}{}
		result = append(result, FormatDate(gap))
	}
	return result
}

// Compute returns the current and longest streaks, frozen days included.
// The current streak is only alive when the latest valid day is today or yesterday.
func Compute(completions []string, today time.Time) (Result, error) {
	days, _, err := parseSet(completions)
	if err != nil {
		return Result{}, err
	}
	for _, f := range frozen(days) {
		d, _ := ParseDate(f)
		days = append(days, d)
	}
	if len(days) == 0 {
		return Result{}, nil
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	current := 0
	now := civil(today)
	latest := days[len(days)-1]
	if latest.Equal(now) || latest.Equal(now.AddDate(0, 0, -1)) {
		current = 1
		for i := len(days) - 1; i > 0; i-- {
			if !days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
				break
			}
			current++
		}
	}

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		longest = max(longest, run)
	}
	return Result{Current: current, Longest: max(longest, current, 1)}, nil
}

// Intensity grades a day of the grid in [0, 1]: zero when date isn't completed,
// otherwise the length of the completed run ending on date divided by ten, capped at 1.
func Intensity(completions []string, date string) (float64, error) {
	_, set, err := parseSet(completions)
	if err != nil {
		return 0, err
	}
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return intensity(set, d), nil
}

func intensity(set map[string]struct{}, d time.Time) float64 {
	if _, ok := set[FormatDate(d)]; !ok {
		return 0
	}
	run := 1
	for i := 1; i <= intensityWindow; i++ {
		if _, ok := set[FormatDate(d.AddDate(0, 0, -i))]; !ok {
			break
		}
		run++
	}
	return min(float64(run)/intensityWindow, 1)
}

// Grid lays out the last n days ending at today, oldest first. A non-positive n
// gives an empty grid.
func Grid(completions []string, today time.Time, n int) ([]Day, error) {
	days, set, err := parseSet(completions)
	if err != nil {
		return nil, err
	}
	n = max(n, 0)
	frozenSet := make(map[string]struct{})
	for _, f := range frozen(days) {
		frozenSet[f] = struct{}{}
	}
	end := civil(today)
	grid := make([]Day, 0, n)
	for i := n - 1; i >= 0; i-- {
		d := end.AddDate(0, 0, -i)
		key := FormatDate(d)
		_, done := set[key]
		_, isFrozen := frozenSet[key]
		grid = append(grid, Day{
			Date:      key,
			Completed: done,
			Frozen:    isFrozen,
			Intensity: intensity(set, d),
		})
	}
	return grid, nil
}

type Day struct {
	Date      string
	Completed bool
	Frozen    bool
	Intensity float64
}
