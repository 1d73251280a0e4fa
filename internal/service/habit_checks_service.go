package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository"
	"github.com/limbo/habitgrid/pkg/clock"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/streak"
)

const (
	DefaultGridDays = 365
	MaxGridDays     = 371
)

type HabitChecksService struct {
	habitsRepo repository.HabitsRepositoryI
	checksRepo repository.HabitChecksRepositoryI
	clock      clock.Clock
}

func NewHabitChecksService(habitsRepo repository.HabitsRepositoryI, checksRepo repository.HabitChecksRepositoryI, clk clock.Clock) *HabitChecksService {
	if habitsRepo == nil || checksRepo == nil {
		log.Fatal("on habit checks service provided nil repos")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &HabitChecksService{
		habitsRepo: habitsRepo,
		checksRepo: checksRepo,
		clock:      clk,
	}
}

func parseCheckDate(date string) (time.Time, error) {
	d, err := streak.ParseDate(date)
	if err != nil {
		return time.Time{}, errors.Join(errorvalues.ErrInvalidDate, err)
	}
	return d, nil
}

func (serv *HabitChecksService) isFuture(d time.Time) bool {
	return streak.FormatDate(d) > streak.FormatDate(serv.clock.Now())
}

func (serv *HabitChecksService) CheckHabit(ctx context.Context, habitID, userID uuid.UUID, date string) (*CheckResult, error) {
	d, err := parseCheckDate(date)
	if err != nil {
		return nil, err
	}
	habit, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID)
	if err != nil {
		return nil, err
	}
	if serv.isFuture(d) {
		return nil, errorvalues.ErrCheckDateNotAllowed
	}
	exist, err := serv.checksRepo.Exists(ctx, habitID, d)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if exist {
		return nil, errorvalues.ErrCheckExist
	}
	return serv.addCheck(ctx, habit, d)
}

func (serv *HabitChecksService) UncheckHabit(ctx context.Context, habitID, userID uuid.UUID, date string) (*CheckResult, error) {
	d, err := parseCheckDate(date)
	if err != nil {
		return nil, err
	}
	habit, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID)
	if err != nil {
		return nil, err
	}
	exist, err := serv.checksRepo.Exists(ctx, habitID, d)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if !exist {
		return nil, errorvalues.ErrCheckNotFound
	}
	return serv.removeCheck(ctx, habit, d)
}

func (serv *HabitChecksService) ToggleCheck(ctx context.Context, habitID, userID uuid.UUID, date string) (*CheckResult, error) {
	d, err := parseCheckDate(date)
	if err != nil {
		return nil, err
	}
	habit, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID)
	if err != nil {
		return nil, err
	}
	exist, err := serv.checksRepo.Exists(ctx, habitID, d)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	if exist {
		return serv.removeCheck(ctx, habit, d)
	}
	if serv.isFuture(d) {
		return nil, errorvalues.ErrCheckDateNotAllowed
	}
	return serv.addCheck(ctx, habit, d)
}

func (serv *HabitChecksService) addCheck(ctx context.Context, habit *entity.Habit, d time.Time) (*CheckResult, error) {
	if err := serv.checksRepo.Create(ctx, habit.ID, d); err != nil {
		if errors.Is(err, errorvalues.ErrCheckExist) || errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.recompute(ctx, habit, d, true)
}

func (serv *HabitChecksService) removeCheck(ctx context.Context, habit *entity.Habit, d time.Time) (*CheckResult, error) {
	if err := serv.checksRepo.Delete(ctx, habit.ID, d); err != nil {
		if errors.Is(err, errorvalues.ErrCheckNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	return serv.recompute(ctx, habit, d, false)
}

// recompute derives streaks from every stored completion and persists them.
// The stored longest streak only grows.
func (serv *HabitChecksService) recompute(ctx context.Context, habit *entity.Habit, d time.Time, checked bool) (*CheckResult, error) {
	dates, err := serv.checksRepo.ListDates(ctx, habit.ID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	res, err := streak.Compute(formatDates(dates), serv.clock.Now())
	if err != nil {
		return nil, errors.New("computing streaks error: " + err.Error())
	}
	longest := max(res.Longest, habit.LongestStreak)
	if err = serv.habitsRepo.UpdateStreaks(ctx, habit.ID, res.Current, longest); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("repository error: " + err.Error())
	}
	slog.Debug("streaks recomputed",
		slog.String("habit_id", habit.ID.String()),
		slog.Int("current", res.Current),
		slog.Int("longest", longest),
	)
	return &CheckResult{
		Date:          streak.FormatDate(d),
		Checked:       checked,
		CurrentStreak: res.Current,
		LongestStreak: longest,
	}, nil
}

// GetHabitChecks lists checks between from and to inclusive. Both are YYYY-MM-DD.
func (serv *HabitChecksService) GetHabitChecks(ctx context.Context, habitID, userID uuid.UUID, from, to string) ([]entity.HabitCheck, error) {
	fromDate, err := parseCheckDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseCheckDate(to)
	if err != nil {
		return nil, err
	}
	if fromDate.After(toDate) {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("from is after to"))
	}
	if _, err = ownedHabit(ctx, serv.habitsRepo, habitID, userID); err != nil {
		return nil, err
	}
	checks, err := serv.checksRepo.GetByHabitAndDateRange(ctx, habitID, fromDate, toDate)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	return checks, nil
}

func (serv *HabitChecksService) GetHabitStats(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitStats, error) {
	habit, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID)
	if err != nil {
		return nil, err
	}
	total, err := serv.checksRepo.CountByHabitID(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	last, err := serv.checksRepo.GetLastCheckDate(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	dates, err := serv.checksRepo.ListDates(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	completions := formatDates(dates)
	res, err := streak.Compute(completions, serv.clock.Now())
	if err != nil {
		return nil, errors.New("computing streaks error: " + err.Error())
	}
	frozen, err := streak.FrozenDays(completions)
	if err != nil {
		return nil, errors.New("computing frozen days error: " + err.Error())
	}
	return &entity.HabitStats{
		ID:            habitID,
		TotalChecks:   total,
		CurrentStreak: res.Current,
		MaxStreak:     max(res.Longest, habit.LongestStreak),
		LastCheck:     last,
		FrozenDays:    frozen,
	}, nil
}

// GetHabitGrid lays out the last days ending today. Zero days means DefaultGridDays.
func (serv *HabitChecksService) GetHabitGrid(ctx context.Context, habitID, userID uuid.UUID, days int) ([]entity.GridDay, error) {
	if days == 0 {
		days = DefaultGridDays
	}
	if days < 0 || days > MaxGridDays {
		return nil, errors.Join(errorvalues.ErrValidation, errors.New("days out of range"))
	}
	if _, err := ownedHabit(ctx, serv.habitsRepo, habitID, userID); err != nil {
		return nil, err
	}
	dates, err := serv.checksRepo.ListDates(ctx, habitID)
	if err != nil {
		return nil, errors.New("repository error: " + err.Error())
	}
	grid, err := streak.Grid(formatDates(dates), serv.clock.Now(), days)
	if err != nil {
		return nil, errors.New("computing grid error: " + err.Error())
	}
	result := make([]entity.GridDay, 0, len(grid))
	for _, d := range grid {
		result = append(result, entity.GridDay{
			Date:      d.Date,
			Completed: d.Completed,
			Frozen:    d.Frozen,
			Intensity: d.Intensity,
		})
	}
	return result, nil
}
