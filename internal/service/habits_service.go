package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository"
	"github.com/limbo/habitgrid/pkg/clock"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/streak"
)

const exportPageSize = 100

type HabitsService struct {
	repo       repository.HabitsRepositoryI
	checksRepo repository.HabitChecksRepositoryI
	clock      clock.Clock
}

func NewHabitsService(habitsRepo repository.HabitsRepositoryI, checksRepo repository.HabitChecksRepositoryI, clk clock.Clock) *HabitsService {
	if habitsRepo == nil || checksRepo == nil {
		log.Fatal("provided nil repos for habits service")
	}
	if clk == nil {
		clk = clock.System{}
	}
	return &HabitsService{
		repo:       habitsRepo,
		checksRepo: checksRepo,
		clock:      clk,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	h := entity.Habit{
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Category:    req.Category,
		SortOrder:   req.SortOrder,
	}
	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrOwnerNotFound):
			return nil, errorvalues.ErrUserNotFound
		case errors.Is(err, errorvalues.ErrUserHasHabit):
			return nil, errorvalues.ErrUserHasHabit
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetByUserID(ctx, uid, pagination.Limit, pagination.Offset)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

// ownedHabit loads habit and makes sure userID owns it.
func ownedHabit(ctx context.Context, repo repository.HabitsRepositoryI, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	return ownedHabit(ctx, hs.repo, habitID, userID)
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req UpdateHabitRequest) (*entity.Habit, error) {
	if req.Title != nil {
		trimmed := strings.TrimSpace(*req.Title)
		req.Title = &trimmed
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	habit, err := ownedHabit(ctx, hs.repo, habitID, userID)
	if err != nil {
		return nil, err
	}
	if req.Title != nil {
		habit.Title = *req.Title
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.Color != nil {
		habit.Color = *req.Color
	}
	if req.Category != nil {
		habit.Category = *req.Category
	}
	if req.SortOrder != nil {
		habit.SortOrder = *req.SortOrder
	}
	if err = hs.repo.Update(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) || errors.Is(err, errorvalues.ErrUserHasHabit) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := ownedHabit(ctx, hs.repo, habitID, userID); err != nil {
		return err
	}
	err := hs.repo.Delete(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) ExportHabits(ctx context.Context, uid uuid.UUID) ([]entity.HabitExport, error) {
	result := make([]entity.HabitExport, 0)
	for offset := 0; ; offset += exportPageSize {
		habits, err := hs.repo.GetByUserID(ctx, uid, exportPageSize, offset)
		if err != nil {
			return nil, errors.New("habits repository error: " + err.Error())
		}
		for _, h := range habits {
			dates, err := hs.checksRepo.ListDates(ctx, h.ID)
			if err != nil {
				return nil, errors.New("checks repository error: " + err.Error())
			}
			result = append(result, entity.HabitExport{
				Habit:       *h,
				Completions: formatDates(dates),
			})
		}
		if len(habits) < exportPageSize {
			return result, nil
		}
	}
}

// ImportHabits validates every habit first, so a bad entry imports nothing.
func (hs *HabitsService) ImportHabits(ctx context.Context, uid uuid.UUID, habits []entity.HabitExport) (int, error) {
	today := streak.FormatDate(hs.clock.Now())
	type prepared struct {
		habit entity.Habit
		dates []time.Time
	}
	batch := make([]prepared, 0, len(habits))
	for _, in := range habits {
		req := CreateHabitRequest{
			Title:       strings.TrimSpace(in.Title),
			Description: in.Description,
			Color:       in.Color,
			Category:    in.Category,
			SortOrder:   in.SortOrder,
		}
		if err := validateStruct(req); err != nil {
			return 0, err
		}
		dates, err := parseDates(in.Completions)
		if err != nil {
			return 0, err
		}
		for _, d := range in.Completions {
			if d > today {
				return 0, errorvalues.ErrCheckDateNotAllowed
			}
		}
		res, err := streak.Compute(in.Completions, hs.clock.Now())
		if err != nil {
			return 0, errors.Join(errorvalues.ErrInvalidDate, err)
		}
		batch = append(batch, prepared{
			habit: entity.Habit{
				UserID:        uid,
				Title:         req.Title,
				Description:   req.Description,
				Color:         req.Color,
				Category:      req.Category,
				SortOrder:     req.SortOrder,
				CurrentStreak: res.Current,
				LongestStreak: max(res.Longest, in.LongestStreak),
			},
			dates: dates,
		})
	}
	for i := range batch {
		if _, err := hs.repo.Import(ctx, &batch[i].habit, batch[i].dates); err != nil {
			if errors.Is(err, errorvalues.ErrOwnerNotFound) {
				return i, errorvalues.ErrUserNotFound
			}
			return i, errors.New("habits repository error: " + err.Error())
		}
	}
	return len(batch), nil
}

func formatDates(dates []time.Time) []string {
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		result = append(result, streak.FormatDate(d))
	}
	return result
}

// parseDates turns YYYY-MM-DD strings into civil dates, dropping duplicates.
func parseDates(dates []string) ([]time.Time, error) {
	seen := make(map[string]struct{}, len(dates))
	result := make([]time.Time, 0, len(dates))
	for _, s := range dates {
		d, err := streak.ParseDate(s)
		if err != nil {
			return nil, errors.Join(errorvalues.ErrInvalidDate, err)
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, d)
	}
	return result, nil
}
