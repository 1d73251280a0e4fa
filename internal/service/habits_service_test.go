package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository/mocks"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/clock"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/streak"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

// Variables for tests
var (
	userID  = uuid.New()
	habitID = uuid.New()
	testNow = time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
)

func date(s string) time.Time {
	d, err := streak.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func dates(ss ...string) []time.Time {
	result := make([]time.Time, 0, len(ss))
	for _, s := range ss {
		result = append(result, date(s))
	}
	return result
}

func testHabit() *entity.Habit {
	return &entity.Habit{
		ID:          habitID,
		UserID:      userID,
		Title:       "test_habit",
		Description: "test_description",
		CreatedAt:   testNow,
		UpdatedAt:   testNow,
	}
}

func newHabitsService(t *testing.T) (*service.HabitsService, *mocks.MockHabitsRepositoryI, *mocks.MockHabitChecksRepositoryI) {
	ctrl := gomock.NewController(t)
	habits := mocks.NewMockHabitsRepositoryI(ctrl)
	checks := mocks.NewMockHabitChecksRepositoryI(ctrl)
	return service.NewHabitsService(habits, checks, clock.Fixed(testNow)), habits, checks
}

func TestCreateHabit(t *testing.T) {
	hs, habits, _ := newHabitsService(t)
	ctx := context.Background()
	req := service.CreateHabitRequest{
		Title:       "  test_habit ",
		Description: "test_description",
		Color:       "#22c55e",
		Category:    "health",
	}

	testCases := []struct {
		Desc         string
		Req          service.CreateHabitRequest
		MockPrepFunc func()
		ExpectedErr  error
	}{
		{
			Desc: "created",
			Req:  req,
			MockPrepFunc: func() {
				habits.EXPECT().Create(gomock.Any(), &entity.Habit{
					UserID:      userID,
					Title:       "test_habit",
					Description: "test_description",
					Color:       "#22c55e",
					Category:    "health",
				}).Return(habitID, nil)
				habits.EXPECT().GetByID(gomock.Any(), habitID).Return(testHabit(), nil)
			},
		},
		{
			Desc: "owner not found",
			Req:  req,
			MockPrepFunc: func() {
				habits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrOwnerNotFound)
			},
			ExpectedErr: errorvalues.ErrUserNotFound,
		},
		{
			Desc: "duplicate title",
			Req:  req,
			MockPrepFunc: func() {
				habits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrUserHasHabit)
			},
			ExpectedErr: errorvalues.ErrUserHasHabit,
		},
		{
			Desc:         "blank title",
			Req:          service.CreateHabitRequest{Title: "   "},
			MockPrepFunc: func() {},
			ExpectedErr:  errorvalues.ErrValidation,
		},
		{
			Desc:         "bad color",
			Req:          service.CreateHabitRequest{Title: "run", Color: "green"},
			MockPrepFunc: func() {},
			ExpectedErr:  errorvalues.ErrValidation,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			habit, err := hs.CreateHabit(ctx, userID, tc.Req)
			if tc.ExpectedErr != nil {
				assert.ErrorIs(t, err, tc.ExpectedErr)
				assert.Nil(t, habit)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, habitID, habit.ID)
		})
	}

	t.Run("repository error", func(t *testing.T) {
		habits.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errors.New("connection reset"))
		_, err := hs.CreateHabit(ctx, userID, req)
		require.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestHabitOwnership(t *testing.T) {
	hs, habits, _ := newHabitsService(t)
	ctx := context.Background()
	stranger := uuid.New()

	t.Run("get own habit", func(t *testing.T) {
		habits.EXPECT().GetByID(gomock.Any(), habitID).Return(testHabit(), nil)
		habit, err := hs.GetHabit(ctx, habitID, userID)
		require.NoError(t, err)
		assert.Equal(t, "test_habit", habit.Title)
	})
	t.Run("get foreign habit", func(t *testing.T) {
		habits.EXPECT().GetByID(gomock.Any(), habitID).Return(testHabit(), nil)
		_, err := hs.GetHabit(ctx, habitID, stranger)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("get missing habit", func(t *testing.T) {
		habits.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
		_, err := hs.GetHabit(ctx, habitID, userID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("delete foreign habit", func(t *testing.T) {
		habits.EXPECT().GetByID(gomock.Any(), habitID).Return(testHabit(), nil)
		err := hs.DeleteHabit(ctx, habitID, stranger)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
	t.Run("delete own habit", func(t *testing.T) {
		habits.EXPECT().GetByID(gomock.Any(), habitID).Return(testHabit(), nil)
		habits.EXPECT().Delete(gomock.Any(), habitID).Return(nil)
		assert.NoError(t, hs.DeleteHabit(ctx, habitID, userID))
	})
}

func TestUpdateHabit(t *testing.T) {
	hs, habits, _ := newHabitsService(t)
	ctx := context.Background()
	title := " read "
	order := 3

	t.Run("only set fields change", func(t *testing.T) {
		habits.EXPECT().GetByID(gomock.Any(), habitID).Return(testHabit(), nil)
		habits.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *entity.Habit) error {
			assert.Equal(t, "read", h.Title)
			assert.Equal(t, "test_description", h.Description)
			assert.Equal(t, 3, h.SortOrder)
			return nil
		})
		habit, err := hs.UpdateHabit(ctx, habitID, userID, service.UpdateHabitRequest{Title: &title, SortOrder: &order})
		require.NoError(t, err)
		assert.Equal(t, "read", habit.Title)
	})
	t.Run("title taken", func(t *testing.T) {
		habits.EXPECT().GetByID(gomock.Any(), habitID).Return(testHabit(), nil)
		habits.EXPECT().Update(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserHasHabit)
		_, err := hs.UpdateHabit(ctx, habitID, userID, service.UpdateHabitRequest{Title: &title})
		assert.ErrorIs(t, err, errorvalues.ErrUserHasHabit)
	})
	t.Run("invalid color", func(t *testing.T) {
		color := "#zzz"
		_, err := hs.UpdateHabit(ctx, habitID, userID, service.UpdateHabitRequest{Color: &color})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestGetUserHabits(t *testing.T) {
	hs, habits, _ := newHabitsService(t)
	habits.EXPECT().GetByUserID(gomock.Any(), userID, 10, 20).Return([]*entity.Habit{testHabit()}, nil)
	result, err := hs.GetUserHabits(context.Background(), userID, service.PaginationOpts{Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Len(t, result, 1)
}

func TestExportHabits(t *testing.T) {
	hs, habits, checks := newHabitsService(t)
	second := testHabit()
	second.ID = uuid.New()
	second.Title = "second"

	habits.EXPECT().GetByUserID(gomock.Any(), userID, 100, 0).Return([]*entity.Habit{testHabit(), second}, nil)
	checks.EXPECT().ListDates(gomock.Any(), habitID).Return(dates("2024-06-13", "2024-06-14"), nil)
	checks.EXPECT().ListDates(gomock.Any(), second.ID).Return(nil, nil)

	exported, err := hs.ExportHabits(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, exported, 2)
	assert.Equal(t, []string{"2024-06-13", "2024-06-14"}, exported[0].Completions)
	assert.Equal(t, "second", exported[1].Title)
	assert.Empty(t, exported[1].Completions)
}

func TestImportHabits(t *testing.T) {
	hs, habits, _ := newHabitsService(t)
	ctx := context.Background()

	t.Run("imports with recomputed streaks", func(t *testing.T) {
		in := []entity.HabitExport{
			{
				Habit:       entity.Habit{Title: "run", LongestStreak: 10, CurrentStreak: 99},
				Completions: []string{"2024-06-13", "2024-06-14", "2024-06-14"},
			},
			{
				Habit:       entity.Habit{Title: "read"},
				Completions: []string{"2024-06-01"},
			},
		}
		habits.EXPECT().Import(gomock.Any(), gomock.Any(), dates("2024-06-13", "2024-06-14")).
			DoAndReturn(func(_ context.Context, h *entity.Habit, _ []time.Time) (uuid.UUID, error) {
				assert.Equal(t, userID, h.UserID)
				assert.Equal(t, 2, h.CurrentStreak)
				assert.Equal(t, 10, h.LongestStreak)
				return uuid.New(), nil
			})
		habits.EXPECT().Import(gomock.Any(), gomock.Any(), dates("2024-06-01")).
			DoAndReturn(func(_ context.Context, h *entity.Habit, _ []time.Time) (uuid.UUID, error) {
				assert.Equal(t, 0, h.CurrentStreak)
				assert.Equal(t, 1, h.LongestStreak)
				return uuid.New(), nil
			})
		n, err := hs.ImportHabits(ctx, userID, in)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})
	t.Run("bad entry imports nothing", func(t *testing.T) {
		in := []entity.HabitExport{
			{Habit: entity.Habit{Title: "run"}, Completions: []string{"2024-06-13"}},
			{Habit: entity.Habit{Title: "read"}, Completions: []string{"13.06.2024"}},
		}
		n, err := hs.ImportHabits(ctx, userID, in)
		assert.ErrorIs(t, err, errorvalues.ErrInvalidDate)
		assert.Zero(t, n)
	})
	t.Run("future completion", func(t *testing.T) {
		in := []entity.HabitExport{
			{Habit: entity.Habit{Title: "run"}, Completions: []string{"2024-06-16"}},
		}
		_, err := hs.ImportHabits(ctx, userID, in)
		assert.ErrorIs(t, err, errorvalues.ErrCheckDateNotAllowed)
	})
	t.Run("missing title", func(t *testing.T) {
		_, err := hs.ImportHabits(ctx, userID, []entity.HabitExport{{}})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}
