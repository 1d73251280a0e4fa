package service

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/habitgrid/internal/activity"
	"github.com/limbo/habitgrid/pkg/entity"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type CreateHabitRequest struct {
	Title       string `validate:"required,max=100"`
	Description string `validate:"max=1000"`
	Color       string `validate:"hexcolor_or_empty"`
	Category    string `validate:"max=50"`
	SortOrder   int    `validate:"min=0"`
}

// UpdateHabitRequest changes only the fields that are set.
type UpdateHabitRequest struct {
	Title       *string `validate:"omitempty,min=1,max=100"`
	Description *string `validate:"omitempty,max=1000"`
	Color       *string `validate:"omitempty,hexcolor_or_empty"`
	Category    *string `validate:"omitempty,max=50"`
	SortOrder   *int    `validate:"omitempty,min=0"`
}

type PaginationOpts struct {
	Limit  int
	Offset int
}

type AddSourceRequest struct {
	Provider entity.Provider `validate:"required,provider"`
	BaseURL  string          `validate:"omitempty,http_url,max=255"`
	Username string          `validate:"required,max=100"`
	Token    string          `validate:"max=512"`
}

// CheckResult is the state of a habit right after one of its days changed.
type CheckResult struct {
	Date          string `json:"date"`
	Checked       bool   `json:"checked"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req UpdateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, userID uuid.UUID) error
	// Dumps every habit of user with its completions
	ExportHabits(ctx context.Context, uid uuid.UUID) ([]entity.HabitExport, error)
	// Creates or replaces habits by title. Returns the number of imported habits
	ImportHabits(ctx context.Context, uid uuid.UUID, habits []entity.HabitExport) (int, error)
}

type HabitChecksServiceI interface {
	// Marks date (YYYY-MM-DD) as completed and recomputes streaks
	CheckHabit(ctx context.Context, habitID, userID uuid.UUID, date string) (*CheckResult, error)
	// Removes completion of date and recomputes streaks
	UncheckHabit(ctx context.Context, habitID, userID uuid.UUID, date string) (*CheckResult, error)
	// Checks date if it is not completed, unchecks otherwise
	ToggleCheck(ctx context.Context, habitID, userID uuid.UUID, date string) (*CheckResult, error)
	GetHabitChecks(ctx context.Context, habitID, userID uuid.UUID, from, to string) ([]entity.HabitCheck, error)
	GetHabitStats(ctx context.Context, habitID, userID uuid.UUID) (*entity.HabitStats, error)
	GetHabitGrid(ctx context.Context, habitID, userID uuid.UUID, days int) ([]entity.GridDay, error)
}

type SourcesServiceI interface {
	AddSource(ctx context.Context, uid uuid.UUID, req AddSourceRequest) (*entity.ActivitySource, error)
	ListSources(ctx context.Context, uid uuid.UUID) ([]*entity.ActivitySource, error)
	RemoveSource(ctx context.Context, uid, id uuid.UUID) error
}

type ActivityServiceI interface {
	// Returns cached activity of user, never reaching providers
	GetActivity(ctx context.Context, uid uuid.UUID) (*entity.ActivityCache, error)
	// Refreshes activity of user unless the cache is fresh or opts.Force is set
	RefreshActivity(ctx context.Context, uid uuid.UUID, opts activity.RefreshOptions) (*entity.ActivityCache, error)
	// Tells whether user has activity aggregation switched on
	ActivityEnabled(ctx context.Context, uid uuid.UUID) (bool, error)
	// Switches activity aggregation of user on or off. Cached activity is kept either way
	SetActivityEnabled(ctx context.Context, uid uuid.UUID, enabled bool) error
}

// TokenCipher keeps provider tokens encrypted at rest.
type TokenCipher interface {
	Encrypt(token string) (string, error)
	Decrypt(enc string) (string, error)
}
