package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitgrid/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database and sets its ID
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Deletes user with everything he owns
	Delete(ctx context.Context, uid uuid.UUID) error
	// Tells whether activity aggregation is switched on for user
	ActivityEnabled(ctx context.Context, uid uuid.UUID) (bool, error)
	// Switches activity aggregation of user on or off
	SetActivityEnabled(ctx context.Context, uid uuid.UUID, enabled bool) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Title and UserID are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user with uid ordered by sort order. Requires pagination params provided
	GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error)
	// Updates editable fields of habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Stores recomputed streaks. Stored longest streak never decreases
	UpdateStreaks(ctx context.Context, id uuid.UUID, current, longest int) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
	// Creates habit or replaces the one with the same title, together with its checks
	Import(ctx context.Context, habit *entity.Habit, dates []time.Time) (uuid.UUID, error)
}

type HabitChecksRepositoryI interface {
	// Creates new check on habit with habitID
	Create(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// Deletes check on habit with habitID (uncheck)
	Delete(ctx context.Context, habitID uuid.UUID, date time.Time) error
	// Inspects if check exists
	Exists(ctx context.Context, habitID uuid.UUID, date time.Time) (bool, error)
	// Provides checks of habitID for a period
	GetByHabitAndDateRange(ctx context.Context, habitID uuid.UUID, from, to time.Time) ([]entity.HabitCheck, error)
	// Returns every checked date of habitID, ascending
	ListDates(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)
	// Returns date of last check on habitID
	GetLastCheckDate(ctx context.Context, habitID uuid.UUID) (*time.Time, error)
	// Returns count of checks for habitID
	CountByHabitID(ctx context.Context, habitID uuid.UUID) (int, error)
}

type SourcesRepositoryI interface {
	// Stores new source and sets its ID and CreatedAt
	Create(ctx context.Context, src *entity.ActivitySource) error
	// Lists sources of user, oldest first
	ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.ActivitySource, error)
	// Deletes source id owned by uid
	Delete(ctx context.Context, uid, id uuid.UUID) error
}

type ActivityCacheRepositoryI interface {
	// Returns nil cache if user never synced
	Load(ctx context.Context, uid uuid.UUID) (*entity.ActivityCache, error)
	// Replaces user's cache
	Save(ctx context.Context, uid uuid.UUID, cache *entity.ActivityCache) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}
