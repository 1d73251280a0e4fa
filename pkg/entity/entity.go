package entity

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Habit struct {
	ID            uuid.UUID `json:"id"`
	UserID        uuid.UUID `json:"uid"`
	Title         string    `json:"title"`
	Description   string    `json:"desc"`
	Color         string    `json:"color"`
	Category      string    `json:"category"`
	SortOrder     int       `json:"sort_order"`
	CurrentStreak int       `json:"current_streak"`
	LongestStreak int       `json:"longest_streak"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type HabitCheck struct {
	ID        int       `json:"id"`
	HabitID   uuid.UUID `json:"habit_id"`
	CheckDate time.Time `json:"check_date"`
	CreatedAt time.Time `json:"created_at"`
}

type HabitStats struct {
	ID            uuid.UUID  `json:"habit_id"`
	TotalChecks   int        `json:"total_checks"`
	CurrentStreak int        `json:"current_streak"`
	MaxStreak     int        `json:"max_streak"`
	LastCheck     *time.Time `json:"last_check,omitempty"`
	FrozenDays    []string   `json:"frozen_days"`
}

// GridDay is one cell of a habit's calendar grid.
type GridDay struct {
	Date      string  `json:"date"`
	Completed bool    `json:"completed"`
	Frozen    bool    `json:"frozen"`
	Intensity float64 `json:"intensity"`
}

// HabitExport is the unit of habits export/import.
type HabitExport struct {
	Habit
	Completions []string `json:"completions"`
}

type Provider string

const (
	ProviderGitHub  Provider = "github"
	ProviderGitLab  Provider = "gitlab"
	ProviderGitea   Provider = "gitea"
	ProviderForgejo Provider = "forgejo"
	ProviderCustom  Provider = "custom"
)

// ActivitySource is an external hosting account contributing to the activity grid.
// EncryptedToken is never sent to clients.
type ActivitySource struct {
	ID             uuid.UUID `json:"id"`
	UserID         uuid.UUID `json:"uid"`
	Provider       Provider  `json:"provider"`
	BaseURL        string    `json:"base_url"`
	Username       string    `json:"username"`
	EncryptedToken string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}

// DailyCounts maps YYYY-MM-DD to the number of push-like events on that day.
type DailyCounts map[string]int

type ActivityCache struct {
	LastSync    *time.Time  `json:"last_sync"`
	DailyCounts DailyCounts `json:"daily_counts"`
}
