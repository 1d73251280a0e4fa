package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/pkg/entity"
)

const habitColumns = `id, user_id, title, description, color, category, sort_order, current_streak, longest_streak, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func scanHabit(row pgx.Row, h *entity.Habit) error {
	return row.Scan(&h.ID, &h.UserID, &h.Title, &h.Description, &h.Color, &h.Category,
		&h.SortOrder, &h.CurrentStreak, &h.LongestStreak, &h.CreatedAt, &h.UpdatedAt)
}

func habitWriteError(prefix string, err error) error {
	switch pgErrCode(err) {
	case codeUniqueViolation:
		return errorvalues.ErrUserHasHabit
	case codeForeignKeyViolation:
		return errorvalues.ErrOwnerNotFound
	}
	return errors.New(prefix + err.Error())
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, title, description, color, category, sort_order) 
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id;`,
		habit.UserID,
		habit.Title,
		habit.Description,
		habit.Color,
		habit.Category,
		habit.SortOrder,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, habitWriteError("creating habit db error: ", err)
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	var habit entity.Habit
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	if err := scanHabit(row, &habit); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit by id error: " + err.Error())
	}
	return &habit, nil
}

func (hr *HabitsRepository) GetByUserID(ctx context.Context, uid uuid.UUID, limit, offset int) ([]*entity.Habit, error) {
	habits := make([]*entity.Habit, 0)
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` 
		FROM habits WHERE user_id = $1 ORDER BY sort_order, created_at LIMIT $2 OFFSET $3;`, uid, limit, offset)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		h := entity.Habit{}
		if err = scanHabit(rows, &h); err != nil {
			return nil, errors.New("unmarshalling habit error: " + err.Error())
		}
		habits = append(habits, &h)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning: " + err.Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET title = $1, description = $2, color = $3, category = $4, sort_order = $5, updated_at = NOW() WHERE id = $6;`,
		habit.Title, habit.Description, habit.Color, habit.Category, habit.SortOrder, habit.ID,
	)
	if err != nil {
		return habitWriteError("error updating habit: ", err)
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) UpdateStreaks(ctx context.Context, id uuid.UUID, current, longest int) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET current_streak = $1, longest_streak = GREATEST(longest_streak, $2), updated_at = NOW() WHERE id = $3;`,
		current, longest, id,
	)
	if err != nil {
		return errors.New("error updating streaks: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `DELETE FROM habits WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deleting habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

// Import upserts habit by (user_id, title) and replaces its checks with dates in one transaction.
// Streaks are taken from habit as is.
func (hr *HabitsRepository) Import(ctx context.Context, habit *entity.Habit, dates []time.Time) (uuid.UUID, error) {
	tx, err := hr.conn.Begin(ctx)
	if err != nil {
		return uuid.Nil, errors.New("beginning import tx error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var id uuid.UUID
	row := tx.QueryRow(ctx, `INSERT INTO habits (user_id, title, description, color, category, sort_order, current_streak, longest_streak) 
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) 
		ON CONFLICT (user_id, title) DO UPDATE SET description = EXCLUDED.description, color = EXCLUDED.color, 
		category = EXCLUDED.category, sort_order = EXCLUDED.sort_order, current_streak = EXCLUDED.current_streak, 
		longest_streak = EXCLUDED.longest_streak, updated_at = NOW() RETURNING id;`,
		habit.UserID, habit.Title, habit.Description, habit.Color, habit.Category, habit.SortOrder,
		habit.CurrentStreak, habit.LongestStreak,
	)
	if err = row.Scan(&id); err != nil {
		return uuid.Nil, habitWriteError("importing habit error: ", err)
	}
	if _, err = tx.Exec(ctx, `DELETE FROM habit_checks WHERE habit_id = $1;`, id); err != nil {
		return uuid.Nil, errors.New("clearing imported habit checks error: " + err.Error())
	}
	if len(dates) > 0 {
		_, err = tx.Exec(ctx, `INSERT INTO habit_checks (habit_id, check_date) SELECT $1, unnest($2::date[]) ON CONFLICT DO NOTHING;`, id, dates)
		if err != nil {
			return uuid.Nil, errors.New("importing habit checks error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return uuid.Nil, errors.New("committing import tx error: " + err.Error())
	}
	return id, nil
}
