package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/habitgrid/pkg/entity"
)

// ActivityCacheRepository keeps one aggregation result per user, daily counts as JSONB.
type ActivityCacheRepository struct {
	conn PgConnection
}

func NewActivityCacheRepoWithConn(conn PgConnection) *ActivityCacheRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for activityCacheRepo: " + err.Error())
	}
	return &ActivityCacheRepository{
		conn: conn,
	}
}

func (cr *ActivityCacheRepository) Load(ctx context.Context, uid uuid.UUID) (*entity.ActivityCache, error) {
	var (
		lastSync *time.Time
		raw      []byte
	)
	row := cr.conn.QueryRow(ctx, `SELECT last_sync, daily_counts FROM activity_cache WHERE user_id = $1;`, uid)
	if err := row.Scan(&lastSync, &raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("loading activity cache error: " + err.Error())
	}
	counts := entity.DailyCounts{}
	if len(raw) > 0 {
		if err := sonic.Unmarshal(raw, &counts); err != nil {
			return nil, errors.New("decoding daily counts error: " + err.Error())
		}
	}
	return &entity.ActivityCache{LastSync: lastSync, DailyCounts: counts}, nil
}

func (cr *ActivityCacheRepository) Save(ctx context.Context, uid uuid.UUID, cache *entity.ActivityCache) error {
	if cache == nil {
		return errors.New("activity cache is nil")
	}
	counts := cache.DailyCounts
	if counts == nil {
		counts = entity.DailyCounts{}
	}
	raw, err := sonic.Marshal(counts)
	if err != nil {
		return errors.New("encoding daily counts error: " + err.Error())
	}
	_, err = cr.conn.Exec(ctx, `INSERT INTO activity_cache (user_id, last_sync, daily_counts) VALUES ($1, $2, $3) 
		ON CONFLICT (user_id) DO UPDATE SET last_sync = EXCLUDED.last_sync, daily_counts = EXCLUDED.daily_counts;`,
		uid, cache.LastSync, string(raw),
	)
	if err != nil {
		return errors.New("saving activity cache error: " + err.Error())
	}
	return nil
}
