package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/pkg/entity"
)

type SourcesRepository struct {
	conn PgConnection
}

func NewSourcesRepoWithConn(conn PgConnection) *SourcesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for sourcesRepo: " + err.Error())
	}
	return &SourcesRepository{
		conn: conn,
	}
}

func (sr *SourcesRepository) Create(ctx context.Context, src *entity.ActivitySource) error {
	row := sr.conn.QueryRow(ctx, `INSERT INTO activity_sources (user_id, provider, base_url, username, token_enc) 
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at;`,
		src.UserID,
		string(src.Provider),
		src.BaseURL,
		src.Username,
		src.EncryptedToken,
	)
	if err := row.Scan(&src.ID, &src.CreatedAt); err != nil {
		switch pgErrCode(err) {
		case codeUniqueViolation:
			return errorvalues.ErrSourceExists
		case codeForeignKeyViolation:
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating source db error: " + err.Error())
	}
	return nil
}

func (sr *SourcesRepository) ListByUser(ctx context.Context, uid uuid.UUID) ([]*entity.ActivitySource, error) {
	rows, err := sr.conn.Query(ctx, `SELECT id, user_id, provider, base_url, username, token_enc, created_at 
		FROM activity_sources WHERE user_id = $1 ORDER BY created_at;`, uid)
	if err != nil {
		return nil, errors.New("listing sources error: " + err.Error())
	}
	defer rows.Close()
	sources := make([]*entity.ActivitySource, 0)
	for rows.Next() {
		var (
			src      entity.ActivitySource
			provider string
		)
		if err = rows.Scan(&src.ID, &src.UserID, &provider, &src.BaseURL, &src.Username, &src.EncryptedToken, &src.CreatedAt); err != nil {
			return nil, errors.New("source row parsing error: " + err.Error())
		}
		src.Provider = entity.Provider(provider)
		sources = append(sources, &src)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected source rows error: " + err.Error())
	}
	return sources, nil
}

func (sr *SourcesRepository) Delete(ctx context.Context, uid, id uuid.UUID) error {
	ct, err := sr.conn.Exec(ctx, `DELETE FROM activity_sources WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting source error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrSourceNotFound
	}
	return nil
}
