package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSource(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSourcesRepoWithConn(mock)
	query := regexp.QuoteMeta(`INSERT INTO activity_sources (user_id, provider, base_url, username, token_enc)`)
	created := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	sid := uuid.New()
	newSource := func() *entity.ActivitySource {
		return &entity.ActivitySource{
			UserID:         userID,
			Provider:       entity.ProviderGitea,
			BaseURL:        "https://codeberg.org",
			Username:       "dev",
			EncryptedToken: "bm9uY2U=:c2VhbGVk",
		}
	}
	args := func(s *entity.ActivitySource) []any {
		return []any{s.UserID, "gitea", s.BaseURL, s.Username, s.EncryptedToken}
	}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func(s *entity.ActivitySource)
	}{
		{
			Desc: "success",
			MockPrepFunc: func(s *entity.ActivitySource) {
				mock.ExpectQuery(query).WithArgs(args(s)...).
					WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(sid, created))
			},
		},
		{
			Desc:  "duplicate source",
			Error: errorvalues.ErrSourceExists,
			MockPrepFunc: func(s *entity.ActivitySource) {
				mock.ExpectQuery(query).WithArgs(args(s)...).WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "unknown user",
			Error: errorvalues.ErrUserNotFound,
			MockPrepFunc: func(s *entity.ActivitySource) {
				mock.ExpectQuery(query).WithArgs(args(s)...).WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating source db error: db error"),
			MockPrepFunc: func(s *entity.ActivitySource) {
				mock.ExpectQuery(query).WithArgs(args(s)...).WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			src := newSource()
			tc.MockPrepFunc(src)
			err := repo.Create(ctx, src)
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, sid, src.ID)
			assert.Equal(t, created, src.CreatedAt)
		})
	}
}

func TestListSources(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSourcesRepoWithConn(mock)
	query := regexp.QuoteMeta(`FROM activity_sources WHERE user_id = $1 ORDER BY created_at;`)
	created := time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC)
	sources := []*entity.ActivitySource{
		{ID: uuid.New(), UserID: userID, Provider: entity.ProviderGitHub, Username: "octo", CreatedAt: created},
		{ID: uuid.New(), UserID: userID, Provider: entity.ProviderCustom, BaseURL: "https://git.example.org", Username: "me", EncryptedToken: "x:y", CreatedAt: created.Add(time.Minute)},
	}
	columns := []string{"id", "user_id", "provider", "base_url", "username", "token_enc", "created_at"}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		for _, s := range sources {
			rows.AddRow(s.ID, s.UserID, string(s.Provider), s.BaseURL, s.Username, s.EncryptedToken, s.CreatedAt)
		}
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(rows)
		result, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Equal(t, sources, result)
	})
	t.Run("none", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows(columns))
		result, err := repo.ListByUser(ctx, userID)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID).WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, userID)
		assert.EqualError(t, err, "listing sources error: db error")
	})
}

func TestDeleteSource(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewSourcesRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM activity_sources WHERE id = $1 AND user_id = $2;`)
	sid := uuid.New()
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(sid, userID).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, userID, sid))
	})
	t.Run("someone else's source", func(t *testing.T) {
		other := uuid.New()
		mock.ExpectExec(query).WithArgs(sid, other).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, other, sid), errorvalues.ErrSourceNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(sid, userID).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, userID, sid))
	})
}
