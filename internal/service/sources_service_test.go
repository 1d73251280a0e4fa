package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/habitgrid/internal/activity"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository/mocks"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/tokencrypt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSourcesService(t *testing.T) (*service.SourcesService, *mocks.MockSourcesRepositoryI, *tokencrypt.Cipher) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSourcesRepositoryI(ctrl)
	cipher, err := tokencrypt.New(make([]byte, 32))
	require.NoError(t, err)
	return service.NewSourcesService(repo, cipher), repo, cipher
}

func TestAddSource(t *testing.T) {
	ss, repo, cipher := newSourcesService(t)
	ctx := context.Background()

	t.Run("token stored encrypted", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, src *entity.ActivitySource) error {
			assert.Equal(t, entity.ProviderGitHub, src.Provider)
			assert.NotEqual(t, "ghp_secret", src.EncryptedToken)
			plain, err := cipher.Decrypt(src.EncryptedToken)
			assert.NoError(t, err)
			assert.Equal(t, "ghp_secret", plain)
			src.ID = uuid.New()
			return nil
		})
		src, err := ss.AddSource(ctx, userID, service.AddSourceRequest{
			Provider: " GitHub ",
			Username: "octocat",
			Token:    "ghp_secret",
		})
		require.NoError(t, err)
		assert.Equal(t, userID, src.UserID)
	})
	t.Run("custom host normalized", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, src *entity.ActivitySource) error {
			assert.Equal(t, "https://git.example.com", src.BaseURL)
			assert.Empty(t, src.EncryptedToken)
			return nil
		})
		_, err := ss.AddSource(ctx, userID, service.AddSourceRequest{
			Provider: entity.ProviderCustom,
			BaseURL:  "https://git.example.com/",
			Username: "dev",
		})
		require.NoError(t, err)
	})
	t.Run("custom host without url", func(t *testing.T) {
		_, err := ss.AddSource(ctx, userID, service.AddSourceRequest{Provider: entity.ProviderCustom, Username: "dev"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
		assert.ErrorIs(t, err, activity.ErrMissingBaseURL)
	})
	t.Run("unsupported provider", func(t *testing.T) {
		_, err := ss.AddSource(ctx, userID, service.AddSourceRequest{Provider: "bitbucket", Username: "dev"})
		assert.ErrorIs(t, err, errorvalues.ErrUnsupportedProvider)
	})
	t.Run("bad base url", func(t *testing.T) {
		_, err := ss.AddSource(ctx, userID, service.AddSourceRequest{Provider: entity.ProviderGitea, BaseURL: "not a url", Username: "dev"})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
	t.Run("duplicate", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrSourceExists)
		_, err := ss.AddSource(ctx, userID, service.AddSourceRequest{Provider: entity.ProviderGitLab, Username: "dev"})
		assert.ErrorIs(t, err, errorvalues.ErrSourceExists)
	})
}

func TestRemoveSource(t *testing.T) {
	ss, repo, _ := newSourcesService(t)
	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), userID, id).Return(errorvalues.ErrSourceNotFound)
	assert.ErrorIs(t, ss.RemoveSource(context.Background(), userID, id), errorvalues.ErrSourceNotFound)
}

func TestSourceCredentials(t *testing.T) {
	ss, repo, cipher := newSourcesService(t)
	enc, err := cipher.Encrypt("glpat_token")
	require.NoError(t, err)
	sources := []*entity.ActivitySource{
		{ID: uuid.New(), UserID: userID, Provider: entity.ProviderGitLab, Username: "dev", EncryptedToken: enc},
		{ID: uuid.New(), UserID: userID, Provider: entity.ProviderGitHub, Username: "octo", EncryptedToken: "bm9uY2U=:c2VhbGVk"},
		{ID: uuid.New(), UserID: userID, Provider: entity.ProviderGitea, BaseURL: "https://gitea.com", Username: "anon"},
	}
	repo.EXPECT().ListByUser(gomock.Any(), userID).Return(sources, nil)

	creds, err := ss.ForUser(userID).Credentials(context.Background())
	require.NoError(t, err)
	require.Len(t, creds, 3)
	assert.Equal(t, "glpat_token", creds[0].Token)
	assert.Empty(t, creds[1].Token, "undecryptable token is dropped")
	assert.Equal(t, "octo", creds[1].Username)
	assert.Equal(t, "https://gitea.com", creds[2].BaseURL)

	repo.EXPECT().ListByUser(gomock.Any(), userID).Return(nil, errors.New("db down"))
	_, err = ss.Credentials(context.Background(), userID)
	assert.Error(t, err)
}
