package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository/mocks"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const (
	userName = "test_user"
	password = "test_password"
)

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()

	t.Run("registered", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
			assert.Equal(t, userName, u.Name)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)))
			u.ID = userID
			return nil
		})
		user, err := us.Register(ctx, &service.RegisterRequest{Name: userName, Password: password})
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
	t.Run("name taken", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
		_, err := us.Register(ctx, &service.RegisterRequest{Name: userName, Password: password})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("repository error", func(t *testing.T) {
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("connection refused"))
		_, err := us.Register(ctx, &service.RegisterRequest{Name: userName, Password: password})
		require.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrUserExists)
	})

	invalid := []struct {
		Desc string
		Req  service.RegisterRequest
	}{
		{Desc: "short name", Req: service.RegisterRequest{Name: "ab", Password: password}},
		{Desc: "name starts with digit", Req: service.RegisterRequest{Name: "1user", Password: password}},
		{Desc: "name with dash", Req: service.RegisterRequest{Name: "test-user", Password: password}},
		{Desc: "short password", Req: service.RegisterRequest{Name: userName, Password: "1234"}},
	}
	for _, tc := range invalid {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := us.Register(ctx, &tc.Req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash(password)
	require.NoError(t, err)
	stored := &entity.User{ID: userID, Name: userName, PasswordHash: hash}

	t.Run("logged in", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), userName).Return(stored, nil)
		user, err := us.Login(ctx, userName, password)
		require.NoError(t, err)
		assert.Equal(t, userID, user.ID)
	})
	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), userName).Return(stored, nil)
		_, err := us.Login(ctx, userName, password+"1")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("unknown user", func(t *testing.T) {
		repo.EXPECT().FindByName(gomock.Any(), "nobody").Return(nil, errorvalues.ErrUserNotFound)
		_, err := us.Login(ctx, "nobody", password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}

func TestDeleteAccount(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	ctx := context.Background()
	hash, err := service.Hash(password)
	require.NoError(t, err)
	stored := &entity.User{ID: userID, Name: userName, PasswordHash: hash}

	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), userID).Return(stored, nil)
		repo.EXPECT().Delete(gomock.Any(), userID).Return(nil)
		assert.NoError(t, us.DeleteAccount(ctx, userID, password))
	})
	t.Run("wrong password keeps account", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), userID).Return(stored, nil)
		err := us.DeleteAccount(ctx, userID, "not_the_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("already deleted", func(t *testing.T) {
		missing := uuid.New()
		repo.EXPECT().FindByID(gomock.Any(), missing).Return(nil, errorvalues.ErrUserNotFound)
		err := us.DeleteAccount(ctx, missing, password)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
}
