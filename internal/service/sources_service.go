package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/limbo/habitgrid/internal/activity"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/repository"
	"github.com/limbo/habitgrid/pkg/entity"
)

type SourcesService struct {
	repo   repository.SourcesRepositoryI
	cipher TokenCipher
}

func NewSourcesService(repo repository.SourcesRepositoryI, cipher TokenCipher) *SourcesService {
	if repo == nil || cipher == nil {
		log.Fatal("provided nil dependencies for sources service")
	}
	return &SourcesService{
		repo:   repo,
		cipher: cipher,
	}
}

func (ss *SourcesService) AddSource(ctx context.Context, uid uuid.UUID, req AddSourceRequest) (*entity.ActivitySource, error) {
	req.Provider = entity.Provider(strings.ToLower(strings.TrimSpace(string(req.Provider))))
	req.BaseURL = strings.TrimRight(strings.TrimSpace(req.BaseURL), "/")
	req.Username = strings.TrimSpace(req.Username)
	req.Token = strings.TrimSpace(req.Token)
	if !IsSupportedProvider(req.Provider) {
		return nil, errorvalues.ErrUnsupportedProvider
	}
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	if req.Provider == entity.ProviderCustom && req.BaseURL == "" {
		return nil, errors.Join(errorvalues.ErrValidation, activity.ErrMissingBaseURL)
	}
	src := &entity.ActivitySource{
		UserID:   uid,
		Provider: req.Provider,
		BaseURL:  req.BaseURL,
		Username: req.Username,
	}
	if req.Token != "" {
		enc, err := ss.cipher.Encrypt(req.Token)
		if err != nil {
			return nil, errors.New("encrypting token error: " + err.Error())
		}
		src.EncryptedToken = enc
	}
	if err := ss.repo.Create(ctx, src); err != nil {
		if errors.Is(err, errorvalues.ErrSourceExists) || errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("sources repository error: " + err.Error())
	}
	return src, nil
}

func (ss *SourcesService) ListSources(ctx context.Context, uid uuid.UUID) ([]*entity.ActivitySource, error) {
	sources, err := ss.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("sources repository error: " + err.Error())
	}
	return sources, nil
}

func (ss *SourcesService) RemoveSource(ctx context.Context, uid, id uuid.UUID) error {
	if err := ss.repo.Delete(ctx, uid, id); err != nil {
		if errors.Is(err, errorvalues.ErrSourceNotFound) {
			return err
		}
		return errors.New("sources repository error: " + err.Error())
	}
	return nil
}

// Credentials returns the sources of uid with decrypted tokens. A token that
// can't be decrypted is dropped and the source is queried anonymously.
func (ss *SourcesService) Credentials(ctx context.Context, uid uuid.UUID) ([]activity.Credentials, error) {
	sources, err := ss.ListSources(ctx, uid)
	if err != nil {
		return nil, err
	}
	creds := make([]activity.Credentials, 0, len(sources))
	for _, src := range sources {
		token := ""
		if src.EncryptedToken != "" {
			token, err = ss.cipher.Decrypt(src.EncryptedToken)
			if err != nil {
				slog.Warn("source token can't be decrypted, using none",
					slog.String("source_id", src.ID.String()),
					slog.String("error", err.Error()),
				)
				token = ""
			}
		}
		creds = append(creds, activity.Credentials{
			SourceID: src.ID,
			Provider: src.Provider,
			BaseURL:  src.BaseURL,
			Username: src.Username,
			Token:    token,
		})
	}
	return creds, nil
}

// ForUser binds the service to one user's activity grid.
func (ss *SourcesService) ForUser(uid uuid.UUID) activity.SourceStore {
	return userSources{serv: ss, uid: uid}
}

type userSources struct {
	serv *SourcesService
	uid  uuid.UUID
}

func (us userSources) Credentials(ctx context.Context) ([]activity.Credentials, error) {
	return us.serv.Credentials(ctx, us.uid)
}
