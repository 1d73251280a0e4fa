package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/habitgrid/internal/activity"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/httputil"
)

const refreshTimeout = 2 * time.Minute

type AddSourceRequest struct {
	Provider string `json:"provider"`
	BaseURL  string `json:"base_url"`
	Username string `json:"username"`
	Token    string `json:"token"`
}

// ActivitySettings is both the body and the answer of the settings endpoints.
// Enabled is a pointer so that an empty body is rejected rather than read as false.
type ActivitySettings struct {
	Enabled *bool `json:"enabled"`
}

type SourcesResponse struct {
	Sources []*entity.ActivitySource `json:"sources"`
}

func (s *Server) AddSource(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "add source")
	if !ok {
		return
	}
	var req AddSourceRequest
	if !decodeBody(w, r, logger, "add source", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	src, err := s.sourcesService.AddSource(ctx, uid, service.AddSourceRequest{
		Provider: entity.Provider(req.Provider),
		BaseURL:  req.BaseURL,
		Username: req.Username,
		Token:    req.Token,
	})
	if err != nil {
		writeServiceError(w, logger, "add source", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, src)
	logger.Info("source added", slog.String("source_id", src.ID.String()), slog.String("provider", string(src.Provider)))
}

func (s *Server) ListSources(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "list sources")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	sources, err := s.sourcesService.ListSources(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "list sources", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SourcesResponse{Sources: sources})
}

func (s *Server) RemoveSource(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "remove source")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "remove source", "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.sourcesService.RemoveSource(ctx, uid, id); err != nil {
		writeServiceError(w, logger, "remove source", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("source removed", slog.String("source_id", id.String()))
}

func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get activity")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	cache, err := s.activityService.GetActivity(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cache)
}

// RefreshActivity accepts ?force=true to bypass the cache TTL and ?days=N for the window.
func (s *Server) RefreshActivity(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "refresh activity")
	if !ok {
		return
	}
	var opts activity.RefreshOptions
	if raw := r.URL.Query().Get("force"); raw != "" {
		force, err := strconv.ParseBool(raw)
		if err != nil {
			logger.Error("refresh activity error: invalid force flag")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "force must be a boolean", nil)
			return
		}
		opts.Force = force
	}
	if raw := r.URL.Query().Get("days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil || days < 1 || days > service.MaxGridDays {
			logger.Error("refresh activity error: invalid days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days out of range", nil)
			return
		}
		opts.Days = days
	}
	ctx, cancel := context.WithTimeout(r.Context(), refreshTimeout)
	defer cancel()
	cache, err := s.activityService.RefreshActivity(ctx, uid, opts)
	if err != nil {
		writeServiceError(w, logger, "refresh activity", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, cache)
	logger.Info("activity provided", slog.Bool("force", opts.Force), slog.Int("days", len(cache.DailyCounts)))
}

func (s *Server) GetActivitySettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get activity settings")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	enabled, err := s.activityService.ActivityEnabled(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "get activity settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ActivitySettings{Enabled: &enabled})
}

func (s *Server) UpdateActivitySettings(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "update activity settings")
	if !ok {
		return
	}
	var req ActivitySettings
	if !decodeBody(w, r, logger, "update activity settings", &req) {
		return
	}
	if req.Enabled == nil {
		logger.Error("update activity settings error: enabled is missing")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "enabled is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.activityService.SetActivityEnabled(ctx, uid, *req.Enabled); err != nil {
		writeServiceError(w, logger, "update activity settings", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, req)
	logger.Info("activity settings updated", slog.Bool("enabled", *req.Enabled))
}
