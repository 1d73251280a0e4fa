package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/httputil"
)

type RegisterRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CreateHabitRequest struct {
	Title       string `json:"title"`
	Description string `json:"desc"`
	Color       string `json:"color"`
	Category    string `json:"category"`
	SortOrder   int    `json:"sort_order"`
}

type UpdateHabitRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"desc"`
	Color       *string `json:"color"`
	Category    *string `json:"category"`
	SortOrder   *int    `json:"sort_order"`
}

type GetHabitsResponse struct {
	UserID string          `json:"uid"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
	Habits []*entity.Habit `json:"habits"`
}

// HabitsDump is the body of export and import.
type HabitsDump struct {
	Habits []entity.HabitExport `json:"habits"`
}

const (
	defaultTimeout = 10 * time.Second
	defaultLimit   = 10
	maxLimit       = 50
)

// writeServiceError maps domain errors to statuses. Ownership mismatches look like missing habits.
func writeServiceError(w http.ResponseWriter, logger *slog.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidDate),
		errors.Is(err, errorvalues.ErrUnsupportedProvider):
		logger.Error(action+" error: invalid input", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid input", err)
	case errors.Is(err, errorvalues.ErrCheckDateNotAllowed):
		logger.Error(action + " error: date in the future")
		httputil.WriteErrorResponse(w, http.StatusUnprocessableEntity, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(action+" error: habit not found", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
	case errors.Is(err, errorvalues.ErrUserNotFound),
		errors.Is(err, errorvalues.ErrSourceNotFound),
		errors.Is(err, errorvalues.ErrCheckNotFound):
		logger.Error(action + " error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrUserExists),
		errors.Is(err, errorvalues.ErrUserHasHabit),
		errors.Is(err, errorvalues.ErrCheckExist),
		errors.Is(err, errorvalues.ErrSourceExists),
		errors.Is(err, errorvalues.ErrActivityDisabled):
		logger.Error(action + " error: " + err.Error())
		httputil.WriteErrorResponse(w, http.StatusConflict, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Error(action + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
	case errors.Is(err, context.DeadlineExceeded):
		logger.Error(action+" error: timeout", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusGatewayTimeout, "request timed out", nil)
	default:
		logger.Error(action+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error", nil)
	}
}

// authorized fetches the uid put by AuthMiddleware, answering 401 when there is none.
func authorized(w http.ResponseWriter, r *http.Request, logger *slog.Logger, action string) (uuid.UUID, bool) {
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(action + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return uuid.UUID{}, false
	}
	return uid, true
}

func pathUUID(w http.ResponseWriter, r *http.Request, logger *slog.Logger, action, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		logger.Error(action + " error: invalid " + name + " in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid "+name+" in path value", nil)
		return uuid.UUID{}, false
	}
	return id, true
}

func decodeBody(w http.ResponseWriter, r *http.Request, logger *slog.Logger, action string, dst any) bool {
	if err := httputil.ReadJSON(w, r, dst); err != nil {
		logger.Error(action+" error: invalid request body", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return false
	}
	return true
}

func (s *Server) Healthz(w http.ResponseWriter, r *http.Request) {
	if s.health != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := s.health.Ping(ctx); err != nil {
			httputil.WriteErrorResponse(w, http.StatusServiceUnavailable, "database unreachable", err)
			return
		}
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"status": "ok"})
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	if !decodeBody(w, r, logger, "registering", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		writeServiceError(w, logger, "registering", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	if !decodeBody(w, r, logger, "login", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		writeServiceError(w, logger, "login", err)
		return
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "account deletion")
	if !ok {
		return
	}
	var req DeleteAccountRequest
	if !decodeBody(w, r, logger, "account deletion", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.userService.DeleteAccount(ctx, uid, req.Password); err != nil {
		writeServiceError(w, logger, "account deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("account deleted")
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "create habit")
	if !ok {
		return
	}
	var req CreateHabitRequest
	if !decodeBody(w, r, logger, "create habit", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	habit, err := s.habitService.CreateHabit(ctx, uid, service.CreateHabitRequest{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Category:    req.Category,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		writeServiceError(w, logger, "create habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, habit)
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get habits")
	if !ok {
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = defaultLimit
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()
	habits, err := s.habitService.GetUserHabits(ctx, uid, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		writeServiceError(w, logger, "get habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetHabitsResponse{
		UserID: uid.String(),
		Page:   page,
		Limit:  limit,
		Habits: habits,
	})
	logger.Info("habits provided")
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get habit")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "get habit", "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	habit, err := s.habitService.GetHabit(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "update habit")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "update habit", "id")
	if !ok {
		return
	}
	var req UpdateHabitRequest
	if !decodeBody(w, r, logger, "update habit", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	habit, err := s.habitService.UpdateHabit(ctx, id, uid, service.UpdateHabitRequest{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
		Category:    req.Category,
		SortOrder:   req.SortOrder,
	})
	if err != nil {
		writeServiceError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, habit)
	logger.Info("habit updated", slog.String("habit_id", id.String()))
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "habit deletion")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "habit deletion", "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	if err := s.habitService.DeleteHabit(ctx, id, uid); err != nil {
		writeServiceError(w, logger, "habit deletion", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
	logger.Info("habit deleted", slog.String("habit_id", id.String()))
}

func (s *Server) ExportHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "export habits")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	habits, err := s.habitService.ExportHabits(ctx, uid)
	if err != nil {
		writeServiceError(w, logger, "export habits", err)
		return
	}
	w.Header().Set("Content-Disposition", `attachment; filename="habits.json"`)
	httputil.WriteJSONResponse(w, http.StatusOK, HabitsDump{Habits: habits})
	logger.Info("habits exported", slog.Int("count", len(habits)))
}

func (s *Server) ImportHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "import habits")
	if !ok {
		return
	}
	var req HabitsDump
	if !decodeBody(w, r, logger, "import habits", &req) {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()
	n, err := s.habitService.ImportHabits(ctx, uid, req.Habits)
	if err != nil {
		writeServiceError(w, logger, "import habits", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"imported": n})
	logger.Info("habits imported", slog.Int("count", n))
}
