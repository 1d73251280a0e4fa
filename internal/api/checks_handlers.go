package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/pkg/entity"
	"github.com/limbo/habitgrid/pkg/httputil"
)

type GridResponse struct {
	HabitID uuid.UUID        `json:"habit_id"`
	Days    []entity.GridDay `json:"days"`
}

type ChecksResponse struct {
	HabitID uuid.UUID           `json:"habit_id"`
	From    string              `json:"from"`
	To      string              `json:"to"`
	Checks  []entity.HabitCheck `json:"checks"`
}

type checkFunc func(ctx context.Context, habitID, userID uuid.UUID, date string) (*service.CheckResult, error)

// changeCheck runs one of the check mutations on /habits/{id}/checks/{date}.
func (s *Server) changeCheck(w http.ResponseWriter, r *http.Request, action string, change checkFunc) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, action)
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, action, "id")
	if !ok {
		return
	}
	date := r.PathValue("date")
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	res, err := change(ctx, id, uid, date)
	if err != nil {
		writeServiceError(w, logger, action, err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info(action+" done",
		slog.String("habit_id", id.String()),
		slog.String("date", res.Date),
		slog.Bool("checked", res.Checked),
	)
}

func (s *Server) CheckHabit(w http.ResponseWriter, r *http.Request) {
	s.changeCheck(w, r, "check habit", s.checksService.CheckHabit)
}

func (s *Server) UncheckHabit(w http.ResponseWriter, r *http.Request) {
	s.changeCheck(w, r, "uncheck habit", s.checksService.UncheckHabit)
}

func (s *Server) ToggleCheck(w http.ResponseWriter, r *http.Request) {
	s.changeCheck(w, r, "toggle check", s.checksService.ToggleCheck)
}

func (s *Server) GetHabitChecks(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get checks")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "get checks", "id")
	if !ok {
		return
	}
	from, to := r.URL.Query().Get("from"), r.URL.Query().Get("to")
	if from == "" || to == "" {
		logger.Error("get checks error: missing range")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "from and to are required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	checks, err := s.checksService.GetHabitChecks(ctx, id, uid, from, to)
	if err != nil {
		writeServiceError(w, logger, "get checks", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ChecksResponse{
		HabitID: id,
		From:    from,
		To:      to,
		Checks:  checks,
	})
}

func (s *Server) GetHabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get stats")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "get stats", "id")
	if !ok {
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	stats, err := s.checksService.GetHabitStats(ctx, id, uid)
	if err != nil {
		writeServiceError(w, logger, "get stats", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetHabitGrid(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, ok := authorized(w, r, logger, "get grid")
	if !ok {
		return
	}
	id, ok := pathUUID(w, r, logger, "get grid", "id")
	if !ok {
		return
	}
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		var err error
		days, err = strconv.Atoi(raw)
		if err != nil || days < 1 {
			logger.Error("get grid error: invalid days")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "days must be a positive number", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(r.Context(), defaultTimeout)
	defer cancel()
	grid, err := s.checksService.GetHabitGrid(ctx, id, uid, days)
	if err != nil {
		writeServiceError(w, logger, "get grid", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GridResponse{HabitID: id, Days: grid})
}
