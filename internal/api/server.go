package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	mx              *chi.Mux
	userService     service.UserServiceI
	habitService    service.HabitsServiceI
	checksService   service.HabitChecksServiceI
	sourcesService  service.SourcesServiceI
	activityService service.ActivityServiceI
	jwtService      JWTServiceI
	health          HealthChecker
}

type ServicesList struct {
	UserService     service.UserServiceI
	HabitsService   service.HabitsServiceI
	ChecksService   service.HabitChecksServiceI
	SourcesService  service.SourcesServiceI
	ActivityService service.ActivityServiceI
	JWTService      JWTServiceI
	// Health is optional, /healthz only reports the process is up without it
	Health HealthChecker
}

func New(servicesOptions *ServicesList) *Server {
	s := &Server{
		mx:              chi.NewMux(),
		userService:     servicesOptions.UserService,
		habitService:    servicesOptions.HabitsService,
		checksService:   servicesOptions.ChecksService,
		sourcesService:  servicesOptions.SourcesService,
		activityService: servicesOptions.ActivityService,
		jwtService:      servicesOptions.JWTService,
		health:          servicesOptions.Health,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mx.Use(middleware.Recoverer)
	s.mx.Use(s.MetricsMiddleware)
	s.mx.Handle("/metrics", promhttp.Handler())
	s.mx.Get("/healthz", s.Healthz)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.RequestIDMiddleware, s.SettingUpLoggerMiddleware)

		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)

		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware, s.LoggerExtensionMiddleware)

			r.Delete("/account", s.DeleteAccount)

			r.Get("/habits", s.GetHabits)
			r.Post("/habits", s.CreateHabit)
			r.Get("/habits/export", s.ExportHabits)
			r.Post("/habits/import", s.ImportHabits)
			r.Get("/habits/{id}", s.GetHabit)
			r.Patch("/habits/{id}", s.UpdateHabit)
			r.Delete("/habits/{id}", s.DeleteHabit)
			r.Get("/habits/{id}/checks", s.GetHabitChecks)
			r.Put("/habits/{id}/checks/{date}", s.CheckHabit)
			r.Delete("/habits/{id}/checks/{date}", s.UncheckHabit)
			r.Post("/habits/{id}/checks/{date}/toggle", s.ToggleCheck)
			r.Get("/habits/{id}/stats", s.GetHabitStats)
			r.Get("/habits/{id}/grid", s.GetHabitGrid)

			r.Get("/sources", s.ListSources)
			r.Post("/sources", s.AddSource)
			r.Delete("/sources/{id}", s.RemoveSource)

			r.Get("/activity", s.GetActivity)
			r.Post("/activity/refresh", s.RefreshActivity)
			r.Get("/activity/settings", s.GetActivitySettings)
			r.Put("/activity/settings", s.UpdateActivitySettings)
		})
	})
}

func (s *Server) Handler() http.Handler {
	return s.mx
}

// Run serves on addr until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.mx,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		slog.Info("api server started", slog.String("address", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()
	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return errors.New("server shutdown error: " + err.Error())
	}
	slog.Info("api server stopped")
	return nil
}
