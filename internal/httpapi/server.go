package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Router assembles the API surface on a chi mux.
func Router(h *Handler, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.Get("/health", h.health)

	r.Route("/jobs", func(r chi.Router) {
		r.Get("/", h.listJobs)
		r.Get("/filters", h.jobFilters)
		r.Post("/search", h.searchJobs)
		r.Get("/{id}", h.getJob)
		r.Get("/{id}/email", h.getJobEmail)
	})

	r.Get("/templates", h.listTemplates)

	r.Route("/tools", func(r chi.Router) {
		r.Post("/language-plan", h.languagePlan)
		r.Post("/cultural-fit", h.culturalFit)
		r.Post("/career-path", h.careerPath)
	})

	r.Route("/progress", func(r chi.Router) {
		r.Post("/events", h.recordProgress)
		r.Get("/{sessionID}", h.getProgress)
	})

	r.Route("/track", func(r chi.Router) {
		r.Post("/reports", h.recordReport)
		r.Get("/reports", h.recentReports)
	})

	return r
}

// Server wraps the http.Server lifecycle for fx.
type Server struct {
	logger *zap.Logger
	server *http.Server
}

func NewServer(logger *zap.Logger, handler http.Handler, bindAddr string) *Server {
	return &Server{
		logger: logger,
		server: &http.Server{
			Addr:              bindAddr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}
}

func (s *Server) Register(lc fx.Lifecycle) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			s.logger.Info("starting http server", zap.String("addr", s.server.Addr))
			go func() {
				if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					s.logger.Error("http server failed", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.logger.Info("stopping http server")
			return s.server.Shutdown(ctx)
		},
	})
}
