package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/gvvenom/likespanel/internal/api/handler"
	mw "github.com/gvvenom/likespanel/internal/api/middleware"
	"github.com/gvvenom/likespanel/internal/config"
	"github.com/gvvenom/likespanel/internal/core"
	"github.com/gvvenom/likespanel/internal/likes"
	"github.com/gvvenom/likespanel/internal/notify"
)

type Server struct {
	router   chi.Router
	logger   zerolog.Logger
	services *core.Services
	pool     *pgxpool.Pool
	cfg      *config.Config
}

func NewServer(logger zerolog.Logger, pool *pgxpool.Pool, cfg *config.Config) *Server {
	notifier := notify.FromURL(cfg.NotifyWebhookURL)
	services := core.NewServices(pool, cfg.SessionSecret, cfg.SessionIssuer, notifier, logger)
	likesClient := likes.NewClient(cfg.LikesAPIURL)

	s := &Server{
		router:   chi.NewRouter(),
		logger:   logger,
		services: services,
		pool:     pool,
		cfg:      cfg,
	}

	s.setupMiddleware()
	s.setupRoutes(likesClient)

	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(mw.RequestLogger(s.logger))
	s.router.Use(chimw.Recoverer)
	s.router.Use(mw.Metrics)
	s.router.Use(mw.CORS(s.cfg.CORSOrigins))
}

func (s *Server) setupRoutes(likesClient *likes.Client) {
	// Prometheus metrics
	s.router.Handle("/metrics", promhttp.Handler())

	// Health checks
	s.router.Get("/healthz", s.handleHealthz)
	s.router.Get("/readyz", s.handleReadyz)

	auth := handler.NewAuth(s.services.Session)
	vip := handler.NewVip(s.services.Account, s.services.Session, likesClient, s.services.APILog, s.cfg.BrandName)
	admin := handler.NewAdmin(s.services.Account, s.services.Session)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/auth/me", auth.Me)
		r.Post("/auth/logout", auth.Logout)

		r.Post("/vip/login", vip.Login)
		r.Post("/vip/logout", vip.Logout)

		r.Group(func(r chi.Router) {
			r.Use(mw.VipAuth(s.services.Session))
			r.Post("/vip/likes", vip.SendLikes)
		})

		r.Post("/admin/login", admin.Login)
		r.Post("/admin/logout", admin.Logout)

		r.Group(func(r chi.Router) {
			r.Use(mw.AdminAuth(s.services.Session))
			r.Get("/admin/users", admin.ListUsers)
			r.Post("/admin/users", admin.AddUser)
			r.Delete("/admin/users/{id}", admin.DeleteUser)
		})
	})
}

func (s *Server) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func (s *Server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	checks := map[string]string{}
	healthy := true

	if err := s.pool.Ping(ctx); err != nil {
		checks["db"] = err.Error()
		healthy = false
	} else {
		checks["db"] = "ok"
	}

	w.Header().Set("Content-Type", "application/json")
	if healthy {
		w.WriteHeader(http.StatusOK)
	} else {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(checks)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}
