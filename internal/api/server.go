package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"neighbornet/internal/auth"
	"neighbornet/internal/config"
	"neighbornet/internal/core"
)

type Server struct {
	Logger  *slog.Logger
	Config  *config.Config
	Backend *Backend
	Tokens  *auth.Tokens
	Users   core.UserRepository

	server *http.Server
}

func (s *Server) Init(_ context.Context) error {
	s.Logger = s.Logger.With("component", "api.Server")

	s.server = &http.Server{
		Handler:           s.routes(requestValidator()),
		Addr:              s.Config.HTTPAddr,
		ReadHeaderTimeout: time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       time.Minute,
	}
	return nil
}

func (s *Server) Run(_ context.Context) error {
	s.Logger.Info("Starting API server", "addr", s.server.Addr)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// routes builds the router. validate may be nil, then requests reach handlers unchecked.
func (s *Server) routes(validate func(http.Handler) http.Handler) http.Handler {
	r := chi.NewMux()

	r.Use(
		jsonContentType,
		s.withLogger,
		requestLog,
		recoverer,
	)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, errorBody{Error: "Route not found"})
	})

	r.Get("/health", s.Backend.Health)

	r.Route("/api", func(r chi.Router) {
		r.Use(s.authenticate)
		if validate != nil {
			r.Use(validate)
		}

		r.Get("/feed", s.Backend.Feed)
		r.Get("/feed/priority", s.Backend.PriorityFeed)
		r.Get("/feed/search", s.Backend.Search)

		r.Post("/posts", s.Backend.CreatePost)
		r.Get("/posts/tags/all", s.Backend.AllTags)
		r.Get("/posts/{postId}", s.Backend.Post)

		r.Get("/users/profile", s.Backend.Profile)
	})

	return r
}
