// Package httpapi exposes the services as the dashboard's HTTP JSON API.
// Handlers only parse requests and translate service outcomes into status
// codes; all business logic lives in the services package.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/kanishkgoel/gridboard/internal/logging"
	"github.com/kanishkgoel/gridboard/internal/server/repositories/dataset"
	"github.com/kanishkgoel/gridboard/internal/server/services"
)

// Server hosts the five dashboard endpoints.
type Server struct {
	addr    string
	logger  logging.Logger
	auth    *services.AuthService
	prefs   *services.PreferencesService
	dataset dataset.Source
}

// NewServer wires the router. CORS is wide open, as the dashboard frontend
// is served from another origin in every deployment of the original app.
func NewServer(addr string, logger logging.Logger, auth *services.AuthService,
	prefs *services.PreferencesService, ds dataset.Source) *Server {
	return &Server{
		addr:    addr,
		logger:  logger,
		auth:    auth,
		prefs:   prefs,
		dataset: ds,
	}
}

func (s *Server) router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(s.logRequests)

	r.Post("/register", s.handleRegister)
	r.Post("/login", s.handleLogin)
	r.Post("/savePreferences", s.handleSavePreferences)
	r.Post("/getPreferences", s.handleGetPreferences)
	r.Get("/getTable", s.handleGetTable)
	r.Get("/", s.handleRoot)

	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.router(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	s.logger.Info(ctx, "server listening", "addr", s.addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// statusWriter records the response code for the request log.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(sw, r)

		s.logger.Info(r.Context(), "request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", time.Since(start).String(),
		)
	})
}
