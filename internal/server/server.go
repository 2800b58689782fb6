// Package server implements svgtree's HTTP rendering service.
//
// Routes:
//
//	POST   /render          render the scene in the request body
//	POST   /scenes          store a scene, returns its ID
//	GET    /scenes/{id}     render a stored scene
//	GET    /scenes/{id}/preview  HTML page with the drawing and its outline
//	DELETE /scenes/{id}     remove a stored scene
//	GET    /healthz         liveness and build information
//
// The render endpoints take ?format=svg|dot|tree|outline|png, ?attrs=true
// and, for png, ?scale=2. The scene encoding is taken from the Content-Type
// header (application/json, application/toml or application/yaml) and
// sniffed when absent.
//
// Errors are returned as JSON with the error code of pkg/errors; INVALID_*
// codes map to 400 and NOT_FOUND to 404.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/svgtree/pkg/pipeline"
	"github.com/matzehuels/svgtree/pkg/store"
)

// MaxBodySize is the largest scene accepted, in bytes.
const MaxBodySize = 1 << 20

// RequestIDHeader carries the request ID in requests and responses.
const RequestIDHeader = "X-Request-ID"

// Server serves the rendering API.
type Server struct {
	runner *pipeline.Runner
	store  store.Store
	logger *log.Logger
	router chi.Router
}

// New creates a server rendering through runner and keeping scenes in st.
func New(runner *pipeline.Runner, st store.Store, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{runner: runner, store: st, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Route("/scenes", func(r chi.Router) {
		r.Post("/", s.handleCreateScene)
		r.Get("/{id}", s.handleGetScene)
		r.Get("/{id}/preview", s.handlePreview)
		r.Delete("/{id}", s.handleDeleteScene)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		s.writeError(w, r, errNotFound(r))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, errorBody{Error: errorDetail{
			Code:    "METHOD_NOT_ALLOWED",
			Message: r.Method + " not allowed on " + r.URL.Path,
		}})
	})
	return r
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
