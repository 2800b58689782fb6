package server

import (
	"io"
	"mime"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/svgtree/pkg/buildinfo"
	"github.com/matzehuels/svgtree/pkg/errors"
	"github.com/matzehuels/svgtree/pkg/pipeline"
	"github.com/matzehuels/svgtree/pkg/scene"
)

type healthResponse struct {
	Status string         `json:"status"`
	Build  buildinfo.Info `json:"build"`
}

type sceneResponse struct {
	ID        string `json:"id"`
	Format    string `json:"format"`
	CreatedAt string `json:"created_at"`
	Nodes     int    `json:"nodes"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Build: buildinfo.Get()})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, format, err := readScene(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := renderOptions(r, format)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, body, opts)
}

func (s *Server) handleCreateScene(w http.ResponseWriter, r *http.Request) {
	body, format, err := readScene(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if format == "" {
		format = scene.DetectFormat("", body)
	}

	// Reject scenes that would never render.
	doc, err := s.runner.Build(r.Context(), body, pipeline.Options{Scene: format})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	rec, err := s.store.Put(r.Context(), string(format), body)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("stored scene", "id", rec.ID, "format", rec.Format, "bytes", len(body))

	w.Header().Set("Location", "/scenes/"+rec.ID)
	writeJSON(w, http.StatusCreated, sceneResponse{
		ID:        rec.ID,
		Format:    rec.Format,
		CreatedAt: rec.CreatedAt.Format(time.RFC3339),
		Nodes:     pipeline.CountNodes(doc),
	})
}

func (s *Server) handleGetScene(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts, err := renderOptions(r, scene.Format(rec.Format))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.SourceName = rec.ID
	s.render(w, r, rec.Data, opts)
}

func (s *Server) handleDeleteScene(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := s.store.Delete(r.Context(), id); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.logger.Info("deleted scene", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, body []byte, opts pipeline.Options) {
	res, err := s.runner.Render(r.Context(), body, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", pipeline.ContentType(res.Format))
	w.Header().Set("Content-Length", strconv.Itoa(len(res.Data)))
	if res.CacheHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Data)
}

func renderOptions(r *http.Request, format scene.Format) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Format: q.Get("format"),
		Scene:  format,
	}
	if v := q.Get("attrs"); v != "" {
		attrs, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "attrs must be a boolean, got %q", v)
		}
		opts.Attributes = attrs
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, errors.New(errors.ErrCodeInvalidInput, "scale must be a number, got %q", v)
		}
		opts.Scale = scale
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return opts, err
	}
	return opts, nil
}

// readScene reads the request body and derives the scene format from the
// Content-Type header. An empty format means the body should be sniffed.
func readScene(w http.ResponseWriter, r *http.Request) ([]byte, scene.Format, error) {
	var format scene.Format
	if ct := r.Header.Get("Content-Type"); ct != "" {
		mt, _, err := mime.ParseMediaType(ct)
		if err != nil {
			return nil, "", errors.Wrap(errors.ErrCodeInvalidInput, err, "bad Content-Type")
		}
		switch mt {
		case "application/json":
			format = scene.FormatJSON
		case "application/toml", "text/toml":
			format = scene.FormatTOML
		case "application/yaml", "application/x-yaml", "text/yaml":
			format = scene.FormatYAML
		case "text/plain", "application/octet-stream":
		default:
			return nil, "", errors.New(errors.ErrCodeUnsupported, "unsupported Content-Type %s", mt)
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		return nil, "", err
	}
	if len(body) == 0 {
		return nil, "", errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	return body, format, nil
}
