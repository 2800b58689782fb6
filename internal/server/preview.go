package server

import (
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/go-chi/chi/v5"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/matzehuels/svgtree/pkg/pipeline"
	"github.com/matzehuels/svgtree/pkg/scene"
	"github.com/matzehuels/svgtree/pkg/store"
)

const previewCSS = `body { font-family: sans-serif; margin: 2rem; color: #222; }
.drawing { border: 1px solid #ddd; display: inline-block; padding: 1rem; }
.meta { color: #777; font-size: 0.9rem; }
pre { background: #f6f6f6; padding: 1rem; overflow-x: auto; }`

// handlePreview serves an HTML page showing a stored scene next to its
// element outline.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	drawing, err := s.runner.Render(r.Context(), rec.Data, pipeline.Options{
		Format:     pipeline.FormatSVG,
		Scene:      scene.Format(rec.Format),
		SourceName: rec.ID,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	outline, err := s.runner.Render(r.Context(), rec.Data, pipeline.Options{
		Format:     pipeline.FormatOutline,
		Scene:      scene.Format(rec.Format),
		SourceName: rec.ID,
		Attributes: true,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if err := previewPage(rec, drawing, outline).Render(w); err != nil {
		s.logger.Warn("write preview", "id", rec.ID, "error", err)
	}
}

func previewPage(rec store.Record, drawing, outline *pipeline.Result) g.Node {
	title := "Scene " + rec.ID
	return h.Doctype(
		h.HTML(
			h.Lang("en"),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.TitleEl(g.Text(title)),
				h.StyleEl(g.Raw(previewCSS)),
			),
			h.Body(
				h.H1(g.Text(title)),
				h.P(h.Class("meta"),
					g.Textf("%s scene, stored %s, %d nodes, %s of SVG",
						rec.Format,
						humanize.Time(rec.CreatedAt),
						drawing.Stats.NodeCount,
						humanize.Bytes(uint64(len(drawing.Data))),
					),
				),
				h.Div(h.Class("drawing"), g.Raw(string(drawing.Data))),
				h.H2(g.Text("Elements")),
				h.Pre(g.Text(string(outline.Data))),
				h.P(h.Class("meta"),
					h.A(h.Href("/scenes/"+rec.ID+"?format=svg"), g.Text("svg")), g.Text(" · "),
					h.A(h.Href("/scenes/"+rec.ID+"?format=png"), g.Text("png")), g.Text(" · "),
					h.A(h.Href("/scenes/"+rec.ID+"?format=tree"), g.Text("tree")),
				),
			),
		),
	)
}
