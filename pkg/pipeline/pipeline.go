// Package pipeline turns scene files into rendered output for svgtree.
//
// This package implements the decode → build → render pipeline shared by
// the CLI and the HTTP service, so both entry points cache, log and report
// errors the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Decode: Parse a TOML, JSON or YAML scene (see [scene.Decode])
//  2. Build: Construct the SVG element tree (see [scene.Scene.Build])
//  3. Render: Produce one output format from the tree
//
// # Formats
//
//   - svg: the drawing itself
//   - dot: the element tree as a Graphviz digraph
//   - tree: the element tree laid out by Graphviz, as SVG
//   - outline: the element tree as indented text
//   - png: the drawing rasterized at [Options.Scale] times its view box
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, logger)
//	res, err := runner.Render(ctx, data, pipeline.Options{
//	    Format:     pipeline.FormatSVG,
//	    SourceName: "drawing.toml",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.Stdout.Write(res.Data)
//
// Rendering is deterministic, so results are cached under a key derived
// from the scene bytes and the requested format.
package pipeline

import (
	"math"
	"strings"
	"time"

	"github.com/matzehuels/svgtree/pkg/errors"
	"github.com/matzehuels/svgtree/pkg/scene"
)

// =============================================================================
// Default Values
// =============================================================================

// DefaultTTL is how long rendered output stays cached.
const DefaultTTL = 7 * 24 * time.Hour

const maxScale = 64

// Format constants for output formats.
const (
	FormatSVG     = "svg"
	FormatDOT     = "dot"
	FormatTree    = "tree"
	FormatOutline = "outline"
	FormatPNG     = "png"
)

// Formats lists the supported output formats in display order.
var Formats = []string{FormatSVG, FormatDOT, FormatTree, FormatOutline, FormatPNG}

// ContentType returns the MIME type of output in format.
func ContentType(format string) string {
	switch format {
	case FormatSVG, FormatTree:
		return "image/svg+xml"
	case FormatDOT:
		return "text/vnd.graphviz; charset=utf-8"
	case FormatPNG:
		return "image/png"
	default:
		return "text/plain; charset=utf-8"
	}
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options configures one pipeline run.
type Options struct {
	// Format is the output format; empty means svg.
	Format string `json:"format,omitempty"`

	// Scene is the input encoding; empty means detect from SourceName and
	// the data itself.
	Scene scene.Format `json:"scene,omitempty"`

	// SourceName is the file name or label of the input, used for format
	// detection and log output.
	SourceName string `json:"source_name,omitempty"`

	// Refresh skips the cache lookup but still stores the result.
	Refresh bool `json:"refresh,omitempty"`

	// Attributes includes attributes in dot, tree and outline output.
	Attributes bool `json:"attributes,omitempty"`

	// Scale multiplies the view box size of png output; zero means 1.
	Scale float64 `json:"scale,omitempty"`
}

// ValidateAndSetDefaults normalizes the format and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if o.Format == "" {
		o.Format = FormatSVG
	}
	if err := errors.ValidateFormat(o.Format, Formats...); err != nil {
		return err
	}
	o.Format = strings.ToLower(o.Format)
	if math.IsNaN(o.Scale) || o.Scale < 0 || o.Scale > maxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale must be between 0 and %d", maxScale)
	}
	if o.Scale == 0 {
		o.Scale = 1
	}
	if o.Scene != "" {
		f, err := scene.ParseFormat(string(o.Scene))
		if err != nil {
			return err
		}
		o.Scene = f
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the output of a pipeline run.
type Result struct {
	// Data is the rendered output.
	Data []byte

	// Format is the format Data is in.
	Format string

	// Key is the cache key the output is stored under.
	Key string

	// CacheHit reports whether Data came from the cache.
	CacheHit bool

	// Stats contains timing and size information. Only Total is set on a
	// cache hit.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	BuildTime  time.Duration
	RenderTime time.Duration
	Total      time.Duration
}
