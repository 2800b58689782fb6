package pipeline

import (
	"context"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/svgtree/pkg/cache"
	"github.com/matzehuels/svgtree/pkg/observability"
	"github.com/matzehuels/svgtree/pkg/scene"
	"github.com/matzehuels/svgtree/pkg/svg"
)

// Runner executes the pipeline with caching.
//
// The Runner is stateless except for the cache and logger, so multiple
// goroutines can use the same Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Logger *log.Logger

	// Scope namespaces cache keys; see [cache.ScopedKey].
	Scope string

	// TTL is how long results stay cached. Zero never expires.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and logger.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Logger: logger,
		TTL:    DefaultTTL,
	}
}

// Render runs the complete decode → build → render pipeline on input.
func (r *Runner) Render(ctx context.Context, input []byte, opts Options) (*Result, error) {
	start := time.Now()
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	if opts.Scene == "" {
		opts.Scene = scene.DetectFormat(opts.SourceName, input)
	}

	key := r.key(input, opts)
	result := &Result{Format: opts.Format, Key: key}

	if !opts.Refresh {
		data, hit, err := r.Cache.Get(ctx, key)
		if err != nil {
			r.Logger.Warn("cache lookup failed", "key", key, "error", err)
		}
		if hit {
			observability.Cache().OnCacheHit(ctx, opts.Format)
			result.Data = data
			result.CacheHit = true
			result.Stats.Total = time.Since(start)
			r.Logger.Debug("cache hit", "source", opts.SourceName, "format", opts.Format)
			return result, nil
		}
		observability.Cache().OnCacheMiss(ctx, opts.Format)
	}

	doc, nodes, err := r.build(ctx, input, opts)
	if err != nil {
		return nil, err
	}
	result.Stats.NodeCount = nodes
	result.Stats.BuildTime = time.Since(start)
	r.Logger.Info("built scene",
		"source", opts.SourceName,
		"nodes", nodes,
		"duration", result.Stats.BuildTime)

	renderStart := time.Now()
	observability.Pipeline().OnRenderStart(ctx, opts.Format)
	data, err := RenderDocument(ctx, doc, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, opts.Format, len(data), result.Stats.RenderTime, err)
	if err != nil {
		return nil, err
	}
	result.Data = data
	r.Logger.Info("rendered output",
		"format", opts.Format,
		"bytes", len(data),
		"duration", result.Stats.RenderTime)

	if err := r.Cache.Set(ctx, key, data, r.TTL); err != nil {
		r.Logger.Warn("cache store failed", "key", key, "error", err)
	} else {
		observability.Cache().OnCacheSet(ctx, opts.Format, len(data))
	}

	result.Stats.Total = time.Since(start)
	return result, nil
}

// Build decodes input and constructs its document without rendering it.
// It is used by callers that walk the tree themselves, like the TUI.
func (r *Runner) Build(ctx context.Context, input []byte, opts Options) (*svg.Document, error) {
	if opts.Scene == "" {
		opts.Scene = scene.DetectFormat(opts.SourceName, input)
	} else if _, err := scene.ParseFormat(string(opts.Scene)); err != nil {
		return nil, err
	}
	doc, _, err := r.build(ctx, input, opts)
	return doc, err
}

func (r *Runner) build(ctx context.Context, input []byte, opts Options) (*svg.Document, int, error) {
	start := time.Now()
	observability.Pipeline().OnBuildStart(ctx, len(input))

	doc, err := decodeAndBuild(input, opts.Scene)
	nodes := 0
	if err == nil {
		nodes = CountNodes(doc)
	}
	observability.Pipeline().OnBuildComplete(ctx, nodes, time.Since(start), err)
	if err != nil {
		r.Logger.Debug("build failed", "source", opts.SourceName, "error", err)
		return nil, 0, err
	}
	return doc, nodes, nil
}

func decodeAndBuild(input []byte, format scene.Format) (*svg.Document, error) {
	s, err := scene.Decode(input, format)
	if err != nil {
		return nil, err
	}
	return s.Build()
}

// key derives the cache key. The scene format is part of the key because
// detection can depend on the source name.
func (r *Runner) key(input []byte, opts Options) string {
	format := string(opts.Scene) + "-" + opts.Format
	if opts.Attributes {
		format += "+attrs"
	}
	if opts.Format == FormatPNG {
		format += "@" + strconv.FormatFloat(opts.Scale, 'g', -1, 64)
	}
	return cache.ScopedKey(r.Scope, cache.Key(format, input))
}

// CountNodes returns the number of nodes in the tree rooted at n.
func CountNodes(n svg.Node) int {
	count := 0
	_ = svg.Walk(n, func(svg.Visit) error {
		count++
		return nil
	})
	return count
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}
