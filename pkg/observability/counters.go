package observability

import (
	"context"
	"sync"
	"time"
)

// Counters accumulates event totals in memory. It implements [PipelineHooks],
// [CacheHooks] and [HTTPHooks] and is safe for concurrent use.
type Counters struct {
	mu   sync.Mutex
	snap Snapshot
}

// Snapshot is a point-in-time copy of [Counters].
type Snapshot struct {
	Builds       int            `json:"builds"`
	BuildErrors  int            `json:"build_errors"`
	Renders      map[string]int `json:"renders"` // by format
	RenderErrors int            `json:"render_errors"`
	RenderBytes  int            `json:"render_bytes"`
	CacheHits    int            `json:"cache_hits"`
	CacheMisses  int            `json:"cache_misses"`
	Requests     int            `json:"requests"`
	Statuses     map[int]int    `json:"statuses"` // by HTTP status code
}

// NewCounters returns zeroed counters.
func NewCounters() *Counters {
	return &Counters{snap: Snapshot{Renders: map[string]int{}, Statuses: map[int]int{}}}
}

// Snapshot returns a copy of the current totals.
func (c *Counters) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.snap
	s.Renders = make(map[string]int, len(c.snap.Renders))
	for k, v := range c.snap.Renders {
		s.Renders[k] = v
	}
	s.Statuses = make(map[int]int, len(c.snap.Statuses))
	for k, v := range c.snap.Statuses {
		s.Statuses[k] = v
	}
	return s
}

func (c *Counters) update(fn func(s *Snapshot)) {
	c.mu.Lock()
	fn(&c.snap)
	c.mu.Unlock()
}

func (c *Counters) OnBuildStart(context.Context, int) {}

func (c *Counters) OnBuildComplete(_ context.Context, _ int, _ time.Duration, err error) {
	c.update(func(s *Snapshot) {
		s.Builds++
		if err != nil {
			s.BuildErrors++
		}
	})
}

func (c *Counters) OnRenderStart(context.Context, string) {}

func (c *Counters) OnRenderComplete(_ context.Context, format string, size int, _ time.Duration, err error) {
	c.update(func(s *Snapshot) {
		if err != nil {
			s.RenderErrors++
			return
		}
		s.Renders[format]++
		s.RenderBytes += size
	})
}

func (c *Counters) OnCacheHit(context.Context, string) {
	c.update(func(s *Snapshot) { s.CacheHits++ })
}

func (c *Counters) OnCacheMiss(context.Context, string) {
	c.update(func(s *Snapshot) { s.CacheMisses++ })
}

func (c *Counters) OnCacheSet(context.Context, string, int) {}

func (c *Counters) OnRequest(context.Context, string, string) {
	c.update(func(s *Snapshot) { s.Requests++ })
}

func (c *Counters) OnResponse(_ context.Context, _, _ string, status int, _ time.Duration) {
	c.update(func(s *Snapshot) { s.Statuses[status]++ })
}

var (
	_ PipelineHooks = (*Counters)(nil)
	_ CacheHooks    = (*Counters)(nil)
	_ HTTPHooks     = (*Counters)(nil)
)
