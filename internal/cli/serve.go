package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgtree/internal/server"
	"github.com/matzehuels/svgtree/pkg/cache"
	"github.com/matzehuels/svgtree/pkg/observability"
)

// serveCommand creates the serve command running the HTTP service.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP rendering service",
		Long: `Run the HTTP rendering service.

The cache and scene store backends are taken from the config file; a Redis
cache and a MongoDB store let several instances share state.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the render cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	logger := loggerFrom(ctx)

	runner, err := c.newRunner(noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	runner.Scope = "server"

	if rc, ok := runner.Cache.(*cache.RedisCache); ok {
		if err := rc.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, rendering uncached until it recovers", "error", err)
		}
	}

	st, err := c.config.Store.OpenStore(ctx)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())

	counters := observability.NewCounters()
	observability.SetPipelineHooks(counters)
	observability.SetCacheHooks(counters)
	observability.SetHTTPHooks(counters)
	defer observability.Reset()

	logger.Info("starting server",
		"addr", addr,
		"cache", c.config.Cache.Backend,
		"store", c.config.Store.Backend)
	err = server.New(runner, st, logger).ListenAndServe(ctx, addr)

	s := counters.Snapshot()
	logger.Info("server stopped",
		"requests", s.Requests,
		"renders", s.Renders,
		"cache_hits", s.CacheHits,
		"cache_misses", s.CacheMisses)
	return err
}
