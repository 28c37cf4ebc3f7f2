// Command gateway is the multi-tenant edge in front of the platform
// application. It resolves the tenant, routes or redirects the request,
// enforces session and membership, and proxies what it lets through.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/menengai/edge/pkg/config"
	"github.com/menengai/edge/pkg/cookie"
	"github.com/menengai/edge/pkg/environment"
	"github.com/menengai/edge/pkg/guard"
	"github.com/menengai/edge/pkg/httpserver"
	"github.com/menengai/edge/pkg/identity"
	"github.com/menengai/edge/pkg/logger"
	"github.com/menengai/edge/pkg/orgdir"
	"github.com/menengai/edge/pkg/pg"
	"github.com/menengai/edge/pkg/redis"
	"github.com/menengai/edge/pkg/requestid"
	"github.com/menengai/edge/pkg/routing"
	"github.com/menengai/edge/pkg/tenant"
	"github.com/menengai/edge/pkg/tracing"
	"github.com/menengai/edge/pkg/upstream"
)

// opsConfig is the internal listener for health and metrics. It is kept
// off the public port so tenant paths such as /metrics reach the app.
type opsConfig struct {
	Addr string `env:"OPS_HTTP_ADDR" envDefault:":9090"`
}

type settings struct {
	env      environment.Config
	log      logger.Config
	http     httpserver.Config
	ops      opsConfig
	tracing  tracing.Config
	cookie   cookie.Config
	identity identity.Config
	orgdir   orgdir.Config
	pg       pg.Config
	redis    redis.Config
	guard    guard.Config
	tenant   tenant.Config
	routing  routing.Config
	upstream upstream.Config
}

func loadSettings() (settings, error) {
	config.LoadDotenv()

	var s settings
	err := errors.Join(
		config.Load(&s.env),
		config.Load(&s.log),
		config.Load(&s.http),
		config.Load(&s.ops),
		config.Load(&s.tracing),
		config.Load(&s.cookie),
		config.Load(&s.identity),
		config.Load(&s.orgdir),
		config.Load(&s.pg),
		config.Load(&s.redis),
		config.Load(&s.guard),
		config.Load(&s.tenant),
		config.Load(&s.routing),
		config.Load(&s.upstream),
	)
	return s, err
}

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "gateway: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	mode, err := s.env.Mode()
	if err != nil {
		return err
	}

	log, err := logger.NewFromConfig(s.log, mode,
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			tenant.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	if err != nil {
		return err
	}
	logger.SetAsDefault(log)

	tp, err := tracing.Setup(ctx, s.tracing)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.ErrorContext(ctx, "tracer shutdown failed", logger.Error(err))
		}
	}()

	cookies, err := cookie.NewFromConfig(s.cookie)
	if err != nil {
		return err
	}

	ids, err := identity.New(s.identity, cookies,
		identity.WithHTTPClient(&http.Client{Timeout: s.identity.HTTPTimeout, Transport: tp.Transport(nil)}),
		identity.WithLogger(log),
	)
	if err != nil {
		return err
	}

	var (
		pool   *pgxpool.Pool
		checks []httpserver.Check
	)
	if s.orgdir.Driver == orgdir.DriverPostgres {
		pool, err = pg.Connect(ctx, s.pg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if s.pg.Migrate {
			if err := pg.Migrate(ctx, pool, s.pg, orgdir.Migrations(), log); err != nil {
				return err
			}
		}
		checks = append(checks, httpserver.Check{Name: "postgres", Func: pg.Healthcheck(pool)})
	}

	dir, err := orgdir.New(s.orgdir, pool,
		orgdir.WithHTTPClient(&http.Client{Timeout: s.orgdir.HTTPTimeout, Transport: tp.Transport(nil)}),
	)
	if err != nil {
		return err
	}

	if s.orgdir.CacheTTL > 0 {
		var store orgdir.Store
		if s.redis.Enabled() {
			rdb, err := redis.Connect(ctx, s.redis)
			if err != nil {
				return err
			}
			defer rdb.Close()

			store = redis.NewStore(rdb, s.redis.KeyPrefix)
			checks = append(checks, httpserver.Check{Name: "redis", Func: redis.Healthcheck(rdb)})
		} else {
			store = orgdir.NewMemoryStore(s.orgdir.CacheSize, s.orgdir.CacheTTL)
		}
		dir = orgdir.NewCached(dir, store, s.orgdir.CacheTTL)
	}

	proxy, err := upstream.NewFromConfig(s.upstream,
		upstream.WithTransport(tp.Transport(nil)),
		upstream.WithLogger(log),
	)
	if err != nil {
		return err
	}

	d := deps{
		mode:     mode,
		log:      log,
		tracing:  tp,
		claims:   ids,
		dir:      dir,
		guard:    s.guard,
		tenant:   s.tenant,
		routing:  s.routing,
		upstream: proxy,
		checks:   checks,
	}
	handler, err := newHandler(d)
	if err != nil {
		return err
	}

	srv := httpserver.NewFromConfig(s.http,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(ctx context.Context, log *slog.Logger, addr string) {
			log.InfoContext(ctx, "edge gateway started",
				slog.String("addr", addr),
				slog.String("mode", mode.String()),
				slog.String("root_domain", s.routing.RootDomain),
				slog.String("orgdir", strings.ToLower(s.orgdir.Driver)),
				slog.Duration("orgdir_cache_ttl", s.orgdir.CacheTTL),
				slog.Bool("tracing", tp.Enabled()),
			)
		}),
		httpserver.WithStopHook(func(ctx context.Context, log *slog.Logger, _ string) {
			log.InfoContext(ctx, "edge gateway stopped")
		}),
	)

	ops := httpserver.New(
		httpserver.WithAddr(s.ops.Addr),
		httpserver.WithLogger(log.With(logger.Component("ops"))),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx, handler) })
	g.Go(func() error { return ops.Run(gctx, newOpsHandler(d)) })
	return g.Wait()
}
