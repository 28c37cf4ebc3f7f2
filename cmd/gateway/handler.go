package main

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/menengai/edge/pkg/environment"
	"github.com/menengai/edge/pkg/guard"
	"github.com/menengai/edge/pkg/httpserver"
	"github.com/menengai/edge/pkg/metrics"
	"github.com/menengai/edge/pkg/orgdir"
	"github.com/menengai/edge/pkg/requestid"
	"github.com/menengai/edge/pkg/routing"
	"github.com/menengai/edge/pkg/tenant"
	"github.com/menengai/edge/pkg/tracing"
)

const readinessTimeout = 2 * time.Second

type deps struct {
	mode     environment.Mode
	log      *slog.Logger
	tracing  *tracing.Provider
	claims   guard.ClaimsSource
	dir      orgdir.Directory
	guard    guard.Config
	tenant   tenant.Config
	routing  routing.Config
	upstream http.Handler
	checks   []httpserver.Check
}

// newHandler assembles the edge pipeline. Every path on every host goes
// through the router; operational endpoints live on newOpsHandler.
func newHandler(d deps) (http.Handler, error) {
	var rt *routing.Router

	reserved := append([]string{strings.Trim(d.routing.StorefrontPrefix, "/")}, d.routing.ReservedSegments...)
	g := guard.NewFromConfig(d.guard, d.claims, d.dir,
		guard.WithReservedSegments(reserved...),
		guard.WithPublicMatcher(func(p string) bool { return rt.IsPublic(p) }),
		guard.WithLogger(d.log),
	)

	rt, err := routing.NewFromConfig(d.routing, d.mode, tenant.New(d.tenant, d.mode), g, routing.WithLogger(d.log))
	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestid.Middleware)
	r.Use(environment.Middleware(d.mode))
	r.Handle("/*", d.tracing.Middleware("edge")(rt.Handler(d.upstream)))

	return r, nil
}

// newOpsHandler serves health and metrics on the internal listener.
func newOpsHandler(d deps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(d.log, readinessTimeout, d.checks...))
	r.Handle("/metrics", metrics.Handler())
	return r
}
