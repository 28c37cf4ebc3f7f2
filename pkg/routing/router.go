package routing

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/menengai/edge/pkg/environment"
	"github.com/menengai/edge/pkg/logger"
	"github.com/menengai/edge/pkg/metrics"
	"github.com/menengai/edge/pkg/tenant"
)

// Guard decides requests the rule table does not settle on its own.
// Implementations record their outcome, and any refreshed cookies, on res.
type Guard interface {
	Check(r *http.Request, res *Response)
}

// GuardFunc is an adapter to allow the use of ordinary functions as Guards.
type GuardFunc func(r *http.Request, res *Response)

func (f GuardFunc) Check(r *http.Request, res *Response) { f(r, res) }

// Router evaluates the routing table for each request.
type Router struct {
	cfg      *config
	resolve  tenant.Resolver
	guard    Guard
	reserved map[string]struct{}
	public   map[string]struct{}
	table    []Rule
}

// New builds a Router. A nil guard lets every guarded request through.
func New(resolve tenant.Resolver, guard Guard, opts ...Option) (*Router, error) {
	cfg := &config{
		mode:             environment.Production,
		storefrontPrefix: DefaultStorefrontPrefix,
		reservedSegments: DefaultReservedSegments,
		publicPaths:      DefaultPublicPaths,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	cfg.rootDomain = strings.Trim(strings.ToLower(strings.TrimSpace(cfg.rootDomain)), ".")
	if cfg.rootDomain == "" {
		return nil, ErrMissingRootDomain
	}
	cfg.storefrontPrefix = "/" + strings.Trim(cfg.storefrontPrefix, "/")
	if cfg.storefrontPrefix == "/" || strings.Contains(cfg.storefrontPrefix[1:], "/") {
		return nil, ErrInvalidPrefix
	}
	if cfg.logger == nil {
		cfg.logger = logger.NewNop()
	}
	if resolve == nil {
		resolve = func(*http.Request) (string, error) { return "", nil }
	}
	if guard == nil {
		guard = GuardFunc(func(_ *http.Request, res *Response) { res.Pass() })
	}

	rt := &Router{
		cfg:      cfg,
		resolve:  resolve,
		guard:    guard,
		reserved: make(map[string]struct{}, len(cfg.reservedSegments)+1),
		public:   make(map[string]struct{}, len(cfg.publicPaths)),
	}
	for _, s := range cfg.reservedSegments {
		rt.reserved[strings.ToLower(s)] = struct{}{}
	}
	rt.reserved[strings.TrimPrefix(cfg.storefrontPrefix, "/")] = struct{}{}
	for _, p := range cfg.publicPaths {
		rt.public[p] = struct{}{}
	}
	rt.table = rt.rules()

	return rt, nil
}

// Mode returns the deployment mode the router was built with.
func (rt *Router) Mode() environment.Mode { return rt.cfg.mode }

// IsPublic reports whether p is served without a session.
func (rt *Router) IsPublic(p string) bool { return rt.isPublic(p) }

// IsReserved reports whether segment is excluded from tenant and organization routing.
func (rt *Router) IsReserved(segment string) bool { return rt.isReserved(segment) }

// Route resolves the tenant, evaluates the table and records the outcome on
// res. The returned request carries the tenant slug in its context.
func (rt *Router) Route(r *http.Request, res *Response) *http.Request {
	slug, err := rt.resolve(r)
	if err != nil {
		rt.cfg.logger.DebugContext(r.Context(), "tenant resolution failed, routing to main platform",
			logger.Error(err),
			slog.String("host", r.Host),
		)
		slug = ""
	}
	if slug != "" {
		r = r.WithContext(tenant.WithSlug(r.Context(), slug))
	}

	in := &Input{
		Request:   r,
		Tenant:    slug,
		Canonical: rt.cfg.mode.IsProduction() && !IsLocalHost(r.Host),
	}

	for _, rule := range rt.table {
		if rule.Match(in) {
			res.setRule(rule.Name)
			rule.Action(in, res)
			break
		}
	}

	return r
}

// Handler wraps next with the routing pipeline. Redirects are answered
// directly; everything else reaches next, rewritten where required.
func (rt *Router) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsStaticAsset(r.URL.Path) {
			metrics.RecordDecision(RuleStaticAsset, ActionPass.String())
			next.ServeHTTP(w, r)
			return
		}

		res := NewResponse()
		r = rt.Route(r, res)

		metrics.RecordDecision(res.Rule(), res.Action().String())

		attrs := []any{
			logger.Component("router"),
			slog.String("rule", res.Rule()),
			logger.Action(res.Action().String()),
			slog.String("path", r.URL.Path),
		}
		switch res.Action() {
		case ActionRedirect:
			attrs = append(attrs, slog.String("location", res.Location()), slog.Int("status", res.Status()))
		case ActionRewrite:
			attrs = append(attrs, slog.String("rewrite", res.RewriteURL().Path))
		}
		rt.cfg.logger.DebugContext(r.Context(), "request routed", attrs...)

		res.Apply(w, r, next)
	})
}
