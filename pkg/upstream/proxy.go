package upstream

import (
	"log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/menengai/edge/pkg/logger"
	"github.com/menengai/edge/pkg/requestid"
	"github.com/menengai/edge/pkg/routing"
	"github.com/menengai/edge/pkg/tenant"
)

// HeaderTenant tells the upstream application which storefront a rewritten request belongs to.
const HeaderTenant = "X-Tenant-Slug"

type options struct {
	transport     http.RoundTripper
	logger        *slog.Logger
	preserveHost  bool
	flushInterval time.Duration
}

// Option configures the proxy.
type Option func(*options)

// WithTransport replaces the round tripper used for upstream requests.
func WithTransport(rt http.RoundTripper) Option {
	return func(o *options) { o.transport = rt }
}

// WithLogger supplies an external slog.Logger instance.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithPreserveHost forwards the inbound Host header unchanged.
func WithPreserveHost(v bool) Option {
	return func(o *options) { o.preserveHost = v }
}

// WithFlushInterval sets how often buffered response bodies are flushed.
func WithFlushInterval(d time.Duration) Option {
	return func(o *options) { o.flushInterval = d }
}

// New returns a handler that forwards requests to target. The request path is
// appended to target's path, so a rewritten storefront path reaches the
// renderer as-is. Unreachable upstreams answer 502.
func New(target *url.URL, opts ...Option) (http.Handler, error) {
	if target == nil {
		return nil, ErrMissingURL
	}
	if !target.IsAbs() || (target.Scheme != "http" && target.Scheme != "https") || target.Host == "" {
		return nil, ErrInvalidURL
	}

	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.NewNop()
	}

	return &httputil.ReverseProxy{
		Rewrite: func(pr *httputil.ProxyRequest) {
			pr.SetURL(target)
			pr.SetXForwarded()
			pr.Out.Header.Set("X-Forwarded-Proto", routing.Scheme(pr.In))
			if o.preserveHost {
				pr.Out.Host = pr.In.Host
			}

			pr.Out.Header.Del(HeaderTenant)
			if slug, ok := tenant.SlugFromContext(pr.In.Context()); ok {
				pr.Out.Header.Set(HeaderTenant, slug)
			}
			if id := requestid.FromContext(pr.In.Context()); id != "" {
				pr.Out.Header.Set(requestid.Header, id)
			}
		},
		Transport:     o.transport,
		FlushInterval: o.flushInterval,
		ErrorLog:      slog.NewLogLogger(o.logger.Handler(), slog.LevelWarn),
		ErrorHandler: func(w http.ResponseWriter, r *http.Request, err error) {
			o.logger.ErrorContext(r.Context(), "upstream request failed",
				logger.Component("upstream"),
				slog.String("path", r.URL.Path),
				logger.Error(err),
			)
			w.WriteHeader(http.StatusBadGateway)
		},
	}, nil
}

// NewFromConfig parses cfg.URL and builds the proxy.
func NewFromConfig(cfg Config, opts ...Option) (http.Handler, error) {
	if cfg.URL == "" {
		return nil, ErrMissingURL
	}
	target, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, ErrInvalidURL
	}

	configOpts := []Option{
		WithPreserveHost(cfg.PreserveHost),
		WithFlushInterval(cfg.FlushInterval),
	}
	return New(target, append(configOpts, opts...)...)
}
