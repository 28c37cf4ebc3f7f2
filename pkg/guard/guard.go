package guard

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/menengai/edge/pkg/identity"
	"github.com/menengai/edge/pkg/logger"
	"github.com/menengai/edge/pkg/metrics"
	"github.com/menengai/edge/pkg/orgdir"
	"github.com/menengai/edge/pkg/routing"
	"github.com/menengai/edge/pkg/tenant"
)

// Outcome labels recorded in metrics and logs.
const (
	OutcomeLoginAnonymous    = "login_anonymous"
	OutcomeLoginNoMembership = "login_no_membership"
	OutcomeLoginMismatch     = "login_slug_mismatch"
	OutcomeLoginLookupFailed = "login_lookup_failed"
	OutcomeRedirectOrg       = "redirect_org"
	OutcomePassAuthFlow      = "pass_auth_flow"
	OutcomePassMember        = "pass_member"
	OutcomePassPublic        = "pass_public"
	OutcomePass              = "pass"
)

// ClaimsSource reads the caller's identity from request cookies. Rotated
// session cookies are delivered through sink.
type ClaimsSource interface {
	Claims(ctx context.Context, r *http.Request, sink identity.CookieSink) (*identity.Claims, error)
}

var tracer = otel.Tracer("github.com/menengai/edge/pkg/guard")

// Directory is the organization lookup used for membership checks.
type Directory = orgdir.Directory

// Guard implements routing.Guard.
type Guard struct {
	cfg      *config
	claims   ClaimsSource
	dir      Directory
	reserved map[string]struct{}
}

var _ routing.Guard = (*Guard)(nil)

// New builds a Guard with a 3s lookup timeout and the default path layout.
func New(claims ClaimsSource, dir Directory, opts ...Option) *Guard {
	cfg := &config{
		loginPath:     routing.AuthPrefix + "/login",
		redirectParam: "redirect",
		timeout:       3 * time.Second,
		reserved:      routing.DefaultReservedSegments,
		isPublic:      routing.IsPublicPath,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = logger.NewNop()
	}

	g := &Guard{
		cfg:      cfg,
		claims:   claims,
		dir:      dir,
		reserved: make(map[string]struct{}, len(cfg.reserved)),
	}
	for _, s := range cfg.reserved {
		g.reserved[strings.ToLower(s)] = struct{}{}
	}
	return g
}

// Check runs the access state machine for r and records the outcome on res.
// Cookies rotated by the identity lookup stay on res whatever the outcome.
func (g *Guard) Check(r *http.Request, res *routing.Response) {
	ctx := r.Context()
	p := r.URL.Path

	claims := g.lookupClaims(ctx, r, res)

	switch {
	case claims == nil && !g.cfg.isPublic(p):
		g.redirectLogin(r, res, OutcomeLoginAnonymous, nil, true)

	case claims == nil:
		g.pass(r, res, OutcomePassPublic)

	case routing.IsAuthPath(p):
		g.checkAuthFlow(r, res, claims)

	case g.organizationSegment(p) != "":
		g.checkOrganization(r, res, claims, g.organizationSegment(p))

	default:
		g.pass(r, res, OutcomePass)
	}
}

// checkAuthFlow sends members away from the auth pages to their organization.
func (g *Guard) checkAuthFlow(r *http.Request, res *routing.Response, claims *identity.Claims) {
	slug, err := g.membership(r.Context(), claims.Subject)
	if err != nil {
		// Users without an organization still need the auth pages to finish onboarding.
		g.logLookup(r, claims, err)
		g.pass(r, res, OutcomePassAuthFlow)
		return
	}

	target := "/" + url.PathEscape(slug)
	if next, ok := SafeRedirectTarget(r.URL.Query().Get(g.cfg.redirectParam), slug); ok {
		target = next
	}

	res.Redirect(routing.Origin(r)+target, http.StatusTemporaryRedirect)
	g.record(r, OutcomeRedirectOrg, claims, slog.String("location", target))
}

// checkOrganization serves /{org}/... only to members of org.
func (g *Guard) checkOrganization(r *http.Request, res *routing.Response, claims *identity.Claims, requested string) {
	slug, err := g.membership(r.Context(), claims.Subject)
	switch {
	case errors.Is(err, ErrNoMembership):
		g.redirectLogin(r, res, OutcomeLoginNoMembership, claims, false)
	case err != nil:
		g.logLookup(r, claims, err)
		g.redirectLogin(r, res, OutcomeLoginLookupFailed, claims, false)
	case !strings.EqualFold(slug, requested):
		g.redirectLogin(r, res, OutcomeLoginMismatch, claims, false,
			logger.Error(ErrSlugMismatch),
			slog.String("requested", requested),
		)
	default:
		g.pass(r, res, OutcomePassMember)
	}
}

// lookupClaims treats any identity failure as anonymous.
func (g *Guard) lookupClaims(ctx context.Context, r *http.Request, res *routing.Response) *identity.Claims {
	if g.claims == nil {
		return nil
	}

	lctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	lctx, span := tracer.Start(lctx, "guard.claims")
	defer span.End()

	claims, err := g.claims.Claims(lctx, r, res)
	span.SetAttributes(attribute.Bool("authenticated", err == nil && claims != nil))
	if err != nil || claims == nil || claims.Subject == "" {
		if err != nil && !errors.Is(err, identity.ErrNoSession) {
			g.cfg.logger.WarnContext(ctx, "identity lookup failed",
				logger.Component("guard"),
				logger.Lookup("claims"),
				logger.Error(err),
			)
		}
		return nil
	}
	return claims
}

// membership resolves the caller's organization slug. Lookups run one after
// the other, each with its own deadline. Every failure maps to an error.
func (g *Guard) membership(ctx context.Context, subject string) (string, error) {
	if g.dir == nil {
		return "", ErrNoMembership
	}

	ctx, span := tracer.Start(ctx, "guard.membership")
	defer span.End()

	slug, err := g.lookupSlug(ctx, subject)
	if err != nil && !errors.Is(err, ErrNoMembership) {
		span.RecordError(err)
		span.SetStatus(codes.Error, "membership lookup failed")
	}
	span.SetAttributes(attribute.Bool("member", err == nil))
	return slug, err
}

func (g *Guard) lookupSlug(ctx context.Context, subject string) (string, error) {
	orgID, err := g.orgID(ctx, subject)
	if err != nil {
		return "", err
	}

	lctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	slug, err := g.dir.OrganizationSlug(lctx, orgID)
	switch {
	case errors.Is(err, orgdir.ErrNotFound), err == nil && !tenant.ValidSlug(strings.ToLower(slug)):
		g.cfg.logger.DebugContext(ctx, "organization has no usable slug",
			logger.Component("guard"),
			logger.OrganizationID(orgID),
		)
		return "", ErrNoMembership
	case err != nil:
		return "", err
	}
	return strings.ToLower(slug), nil
}

func (g *Guard) orgID(ctx context.Context, subject string) (uuid.UUID, error) {
	lctx, cancel := context.WithTimeout(ctx, g.cfg.timeout)
	defer cancel()

	orgID, err := g.dir.OrganizationIDForUser(lctx, subject)
	switch {
	case errors.Is(err, orgdir.ErrNotFound):
		return uuid.Nil, ErrNoMembership
	case err != nil:
		return uuid.Nil, err
	case orgID == uuid.Nil:
		return uuid.Nil, ErrNoMembership
	}
	return orgID, nil
}

// organizationSegment returns the lowercased first segment when it can name an organization.
func (g *Guard) organizationSegment(p string) string {
	seg := strings.ToLower(routing.FirstSegment(p))
	if seg == "" {
		return ""
	}
	if _, ok := g.reserved[seg]; ok {
		return ""
	}
	if !tenant.ValidSlug(seg) {
		return ""
	}
	return seg
}

// redirectLogin answers with the login page. Only anonymous callers get a
// return path; membership failures carry no hint of which check failed.
func (g *Guard) redirectLogin(r *http.Request, res *routing.Response, outcome string, claims *identity.Claims, withReturn bool, attrs ...any) {
	location := routing.Origin(r) + g.cfg.loginPath
	if withReturn {
		back := r.URL.EscapedPath()
		if r.URL.RawQuery != "" {
			back += "?" + r.URL.RawQuery
		}
		location += "?" + url.Values{g.cfg.redirectParam: {back}}.Encode()
	}

	res.Redirect(location, http.StatusTemporaryRedirect)
	g.record(r, outcome, claims, attrs...)
}

func (g *Guard) pass(r *http.Request, res *routing.Response, outcome string) {
	res.Pass()
	g.record(r, outcome, nil)
}

func (g *Guard) record(r *http.Request, outcome string, claims *identity.Claims, attrs ...any) {
	metrics.RecordGuardOutcome(outcome)

	attrs = append(attrs,
		logger.Component("guard"),
		logger.Outcome(outcome),
		slog.String("path", r.URL.Path),
	)
	if claims != nil {
		attrs = append(attrs, logger.UserID(claims.Subject))
	}
	g.cfg.logger.DebugContext(r.Context(), "access decided", attrs...)
}

func (g *Guard) logLookup(r *http.Request, claims *identity.Claims, err error) {
	if errors.Is(err, ErrNoMembership) {
		return
	}
	g.cfg.logger.WarnContext(r.Context(), "organization lookup failed",
		logger.Component("guard"),
		logger.Lookup("membership"),
		logger.UserID(claims.Subject),
		logger.Error(err),
	)
}
