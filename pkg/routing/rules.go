package routing

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/menengai/edge/pkg/tenant"
)

// Rule names, also used as metric labels.
const (
	RuleTenantRewrite       = "tenant-rewrite"
	RuleTenantPassthrough   = "tenant-passthrough"
	RuleStorefrontCanonical = "storefront-canonical"
	RuleStorefrontLocal     = "storefront-local"
	RuleSettingsCanonical   = "settings-canonical"
	RulePublic              = "public"
	RuleGuard               = "guard"
	RuleStaticAsset         = "static-asset"
)

// Input is the request metadata the rule table is evaluated against.
type Input struct {
	Request *http.Request
	// Tenant is the resolved slug, empty for main-platform requests.
	Tenant string
	// Canonical is true when subdomain redirects are possible: production
	// mode and a non-local host.
	Canonical bool
}

// Path returns the decoded request path.
func (in *Input) Path() string { return in.Request.URL.Path }

// Rule pairs a predicate with the action taken when it is the first to match.
type Rule struct {
	Name   string
	Match  func(in *Input) bool
	Action func(in *Input, res *Response)
}

// rules builds the ordered decision table.
func (rt *Router) rules() []Rule {
	return []Rule{
		{
			Name:   RuleTenantRewrite,
			Match:  func(in *Input) bool { return in.Tenant != "" && !rt.underStorefront(in.Path()) },
			Action: rt.rewriteToStorefront,
		},
		{
			Name:   RuleTenantPassthrough,
			Match:  func(in *Input) bool { return in.Tenant != "" },
			Action: pass,
		},
		{
			Name: RuleStorefrontCanonical,
			Match: func(in *Input) bool {
				_, _, ok := rt.storefrontSlug(in.Request)
				return ok && in.Canonical
			},
			Action: rt.redirectStorefront,
		},
		{
			Name: RuleStorefrontLocal,
			Match: func(in *Input) bool {
				_, _, ok := rt.storefrontSlug(in.Request)
				return ok
			},
			Action: pass,
		},
		{
			Name: RuleSettingsCanonical,
			Match: func(in *Input) bool {
				_, _, ok := rt.settingsSlug(in.Request)
				return ok && in.Canonical
			},
			Action: rt.redirectSettings,
		},
		{
			Name:   RulePublic,
			Match:  func(in *Input) bool { return rt.isPublic(in.Path()) && !IsAuthPath(in.Path()) },
			Action: pass,
		},
		{
			Name:   RuleGuard,
			Match:  func(*Input) bool { return true },
			Action: func(in *Input, res *Response) { rt.guard.Check(in.Request, res) },
		},
	}
}

func pass(_ *Input, res *Response) { res.Pass() }

func (rt *Router) underStorefront(p string) bool {
	return HasSegmentPrefix(p, rt.cfg.storefrontPrefix)
}

// isPublic covers the exact public set and everything under the auth and storefront prefixes.
func (rt *Router) isPublic(p string) bool {
	if _, ok := rt.public[p]; ok {
		return true
	}
	return IsAuthPath(p) || rt.underStorefront(p)
}

func (rt *Router) rewriteToStorefront(in *Input, res *Response) {
	src := in.Request.URL
	escaped := rt.cfg.storefrontPrefix + "/" + url.PathEscape(in.Tenant) + src.EscapedPath()

	u := &url.URL{
		Path:     rt.cfg.storefrontPrefix + "/" + in.Tenant + src.Path,
		RawQuery: src.RawQuery,
	}
	if escaped != u.Path {
		u.RawPath = escaped
	}
	res.Rewrite(u)
}

// storefrontSlug matches {prefix}/{slug}(/...)? on the escaped path and returns
// the lowercased slug and the escaped remainder.
func (rt *Router) storefrontSlug(r *http.Request) (string, string, bool) {
	escaped := r.URL.EscapedPath()
	if !strings.HasPrefix(escaped, rt.cfg.storefrontPrefix+"/") {
		return "", "", false
	}
	slug, rest := splitFirstSegment(strings.TrimPrefix(escaped, rt.cfg.storefrontPrefix))
	slug = strings.ToLower(slug)
	if !tenant.ValidSlug(slug) {
		return "", "", false
	}
	return slug, rest, true
}

// settingsSlug matches /{slug}/settings(/...)? where slug is not reserved and
// returns the slug and the escaped path from /settings on.
func (rt *Router) settingsSlug(r *http.Request) (string, string, bool) {
	slug, rest := splitFirstSegment(r.URL.EscapedPath())
	if !HasSegmentPrefix(rest, "/settings") {
		return "", "", false
	}
	slug = strings.ToLower(slug)
	if rt.isReserved(slug) || !tenant.ValidSlug(slug) {
		return "", "", false
	}
	return slug, rest, true
}

func (rt *Router) isReserved(segment string) bool {
	_, ok := rt.reserved[strings.ToLower(segment)]
	return ok
}

func (rt *Router) redirectStorefront(in *Input, res *Response) {
	slug, rest, _ := rt.storefrontSlug(in.Request)
	res.Redirect(rt.tenantURL(in.Request, slug, rest), http.StatusPermanentRedirect)
}

func (rt *Router) redirectSettings(in *Input, res *Response) {
	slug, rest, _ := rt.settingsSlug(in.Request)
	res.Redirect(rt.tenantURL(in.Request, slug, rest), http.StatusPermanentRedirect)
}

// tenantURL builds {proto}://{slug}.{root}{rest}?{query}, defaulting to https.
func (rt *Router) tenantURL(r *http.Request, slug, rest string) string {
	scheme := ForwardedProto(r)
	if scheme == "" {
		scheme = "https"
	}
	if rest == "" {
		rest = "/"
	}

	var b strings.Builder
	b.WriteString(scheme)
	b.WriteString("://")
	b.WriteString(url.PathEscape(slug))
	b.WriteString(".")
	b.WriteString(rt.cfg.rootDomain)
	b.WriteString(rest)
	if r.URL.RawQuery != "" {
		b.WriteString("?")
		b.WriteString(r.URL.RawQuery)
	}
	return b.String()
}
