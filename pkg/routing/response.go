package routing

import (
	"net/http"
	"net/url"
	"strings"
)

// Action is the terminal routing outcome recorded on a Response.
type Action int

const (
	// ActionPass forwards the request unchanged.
	ActionPass Action = iota
	// ActionRewrite forwards the request with an internally rewritten URL.
	ActionRewrite
	// ActionRedirect answers the request with a redirect.
	ActionRedirect
)

func (a Action) String() string {
	switch a {
	case ActionRewrite:
		return "rewrite"
	case ActionRedirect:
		return "redirect"
	default:
		return "pass"
	}
}

// Response accumulates the outcome of routing a single request.
// It is never shared between requests.
type Response struct {
	rule     string
	action   Action
	status   int
	location string
	rewrite  *url.URL
	cookies  []*http.Cookie
}

// NewResponse returns a builder whose default outcome is pass-through.
func NewResponse() *Response {
	return &Response{action: ActionPass}
}

// Pass marks the request for unchanged forwarding.
func (r *Response) Pass() {
	r.action = ActionPass
	r.status = 0
	r.location = ""
	r.rewrite = nil
}

// Rewrite marks the request for forwarding under u without changing the browser URL.
func (r *Response) Rewrite(u *url.URL) {
	r.action = ActionRewrite
	r.status = 0
	r.location = ""
	r.rewrite = u
}

// Redirect marks the request to be answered with status and an absolute location.
func (r *Response) Redirect(location string, status int) {
	r.action = ActionRedirect
	r.status = status
	r.location = location
	r.rewrite = nil
}

// SetCookie queues a cookie for the outgoing response. A later cookie with
// the same name, path and domain replaces an earlier one.
func (r *Response) SetCookie(c *http.Cookie) {
	if c == nil {
		return
	}
	for i, existing := range r.cookies {
		if existing.Name == c.Name && existing.Path == c.Path && existing.Domain == c.Domain {
			r.cookies[i] = c
			return
		}
	}
	r.cookies = append(r.cookies, c)
}

func (r *Response) Cookies() []*http.Cookie { return r.cookies }

func (r *Response) Action() Action { return r.action }

func (r *Response) Status() int { return r.status }

func (r *Response) Location() string { return r.location }

// RewriteURL returns the rewritten URL, or nil unless Action is ActionRewrite.
func (r *Response) RewriteURL() *url.URL { return r.rewrite }

// Rule returns the name of the rule that produced the outcome.
func (r *Response) Rule() string { return r.rule }

func (r *Response) setRule(name string) { r.rule = name }

// Apply writes the outcome. Queued cookies are written on every path; for
// forwarded requests they also replace the matching request cookies so the
// next handler sees the refreshed session.
func (r *Response) Apply(w http.ResponseWriter, req *http.Request, next http.Handler) {
	for _, c := range r.cookies {
		http.SetCookie(w, c)
	}

	if r.action == ActionRedirect {
		http.Redirect(w, req, r.location, r.status)
		return
	}

	forward := req
	if r.action == ActionRewrite || len(r.cookies) > 0 {
		forward = req.Clone(req.Context())
	}
	if r.action == ActionRewrite {
		forward.URL = r.rewrite
		forward.RequestURI = r.rewrite.RequestURI()
	}
	if len(r.cookies) > 0 {
		forwardCookies(forward, r.cookies)
	}

	next.ServeHTTP(w, forward)
}

// forwardCookies rewrites the Cookie header of req so that names present in
// updates carry the updated values, and expired ones are removed.
func forwardCookies(req *http.Request, updates []*http.Cookie) {
	replaced := make(map[string]*http.Cookie, len(updates))
	for _, c := range updates {
		replaced[c.Name] = c
	}

	kept := make([]string, 0, len(req.Cookies())+len(updates))
	for _, c := range req.Cookies() {
		if _, ok := replaced[c.Name]; ok {
			continue
		}
		kept = append(kept, c.Name+"="+c.Value)
	}
	for _, c := range updates {
		if c.MaxAge < 0 || c.Value == "" {
			continue
		}
		kept = append(kept, c.Name+"="+c.Value)
	}

	req.Header.Del("Cookie")
	if len(kept) > 0 {
		req.Header.Set("Cookie", strings.Join(kept, "; "))
	}
}
