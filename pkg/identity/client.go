package identity

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwt"
	"github.com/tidwall/gjson"

	"github.com/menengai/edge/pkg/cookie"
	"github.com/menengai/edge/pkg/logger"
	"github.com/menengai/edge/pkg/metrics"
)

// maxResponseBytes bounds the refresh response read.
const maxResponseBytes = 1 << 20

// Claims identifies the authenticated caller.
type Claims struct {
	Subject string
	Email   string
}

// CookieSink receives cookies that must reach the client on the outgoing response.
type CookieSink interface {
	SetCookie(c *http.Cookie)
}

type discardSink struct{}

func (discardSink) SetCookie(*http.Cookie) {}

// Client validates session cookies against the hosted auth service.
type Client struct {
	cfg      Config
	tokenURL string
	cookies  *cookie.Manager
	keys     keySource
	http     *http.Client
	logger   *slog.Logger
}

func New(cfg Config, cookies *cookie.Manager, opts ...Option) (*Client, error) {
	base := strings.TrimRight(cfg.URL, "/")
	if base == "" {
		return nil, ErrMissingURL
	}
	if _, err := url.Parse(base); err != nil {
		return nil, fmt.Errorf("identity: invalid service url: %w", err)
	}
	if cookies == nil {
		cookies = cookie.New()
	}
	if cfg.AccessCookie == "" {
		cfg.AccessCookie = "sb-access-token"
	}
	if cfg.RefreshCookie == "" {
		cfg.RefreshCookie = "sb-refresh-token"
	}
	if cfg.HTTPTimeout <= 0 {
		cfg.HTTPTimeout = 5 * time.Second
	}
	if cfg.JWKSTTL <= 0 {
		cfg.JWKSTTL = 6 * time.Hour
	}

	c := &Client{
		cfg:      cfg,
		tokenURL: base + "/auth/v1/token?grant_type=refresh_token",
		cookies:  cookies,
		http:     &http.Client{Timeout: cfg.HTTPTimeout},
		logger:   logger.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	switch {
	case cfg.JWTSecret != "":
		c.keys = secretKey{secret: []byte(cfg.JWTSecret)}
	case cfg.JWKSURL != "":
		c.keys = &remoteKeySet{url: cfg.JWKSURL, ttl: cfg.JWKSTTL, client: c.http}
	default:
		return nil, ErrMissingKey
	}

	return c, nil
}

// Claims returns the caller's claims from the session cookies. Rotated
// session cookies are queued on sink. Every failure wraps ErrNoSession.
func (c *Client) Claims(ctx context.Context, r *http.Request, sink CookieSink) (*Claims, error) {
	if sink == nil {
		sink = discardSink{}
	}

	var verifyErr error

	access, err := c.cookies.Get(r, c.cfg.AccessCookie)
	if err == nil {
		claims, err := c.verify(ctx, access)
		if err == nil {
			return claims, nil
		}
		verifyErr = err
		c.logger.DebugContext(ctx, "access token rejected", logger.Component("identity"), logger.Error(err))
	}

	refreshToken, err := c.cookies.Get(r, c.cfg.RefreshCookie)
	if err != nil {
		if verifyErr != nil {
			return nil, errors.Join(ErrNoSession, verifyErr)
		}
		return nil, ErrNoSession
	}

	sess, err := c.refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, ErrRefreshRejected) {
			metrics.RecordRefresh("rejected")
			sink.SetCookie(c.cookies.Expire(c.cfg.AccessCookie))
			sink.SetCookie(c.cookies.Expire(c.cfg.RefreshCookie))
		} else {
			metrics.RecordRefresh("failed")
		}
		return nil, errors.Join(ErrNoSession, err)
	}

	claims, err := c.verify(ctx, sess.accessToken)
	if err != nil {
		metrics.RecordRefresh("invalid")
		return nil, errors.Join(ErrNoSession, err)
	}

	metrics.RecordRefresh("ok")
	sink.SetCookie(c.cookies.Build(c.cfg.AccessCookie, sess.accessToken, cookie.WithMaxAge(sess.expiresIn)))
	sink.SetCookie(c.cookies.Build(c.cfg.RefreshCookie, sess.refreshToken, cookie.WithMaxAge(int(c.cfg.RefreshMaxAge.Seconds()))))

	return claims, nil
}

func (c *Client) verify(ctx context.Context, raw string) (*Claims, error) {
	keyOpt, err := c.keys.parseOption(ctx)
	if err != nil {
		return nil, fmt.Errorf("identity: load verification keys: %w", err)
	}

	opts := []jwt.ParseOption{
		keyOpt,
		jwt.WithValidate(true),
		jwt.WithAcceptableSkew(c.cfg.ClockSkew),
	}
	if c.cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(c.cfg.Issuer))
	}
	if c.cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(c.cfg.Audience))
	}

	tok, err := jwt.ParseString(raw, opts...)
	if err != nil {
		return nil, err
	}
	if tok.Subject() == "" {
		return nil, ErrInvalidToken
	}

	claims := &Claims{Subject: tok.Subject()}
	if v, ok := tok.Get("email"); ok {
		claims.Email, _ = v.(string)
	}
	return claims, nil
}

type session struct {
	accessToken  string
	refreshToken string
	expiresIn    int
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*session, error) {
	payload, err := json.Marshal(map[string]string{"refresh_token": refreshToken})
	if err != nil {
		return nil, errors.Join(ErrRefreshFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Join(ErrRefreshFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.cfg.AnonKey)

	started := time.Now()
	resp, err := c.http.Do(req)
	metrics.RecordLookup("session_refresh", started, err)
	if err != nil {
		return nil, errors.Join(ErrRefreshFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, errors.Join(ErrRefreshFailed, err)
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return nil, fmt.Errorf("%w: status %d", ErrRefreshRejected, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: status %d", ErrRefreshFailed, resp.StatusCode)
	}

	res := gjson.ParseBytes(body)
	sess := &session{
		accessToken:  res.Get("access_token").String(),
		refreshToken: res.Get("refresh_token").String(),
		expiresIn:    int(res.Get("expires_in").Int()),
	}
	if sess.accessToken == "" || sess.refreshToken == "" {
		return nil, fmt.Errorf("%w: incomplete token response", ErrRefreshFailed)
	}
	if sess.expiresIn <= 0 {
		sess.expiresIn = 3600
	}
	return sess, nil
}
