package orgdir

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/menengai/edge/pkg/metrics"
)

const maxResponseBytes = 64 << 10

var (
	ErrMissingURL        = errors.New("orgdir: data API url is required")
	ErrMissingServiceKey = errors.New("orgdir: service key is required")
)

// RESTOption configures the REST directory.
type RESTOption func(*REST)

// WithHTTPClient replaces the HTTP client used for data API requests.
func WithHTTPClient(hc *http.Client) RESTOption {
	return func(d *REST) {
		if hc != nil {
			d.http = hc
		}
	}
}

// REST queries membership through the hosted backend's PostgREST data API.
type REST struct {
	base    string
	key     string
	members string
	orgs    string
	http    *http.Client
}

// NewREST builds a REST directory from cfg.
func NewREST(cfg Config, opts ...RESTOption) (*REST, error) {
	base := strings.TrimRight(cfg.URL, "/")
	if base == "" {
		return nil, ErrMissingURL
	}
	if cfg.ServiceKey == "" {
		return nil, ErrMissingServiceKey
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	d := &REST{
		base:    base + "/rest/v1/",
		key:     cfg.ServiceKey,
		members: defaultString(cfg.MembersTable, "organization_members"),
		orgs:    defaultString(cfg.OrgsTable, "organizations"),
		http:    &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

func (d *REST) OrganizationIDForUser(ctx context.Context, userID string) (uuid.UUID, error) {
	q := url.Values{}
	q.Set("select", "organization_id")
	q.Set("user_id", "eq."+userID)
	q.Set("order", "created_at.asc")
	q.Set("limit", "1")

	row, err := d.first(ctx, "organization_id", d.members, q)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(row.Get("organization_id").String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: organization_id: %w", ErrLookupFailed, err)
	}
	return id, nil
}

func (d *REST) OrganizationSlug(ctx context.Context, orgID uuid.UUID) (string, error) {
	q := url.Values{}
	q.Set("select", "slug")
	q.Set("id", "eq."+orgID.String())
	q.Set("limit", "1")

	row, err := d.first(ctx, "organization_slug", d.orgs, q)
	if err != nil {
		return "", err
	}

	slug := row.Get("slug").String()
	if slug == "" {
		return "", ErrNotFound
	}
	return slug, nil
}

// first runs a single-row select and returns the first element of the JSON array.
func (d *REST) first(ctx context.Context, lookup, table string, q url.Values) (gjson.Result, error) {
	started := time.Now()
	row, err := d.get(ctx, table, q)
	if errors.Is(err, ErrNotFound) {
		metrics.RecordLookup(lookup, started, nil)
	} else {
		metrics.RecordLookup(lookup, started, err)
	}
	return row, err
}

func (d *REST) get(ctx context.Context, table string, q url.Values) (gjson.Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.base+table+"?"+q.Encode(), nil)
	if err != nil {
		return gjson.Result{}, errors.Join(ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", d.key)
	req.Header.Set("Authorization", "Bearer "+d.key)

	resp, err := d.http.Do(req)
	if err != nil {
		return gjson.Result{}, errors.Join(ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return gjson.Result{}, errors.Join(ErrLookupFailed, err)
	}
	if resp.StatusCode != http.StatusOK {
		return gjson.Result{}, fmt.Errorf("%w: %s returned status %d", ErrLookupFailed, table, resp.StatusCode)
	}
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: %s returned malformed json", ErrLookupFailed, table)
	}

	rows := gjson.ParseBytes(body)
	if !rows.IsArray() {
		return gjson.Result{}, fmt.Errorf("%w: %s returned a non-array body", ErrLookupFailed, table)
	}
	first := rows.Get("0")
	if !first.Exists() {
		return gjson.Result{}, ErrNotFound
	}
	return first, nil
}
