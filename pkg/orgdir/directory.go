package orgdir

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Directory resolves organization membership.
type Directory interface {
	// OrganizationIDForUser returns the organization the user is a member of.
	OrganizationIDForUser(ctx context.Context, userID string) (uuid.UUID, error)
	// OrganizationSlug returns the slug of the organization.
	OrganizationSlug(ctx context.Context, orgID uuid.UUID) (string, error)
}

const (
	DriverREST     = "rest"
	DriverPostgres = "postgres"
)

// Config selects and configures the directory driver.
type Config struct {
	// Driver is "rest" (hosted data API) or "postgres" (direct pool).
	Driver string `env:"ORGDIR_DRIVER" envDefault:"rest"`
	// URL is the hosted backend base URL used by the rest driver.
	URL string `env:"ORGDIR_URL"`
	// ServiceKey authorizes data API reads. It bypasses row level security.
	ServiceKey string `env:"ORGDIR_SERVICE_KEY"`

	MembersTable string        `env:"ORGDIR_MEMBERS_TABLE" envDefault:"organization_members"`
	OrgsTable    string        `env:"ORGDIR_ORGANIZATIONS_TABLE" envDefault:"organizations"`
	HTTPTimeout  time.Duration `env:"ORGDIR_HTTP_TIMEOUT" envDefault:"5s"`

	// CacheTTL enables caching of successful lookups when positive.
	// Revoked memberships stay visible for at most this long.
	CacheTTL time.Duration `env:"ORGDIR_CACHE_TTL" envDefault:"0s"`
	// CacheSize bounds the in-process cache used when Redis is not configured.
	CacheSize int `env:"ORGDIR_CACHE_SIZE" envDefault:"10000"`
}

// New returns the Directory selected by cfg.Driver. pool is only used by the postgres driver.
func New(cfg Config, pool *pgxpool.Pool, opts ...RESTOption) (Directory, error) {
	switch cfg.Driver {
	case DriverREST, "":
		return NewREST(cfg, opts...)
	case DriverPostgres:
		if pool == nil {
			return nil, ErrMissingPool
		}
		return NewPostgres(pool, cfg), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.Driver)
	}
}
