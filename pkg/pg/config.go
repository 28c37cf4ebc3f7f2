package pg

import "time"

// Config holds the pool and migration settings. The connection URL is only
// required when a component actually opens a pool.
type Config struct {
	ConnectionString  string        `env:"PG_CONN_URL"`
	MaxConns          int32         `env:"PG_MAX_CONNS" envDefault:"8"`
	MinConns          int32         `env:"PG_MIN_CONNS" envDefault:"1"`
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"2s"`

	// Migrate applies the embedded directory schema on startup. Local development only.
	Migrate         bool   `env:"PG_MIGRATE" envDefault:"false"`
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"edge_schema_migrations"`
}
