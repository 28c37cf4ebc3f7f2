package upstream

import "time"

type Config struct {
	// URL is the platform application the gateway forwards to.
	URL string `env:"UPSTREAM_URL,required"`
	// PreserveHost forwards the client's Host header instead of the upstream's.
	PreserveHost bool `env:"UPSTREAM_PRESERVE_HOST" envDefault:"true"`
	// FlushInterval is passed to the reverse proxy; negative flushes after every write.
	FlushInterval time.Duration `env:"UPSTREAM_FLUSH_INTERVAL" envDefault:"-1ns"`
}
