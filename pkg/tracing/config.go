package tracing

// Config selects the OTLP/HTTP trace exporter. Tracing stays disabled while
// no endpoint is configured.
type Config struct {
	Endpoint     string  `env:"OTEL_EXPORTER_OTLP_TRACES_ENDPOINT"`
	BaseEndpoint string  `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	ServiceName  string  `env:"TRACING_SERVICE_NAME" envDefault:"edge-gateway"`
	SampleRatio  float64 `env:"TRACING_SAMPLE_RATIO" envDefault:"1"`
}

// endpoint prefers the trace-specific endpoint over the shared base.
func (c Config) endpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	return c.BaseEndpoint
}
