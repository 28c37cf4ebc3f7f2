// Package httpserver runs the gateway's HTTP listener.
//
// Server binds the configured address, serves a handler and shuts down
// gracefully when the parent context is cancelled or the process receives
// SIGINT or SIGTERM. Timeouts come from Config (HTTP_* variables) through
// NewFromConfig, and start and stop hooks receive the bound address, which
// makes ephemeral ports usable in tests.
//
// LivenessHandler and ReadinessHandler back the /healthz and /readyz probes.
// Readiness runs named checks, each under its own timeout, and reports the
// first failure with 503.
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, handler); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
package httpserver
