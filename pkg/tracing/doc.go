// Package tracing wires OpenTelemetry into the gateway.
//
// Tracing is opt-in: Setup only installs an exporter when an OTLP endpoint is
// configured through the standard OTEL_EXPORTER_OTLP_* variables. Otherwise
// the global no-op provider stays in place, Middleware returns handlers
// unchanged and Transport returns the base round tripper, so instrumented
// code costs nothing.
//
// Packages that open spans of their own (the access guard's lookups) use
// otel.Tracer directly and pick up whichever provider is installed.
package tracing
