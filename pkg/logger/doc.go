// Package logger builds the gateway's *slog.Logger.
//
// New takes functional options; NewFromConfig applies the deployment-mode
// defaults (text at debug level in development, JSON at info level in
// production) and then the LOG_* overrides from Config.
//
//	log, err := logger.NewFromConfig(cfg, mode,
//		logger.WithContextExtractors(
//			requestid.LoggerExtractor(),
//			tenant.LoggerExtractor(),
//		),
//	)
//
// Every logger wraps its handler in a ContextHandler, so request-scoped
// values such as the request id and tenant slug are attached to records
// logged with a *Context method. Attributes whose key names a credential
// (see DefaultRedactedKeys, extended with WithRedactedKeys) are written as
// RedactedValue.
//
// The attribute helpers (Error, Component, Tenant, Outcome...) keep key names
// consistent across packages.
package logger
