// Package environment defines the deployment mode of the gateway and helpers
// to propagate it through context.Context and structured logs.
//
// The mode is parsed once at startup with ParseMode and injected into the
// components that branch on it (tenant resolution, routing). Request-time code
// never reads the process environment.
//
// # Usage
//
//	mode, err := environment.ParseMode(cfg.AppEnv)
//	if err != nil {
//		return err
//	}
//
//	handler = environment.Middleware(mode)(handler)
//
//	if environment.FromContext(ctx).IsProduction() {
//		// canonical subdomain redirects are enabled
//	}
//
// Staging deployments have wildcard DNS and are treated as production for
// routing purposes.
package environment
