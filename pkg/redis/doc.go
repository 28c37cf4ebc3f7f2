// Package redis connects to the optional Redis instance shared by gateway
// replicas and exposes it as a small namespaced key/value Store.
//
// Connect retries the initial ping according to Config, Healthcheck plugs the
// client into the readiness endpoint, and Store is what the organization
// directory cache writes lookup results to:
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := redis.NewStore(client, cfg.KeyPrefix)
//
// Errors from Connect wrap the go-redis cause with errors.Join, so both the
// sentinel and the underlying error match errors.Is.
package redis
