// Package pg wraps the pgx/v5 connection pool used by the Postgres
// organization directory.
//
// Connect opens a pool with bounded retries, Healthcheck adapts the pool to the
// readiness probe, and Migrate applies goose migrations from an fs.FS (the
// directory package embeds its own). IsNotFoundError maps pgx.ErrNoRows for
// callers that translate it into their own not-found sentinel.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer pool.Close()
//
//	if cfg.Migrate {
//		if err := pg.Migrate(ctx, pool, cfg, orgdir.Migrations(), log); err != nil {
//			return err
//		}
//	}
package pg
