// Package pg connects to PostgreSQL through a pgx/v5 pool, applies goose
// migrations from an fs.FS, and classifies common pgx errors.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, migrations.FS, cfg, log); err != nil { ... }
package pg
