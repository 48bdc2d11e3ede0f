package main

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"campusmap/internal/catalog"
	"campusmap/internal/config"
)

// openCatalog returns the Postgres catalogue when a DSN is configured,
// seeded with the built-in buildings, and the in-memory one otherwise.
// The returned func releases the connection pool.
func openCatalog(ctx context.Context, c *config.Config, log *zap.Logger) (catalog.Repository, func(), error) {
	if c.Postgres.DSN == "" {
		log.Debug("using built-in catalogue")
		return catalog.NewMemoryRepository(catalog.Seed()), func() {}, nil
	}
	repo, err := catalog.NewPostgresRepository(ctx, c.Postgres.DSN)
	if err != nil {
		return nil, nil, err
	}
	if err := repo.Upsert(ctx, catalog.Seed()); err != nil {
		repo.Close()
		return nil, nil, fmt.Errorf("seed catalogue: %w", err)
	}
	log.Info("using postgres catalogue")
	return repo, repo.Close, nil
}
