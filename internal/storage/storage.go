// Package storage opens the configured persistence backend.
package storage

import (
	"context"
	"fmt"

	"cloudstay/internal/config"
	"cloudstay/internal/db"
	"cloudstay/internal/logger"
	"cloudstay/internal/repository"
	"cloudstay/internal/repository/mongostore"
)

// Open connects the configured driver. Schema and index setup run on the
// store's first successful ping; a store that is not ready at startup is
// logged and the caller starts anyway.
func Open(ctx context.Context, cfg *config.Config, debug bool) (*repository.Store, error) {
	var store *repository.Store
	switch cfg.StoreDriver {
	case config.StoreMySQL:
		gormDB, err := db.NewMySQL(cfg.MySQLDSN, debug)
		if err != nil {
			return nil, err
		}
		store = repository.NewGormStore(gormDB)
	case config.StoreMongo:
		client, err := db.NewMongo(ctx, cfg.MongoURI, mongostore.Registry())
		if err != nil {
			return nil, err
		}
		store = mongostore.New(client, cfg.MongoDB)
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
	}

	if err := store.Ping(ctx); err != nil {
		logger.Warn("store not ready at startup", "driver", cfg.StoreDriver, "error", err)
	}
	return store, nil
}
