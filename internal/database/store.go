package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/config"
	"github.com/pageza/forkcast/backend/internal/store"
	"github.com/pageza/forkcast/backend/internal/store/memory"
	"github.com/pageza/forkcast/backend/internal/store/mongostore"
	"github.com/pageza/forkcast/backend/internal/store/relational"
)

// OpenStore connects the backend selected by STORE_BACKEND and, when
// AUTO_MIGRATE is set, prepares its schema.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, error) {
	var (
		st  store.Store
		err error
	)

	switch cfg.StoreBackend {
	case config.BackendMemory:
		st = memory.New()
	case config.BackendPostgres:
		db, openErr := New(cfg, log)
		if openErr != nil {
			return nil, openErr
		}
		st = relational.New(db)
	case config.BackendSQLite:
		db, openErr := NewSQLite(cfg, log)
		if openErr != nil {
			return nil, openErr
		}
		st = relational.New(db)
	case config.BackendMongo:
		st, err = mongostore.Connect(ctx, cfg.MongoURL, cfg.MongoDatabase)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}

	log.Info("store opened", zap.String("store", st.Name()))

	if cfg.AutoMigrate {
		if err := RunMigrations(ctx, st, log); err != nil {
			_ = st.Close(ctx)
			return nil, err
		}
	}
	return st, nil
}
