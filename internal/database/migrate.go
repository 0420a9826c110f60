package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/pageza/forkcast/backend/internal/store"
)

// RunMigrations creates the schema or indexes the backend needs. Backends
// without a schema are left alone.
func RunMigrations(ctx context.Context, st store.Store, log *zap.Logger) error {
	m, ok := st.(store.Migrator)
	if !ok {
		log.Info("store has no schema to migrate", zap.String("store", st.Name()))
		return nil
	}

	log.Info("running migrations", zap.String("store", st.Name()))
	if err := m.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate %s store: %w", st.Name(), err)
	}
	log.Info("migrations complete", zap.String("store", st.Name()))
	return nil
}
