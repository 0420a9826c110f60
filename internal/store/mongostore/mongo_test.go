package mongostore

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pageza/forkcast/backend/internal/store"
	"github.com/pageza/forkcast/backend/internal/store/storetest"
	"github.com/pageza/forkcast/backend/internal/testhelpers"
)

func TestMongoConformance(t *testing.T) {
	cfg := testhelpers.StartMongo(t)
	var n atomic.Int64

	storetest.Run(t, func(t *testing.T) store.Store {
		ctx := context.Background()
		s, err := Connect(ctx, cfg.MongoURL, fmt.Sprintf("forkcast_test_%d", n.Add(1)))
		require.NoError(t, err)
		require.NoError(t, s.Migrate(ctx))
		t.Cleanup(func() {
			_ = s.Drop(ctx)
			_ = s.Close(ctx)
		})
		return s
	})
}
