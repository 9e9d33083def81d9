package app

import (
	"context"
	"testing"

	"github.com/stpnv0/SitterMatch/internal/repository/memory"
	"github.com/stpnv0/SitterMatch/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func TestDefaultCatalog_Seeds(t *testing.T) {
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	require.NoError(t, err)
	store := memory.NewStore()
	svc := service.NewCatalogService(store.Catalog(), log)
	ctx := context.Background()

	require.NoError(t, svc.Seed(ctx, defaultCities, defaultStyles))

	cities, err := svc.ListCities(ctx)
	require.NoError(t, err)
	assert.Len(t, cities, len(defaultCities))
	for _, c := range cities {
		hoods, err := svc.ListNeighborhoods(ctx, c.ID)
		require.NoError(t, err)
		assert.NotEmpty(t, hoods, c.Name)
	}

	styles, err := svc.ListCommunityStyles(ctx)
	require.NoError(t, err)
	assert.Len(t, styles, len(defaultStyles))
}
