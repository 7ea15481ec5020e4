package domain_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
	"storeadmin/internal/domain"
	"storeadmin/internal/domain/catalogs/product"
	"storeadmin/internal/infrastructure/storage/memory"
	"storeadmin/internal/listview"
)

func newProductCatalog(storeCacheSize int) *domain.CatalogService[*product.Product] {
	return domain.NewCatalogService(domain.CatalogServiceConfig[*product.Product]{
		Repo:           memory.NewRepo("product", (*product.Product).Clone),
		Schema:         product.Schema,
		EntityName:     "product",
		ViewCacheSize:  4,
		StoreCacheSize: storeCacheSize,
	})
}

func TestCatalogService_EvictsLeastRecentlyListedStores(t *testing.T) {
	ctx := context.Background()
	svc := newProductCatalog(2)

	stores := []id.ID{id.New(), id.New(), id.New()}
	for _, storeID := range stores {
		require.NoError(t, svc.Create(ctx, product.New(storeID, "Kurta", "K-1", types.MustMoney("499"))))
	}
	for _, storeID := range stores {
		res, err := svc.List(ctx, storeID, listview.Query{})
		require.NoError(t, err)
		assert.Equal(t, 1, res.TotalCount)
	}
	assert.Equal(t, 2, svc.LoadedStores())

	// An evicted store is reloaded from storage on its next list.
	res, err := svc.List(ctx, stores[0], listview.Query{})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalCount)
	assert.Equal(t, 2, svc.LoadedStores())
}

func TestCatalogService_RecordsReflectWrites(t *testing.T) {
	ctx := context.Background()
	svc := newProductCatalog(0)
	storeID := id.New()

	records, err := svc.Records(ctx, storeID)
	require.NoError(t, err)
	assert.Empty(t, records)

	require.NoError(t, svc.Create(ctx, product.New(storeID, "Kurta", "K-1", types.MustMoney("499"))))

	records, err = svc.Records(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "K-1", records[0].SKU)
}
