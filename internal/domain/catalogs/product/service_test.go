package product

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeadmin/internal/core/apperror"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
	"storeadmin/internal/infrastructure/storage/memory"
	"storeadmin/internal/listview"
)

func newTestService() *Service {
	return NewService(memory.NewRepo("product", (*Product).Clone), 16)
}

func seed(t *testing.T, svc *Service, storeID id.ID, n int) []*Product {
	t.Helper()
	out := make([]*Product, 0, n)
	for i := 1; i <= n; i++ {
		p := New(storeID, fmt.Sprintf("Cotton Saree %02d", i), fmt.Sprintf("SAR-%02d", i), types.MustMoney(fmt.Sprintf("%d.50", 100*i)))
		p.Category = "sarees"
		p.Stock = int64(i)
		require.NoError(t, svc.Create(context.Background(), p))
		out = append(out, p)
	}
	return out
}

func TestProduct_Validate(t *testing.T) {
	storeID := id.New()
	tests := []struct {
		name  string
		mod   func(p *Product)
		field string
	}{
		{"missing name", func(p *Product) { p.Name = " " }, "name"},
		{"missing sku", func(p *Product) { p.SKU = "" }, "sku"},
		{"bad status", func(p *Product) { p.Status = "hidden" }, "status"},
		{"negative price", func(p *Product) { p.Price = types.MustMoney("-1") }, "price"},
		{"negative stock", func(p *Product) { p.Stock = -2 }, "stock"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(storeID, "Kurta", "k-1", types.MustMoney("499"))
			tt.mod(p)
			err := p.Validate(context.Background())
			appErr, ok := apperror.AsAppError(err)
			require.True(t, ok)
			assert.Equal(t, apperror.CodeValidation, appErr.Code)
			assert.Equal(t, tt.field, appErr.Details["field"])
		})
	}

	assert.Equal(t, "K-1", New(storeID, "Kurta", " k-1 ", types.Zero()).SKU)
}

func TestService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	storeID := id.New()
	seed(t, svc, storeID, 12)
	seed(t, svc, id.New(), 3)

	res, err := svc.List(ctx, storeID, listview.Query{
		Criteria: []listview.Criterion{listview.NumberRange("price", "300", "900")},
		Sort:     &listview.SortSpec{Field: "price", Direction: listview.Descending},
		PageSize: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 6, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Records, 5)
	assert.Equal(t, "SAR-08", res.Records[0].SKU)
	assert.Equal(t, "SAR-04", res.Records[4].SKU)
}

func TestService_ListSeesNewRecords(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	storeID := id.New()
	seed(t, svc, storeID, 2)

	res, err := svc.List(ctx, storeID, listview.Query{})
	require.NoError(t, err)
	require.Equal(t, 2, res.TotalCount)

	require.NoError(t, svc.Create(ctx, New(storeID, "Silk Dupatta", "DUP-1", types.MustMoney("799"))))

	res, err = svc.List(ctx, storeID, listview.Query{
		Criteria: []listview.Criterion{listview.TextMatch("dupatta", SearchFields...)},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.TotalCount)
}

func TestService_RejectsDuplicateSKU(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	storeID := id.New()
	seed(t, svc, storeID, 1)

	err := svc.Create(ctx, New(storeID, "Another", "sar-01", types.Zero()))
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))

	// Same SKU in another store is fine.
	assert.NoError(t, svc.Create(ctx, New(id.New(), "Another", "SAR-01", types.Zero())))
}

func TestService_SKUNamedAllIsNotAWildcard(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	storeID := id.New()
	seed(t, svc, storeID, 2)

	shawl := New(storeID, "Shawl", "all", types.MustMoney("650"))
	require.NoError(t, svc.Create(ctx, shawl))
	assert.Equal(t, "ALL", shawl.SKU)

	shawl.Name = "Pashmina Shawl"
	require.NoError(t, svc.Update(ctx, shawl))

	err := svc.Create(ctx, New(storeID, "Stole", "ALL", types.Zero()))
	assert.True(t, apperror.HasCode(err, apperror.CodeDuplicate))
}

func TestService_AdjustStock(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	storeID := id.New()
	p := seed(t, svc, storeID, 3)[2]

	updated, err := svc.AdjustStock(ctx, storeID, p.ID, -2, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), updated.Stock)
	assert.Equal(t, 2, updated.Version)

	_, err = svc.AdjustStock(ctx, storeID, p.ID, -5, 0)
	assert.True(t, apperror.HasCode(err, apperror.CodeInsufficientStock))

	_, err = svc.AdjustStock(ctx, storeID, p.ID, 1, 1)
	assert.True(t, apperror.IsConcurrentModification(err))

	res, err := svc.List(ctx, storeID, listview.Query{Criteria: []listview.Criterion{listview.SelectOne("sku", "SAR-03")}})
	require.NoError(t, err)
	require.Len(t, res.Records, 1)
	assert.Equal(t, int64(1), res.Records[0].Stock)
}

func TestService_GetByIDIsStoreScoped(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	p := seed(t, svc, id.New(), 1)[0]

	_, err := svc.GetByID(ctx, id.New(), p.ID)
	assert.True(t, apperror.IsNotFound(err))

	_, err = svc.GetByID(ctx, p.StoreID, id.New())
	assert.True(t, apperror.IsNotFound(err))
}

func TestService_UpdateConflict(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()
	p := seed(t, svc, id.New(), 1)[0]

	a, err := svc.GetByID(ctx, p.StoreID, p.ID)
	require.NoError(t, err)
	b, err := svc.GetByID(ctx, p.StoreID, p.ID)
	require.NoError(t, err)

	a.Status = StatusActive
	require.NoError(t, svc.Update(ctx, a))

	b.Name = "Stale edit"
	assert.True(t, apperror.IsConcurrentModification(svc.Update(ctx, b)))
}
