package customer

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

func TestCustomer_Validate(t *testing.T) {
	storeID := id.New()

	assert.NoError(t, New(storeID, "Lakshmi", "", "98480 12345", "Guntur").Validate(context.Background()))

	err := New(storeID, "Lakshmi", "not-an-email", "", "Guntur").Validate(context.Background())
	appErr, ok := apperror.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "email", appErr.Details["field"])

	err = New(storeID, "Lakshmi", "", "", "Guntur").Validate(context.Background())
	assert.Error(t, err)

	err = New(storeID, "", "l@example.com", "", "Guntur").Validate(context.Background())
	assert.Error(t, err)
}

// Twenty-three customers, seven in Guntur with distinct spend.
func TestService_GunturTopSpendersSecondPage(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewRepo("customer", (*Customer).Clone), 8)
	storeID := id.New()

	gunturSpend := []string{"7000", "1000", "6000", "2000", "5000", "3000", "4000"}
	g := 0
	for i := 0; i < 23; i++ {
		city := "Vijayawada"
		if i%3 == 0 && g < len(gunturSpend) {
			city = "Guntur"
		}
		c := New(storeID, fmt.Sprintf("Customer %02d", i+1), fmt.Sprintf("c%02d@example.com", i+1), "", city)
		if city == "Guntur" {
			c.TotalSales = types.MustMoney(gunturSpend[g])
			g++
		} else {
			c.TotalSales = types.MustMoney(fmt.Sprintf("%d", 100+i))
		}
		require.NoError(t, svc.Create(ctx, c))
	}

	res, err := svc.List(ctx, storeID, listview.Query{
		Criteria: []listview.Criterion{listview.SelectOne("city", "Guntur")},
		Sort:     listview.ParseSort("-totalSales"),
		Page:     2,
		PageSize: 5,
	})
	require.NoError(t, err)

	assert.Equal(t, 7, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "2000", res.Records[0].TotalSales.String())
	assert.Equal(t, "1000", res.Records[1].TotalSales.String())
	assert.False(t, res.Window.HasNext)
}

func TestService_RecordOrder(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewRepo("customer", (*Customer).Clone), 8)
	c := New(id.New(), "Ravi", "ravi@example.com", "", "Nellore")
	require.NoError(t, svc.Create(ctx, c))

	require.NoError(t, svc.RecordOrder(ctx, c.StoreID, c.ID, types.MustMoney("250.75")))
	require.NoError(t, svc.RecordOrder(ctx, c.StoreID, c.ID, types.MustMoney("100")))

	got, err := svc.GetByID(ctx, c.StoreID, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "350.75", got.TotalSales.String())
	assert.Equal(t, int64(2), got.OrderCount)
}
