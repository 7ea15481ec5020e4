package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		n, pageSize, want int
	}{
		{0, 5, 1},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{23, 5, 5},
		{23, 0, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.n, tt.pageSize), "n=%d pageSize=%d", tt.n, tt.pageSize)
	}
}

func TestView_EndToEndGunturBySpend(t *testing.T) {
	base := twentyThreeCustomers()
	require.Len(t, base, 23)

	res := View(customerSchema, base, Query{
		Criteria: []Criterion{SelectOne("city", "Guntur")},
		Sort:     &SortSpec{Field: "totalSales", Direction: Descending},
		Page:     2,
		PageSize: 5,
	})

	assert.Equal(t, 7, res.TotalCount)
	assert.Equal(t, 2, res.TotalPages)
	assert.Equal(t, 2, res.Page)
	require.Len(t, res.Records, 2)
	assert.Equal(t, "200", res.Records[0].TotalSales.String())
	assert.Equal(t, "100", res.Records[1].TotalSales.String())
	assert.True(t, res.Window.HasPrev)
	assert.False(t, res.Window.HasNext)
	assert.Equal(t, labels(1, 2), res.Window.Labels)
}

func TestView_ClampsPageWhenFilterShrinksResult(t *testing.T) {
	base := twentyThreeCustomers()

	before := View(customerSchema, base, Query{Page: 5, PageSize: 5})
	require.Equal(t, 5, before.TotalPages)
	require.Equal(t, 5, before.Page)
	require.Len(t, before.Records, 3)

	after := View(customerSchema, base, Query{
		Criteria: []Criterion{SelectOne("city", "Guntur")},
		Page:     before.Page,
		PageSize: 5,
	})
	assert.Equal(t, 2, after.TotalPages)
	assert.Equal(t, 2, after.Page)
	assert.Len(t, after.Records, 2)
	assert.Equal(t, 2, after.Window.Current)
}

func TestView_EmptyResultHasOnePage(t *testing.T) {
	res := View(customerSchema, twentyThreeCustomers(), Query{
		Criteria: []Criterion{TextMatch("nowhere", "city")},
		Page:     3,
	})

	assert.Equal(t, 0, res.TotalCount)
	assert.Equal(t, 1, res.TotalPages)
	assert.Equal(t, 1, res.Page)
	assert.Empty(t, res.Records)
	assert.False(t, res.Window.Needed)
}

func TestView_DefaultsAndUnknownSort(t *testing.T) {
	res := View(customerSchema, twentyThreeCustomers(), Query{
		Sort:     &SortSpec{Field: "favouriteColour"},
		Page:     0,
		PageSize: 1000,
	})

	assert.Nil(t, res.Sort)
	assert.Equal(t, 1, res.Page)
	assert.Equal(t, MaxPageSize, res.PageSize)
	assert.Len(t, res.Records, 23)
	assert.Equal(t, "Customer 01", res.Records[0].Name)
}

func TestView_FilterRunsBeforePaging(t *testing.T) {
	base := twentyThreeCustomers()

	res := View(customerSchema, base, Query{
		Criteria: []Criterion{NumberRange("totalSales", "1000", "")},
		Sort:     &SortSpec{Field: "totalSales", Direction: Ascending},
		PageSize: 4,
		Page:     4,
	})

	assert.Equal(t, 16, res.TotalCount)
	assert.Equal(t, 4, res.TotalPages)
	require.Len(t, res.Records, 4)
	assert.Equal(t, labels(1, 2, 3, 4), res.Window.Labels)
	assert.False(t, res.Window.HasNext)
}
