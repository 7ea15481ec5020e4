package listview

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCustomers() []testCustomer {
	last := day("2024-03-10")
	return []testCustomer{
		{Name: "Asha Rao", Email: "asha@shop.in", Phone: "98480 11111", City: "Guntur", Tier: "gold", TotalSales: decimal.NewFromInt(1500), JoinedAt: day("2024-01-05"), LastOrder: &last},
		{Name: "Ravi Kumar", Email: "ravi@mail.com", Phone: "98480 22222", City: "Nellore", Tier: "silver", TotalSales: decimal.NewFromInt(300), JoinedAt: day("2024-02-10")},
		{Name: "Meena Das", Email: "MEENA@shop.in", Phone: "90000 33333", City: "Guntur", Tier: "silver", TotalSales: decimal.RequireFromString("999.99"), JoinedAt: time.Date(2024, 2, 29, 18, 30, 0, 0, time.UTC)},
		{Name: "Zoya Khan", Email: "zoya@mail.com", Phone: "91234 44444", City: "Tirupati", Tier: "gold", TotalSales: decimal.NewFromInt(50), JoinedAt: day("2024-03-01")},
	}
}

func TestFilter_EmptyCriteriaIsIdentity(t *testing.T) {
	in := sampleCustomers()

	assert.Equal(t, in, Filter(customerSchema, in, nil))
	assert.Equal(t, in, Filter(customerSchema, in, []Criterion{}))
}

func TestFilter_Text(t *testing.T) {
	in := sampleCustomers()

	tests := []struct {
		name string
		c    Criterion
		want []string
	}{
		{"case-insensitive name", TextMatch("ASHA", "name"), []string{"Asha Rao"}},
		{"any of several fields", TextMatch("shop.in", "name", "email", "phone"), []string{"Asha Rao", "Meena Das"}},
		{"matches phone", TextMatch("98480", "name", "email", "phone"), []string{"Asha Rao", "Ravi Kumar"}},
		{"folded email", TextMatch("meena@", "email"), []string{"Meena Das"}},
		{"no match", TextMatch("nobody", "name", "email"), []string{}},
		{"blank term is inactive", TextMatch("   ", "name"), names(in)},
		{"unknown fields are inactive", TextMatch("asha", "nickname"), names(in)},
		{"unknown field skipped among known", TextMatch("ravi", "nickname", "name"), []string{"Ravi Kumar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(customerSchema, in, []Criterion{tt.c})))
		})
	}
}

func TestFilter_NumberRange(t *testing.T) {
	in := sampleCustomers()

	tests := []struct {
		name string
		c    Criterion
		want []string
	}{
		{"min only", NumberRange("totalSales", "300", ""), []string{"Asha Rao", "Ravi Kumar", "Meena Das"}},
		{"max only", NumberRange("totalSales", "", "300"), []string{"Ravi Kumar", "Zoya Khan"}},
		{"inclusive both ends", NumberRange("totalSales", "300", "999.99"), []string{"Ravi Kumar", "Meena Das"}},
		{"unparseable min is inactive", NumberRange("totalSales", "abc", "100"), names(in)},
		{"no bounds is inactive", NumberRange("totalSales", "", ""), names(in)},
		{"wrong field kind is inactive", NumberRange("name", "1", "2"), names(in)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(customerSchema, in, []Criterion{tt.c})))
		})
	}
}

func TestFilter_DateRange(t *testing.T) {
	in := sampleCustomers()

	tests := []struct {
		name string
		c    Criterion
		want []string
	}{
		{"date-only max covers the whole day", DateRange("joinedAt", "2024-02-10", "2024-02-29"), []string{"Ravi Kumar", "Meena Das"}},
		{"timestamp max is exact", DateRange("joinedAt", "", "2024-02-29T12:00:00Z"), []string{"Asha Rao", "Ravi Kumar"}},
		{"min only", DateRange("joinedAt", "2024-03-01", ""), []string{"Zoya Khan"}},
		{"null value fails an active range", DateRange("lastOrderAt", "2024-01-01", ""), []string{"Asha Rao"}},
		{"unparseable max is inactive", DateRange("joinedAt", "2024-01-01", "next tuesday"), names(in)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(customerSchema, in, []Criterion{tt.c})))
		})
	}
}

func TestFilter_Select(t *testing.T) {
	in := sampleCustomers()

	assert.Equal(t, []string{"Asha Rao", "Zoya Khan"}, names(Filter(customerSchema, in, []Criterion{SelectOne("tier", "gold")})))
	assert.Equal(t, names(in), names(Filter(customerSchema, in, []Criterion{SelectOne("tier", "All")})))
	assert.Equal(t, names(in), names(Filter(customerSchema, in, []Criterion{SelectOne("tier", "")})))
	assert.Empty(t, Filter(customerSchema, in, []Criterion{SelectOne("tier", "Gold")}), "select is exact")
}

func TestFilter_AndSemanticsComposes(t *testing.T) {
	in := twentyThreeCustomers()
	c1 := TextMatch("guntur", "city")
	c2 := NumberRange("totalSales", "250", "650")

	both := Filter(customerSchema, in, []Criterion{c1, c2})
	chained := Filter(customerSchema, Filter(customerSchema, in, []Criterion{c1}), []Criterion{c2})

	require.NotEmpty(t, both)
	assert.Equal(t, chained, both)
	for _, c := range both {
		assert.Equal(t, "Guntur", c.City)
	}
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleCustomers()
	before := names(in)

	_ = Filter(customerSchema, in, []Criterion{SelectOne("city", "Guntur")})

	assert.Equal(t, before, names(in))
}

func TestActive(t *testing.T) {
	assert.True(t, Active(customerSchema, SelectOne("tier", "gold")))
	assert.False(t, Active(customerSchema, SelectOne("tier", "all")))
	assert.False(t, Active(customerSchema, Criterion{Kind: "regex", Fields: []string{"name"}, Value: ".*"}))
}
