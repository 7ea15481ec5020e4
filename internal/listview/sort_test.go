package listview

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSort_NilSpecKeepsOrder(t *testing.T) {
	in := sampleCustomers()
	assert.Equal(t, names(in), names(Sort(customerSchema, in, nil)))
}

func TestSort_UnknownFieldIsNoop(t *testing.T) {
	in := sampleCustomers()
	assert.Equal(t, names(in), names(Sort(customerSchema, in, &SortSpec{Field: "shoeSize", Direction: Descending})))
}

func TestSort_ByKind(t *testing.T) {
	in := sampleCustomers()

	tests := []struct {
		name string
		spec SortSpec
		want []string
	}{
		{"text ascending", SortSpec{"name", Ascending}, []string{"Asha Rao", "Meena Das", "Ravi Kumar", "Zoya Khan"}},
		{"text is case-insensitive", SortSpec{"email", Ascending}, []string{"Asha Rao", "Meena Das", "Ravi Kumar", "Zoya Khan"}},
		{"number descending", SortSpec{"totalSales", Descending}, []string{"Asha Rao", "Meena Das", "Ravi Kumar", "Zoya Khan"}},
		{"number ascending", SortSpec{"totalSales", Ascending}, []string{"Zoya Khan", "Ravi Kumar", "Meena Das", "Asha Rao"}},
		{"date descending", SortSpec{"joinedAt", Descending}, []string{"Zoya Khan", "Meena Das", "Ravi Kumar", "Asha Rao"}},
		{"nulls first ascending", SortSpec{"lastOrderAt", Ascending}, []string{"Ravi Kumar", "Meena Das", "Zoya Khan", "Asha Rao"}},
		{"nulls last descending", SortSpec{"lastOrderAt", Descending}, []string{"Asha Rao", "Ravi Kumar", "Meena Das", "Zoya Khan"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := tt.spec
			assert.Equal(t, tt.want, names(Sort(customerSchema, in, &spec)))
		})
	}
}

func TestSort_IsStable(t *testing.T) {
	in := []testCustomer{
		{Name: "a", City: "Guntur", TotalSales: decimal.NewFromInt(10)},
		{Name: "b", City: "Nellore", TotalSales: decimal.NewFromInt(20)},
		{Name: "c", City: "guntur", TotalSales: decimal.NewFromInt(10)},
		{Name: "d", City: "Nellore", TotalSales: decimal.NewFromInt(10)},
		{Name: "e", City: "GUNTUR", TotalSales: decimal.NewFromInt(20)},
	}

	assert.Equal(t, []string{"a", "c", "e", "b", "d"}, names(Sort(customerSchema, in, &SortSpec{"city", Ascending})))
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, names(Sort(customerSchema, in, &SortSpec{"city", Descending})))
	assert.Equal(t, []string{"b", "e", "a", "c", "d"}, names(Sort(customerSchema, in, &SortSpec{"totalSales", Descending})))
}

func TestSort_DoesNotMutateInput(t *testing.T) {
	in := sampleCustomers()
	before := names(in)

	_ = Sort(customerSchema, in, &SortSpec{"name", Descending})

	assert.Equal(t, before, names(in))
}

func TestToggle(t *testing.T) {
	first := Toggle(nil, "totalSales")
	assert.Equal(t, &SortSpec{"totalSales", Ascending}, first)

	second := Toggle(first, "totalSales")
	assert.Equal(t, &SortSpec{"totalSales", Descending}, second)
	assert.Equal(t, Ascending, first.Direction, "toggle must not modify its input")

	assert.Equal(t, &SortSpec{"totalSales", Ascending}, Toggle(second, "totalSales"))
	assert.Equal(t, &SortSpec{"name", Ascending}, Toggle(second, "name"))
}

func TestToggle_SameFieldReversesOrder(t *testing.T) {
	in := sampleCustomers()
	spec := Toggle(nil, "totalSales")
	asc := names(Sort(customerSchema, in, spec))

	spec = Toggle(spec, "totalSales")
	desc := names(Sort(customerSchema, in, spec))

	for i := range asc {
		assert.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestParseSort(t *testing.T) {
	tests := []struct {
		in   string
		want *SortSpec
	}{
		{"", nil},
		{"-", nil},
		{"name", &SortSpec{"name", Ascending}},
		{"+name", &SortSpec{"name", Ascending}},
		{"-totalSales", &SortSpec{"totalSales", Descending}},
		{" -placedAt ", &SortSpec{"placedAt", Descending}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseSort(tt.in)
			assert.Equal(t, tt.want, got)
			if got != nil {
				assert.Equal(t, got, ParseSort(got.String()))
			}
		})
	}
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Descending, ParseDirection("descending"))
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Ascending, ParseDirection("sideways"))
}
