package listview

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type testCustomer struct {
	Name       string
	Email      string
	Phone      string
	City       string
	Tier       string
	TotalSales decimal.Decimal
	JoinedAt   time.Time
	LastOrder  *time.Time
}

var customerSchema = NewSchema(
	Text("name", func(c testCustomer) string { return c.Name }),
	Text("email", func(c testCustomer) string { return c.Email }),
	Text("phone", func(c testCustomer) string { return c.Phone }),
	Text("city", func(c testCustomer) string { return c.City }),
	Enum("tier", func(c testCustomer) string { return c.Tier }),
	Number("totalSales", func(c testCustomer) decimal.Decimal { return c.TotalSales }),
	Date("joinedAt", func(c testCustomer) time.Time { return c.JoinedAt }),
	OptionalDateField("lastOrderAt", func(c testCustomer) *time.Time { return c.LastOrder }),
)

func day(s string) time.Time {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return t
}

// twentyThreeCustomers returns 23 customers, 7 of them in Guntur.
// Guntur sales are 700, 100, 600, 200, 500, 300, 400 in that order.
func twentyThreeCustomers() []testCustomer {
	cities := []string{"Vijayawada", "Guntur", "Nellore", "Tirupati"}
	gunturSales := []int64{700, 100, 600, 200, 500, 300, 400}

	var out []testCustomer
	g := 0
	for i := 0; i < 23; i++ {
		c := testCustomer{
			Name:       fmt.Sprintf("Customer %02d", i+1),
			Email:      fmt.Sprintf("customer%02d@example.com", i+1),
			Phone:      fmt.Sprintf("+91 98480 %05d", i+1),
			City:       cities[i%len(cities)],
			Tier:       "regular",
			TotalSales: decimal.NewFromInt(int64(1000 + i*10)),
			JoinedAt:   day("2024-01-01").AddDate(0, 0, i),
		}
		if i%3 == 0 && g < len(gunturSales) {
			c.City = "Guntur"
			c.TotalSales = decimal.NewFromInt(gunturSales[g])
			g++
		} else if c.City == "Guntur" {
			c.City = "Ongole"
		}
		out = append(out, c)
	}
	return out
}

func names(cs []testCustomer) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Name
	}
	return out
}
