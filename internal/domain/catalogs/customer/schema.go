package customer

import (
	"time"

	"storeadmin/internal/core/types"
	"storeadmin/internal/listview"
)

// Schema exposes customer fields to list views.
var Schema = listview.NewSchema(
	listview.Text("name", func(c *Customer) string { return c.Name }),
	listview.Text("email", func(c *Customer) string { return c.Email }),
	listview.Text("phone", func(c *Customer) string { return c.Phone }),
	listview.Text("city", func(c *Customer) string { return c.City }),
	listview.Number("totalSales", func(c *Customer) types.Money { return c.TotalSales }),
	listview.Int("orderCount", func(c *Customer) int64 { return c.OrderCount }),
	listview.Date("joinedAt", func(c *Customer) time.Time { return c.JoinedAt }),
)

// SearchFields are matched by the list search box.
var SearchFields = []string{"name", "email", "phone"}
