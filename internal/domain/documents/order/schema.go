package order

import (
	"time"

	"storeadmin/internal/core/types"
	"storeadmin/internal/listview"
)

// Schema exposes order fields to list views.
var Schema = listview.NewSchema(
	listview.Text("number", func(o *Order) string { return o.Number }),
	listview.Text("customerName", func(o *Order) string { return o.CustomerName }),
	listview.Enum("status", func(o *Order) Status { return o.Status }),
	listview.Enum("paymentStatus", func(o *Order) PaymentStatus { return o.PaymentStatus }),
	listview.Enum("currency", func(o *Order) string { return o.Currency }),
	listview.Number("total", func(o *Order) types.Money { return o.Total }),
	listview.Int("itemCount", func(o *Order) int64 { return o.ItemCount }),
	listview.Date("placedAt", func(o *Order) time.Time { return o.PlacedAt }),
)

// SearchFields are matched by the list search box.
var SearchFields = []string{"number", "customerName"}
