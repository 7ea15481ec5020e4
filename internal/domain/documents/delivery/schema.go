package delivery

import (
	"time"

	"storeadmin/internal/listview"
)

// Schema exposes delivery fields to list views.
var Schema = listview.NewSchema(
	listview.Text("orderNumber", func(d *Delivery) string { return d.OrderNumber }),
	listview.Text("courier", func(d *Delivery) string { return d.Courier }),
	listview.Text("city", func(d *Delivery) string { return d.City }),
	listview.Enum("status", func(d *Delivery) Status { return d.Status }),
	listview.Text("trackingCode", func(d *Delivery) string { return d.TrackingCode }),
	listview.OptionalDateField("dispatchedAt", func(d *Delivery) *time.Time { return d.DispatchedAt }),
	listview.OptionalDateField("deliveredAt", func(d *Delivery) *time.Time { return d.DeliveredAt }),
)

// SearchFields are matched by the list search box.
var SearchFields = []string{"orderNumber", "courier", "city", "trackingCode"}
