package payout

import (
	"time"

	"storeadmin/internal/core/types"
	"storeadmin/internal/listview"
)

// Schema exposes payout fields to list views.
var Schema = listview.NewSchema(
	listview.Text("reference", func(p *Payout) string { return p.Reference }),
	listview.Enum("status", func(p *Payout) Status { return p.Status }),
	listview.Enum("method", func(p *Payout) Method { return p.Method }),
	listview.Number("amount", func(p *Payout) types.Money { return p.Amount }),
	listview.Text("currency", func(p *Payout) string { return p.Currency }),
	listview.Date("requestedAt", func(p *Payout) time.Time { return p.RequestedAt }),
	listview.OptionalDateField("paidAt", func(p *Payout) *time.Time { return p.PaidAt }),
)

// SearchFields are matched by the list search box.
var SearchFields = []string{"reference"}
