package product

import (
	"time"

	"storeadmin/internal/core/types"
	"storeadmin/internal/listview"
)

// Schema exposes product fields to list views.
var Schema = listview.NewSchema(
	listview.Text("name", func(p *Product) string { return p.Name }),
	listview.Text("sku", func(p *Product) string { return p.SKU }),
	listview.Text("category", func(p *Product) string { return p.Category }),
	listview.Enum("status", func(p *Product) Status { return p.Status }),
	listview.Number("price", func(p *Product) types.Money { return p.Price }),
	listview.Int("stock", func(p *Product) int64 { return p.Stock }),
	listview.Number("stockValue", func(p *Product) types.Money { return p.StockValue() }),
	listview.Date("createdAt", func(p *Product) time.Time { return p.CreatedAt }),
	listview.Date("updatedAt", func(p *Product) time.Time { return p.UpdatedAt }),
)

// SearchFields are matched by the list search box.
var SearchFields = []string{"name", "sku", "category"}
