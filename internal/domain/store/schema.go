package store

import (
	"time"

	"storeadmin/internal/listview"
)

// Schema exposes store fields to list views.
var Schema = listview.NewSchema(
	listview.Text("name", func(s *Store) string { return s.Name }),
	listview.Text("currency", func(s *Store) string { return s.Currency }),
	listview.Text("ownerId", func(s *Store) string { return s.OwnerID.String() }),
	listview.Date("createdAt", func(s *Store) time.Time { return s.CreatedAt }),
)

// SearchFields are matched by the list search box.
var SearchFields = []string{"name"}
