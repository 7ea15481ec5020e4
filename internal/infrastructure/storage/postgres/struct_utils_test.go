package postgres

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"storeadmin/internal/core/entity"
	"storeadmin/internal/core/id"
	"storeadmin/internal/core/types"
)

type mockRecord struct {
	entity.Base
	Name    string      `db:"name"`
	Amount  types.Money `db:"amount"`
	Skipped string      `db:"-"`
	Plain   string
	PaidAt  *time.Time `db:"paid_at"`
}

func TestExtractDBColumns_EmbeddedBaseFirst(t *testing.T) {
	cols := ExtractDBColumns[*mockRecord]()

	assert.Equal(t, []string{
		"id", "store_id", "version", "created_at", "updated_at",
		"name", "amount", "paid_at",
	}, cols)
}

func TestStructToMap_IncludesEmbeddedFields(t *testing.T) {
	storeID := id.New()
	rec := &mockRecord{
		Base:    entity.NewBase(storeID),
		Name:    "Mango Pickle",
		Amount:  types.MustMoney("249.50"),
		Skipped: "ignored",
		Plain:   "ignored",
	}
	rec.Version = 4

	m := StructToMap(rec)

	assert.Equal(t, rec.ID, m["id"])
	assert.Equal(t, storeID, m["store_id"])
	assert.Equal(t, 4, m["version"])
	assert.Equal(t, "Mango Pickle", m["name"])
	assert.True(t, types.MustMoney("249.5").Equal(m["amount"].(types.Money)))
	assert.Nil(t, m["paid_at"])
	assert.NotContains(t, m, "Skipped")
	assert.NotContains(t, m, "Plain")
	assert.Len(t, m, 8)
}

func TestStructToMap_NonStruct(t *testing.T) {
	assert.Nil(t, StructToMap(42))
	assert.Nil(t, StructToMap((*mockRecord)(nil)))
}
