package sales

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewSaleRecord(t *testing.T) {
	itemID := uuid.New()
	soldOn := time.Date(2026, 8, 29, 14, 30, 0, 0, time.UTC)

	t.Run("computes snapshot totals at creation", func(t *testing.T) {
		record, err := NewSaleRecord(itemID, "Rice 5kg", 3, d("150"), d("100"), d("10"), soldOn)

		require.NoError(t, err)
		assert.True(t, record.Revenue.Equal(d("450")), "revenue %s", record.Revenue)
		assert.True(t, record.Cost.Equal(d("300")), "cost %s", record.Cost)
		assert.True(t, record.Commission.Equal(d("45")), "commission %s", record.Commission)
		assert.True(t, record.Profit.Equal(d("105")), "profit %s", record.Profit)
	})

	t.Run("profit ignores gst even when the item carries one", func(t *testing.T) {
		// Per-unit catalog profit would also deduct GST; the sale ledger
		// keeps the cruder revenue - cost - commission figure.
		record, err := NewSaleRecord(itemID, "Rice 5kg", 1, d("150"), d("100"), d("10"), soldOn)

		require.NoError(t, err)
		assert.True(t, record.Profit.Equal(d("35")))
	})

	t.Run("normalizes sold-on to a calendar date", func(t *testing.T) {
		record, err := NewSaleRecord(itemID, "Rice 5kg", 1, d("150"), d("100"), d("10"), soldOn)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), record.SoldOn)
	})

	t.Run("emits a SaleRecorded event", func(t *testing.T) {
		record, err := NewSaleRecord(itemID, "Rice 5kg", 2, d("150"), d("100"), d("10"), soldOn)

		require.NoError(t, err)
		events := record.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSaleRecorded, events[0].GetEventType())
	})

	t.Run("rejects zero quantity", func(t *testing.T) {
		_, err := NewSaleRecord(itemID, "Rice 5kg", 0, d("150"), d("100"), d("10"), soldOn)
		assert.Error(t, err)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		_, err := NewSaleRecord(itemID, "Rice 5kg", -2, d("150"), d("100"), d("10"), soldOn)
		assert.Error(t, err)
	})

	t.Run("rejects empty item name", func(t *testing.T) {
		_, err := NewSaleRecord(itemID, "", 1, d("150"), d("100"), d("10"), soldOn)
		assert.Error(t, err)
	})

	t.Run("rejects negative prices", func(t *testing.T) {
		_, err := NewSaleRecord(itemID, "Rice 5kg", 1, d("-1"), d("100"), d("10"), soldOn)
		assert.Error(t, err)

		_, err = NewSaleRecord(itemID, "Rice 5kg", 1, d("150"), d("-1"), d("10"), soldOn)
		assert.Error(t, err)
	})

	t.Run("rejects commission outside 0-100", func(t *testing.T) {
		_, err := NewSaleRecord(itemID, "Rice 5kg", 1, d("150"), d("100"), d("100.5"), soldOn)
		assert.Error(t, err)
	})
}

func TestDateOf(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	stamp := time.Date(2026, 8, 30, 1, 15, 0, 0, ist) // still Aug 29 in UTC

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), DateOf(stamp))
}
