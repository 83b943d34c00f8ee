package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/shared"
)

var oneHundred = decimal.NewFromInt(100)

// SaleRecord captures a completed sale. All monetary fields are computed
// and frozen at creation time so later catalog edits never change the
// recorded figures. Profit deducts commission but not GST; GST is only
// netted out in catalog-wide profit projections.
type SaleRecord struct {
	shared.BaseAggregateRoot
	ItemID        uuid.UUID       `gorm:"type:uuid;index"`
	ItemName      string          `gorm:"type:varchar(200);not null"`
	Quantity      int64           `gorm:"not null"`
	UnitPrice     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	UnitCost      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CommissionPct decimal.Decimal `gorm:"type:decimal(7,4);not null"`
	Revenue       decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Cost          decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Commission    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Profit        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	SoldOn        time.Time       `gorm:"type:date;not null;index"`
}

// TableName returns the table name for GORM
func (SaleRecord) TableName() string {
	return "sale_records"
}

// NewSaleRecord records a sale of the given quantity at the item's
// current prices. soldOn is normalized to a calendar date.
func NewSaleRecord(itemID uuid.UUID, itemName string, quantity int64, unitPrice, unitCost, commissionPct decimal.Decimal, soldOn time.Time) (*SaleRecord, error) {
	if itemName == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if quantity <= 0 {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitPrice.IsNegative() || unitCost.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	if commissionPct.IsNegative() || commissionPct.GreaterThan(oneHundred) {
		return nil, shared.NewDomainError("INVALID_RATE", "Commission must be between 0 and 100")
	}

	qty := decimal.NewFromInt(quantity)
	revenue := unitPrice.Mul(qty)
	cost := unitCost.Mul(qty)
	commission := revenue.Mul(commissionPct).Div(oneHundred)

	record := &SaleRecord{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ItemID:            itemID,
		ItemName:          itemName,
		Quantity:          quantity,
		UnitPrice:         unitPrice,
		UnitCost:          unitCost,
		CommissionPct:     commissionPct,
		Revenue:           revenue,
		Cost:              cost,
		Commission:        commission,
		Profit:            revenue.Sub(cost).Sub(commission),
		SoldOn:            DateOf(soldOn),
	}

	record.AddDomainEvent(NewSaleRecordedEvent(record))

	return record, nil
}

// DateOf truncates a timestamp to its calendar date in UTC
func DateOf(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
