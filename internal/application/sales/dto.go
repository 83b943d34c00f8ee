package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/sales"
)

// RecordSaleRequest represents a request to record a sale. The item may
// be referenced by ID or by its unique name; ID wins when both are set.
type RecordSaleRequest struct {
	ItemID   *uuid.UUID `json:"item_id"`
	ItemName string     `json:"item_name"`
	Quantity int64      `json:"quantity" binding:"required"`
	SoldOn   *string    `json:"sold_on"` // YYYY-MM-DD, defaults to today
}

// SaleResponse represents a recorded sale in API responses
type SaleResponse struct {
	ID            uuid.UUID       `json:"id"`
	ItemID        uuid.UUID       `json:"item_id"`
	ItemName      string          `json:"item_name"`
	Quantity      int64           `json:"quantity"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	UnitCost      decimal.Decimal `json:"unit_cost"`
	CommissionPct decimal.Decimal `json:"commission_pct"`
	Revenue       decimal.Decimal `json:"revenue"`
	Cost          decimal.Decimal `json:"cost"`
	Commission    decimal.Decimal `json:"commission"`
	Profit        decimal.Decimal `json:"profit"`
	SoldOn        string          `json:"sold_on"`
	CreatedAt     time.Time       `json:"created_at"`
}

// DailySummaryResponse aggregates one calendar date of sales
type DailySummaryResponse struct {
	Date    string          `json:"date"`
	Revenue decimal.Decimal `json:"revenue"`
	Profit  decimal.Decimal `json:"profit"`
	Count   int64           `json:"count"`
	Records []SaleResponse  `json:"records"`
}

// ToSaleResponse converts a domain sale record to a response DTO
func ToSaleResponse(record *sales.SaleRecord) SaleResponse {
	return SaleResponse{
		ID:            record.ID,
		ItemID:        record.ItemID,
		ItemName:      record.ItemName,
		Quantity:      record.Quantity,
		UnitPrice:     record.UnitPrice,
		UnitCost:      record.UnitCost,
		CommissionPct: record.CommissionPct,
		Revenue:       record.Revenue,
		Cost:          record.Cost,
		Commission:    record.Commission,
		Profit:        record.Profit,
		SoldOn:        record.SoldOn.Format("2006-01-02"),
		CreatedAt:     record.CreatedAt,
	}
}
