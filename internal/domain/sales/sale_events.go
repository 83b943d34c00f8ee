package sales

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeSaleRecord = "SaleRecord"

// Event type constants
const (
	EventTypeSaleRecorded = "SaleRecorded"
)

// SaleRecordedEvent is published when a sale is recorded
type SaleRecordedEvent struct {
	shared.BaseDomainEvent
	SaleID   uuid.UUID       `json:"sale_id"`
	ItemID   uuid.UUID       `json:"item_id"`
	ItemName string          `json:"item_name"`
	Quantity int64           `json:"quantity"`
	Revenue  decimal.Decimal `json:"revenue"`
	Profit   decimal.Decimal `json:"profit"`
	SoldOn   time.Time       `json:"sold_on"`
}

// NewSaleRecordedEvent creates a new SaleRecordedEvent
func NewSaleRecordedEvent(record *SaleRecord) *SaleRecordedEvent {
	return &SaleRecordedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleRecorded, record.ID, AggregateTypeSaleRecord),
		SaleID:          record.ID,
		ItemID:          record.ItemID,
		ItemName:        record.ItemName,
		Quantity:        record.Quantity,
		Revenue:         record.Revenue,
		Profit:          record.Profit,
		SoldOn:          record.SoldOn,
	}
}
