package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/catalog"
)

// CreateItemRequest represents a request to add an item to the catalog.
// Prices are pointers so an omitted field is distinguishable from an
// explicit zero; both must be present.
type CreateItemRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Category      string           `json:"category" binding:"max=100"`
	PurchasePrice *decimal.Decimal `json:"purchase_price" binding:"required"`
	SellingPrice  *decimal.Decimal `json:"selling_price" binding:"required"`
	CommissionPct *decimal.Decimal `json:"commission_pct"`
	GSTPct        *decimal.Decimal `json:"gst_pct"`
	Stock         *int64           `json:"stock"`
}

// UpdateItemRequest represents a request to update an item
type UpdateItemRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Category      *string          `json:"category" binding:"omitempty,max=100"`
	PurchasePrice *decimal.Decimal `json:"purchase_price"`
	SellingPrice  *decimal.Decimal `json:"selling_price"`
	CommissionPct *decimal.Decimal `json:"commission_pct"`
	GSTPct        *decimal.Decimal `json:"gst_pct"`
	Stock         *int64           `json:"stock"`
}

// ItemResponse represents an item in API responses
type ItemResponse struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Category      string          `json:"category"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	CommissionPct decimal.Decimal `json:"commission_pct"`
	GSTPct        decimal.Decimal `json:"gst_pct"`
	Stock         int64           `json:"stock"`
	UnitNetProfit decimal.Decimal `json:"unit_net_profit"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(item *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:            item.ID,
		Name:          item.Name,
		Category:      item.Category,
		PurchasePrice: item.PurchasePrice,
		SellingPrice:  item.SellingPrice,
		CommissionPct: item.CommissionPct,
		GSTPct:        item.GSTPct,
		Stock:         item.Stock,
		UnitNetProfit: item.UnitNetProfit(),
		CreatedAt:     item.CreatedAt,
		UpdatedAt:     item.UpdatedAt,
		Version:       item.Version,
	}
}
