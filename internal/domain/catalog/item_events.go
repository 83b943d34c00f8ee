package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeItem = "Item"

// Event type constants
const (
	EventTypeItemAdded   = "ItemAdded"
	EventTypeItemUpdated = "ItemUpdated"
	EventTypeItemDeleted = "ItemDeleted"
)

// ItemAddedEvent is published when a new item enters the catalog
type ItemAddedEvent struct {
	shared.BaseDomainEvent
	ItemID        uuid.UUID       `json:"item_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Stock         int64           `json:"stock"`
}

// NewItemAddedEvent creates a new ItemAddedEvent
func NewItemAddedEvent(item *Item) *ItemAddedEvent {
	return &ItemAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemAdded, item.ID, AggregateTypeItem),
		ItemID:          item.ID,
		Name:            item.Name,
		Category:        item.Category,
		PurchasePrice:   item.PurchasePrice,
		SellingPrice:    item.SellingPrice,
		Stock:           item.Stock,
	}
}

// ItemUpdatedEvent is published when an item's details change
type ItemUpdatedEvent struct {
	shared.BaseDomainEvent
	ItemID        uuid.UUID       `json:"item_id"`
	Name          string          `json:"name"`
	Category      string          `json:"category,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SellingPrice  decimal.Decimal `json:"selling_price"`
	Stock         int64           `json:"stock"`
}

// NewItemUpdatedEvent creates a new ItemUpdatedEvent
func NewItemUpdatedEvent(item *Item) *ItemUpdatedEvent {
	return &ItemUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemUpdated, item.ID, AggregateTypeItem),
		ItemID:          item.ID,
		Name:            item.Name,
		Category:        item.Category,
		PurchasePrice:   item.PurchasePrice,
		SellingPrice:    item.SellingPrice,
		Stock:           item.Stock,
	}
}

// ItemDeletedEvent is published when an item is removed from the catalog
type ItemDeletedEvent struct {
	shared.BaseDomainEvent
	ItemID uuid.UUID `json:"item_id"`
	Name   string    `json:"name"`
}

// NewItemDeletedEvent creates a new ItemDeletedEvent
func NewItemDeletedEvent(item *Item) *ItemDeletedEvent {
	return &ItemDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeItemDeleted, item.ID, AggregateTypeItem),
		ItemID:          item.ID,
		Name:            item.Name,
	}
}
