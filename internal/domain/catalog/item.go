package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/shared"
)

var oneHundred = decimal.NewFromInt(100)

// Item represents a stocked product in the shop catalog
// It is the aggregate root for inventory operations
type Item struct {
	shared.BaseAggregateRoot
	Name          string          `gorm:"type:varchar(200);not null;uniqueIndex"`
	Category      string          `gorm:"type:varchar(100);index"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	SellingPrice  decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CommissionPct decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0"` // percent of selling price
	GSTPct        decimal.Decimal `gorm:"type:decimal(7,4);not null;default:0"` // percent of selling price
	Stock         int64           `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (Item) TableName() string {
	return "items"
}

// NewItem creates a new catalog item
func NewItem(name, category string, purchasePrice, sellingPrice, commissionPct, gstPct decimal.Decimal, stock int64) (*Item, error) {
	if err := validateItemName(name); err != nil {
		return nil, err
	}
	if err := validatePrice("Purchase price", purchasePrice); err != nil {
		return nil, err
	}
	if err := validatePrice("Selling price", sellingPrice); err != nil {
		return nil, err
	}
	if err := validateRate("Commission", commissionPct); err != nil {
		return nil, err
	}
	if err := validateRate("GST", gstPct); err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	item := &Item{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Category:          category,
		PurchasePrice:     purchasePrice,
		SellingPrice:      sellingPrice,
		CommissionPct:     commissionPct,
		GSTPct:            gstPct,
		Stock:             stock,
	}

	item.AddDomainEvent(NewItemAddedEvent(item))

	return item, nil
}

// Update updates the item's name and category
func (i *Item) Update(name, category string) error {
	if err := validateItemName(name); err != nil {
		return err
	}

	i.Name = name
	i.Category = category
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// SetPrices sets both purchase and selling prices
func (i *Item) SetPrices(purchasePrice, sellingPrice decimal.Decimal) error {
	if err := validatePrice("Purchase price", purchasePrice); err != nil {
		return err
	}
	if err := validatePrice("Selling price", sellingPrice); err != nil {
		return err
	}

	i.PurchasePrice = purchasePrice
	i.SellingPrice = sellingPrice
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// SetRates sets the commission and GST percentages
func (i *Item) SetRates(commissionPct, gstPct decimal.Decimal) error {
	if err := validateRate("Commission", commissionPct); err != nil {
		return err
	}
	if err := validateRate("GST", gstPct); err != nil {
		return err
	}

	i.CommissionPct = commissionPct
	i.GSTPct = gstPct
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// SetStock sets the stock level
func (i *Item) SetStock(stock int64) error {
	if stock < 0 {
		return shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	i.Stock = stock
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	i.AddDomainEvent(NewItemUpdatedEvent(i))

	return nil
}

// UnitNetProfit returns the net profit earned per unit sold:
// selling margin minus commission and GST, both taken as percentages
// of the selling price.
func (i *Item) UnitNetProfit() decimal.Decimal {
	margin := i.SellingPrice.Sub(i.PurchasePrice)
	commission := i.SellingPrice.Mul(i.CommissionPct).Div(oneHundred)
	gst := i.SellingPrice.Mul(i.GSTPct).Div(oneHundred)
	return margin.Sub(commission).Sub(gst)
}

// StockValue returns purchase price times stock on hand
func (i *Item) StockValue() decimal.Decimal {
	return i.PurchasePrice.Mul(decimal.NewFromInt(i.Stock))
}

// RevenuePotential returns selling price times stock on hand
func (i *Item) RevenuePotential() decimal.Decimal {
	return i.SellingPrice.Mul(decimal.NewFromInt(i.Stock))
}

// ProfitPotential returns per-unit net profit times stock on hand
func (i *Item) ProfitPotential() decimal.Decimal {
	return i.UnitNetProfit().Mul(decimal.NewFromInt(i.Stock))
}

func validateItemName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}

func validatePrice(field string, price decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", field+" cannot be negative")
	}
	return nil
}

func validateRate(field string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(oneHundred) {
		return shared.NewDomainError("INVALID_RATE", field+" must be between 0 and 100")
	}
	return nil
}
