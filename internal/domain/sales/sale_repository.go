package sales

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DailyTotals aggregates revenue and profit over one calendar date
type DailyTotals struct {
	Revenue decimal.Decimal
	Profit  decimal.Decimal
	Count   int64
}

// SaleRepository defines the persistence operations for sale records
type SaleRepository interface {
	// FindByID retrieves a sale record by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*SaleRecord, error)

	// FindAll retrieves all sale records in insertion order
	FindAll(ctx context.Context) ([]*SaleRecord, error)

	// FindByDate retrieves the sale records for one calendar date
	FindByDate(ctx context.Context, date time.Time) ([]*SaleRecord, error)

	// Save persists a sale record
	Save(ctx context.Context, record *SaleRecord) error

	// SumByDate returns the revenue and profit totals for one calendar date
	SumByDate(ctx context.Context, date time.Time) (DailyTotals, error)
}
