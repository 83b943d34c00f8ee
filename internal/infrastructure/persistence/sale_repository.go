package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/sales"
	"github.com/smartretail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormSaleRepository implements sales.SaleRepository using GORM
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

var _ sales.SaleRepository = (*GormSaleRepository)(nil)

// FindByID finds a sale record by its ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SaleRecord, error) {
	var record sales.SaleRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindAll returns all sale records in insertion order
func (r *GormSaleRepository) FindAll(ctx context.Context) ([]*sales.SaleRecord, error) {
	var records []*sales.SaleRecord
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// FindByDate returns the sale records for one calendar date
func (r *GormSaleRepository) FindByDate(ctx context.Context, date time.Time) ([]*sales.SaleRecord, error) {
	var records []*sales.SaleRecord
	if err := r.db.WithContext(ctx).
		Where("sold_on = ?", sales.DateOf(date)).
		Order("created_at ASC, id ASC").
		Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// Save persists a sale record
func (r *GormSaleRepository) Save(ctx context.Context, record *sales.SaleRecord) error {
	return r.db.WithContext(ctx).Save(record).Error
}

// SumByDate returns the revenue and profit totals for one calendar date
func (r *GormSaleRepository) SumByDate(ctx context.Context, date time.Time) (sales.DailyTotals, error) {
	var row struct {
		Revenue decimal.Decimal
		Profit  decimal.Decimal
		Count   int64
	}
	if err := r.db.WithContext(ctx).
		Model(&sales.SaleRecord{}).
		Select("COALESCE(SUM(revenue), 0) AS revenue, COALESCE(SUM(profit), 0) AS profit, COUNT(*) AS count").
		Where("sold_on = ?", sales.DateOf(date)).
		Scan(&row).Error; err != nil {
		return sales.DailyTotals{}, err
	}
	return sales.DailyTotals{Revenue: row.Revenue, Profit: row.Profit, Count: row.Count}, nil
}
