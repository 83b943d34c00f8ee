package persistence

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/finance"
	"github.com/smartretail/backend/internal/domain/shared"
	"gorm.io/gorm"
)

// GormExpenseBudgetRepository implements finance.ExpenseBudgetRepository using GORM
type GormExpenseBudgetRepository struct {
	db *gorm.DB
}

// NewGormExpenseBudgetRepository creates a new GormExpenseBudgetRepository
func NewGormExpenseBudgetRepository(db *gorm.DB) *GormExpenseBudgetRepository {
	return &GormExpenseBudgetRepository{db: db}
}

var _ finance.ExpenseBudgetRepository = (*GormExpenseBudgetRepository)(nil)

// FindByCategory finds the budget line for a category
func (r *GormExpenseBudgetRepository) FindByCategory(ctx context.Context, category string) (*finance.ExpenseBudget, error) {
	var budget finance.ExpenseBudget
	if err := r.db.WithContext(ctx).First(&budget, "category = ?", category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &budget, nil
}

// FindAll returns all budget lines in insertion order
func (r *GormExpenseBudgetRepository) FindAll(ctx context.Context) ([]*finance.ExpenseBudget, error) {
	var budgets []*finance.ExpenseBudget
	if err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&budgets).Error; err != nil {
		return nil, err
	}
	return budgets, nil
}

// Save persists a budget line
func (r *GormExpenseBudgetRepository) Save(ctx context.Context, budget *finance.ExpenseBudget) error {
	return r.db.WithContext(ctx).Save(budget).Error
}

// Total returns the sum of all monthly amounts
func (r *GormExpenseBudgetRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	if err := r.db.WithContext(ctx).
		Model(&finance.ExpenseBudget{}).
		Select("COALESCE(SUM(monthly_amount), 0) AS total").
		Scan(&row).Error; err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}
