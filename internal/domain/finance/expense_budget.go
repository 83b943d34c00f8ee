package finance

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/shared"
)

// ExpenseBudget holds the planned monthly spend for one expense
// category. The budget is a flat category to amount map; each category
// appears at most once.
type ExpenseBudget struct {
	shared.BaseAggregateRoot
	Category      string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	MonthlyAmount decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (ExpenseBudget) TableName() string {
	return "expense_budgets"
}

// NewExpenseBudget creates a budget line for a category
func NewExpenseBudget(category string, monthlyAmount decimal.Decimal) (*ExpenseBudget, error) {
	if category == "" {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if len(category) > 100 {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	if monthlyAmount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Monthly amount cannot be negative")
	}

	budget := &ExpenseBudget{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Category:          category,
		MonthlyAmount:     monthlyAmount,
	}

	budget.AddDomainEvent(NewExpenseSetEvent(budget))

	return budget, nil
}

// SetAmount updates the monthly amount for the category
func (b *ExpenseBudget) SetAmount(monthlyAmount decimal.Decimal) error {
	if monthlyAmount.IsNegative() {
		return shared.NewDomainError("INVALID_AMOUNT", "Monthly amount cannot be negative")
	}

	b.MonthlyAmount = monthlyAmount
	b.UpdatedAt = time.Now()
	b.IncrementVersion()

	b.AddDomainEvent(NewExpenseSetEvent(b))

	return nil
}
