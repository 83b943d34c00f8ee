package finance

import (
	"context"

	"github.com/shopspring/decimal"
)

// ExpenseBudgetRepository defines the persistence operations for expense budgets
type ExpenseBudgetRepository interface {
	// FindByCategory retrieves the budget line for a category
	FindByCategory(ctx context.Context, category string) (*ExpenseBudget, error)

	// FindAll retrieves all budget lines in insertion order
	FindAll(ctx context.Context) ([]*ExpenseBudget, error)

	// Save persists a budget line (insert or update)
	Save(ctx context.Context, budget *ExpenseBudget) error

	// Total returns the sum of all monthly amounts
	Total(ctx context.Context) (decimal.Decimal, error)
}
