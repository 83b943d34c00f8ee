package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/finance"
)

// SetExpenseRequest represents a request to set a category's monthly amount
type SetExpenseRequest struct {
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
}

// ExpenseLineResponse represents one budget line in API responses
type ExpenseLineResponse struct {
	ID            uuid.UUID       `json:"id"`
	Category      string          `json:"category"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// BudgetResponse represents the full expense budget
type BudgetResponse struct {
	Lines []ExpenseLineResponse `json:"lines"`
	Total decimal.Decimal       `json:"total"`
}

// ToExpenseLineResponse converts a domain budget line to a response DTO
func ToExpenseLineResponse(budget *finance.ExpenseBudget) ExpenseLineResponse {
	return ExpenseLineResponse{
		ID:            budget.ID,
		Category:      budget.Category,
		MonthlyAmount: budget.MonthlyAmount,
		UpdatedAt:     budget.UpdatedAt,
	}
}
