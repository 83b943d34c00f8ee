package finance

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/shared"
)

// Aggregate type constant
const AggregateTypeExpenseBudget = "ExpenseBudget"

// Event type constants
const (
	EventTypeExpenseSet = "ExpenseSet"
)

// ExpenseSetEvent is published when a category's monthly amount is set
type ExpenseSetEvent struct {
	shared.BaseDomainEvent
	BudgetID      uuid.UUID       `json:"budget_id"`
	Category      string          `json:"category"`
	MonthlyAmount decimal.Decimal `json:"monthly_amount"`
}

// NewExpenseSetEvent creates a new ExpenseSetEvent
func NewExpenseSetEvent(budget *ExpenseBudget) *ExpenseSetEvent {
	return &ExpenseSetEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeExpenseSet, budget.ID, AggregateTypeExpenseBudget),
		BudgetID:        budget.ID,
		Category:        budget.Category,
		MonthlyAmount:   budget.MonthlyAmount,
	}
}
