package finance

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/finance"
	"github.com/smartretail/backend/internal/domain/shared"
)

// defaultBudget is the starting budget applied to an empty store
var defaultBudget = []struct {
	category string
	amount   int64
}{
	{"rent", 15000},
	{"electricity", 3000},
	{"salary", 25000},
	{"transportation", 4000},
	{"insurance", 2000},
	{"other", 10000},
}

// ExpenseService handles the monthly expense budget
type ExpenseService struct {
	expenseRepo finance.ExpenseBudgetRepository
	recorder    shared.EventRecorder
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseBudgetRepository, recorder shared.EventRecorder) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
		recorder:    recorder,
	}
}

// SetCategory sets the monthly amount for a category, creating the
// budget line when it does not exist yet
func (s *ExpenseService) SetCategory(ctx context.Context, category string, amount decimal.Decimal) (*ExpenseLineResponse, error) {
	budget, err := s.expenseRepo.FindByCategory(ctx, category)
	switch {
	case err == nil:
		if err := budget.SetAmount(amount); err != nil {
			return nil, err
		}
	case errors.Is(err, shared.ErrNotFound):
		budget, err = finance.NewExpenseBudget(category, amount)
		if err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := s.expenseRepo.Save(ctx, budget); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, budget.GetDomainEvents()...); err != nil {
		return nil, err
	}
	budget.ClearDomainEvents()

	response := ToExpenseLineResponse(budget)
	return &response, nil
}

// GetBudget returns all budget lines and their total
func (s *ExpenseService) GetBudget(ctx context.Context) (*BudgetResponse, error) {
	lines, err := s.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.expenseRepo.Total(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseLineResponse, 0, len(lines))
	for _, line := range lines {
		responses = append(responses, ToExpenseLineResponse(line))
	}

	return &BudgetResponse{Lines: responses, Total: total}, nil
}

// SeedDefaults populates the starting budget. It only applies to an
// empty store so user edits survive reseeding attempts.
func (s *ExpenseService) SeedDefaults(ctx context.Context) error {
	existing, err := s.expenseRepo.FindAll(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	for _, line := range defaultBudget {
		budget, err := finance.NewExpenseBudget(line.category, decimal.NewFromInt(line.amount))
		if err != nil {
			return err
		}
		if err := s.expenseRepo.Save(ctx, budget); err != nil {
			return err
		}
		if err := s.recorder.Record(ctx, budget.GetDomainEvents()...); err != nil {
			return err
		}
		budget.ClearDomainEvents()
	}
	return nil
}
