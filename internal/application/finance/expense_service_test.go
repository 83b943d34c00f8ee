package finance

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/finance"
	"github.com/smartretail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockExpenseBudgetRepository is a mock implementation of finance.ExpenseBudgetRepository
type MockExpenseBudgetRepository struct {
	mock.Mock
}

func (m *MockExpenseBudgetRepository) FindByCategory(ctx context.Context, category string) (*finance.ExpenseBudget, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*finance.ExpenseBudget), args.Error(1)
}

func (m *MockExpenseBudgetRepository) FindAll(ctx context.Context) ([]*finance.ExpenseBudget, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*finance.ExpenseBudget), args.Error(1)
}

func (m *MockExpenseBudgetRepository) Save(ctx context.Context, budget *finance.ExpenseBudget) error {
	args := m.Called(ctx, budget)
	return args.Error(0)
}

func (m *MockExpenseBudgetRepository) Total(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// MockEventRecorder is a mock implementation of shared.EventRecorder
type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) Record(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func TestExpenseServiceSetCategory(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a new budget line", func(t *testing.T) {
		repo := new(MockExpenseBudgetRepository)
		recorder := new(MockEventRecorder)
		service := NewExpenseService(repo, recorder)

		repo.On("FindByCategory", ctx, "rent").Return(nil, shared.ErrNotFound)
		repo.On("Save", ctx, mock.AnythingOfType("*finance.ExpenseBudget")).Return(nil)
		recorder.On("Record", ctx, mock.Anything).Return(nil)

		resp, err := service.SetCategory(ctx, "rent", decimal.NewFromInt(15000))

		require.NoError(t, err)
		assert.Equal(t, "rent", resp.Category)
		assert.True(t, resp.MonthlyAmount.Equal(decimal.NewFromInt(15000)))
	})

	t.Run("updates an existing budget line", func(t *testing.T) {
		repo := new(MockExpenseBudgetRepository)
		recorder := new(MockEventRecorder)
		service := NewExpenseService(repo, recorder)

		existing, err := finance.NewExpenseBudget("rent", decimal.NewFromInt(15000))
		require.NoError(t, err)
		existing.ClearDomainEvents()

		repo.On("FindByCategory", ctx, "rent").Return(existing, nil)
		repo.On("Save", ctx, existing).Return(nil)
		recorder.On("Record", ctx, mock.Anything).Return(nil)

		resp, err := service.SetCategory(ctx, "rent", decimal.NewFromInt(18000))

		require.NoError(t, err)
		assert.True(t, resp.MonthlyAmount.Equal(decimal.NewFromInt(18000)))
		assert.Equal(t, existing.ID, resp.ID)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		repo := new(MockExpenseBudgetRepository)
		service := NewExpenseService(repo, new(MockEventRecorder))

		repo.On("FindByCategory", ctx, "rent").Return(nil, shared.ErrNotFound)

		_, err := service.SetCategory(ctx, "rent", decimal.NewFromInt(-1))

		assert.Error(t, err)
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestExpenseServiceGetBudget(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExpenseBudgetRepository)
	service := NewExpenseService(repo, new(MockEventRecorder))

	rent, err := finance.NewExpenseBudget("rent", decimal.NewFromInt(15000))
	require.NoError(t, err)
	salary, err := finance.NewExpenseBudget("salary", decimal.NewFromInt(25000))
	require.NoError(t, err)

	repo.On("FindAll", ctx).Return([]*finance.ExpenseBudget{rent, salary}, nil)
	repo.On("Total", ctx).Return(decimal.NewFromInt(40000), nil)

	resp, err := service.GetBudget(ctx)

	require.NoError(t, err)
	require.Len(t, resp.Lines, 2)
	assert.True(t, resp.Total.Equal(decimal.NewFromInt(40000)))
}

func TestExpenseServiceSeedDefaults(t *testing.T) {
	ctx := context.Background()

	t.Run("seeds the six default categories into an empty store", func(t *testing.T) {
		repo := new(MockExpenseBudgetRepository)
		recorder := new(MockEventRecorder)
		service := NewExpenseService(repo, recorder)

		repo.On("FindAll", ctx).Return([]*finance.ExpenseBudget{}, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*finance.ExpenseBudget")).Return(nil)
		recorder.On("Record", ctx, mock.Anything).Return(nil)

		require.NoError(t, service.SeedDefaults(ctx))
		repo.AssertNumberOfCalls(t, "Save", 6)

		// The seeded amounts total 59000.
		total := decimal.Zero
		for _, call := range repo.Calls {
			if call.Method == "Save" {
				total = total.Add(call.Arguments.Get(1).(*finance.ExpenseBudget).MonthlyAmount)
			}
		}
		assert.True(t, total.Equal(decimal.NewFromInt(59000)), "got %s", total)
	})

	t.Run("does not touch a non-empty store", func(t *testing.T) {
		repo := new(MockExpenseBudgetRepository)
		service := NewExpenseService(repo, new(MockEventRecorder))

		existing, err := finance.NewExpenseBudget("rent", decimal.NewFromInt(1))
		require.NoError(t, err)
		repo.On("FindAll", ctx).Return([]*finance.ExpenseBudget{existing}, nil)

		require.NoError(t, service.SeedDefaults(ctx))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
