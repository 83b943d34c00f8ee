package report

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/catalog"
	"github.com/smartretail/backend/internal/domain/finance"
)

var (
	oneHundred  = decimal.NewFromInt(100)
	daysInMonth = decimal.NewFromInt(30)
)

// MetricsService derives dashboard figures from the catalog and the
// expense budget. It holds no state of its own, so the same ledgers
// always produce the same numbers.
type MetricsService struct {
	itemRepo    catalog.ItemRepository
	expenseRepo finance.ExpenseBudgetRepository
}

// NewMetricsService creates a new MetricsService
func NewMetricsService(itemRepo catalog.ItemRepository, expenseRepo finance.ExpenseBudgetRepository) *MetricsService {
	return &MetricsService{
		itemRepo:    itemRepo,
		expenseRepo: expenseRepo,
	}
}

// Dashboard computes all derived metrics over the current ledgers
func (s *MetricsService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	expenseTotal, err := s.expenseRepo.Total(ctx)
	if err != nil {
		return nil, err
	}
	categoryCount, err := s.itemRepo.CountDistinctCategories(ctx)
	if err != nil {
		return nil, err
	}

	stockValue := decimal.Zero
	revenuePotential := decimal.Zero
	profitPotential := decimal.Zero
	for _, item := range items {
		stockValue = stockValue.Add(item.StockValue())
		revenuePotential = revenuePotential.Add(item.RevenuePotential())
		profitPotential = profitPotential.Add(item.ProfitPotential())
	}

	netProfit := profitPotential.Sub(expenseTotal)

	// An empty shelf has no return on it. ROI is exactly zero, never an
	// error, when nothing is invested in stock.
	roi := decimal.Zero
	if stockValue.IsPositive() {
		roi = netProfit.Div(stockValue).Mul(oneHundred)
	}

	return &DashboardResponse{
		StockValue:       stockValue,
		RevenuePotential: revenuePotential,
		ProfitPotential:  profitPotential,
		ExpenseTotal:     expenseTotal,
		NetProfit:        netProfit,
		ROI:              roi,
		DailyBreakEven:   expenseTotal.Div(daysInMonth),
		ItemCount:        int64(len(items)),
		CategoryCount:    categoryCount,
	}, nil
}
