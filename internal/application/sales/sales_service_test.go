package sales

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/catalog"
	"github.com/smartretail/backend/internal/domain/sales"
	"github.com/smartretail/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSaleRepository is a mock implementation of sales.SaleRepository
type MockSaleRepository struct {
	mock.Mock
}

func (m *MockSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*sales.SaleRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*sales.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) FindAll(ctx context.Context) ([]*sales.SaleRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sales.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) FindByDate(ctx context.Context, date time.Time) ([]*sales.SaleRecord, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*sales.SaleRecord), args.Error(1)
}

func (m *MockSaleRepository) Save(ctx context.Context, record *sales.SaleRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockSaleRepository) SumByDate(ctx context.Context, date time.Time) (sales.DailyTotals, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(sales.DailyTotals), args.Error(1)
}

// MockItemRepository is a mock implementation of catalog.ItemRepository
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) FindByName(ctx context.Context, name string) (*catalog.Item, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := m.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}

func (m *MockItemRepository) FindAll(ctx context.Context) ([]*catalog.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Item), args.Error(1)
}

func (m *MockItemRepository) Save(ctx context.Context, item *catalog.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockItemRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockItemRepository) CountDistinctCategories(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventRecorder is a mock implementation of shared.EventRecorder
type MockEventRecorder struct {
	mock.Mock
}

func (m *MockEventRecorder) Record(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testItem(t *testing.T) *catalog.Item {
	t.Helper()
	item, err := catalog.NewItem("Rice 5kg", "Groceries", dec("100"), dec("150"), dec("10"), dec("5"), 10)
	require.NoError(t, err)
	return item
}

func TestSalesServiceRecordSale(t *testing.T) {
	ctx := context.Background()

	t.Run("records a sale by item name with snapshot math", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		itemRepo := new(MockItemRepository)
		recorder := new(MockEventRecorder)
		service := NewSalesService(saleRepo, itemRepo, recorder)

		item := testItem(t)
		itemRepo.On("FindByName", ctx, "Rice 5kg").Return(item, nil)
		saleRepo.On("Save", ctx, mock.AnythingOfType("*sales.SaleRecord")).Return(nil)
		recorder.On("Record", ctx, mock.Anything).Return(nil)

		resp, err := service.RecordSale(ctx, RecordSaleRequest{ItemName: "Rice 5kg", Quantity: 3})

		require.NoError(t, err)
		assert.True(t, resp.Revenue.Equal(dec("450")))
		assert.True(t, resp.Cost.Equal(dec("300")))
		assert.True(t, resp.Commission.Equal(dec("45")))
		assert.True(t, resp.Profit.Equal(dec("105")))
		assert.Equal(t, item.ID, resp.ItemID)
	})

	t.Run("prefers item id over name", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		itemRepo := new(MockItemRepository)
		recorder := new(MockEventRecorder)
		service := NewSalesService(saleRepo, itemRepo, recorder)

		item := testItem(t)
		itemRepo.On("FindByID", ctx, item.ID).Return(item, nil)
		saleRepo.On("Save", ctx, mock.Anything).Return(nil)
		recorder.On("Record", ctx, mock.Anything).Return(nil)

		_, err := service.RecordSale(ctx, RecordSaleRequest{ItemID: &item.ID, ItemName: "ignored", Quantity: 1})

		require.NoError(t, err)
		itemRepo.AssertNotCalled(t, "FindByName", mock.Anything, mock.Anything)
	})

	t.Run("returns not found for unknown item", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		itemRepo := new(MockItemRepository)
		service := NewSalesService(saleRepo, itemRepo, new(MockEventRecorder))

		itemRepo.On("FindByName", ctx, "Ghost").Return(nil, shared.ErrNotFound)

		_, err := service.RecordSale(ctx, RecordSaleRequest{ItemName: "Ghost", Quantity: 1})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		itemRepo := new(MockItemRepository)
		service := NewSalesService(saleRepo, itemRepo, new(MockEventRecorder))

		item := testItem(t)
		itemRepo.On("FindByName", ctx, "Rice 5kg").Return(item, nil)

		_, err := service.RecordSale(ctx, RecordSaleRequest{ItemName: "Rice 5kg", Quantity: 0})

		assert.Error(t, err)
		saleRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("requires an item reference", func(t *testing.T) {
		service := NewSalesService(new(MockSaleRepository), new(MockItemRepository), new(MockEventRecorder))

		_, err := service.RecordSale(ctx, RecordSaleRequest{Quantity: 1})

		assert.Error(t, err)
	})

	t.Run("rejects malformed sold_on date", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		itemRepo := new(MockItemRepository)
		service := NewSalesService(saleRepo, itemRepo, new(MockEventRecorder))

		item := testItem(t)
		itemRepo.On("FindByName", ctx, "Rice 5kg").Return(item, nil)

		bad := "29-08-2026"
		_, err := service.RecordSale(ctx, RecordSaleRequest{ItemName: "Rice 5kg", Quantity: 1, SoldOn: &bad})

		assert.Error(t, err)
	})
}

func TestSalesServiceDailySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to today", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewSalesService(saleRepo, new(MockItemRepository), new(MockEventRecorder))
		service.now = func() time.Time {
			return time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)
		}

		today := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
		saleRepo.On("SumByDate", ctx, today).Return(sales.DailyTotals{
			Revenue: dec("450"),
			Profit:  dec("105"),
			Count:   1,
		}, nil)
		saleRepo.On("FindByDate", ctx, today).Return([]*sales.SaleRecord{}, nil)

		resp, err := service.DailySummary(ctx, nil)

		require.NoError(t, err)
		assert.Equal(t, "2026-08-29", resp.Date)
		assert.True(t, resp.Revenue.Equal(dec("450")))
		assert.True(t, resp.Profit.Equal(dec("105")))
		assert.Equal(t, int64(1), resp.Count)
	})

	t.Run("uses an explicit date", func(t *testing.T) {
		saleRepo := new(MockSaleRepository)
		service := NewSalesService(saleRepo, new(MockItemRepository), new(MockEventRecorder))

		day := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
		saleRepo.On("SumByDate", ctx, day).Return(sales.DailyTotals{
			Revenue: decimal.Zero,
			Profit:  decimal.Zero,
		}, nil)
		saleRepo.On("FindByDate", ctx, day).Return([]*sales.SaleRecord{}, nil)

		date := "2026-08-01"
		resp, err := service.DailySummary(ctx, &date)

		require.NoError(t, err)
		assert.Equal(t, "2026-08-01", resp.Date)
		assert.Empty(t, resp.Records)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		service := NewSalesService(new(MockSaleRepository), new(MockItemRepository), new(MockEventRecorder))

		bad := "not-a-date"
		_, err := service.DailySummary(ctx, &bad)

		assert.Error(t, err)
	})
}
