package sales

import (
	"context"
	"time"

	"github.com/smartretail/backend/internal/domain/catalog"
	"github.com/smartretail/backend/internal/domain/sales"
	"github.com/smartretail/backend/internal/domain/shared"
)

// SalesService handles sale recording and daily summaries
type SalesService struct {
	saleRepo sales.SaleRepository
	itemRepo catalog.ItemRepository
	recorder shared.EventRecorder
	now      func() time.Time
}

// NewSalesService creates a new SalesService
func NewSalesService(saleRepo sales.SaleRepository, itemRepo catalog.ItemRepository, recorder shared.EventRecorder) *SalesService {
	return &SalesService{
		saleRepo: saleRepo,
		itemRepo: itemRepo,
		recorder: recorder,
		now:      time.Now,
	}
}

// RecordSale looks up the referenced item and records a sale at the
// item's current prices. The stored figures never change afterwards.
func (s *SalesService) RecordSale(ctx context.Context, req RecordSaleRequest) (*SaleResponse, error) {
	item, err := s.resolveItem(ctx, req)
	if err != nil {
		return nil, err
	}

	soldOn := s.now()
	if req.SoldOn != nil && *req.SoldOn != "" {
		parsed, err := time.Parse("2006-01-02", *req.SoldOn)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
		}
		soldOn = parsed
	}

	record, err := sales.NewSaleRecord(item.ID, item.Name, req.Quantity, item.SellingPrice, item.PurchasePrice, item.CommissionPct, soldOn)
	if err != nil {
		return nil, err
	}

	if err := s.saleRepo.Save(ctx, record); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, record.GetDomainEvents()...); err != nil {
		return nil, err
	}
	record.ClearDomainEvents()

	response := ToSaleResponse(record)
	return &response, nil
}

// ListSales returns all sales, or the sales for one date when given
func (s *SalesService) ListSales(ctx context.Context, date *string) ([]SaleResponse, error) {
	var records []*sales.SaleRecord
	var err error

	if date != nil && *date != "" {
		day, perr := time.Parse("2006-01-02", *date)
		if perr != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
		}
		records, err = s.saleRepo.FindByDate(ctx, day)
	} else {
		records, err = s.saleRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]SaleResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToSaleResponse(record))
	}
	return responses, nil
}

// DailySummary returns the revenue and profit totals for one calendar
// date, defaulting to today
func (s *SalesService) DailySummary(ctx context.Context, date *string) (*DailySummaryResponse, error) {
	day := sales.DateOf(s.now())
	if date != nil && *date != "" {
		parsed, err := time.Parse("2006-01-02", *date)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_DATE", "Date must be in YYYY-MM-DD format")
		}
		day = sales.DateOf(parsed)
	}

	totals, err := s.saleRepo.SumByDate(ctx, day)
	if err != nil {
		return nil, err
	}
	records, err := s.saleRepo.FindByDate(ctx, day)
	if err != nil {
		return nil, err
	}

	responses := make([]SaleResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, ToSaleResponse(record))
	}

	return &DailySummaryResponse{
		Date:    day.Format("2006-01-02"),
		Revenue: totals.Revenue,
		Profit:  totals.Profit,
		Count:   totals.Count,
		Records: responses,
	}, nil
}

func (s *SalesService) resolveItem(ctx context.Context, req RecordSaleRequest) (*catalog.Item, error) {
	if req.ItemID != nil {
		return s.itemRepo.FindByID(ctx, *req.ItemID)
	}
	if req.ItemName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Either item_id or item_name is required")
	}
	return s.itemRepo.FindByName(ctx, req.ItemName)
}
