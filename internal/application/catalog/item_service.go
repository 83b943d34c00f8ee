package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/smartretail/backend/internal/domain/catalog"
	"github.com/smartretail/backend/internal/domain/shared"
)

// ItemService handles catalog item operations
type ItemService struct {
	itemRepo catalog.ItemRepository
	recorder shared.EventRecorder
}

// NewItemService creates a new ItemService
func NewItemService(itemRepo catalog.ItemRepository, recorder shared.EventRecorder) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		recorder: recorder,
	}
}

// Create adds a new item to the catalog
func (s *ItemService) Create(ctx context.Context, req CreateItemRequest) (*ItemResponse, error) {
	// Prices are mandatory. An omitted price is a validation error,
	// never a free item.
	if req.PurchasePrice == nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Purchase price is required")
	}
	if req.SellingPrice == nil {
		return nil, shared.NewDomainError("INVALID_PRICE", "Selling price is required")
	}

	exists, err := s.itemRepo.ExistsByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this name already exists")
	}

	// Optional fields default to zero when omitted; invalid values are
	// rejected by the aggregate, never coerced.
	commission := decimal.Zero
	if req.CommissionPct != nil {
		commission = *req.CommissionPct
	}
	gst := decimal.Zero
	if req.GSTPct != nil {
		gst = *req.GSTPct
	}
	var stock int64
	if req.Stock != nil {
		stock = *req.Stock
	}

	item, err := catalog.NewItem(req.Name, req.Category, *req.PurchasePrice, *req.SellingPrice, commission, gst, stock)
	if err != nil {
		return nil, err
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, item.GetDomainEvents()...); err != nil {
		return nil, err
	}
	item.ClearDomainEvents()

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID
func (s *ItemService) GetByID(ctx context.Context, itemID uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByName retrieves an item by its unique name
func (s *ItemService) GetByName(ctx context.Context, name string) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves all items in insertion order
func (s *ItemService) List(ctx context.Context) ([]ItemResponse, error) {
	items, err := s.itemRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, ToItemResponse(item))
	}
	return responses, nil
}

// Update modifies an existing item
func (s *ItemService) Update(ctx context.Context, itemID uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil && *req.Name != item.Name {
		exists, err := s.itemRepo.ExistsByName(ctx, *req.Name)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "Item with this name already exists")
		}
	}

	name := item.Name
	if req.Name != nil {
		name = *req.Name
	}
	category := item.Category
	if req.Category != nil {
		category = *req.Category
	}
	// Only touch the aggregate when something actually changed, so a
	// fieldless request bumps no version and journals no event.
	if name != item.Name || category != item.Category {
		if err := item.Update(name, category); err != nil {
			return nil, err
		}
	}

	if req.PurchasePrice != nil || req.SellingPrice != nil {
		purchase := item.PurchasePrice
		if req.PurchasePrice != nil {
			purchase = *req.PurchasePrice
		}
		selling := item.SellingPrice
		if req.SellingPrice != nil {
			selling = *req.SellingPrice
		}
		if err := item.SetPrices(purchase, selling); err != nil {
			return nil, err
		}
	}

	if req.CommissionPct != nil || req.GSTPct != nil {
		commission := item.CommissionPct
		if req.CommissionPct != nil {
			commission = *req.CommissionPct
		}
		gst := item.GSTPct
		if req.GSTPct != nil {
			gst = *req.GSTPct
		}
		if err := item.SetRates(commission, gst); err != nil {
			return nil, err
		}
	}

	if req.Stock != nil {
		if err := item.SetStock(*req.Stock); err != nil {
			return nil, err
		}
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}
	if err := s.recorder.Record(ctx, item.GetDomainEvents()...); err != nil {
		return nil, err
	}
	item.ClearDomainEvents()

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an item from the catalog. Sale records keep their
// price snapshots, so deleting an item never invalidates past sales.
func (s *ItemService) Delete(ctx context.Context, itemID uuid.UUID) error {
	item, err := s.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		return err
	}

	if err := s.itemRepo.Delete(ctx, itemID); err != nil {
		return err
	}

	return s.recorder.Record(ctx, catalog.NewItemDeletedEvent(item))
}
