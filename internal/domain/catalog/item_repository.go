package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ItemRepository defines the persistence operations for catalog items
type ItemRepository interface {
	// FindByID retrieves an item by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Item, error)

	// FindByName retrieves an item by its unique name
	FindByName(ctx context.Context, name string) (*Item, error)

	// ExistsByName checks whether an item with the given name exists
	ExistsByName(ctx context.Context, name string) (bool, error)

	// FindAll retrieves all items in insertion order
	FindAll(ctx context.Context) ([]*Item, error)

	// Save persists an item (insert or update)
	Save(ctx context.Context, item *Item) error

	// Delete removes an item
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of items in the catalog
	Count(ctx context.Context) (int64, error)

	// CountDistinctCategories returns the number of distinct category values
	CountDistinctCategories(ctx context.Context) (int64, error)
}
