package ports

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
)

// ItemRepository defines the persistence contract for catalog items.
type ItemRepository interface {
	Add(ctx context.Context, aggregate *item.Item) error

	// Update persists the item, most often its changed stock quantity.
	Update(ctx context.Context, aggregate *item.Item) error

	// Get retrieves an item by id. Fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// GetForUpdate is Get with the item row locked until the transaction ends.
	// Concurrent stock changes on the same item are serialized through it.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*item.Item, error)

	// FindAll returns every item ordered by name.
	FindAll(ctx context.Context) ([]*item.Item, error)
}
