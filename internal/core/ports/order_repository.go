package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
//
// The find methods differ in which relations they load. Every list is ordered by
// order date then id, and order items keep their position.
type OrderRepository interface {
	// Add persists a new order together with its delivery and order items.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order status, the delivery status and the order items.
	Update(ctx context.Context, aggregate *order.Order) error

	// GetForUpdate retrieves an order with its delivery and order items loaded and
	// the order row locked. Member and item handles stay unloaded.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// FindAll returns at most limit orders matching search with every handle unloaded.
	FindAll(ctx context.Context, search OrderSearch, limit int) ([]*order.Order, error)

	// FindAllWithItems loads every order with member, delivery, order items and items
	// in a single statement.
	FindAllWithItems(ctx context.Context) ([]*order.Order, error)

	// FindAllWithMemberDelivery loads orders with member and delivery in a single
	// statement. The order items handle stays unloaded. A nil page lists all orders.
	FindAllWithMemberDelivery(ctx context.Context, page *Page) ([]*order.Order, error)

	// FindOrderItemsWithItem loads the order items of the given orders, with their
	// items, in a single statement. The result is keyed by order id.
	FindOrderItemsWithItem(ctx context.Context, orderIDs []kernel.UUID) (map[kernel.UUID][]*order.OrderItem, error)

	// GetDelivery retrieves a delivery by id.
	GetDelivery(ctx context.Context, id kernel.UUID) (*order.Delivery, error)

	// GetOrderItems retrieves the order items of one order with unloaded item handles.
	GetOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.OrderItem, error)
}
