package services

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
)

// ErrNoOrderLines is returned when an order is placed without lines.
var ErrNoOrderLines = errors.New("order must have at least one line")

// Line is one requested (item, count) pair.
type Line struct {
	Item  *item.Item
	Count int
}

// OrderPlacer is a domain service that turns a member and requested lines into a new
// order.
//
// Business rules:
//   - The delivery address is a snapshot of the member address
//   - Each order item freezes the current item price
//   - Stock is removed for every line; when any line fails, stock already removed
//     for earlier lines is put back and no order is created
//
// Example usage:
//
//	placer := services.NewOrderPlacer()
//	o, err := placer.Place(kernel.NewUUID(), m, time.Now(), services.Line{Item: book, Count: 2})
//	if errors.Is(err, item.ErrInsufficientStock) {
//	    return err
//	}
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place creates the order. The caller persists the order and the changed items.
func (p OrderPlacer) Place(orderID kernel.UUID, m *member.Member, orderDate time.Time, lines ...Line) (*order.Order, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrNoOrderLines
	}

	delivery, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	if err != nil {
		return nil, err
	}

	orderItems := make([]*order.OrderItem, 0, len(lines))
	for _, line := range lines {
		if err = line.Item.Validate(); err != nil {
			p.restoreStock(orderItems)
			return nil, err
		}
		oi, err := order.NewOrderItem(kernel.NewUUID(), line.Item, line.Item.Price(), line.Count)
		if err != nil {
			p.restoreStock(orderItems)
			return nil, err
		}
		orderItems = append(orderItems, oi)
	}

	o, err := order.NewOrder(orderID, m, delivery, orderDate, orderItems...)
	if err != nil {
		p.restoreStock(orderItems)
		return nil, err
	}

	return o, nil
}

func (p OrderPlacer) restoreStock(orderItems []*order.OrderItem) {
	for _, oi := range orderItems {
		if it, err := oi.Item().Get(); err == nil {
			_ = it.AddStock(oi.Count())
		}
	}
}
