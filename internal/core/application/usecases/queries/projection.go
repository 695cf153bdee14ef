package queries

import (
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
)

// orderViewOf projects a fully loaded order graph. It fails with
// kernel.ErrRefIsNotLoaded when a handle it needs was never resolved.
func orderViewOf(o *order.Order) (OrderView, error) {
	summary, err := orderSummaryOf(o)
	if err != nil {
		return OrderView{}, err
	}

	orderItems, err := o.OrderItems().Get()
	if err != nil {
		return OrderView{}, err
	}

	lines := make([]OrderItemView, 0, len(orderItems))
	for _, oi := range orderItems {
		it, err := oi.Item().Get()
		if err != nil {
			return OrderView{}, err
		}
		lines = append(lines, OrderItemView{
			ItemName:   it.Name(),
			OrderPrice: oi.OrderPrice(),
			Count:      oi.Count(),
		})
	}

	return OrderView{
		OrderID:    summary.OrderID,
		MemberName: summary.MemberName,
		OrderDate:  summary.OrderDate,
		Status:     summary.Status,
		Address:    summary.Address,
		Items:      lines,
	}, nil
}

func orderSummaryOf(o *order.Order) (OrderSummaryView, error) {
	m, err := o.Member().Get()
	if err != nil {
		return OrderSummaryView{}, err
	}
	d, err := o.Delivery().Get()
	if err != nil {
		return OrderSummaryView{}, err
	}

	return OrderSummaryView{
		OrderID:    o.ID(),
		MemberName: m.Name(),
		OrderDate:  o.OrderDate(),
		Status:     o.Status(),
		Address:    d.Address(),
	}, nil
}

func orderViewsOf(orders []*order.Order) ([]OrderView, error) {
	views := make([]OrderView, 0, len(orders))
	for _, o := range orders {
		v, err := orderViewOf(o)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func orderSummariesOf(orders []*order.Order) ([]OrderSummaryView, error) {
	views := make([]OrderSummaryView, 0, len(orders))
	for _, o := range orders {
		v, err := orderSummaryOf(o)
		if err != nil {
			return nil, err
		}
		views = append(views, v)
	}
	return views, nil
}

func memberViewOf(m *member.Member) MemberView {
	return MemberView{ID: m.ID(), Name: m.Name(), Address: m.Address()}
}

func itemViewOf(it *item.Item) ItemView {
	return ItemView{
		ID:            it.ID(),
		Kind:          it.Kind(),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
		Details:       it.Details(),
	}
}
