package queries

import (
	"context"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
)

// lazyLoader resolves the handles of lazily loaded orders one lookup at a time, the
// way an ORM proxy would on first access. Members and items are kept in identity maps
// so an entity shared by several orders is fetched once per query.
type lazyLoader struct {
	uow     ReadUoW
	members map[kernel.UUID]*member.Member
	items   map[kernel.UUID]*item.Item
}

func newLazyLoader(uow ReadUoW) *lazyLoader {
	return &lazyLoader{
		uow:     uow,
		members: make(map[kernel.UUID]*member.Member),
		items:   make(map[kernel.UUID]*item.Item),
	}
}

// loadHeaders resolves member and delivery of every order.
func (l *lazyLoader) loadHeaders(ctx context.Context, orders []*order.Order) error {
	for _, o := range orders {
		if err := l.loadMember(ctx, o); err != nil {
			return err
		}
		if err := l.loadDelivery(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

// loadGraphs resolves member, delivery, order items and items of every order.
func (l *lazyLoader) loadGraphs(ctx context.Context, orders []*order.Order) error {
	for _, o := range orders {
		if err := l.loadMember(ctx, o); err != nil {
			return err
		}
		if err := l.loadDelivery(ctx, o); err != nil {
			return err
		}
		if err := l.loadOrderItems(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func (l *lazyLoader) loadMember(ctx context.Context, o *order.Order) error {
	if o.Member().IsLoaded() {
		return nil
	}

	id := o.Member().ID()
	m, ok := l.members[id]
	if !ok {
		var err error
		if m, err = l.uow.MemberRepository().Get(ctx, id); err != nil {
			return err
		}
		l.members[id] = m
	}

	return o.ResolveMember(m)
}

func (l *lazyLoader) loadDelivery(ctx context.Context, o *order.Order) error {
	if o.Delivery().IsLoaded() {
		return nil
	}

	d, err := l.uow.OrderRepository().GetDelivery(ctx, o.Delivery().ID())
	if err != nil {
		return err
	}

	return o.ResolveDelivery(d)
}

func (l *lazyLoader) loadOrderItems(ctx context.Context, o *order.Order) error {
	if !o.OrderItems().IsLoaded() {
		orderItems, err := l.uow.OrderRepository().GetOrderItems(ctx, o.ID())
		if err != nil {
			return err
		}
		if err = o.ResolveOrderItems(orderItems); err != nil {
			return err
		}
	}

	orderItems, err := o.OrderItems().Get()
	if err != nil {
		return err
	}

	for _, oi := range orderItems {
		if err = l.loadItem(ctx, oi); err != nil {
			return err
		}
	}

	return nil
}

func (l *lazyLoader) loadItem(ctx context.Context, oi *order.OrderItem) error {
	if oi.Item().IsLoaded() {
		return nil
	}

	id := oi.Item().ID()
	it, ok := l.items[id]
	if !ok {
		var err error
		if it, err = l.uow.ItemRepository().Get(ctx, id); err != nil {
			return err
		}
		l.items[id] = it
	}

	return oi.ResolveItem(it)
}
