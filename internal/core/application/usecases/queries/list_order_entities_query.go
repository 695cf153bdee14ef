package queries

import (
	"context"
	"errors"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/guard"
)

var ErrListOrderEntitiesQueryIsNotConstructed = errors.New(
	"ListOrderEntitiesQuery must be created via NewListOrderEntitiesQuery constructor",
)

// ListOrderEntitiesQuery returns the matching orders as fully resolved entity graphs:
// member, delivery, order items and their items. It always uses the lazy strategy.
type ListOrderEntitiesQuery struct {
	search ports.OrderSearch

	guard guard.ConstructorGuard
}

func NewListOrderEntitiesQuery(search ports.OrderSearch) ListOrderEntitiesQuery {
	return ListOrderEntitiesQuery{search: search, guard: guard.NewConstructorGuard()}
}

func (q ListOrderEntitiesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderEntitiesQueryIsNotConstructed)
}

func (q ListOrderEntitiesQuery) Search() ports.OrderSearch {
	return q.search
}

type ListOrderEntitiesQueryHandler struct {
	uowFactory ReadUoWFactory
	limit      int
}

// NewListOrderEntitiesQueryHandler creates the handler. At most lazyListLimit orders are
// walked; a non-positive value means DefaultLazyListLimit.
func NewListOrderEntitiesQueryHandler(uowFactory ReadUoWFactory, lazyListLimit int) ListOrderEntitiesQueryHandler {
	if lazyListLimit <= 0 {
		lazyListLimit = DefaultLazyListLimit
	}
	return ListOrderEntitiesQueryHandler{uowFactory: uowFactory, limit: lazyListLimit}
}

func (h ListOrderEntitiesQueryHandler) Handle(ctx context.Context, query ListOrderEntitiesQuery) ([]*order.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var orders []*order.Order
	err := inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
		var err error
		orders, err = loadLazyOrders(ctx, uow, query.Search(), h.limit)
		return err
	})
	if err != nil {
		return nil, err
	}

	return orders, nil
}
