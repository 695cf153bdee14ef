package commands

import (
	"context"
	"sort"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// PlaceOrderCommandHandler places an order in one transaction: the member is loaded,
// every ordered item is locked, stock is removed and the order with its delivery and
// order items is saved.
//
// Item rows are locked with SELECT ... FOR UPDATE in id order, so concurrent orders
// for the same items serialize instead of overselling and cannot deadlock each other.
type PlaceOrderCommandHandler struct {
	uowFactory UoWFactory
	placer     services.OrderPlacer
	now        func() time.Time
}

func NewPlaceOrderCommandHandler(uowFactory UoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
		now:        time.Now,
	}
}

func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	m, err := uow.MemberRepository().Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	itemRepo := uow.ItemRepository()
	lines := cmd.Lines()

	items, err := lockItems(ctx, itemRepo, lineItemIDs(lines))
	if err != nil {
		return err
	}

	placerLines := make([]services.Line, 0, len(lines))
	for _, line := range lines {
		placerLines = append(placerLines, services.Line{Item: items[line.ItemID], Count: line.Count})
	}

	o, err := h.placer.Place(cmd.OrderID(), m, h.now(), placerLines...)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	for _, it := range items {
		if err = itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func lineItemIDs(lines []OrderLine) []kernel.UUID {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ItemID)
	}
	return ids
}

// lockItems loads and locks each distinct item once, in ascending id order.
func lockItems(ctx context.Context, repo ports.ItemRepository, ids []kernel.UUID) (map[kernel.UUID]*item.Item, error) {
	distinct := make([]kernel.UUID, 0, len(ids))
	seen := make(map[kernel.UUID]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		distinct = append(distinct, id)
	}
	sort.Slice(distinct, func(i, j int) bool {
		return distinct[i].String() < distinct[j].String()
	})

	items := make(map[kernel.UUID]*item.Item, len(distinct))
	for _, id := range distinct {
		it, err := repo.GetForUpdate(ctx, id)
		if err != nil {
			return nil, err
		}
		items[id] = it
	}
	return items, nil
}
