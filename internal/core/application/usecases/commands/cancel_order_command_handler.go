package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
)

// CancelOrderCommandHandler cancels an order in one transaction. The order row is
// locked first, then the items of its order lines in id order, so a concurrent cancel
// of the same order waits and then fails with errs.ErrIllegalState instead of
// restoring the stock twice.
type CancelOrderCommandHandler struct {
	uowFactory UoWFactory
}

func NewCancelOrderCommandHandler(uowFactory UoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	itemRepo := uow.ItemRepository()

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	orderItems, err := o.OrderItems().Get()
	if err != nil {
		return err
	}

	itemIDs := make([]kernel.UUID, 0, len(orderItems))
	for _, oi := range orderItems {
		itemIDs = append(itemIDs, oi.Item().ID())
	}

	items, err := lockItems(ctx, itemRepo, itemIDs)
	if err != nil {
		return err
	}

	for _, oi := range orderItems {
		if err = oi.ResolveItem(items[oi.Item().ID()]); err != nil {
			return err
		}
	}

	if err = o.Cancel(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	for _, it := range items {
		if err = itemRepo.Update(ctx, it); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}
