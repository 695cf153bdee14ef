package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler moves the delivery of an order from READY to
// COMPLETED. A completed delivery can no longer be canceled.
type CompleteDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteDeliveryCommandHandler(uowFactory OrderUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	d, err := o.Delivery().Get()
	if err != nil {
		return err
	}

	if err = d.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
