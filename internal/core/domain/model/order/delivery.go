package order

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrDeliveryIsNotConstructed = errors.New("Delivery must be created via NewDelivery or RestoreDelivery constructor")

// Delivery is the shipment of an order. The address is a snapshot of the member
// address at the time the order was placed and does not follow later changes.
type Delivery struct {
	id      kernel.UUID
	address kernel.Address
	status  DeliveryStatus

	guard guard.ConstructorGuard
}

// NewDelivery creates a delivery in the Ready status.
func NewDelivery(id kernel.UUID, address kernel.Address) (*Delivery, error) {
	return RestoreDelivery(id, address, Ready)
}

// RestoreDelivery rebuilds a delivery from persistence.
func RestoreDelivery(id kernel.UUID, address kernel.Address, status DeliveryStatus) (*Delivery, error) {
	if err := errors.Join(id.Validate(), status.Validate()); err != nil {
		return nil, err
	}

	return &Delivery{
		id:      id,
		address: address,
		status:  status,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (d *Delivery) Validate() error {
	if d == nil {
		return ErrDeliveryIsNotConstructed
	}
	return d.guard.Validate(ErrDeliveryIsNotConstructed)
}

func (d *Delivery) ID() kernel.UUID {
	return d.id
}

func (d *Delivery) Address() kernel.Address {
	return d.address
}

func (d *Delivery) Status() DeliveryStatus {
	return d.status
}

// Complete marks the delivery as handed over. A completed delivery blocks
// cancellation of its order.
func (d *Delivery) Complete() error {
	status, err := d.status.Complete()
	if err != nil {
		return err
	}
	d.status = status
	return nil
}
