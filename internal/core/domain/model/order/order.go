package order

import (
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderHasNoItems is returned by NewOrder when no order item is given.
	ErrOrderHasNoItems = errs.NewValueIsRequiredError("order items")
)

// Order is the aggregate root of the ordering context. It owns its delivery and its
// order items; the member and the catalog items are referenced.
//
// Order follows these invariants:
//   - Must have a valid unique identifier, member, delivery and order date
//   - A new order has at least one order item
//   - Status only moves from Ordered to Canceled
//   - The order items keep the position they were added in
//
// Relations are held through kernel.Ref handles. The order items handle uses the order
// id as its identifier since the collection is looked up by its owner.
type Order struct {
	id         kernel.UUID
	member     kernel.Ref[*member.Member]
	delivery   kernel.Ref[*Delivery]
	orderItems kernel.Ref[[]*OrderItem]
	orderDate  time.Time
	status     Status

	guard guard.ConstructorGuard
}

// NewOrder creates an order in the Ordered status with every relation loaded.
//
// Example:
//
//	delivery, _ := order.NewDelivery(kernel.NewUUID(), m.Address())
//	oi, _ := order.NewOrderItem(kernel.NewUUID(), book, book.Price(), 2)
//	o, err := order.NewOrder(kernel.NewUUID(), m, delivery, time.Now(), oi)
func NewOrder(id kernel.UUID, m *member.Member, d *Delivery, orderDate time.Time, items ...*OrderItem) (*Order, error) {
	if err := errors.Join(m.Validate(), d.Validate()); err != nil {
		return nil, err
	}

	if len(items) == 0 {
		return nil, ErrOrderHasNoItems
	}
	for _, oi := range items {
		if err := oi.Validate(); err != nil {
			return nil, err
		}
	}

	return RestoreOrder(
		id,
		kernel.LoadedRef(m.ID(), m),
		kernel.LoadedRef(d.ID(), d),
		kernel.LoadedRef(id, items),
		orderDate,
		Ordered,
	)
}

// RestoreOrder rebuilds an order from persistence. Any handle may be unloaded.
func RestoreOrder(
	id kernel.UUID,
	memberRef kernel.Ref[*member.Member],
	deliveryRef kernel.Ref[*Delivery],
	orderItemsRef kernel.Ref[[]*OrderItem],
	orderDate time.Time,
	status Status,
) (*Order, error) {
	o := &Order{
		member:     memberRef,
		delivery:   deliveryRef,
		orderItems: orderItemsRef,
		status:     status,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		memberRef.Validate(),
		deliveryRef.Validate(),
		o.setOrderDate(orderDate),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) Member() kernel.Ref[*member.Member] {
	return o.member
}

func (o *Order) Delivery() kernel.Ref[*Delivery] {
	return o.delivery
}

func (o *Order) OrderItems() kernel.Ref[[]*OrderItem] {
	return o.orderItems
}

func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

func (o *Order) Status() Status {
	return o.status
}

// ResolveMember loads the member handle with the member it refers to.
func (o *Order) ResolveMember(m *member.Member) error {
	if err := m.Validate(); err != nil {
		return err
	}
	if !o.member.ID().IsEqual(m.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("member", fmt.Errorf("%s is not %s", m.ID(), o.member.ID()))
	}
	o.member = o.member.Resolve(m)
	return nil
}

// ResolveDelivery loads the delivery handle with the delivery it refers to.
func (o *Order) ResolveDelivery(d *Delivery) error {
	if err := d.Validate(); err != nil {
		return err
	}
	if !o.delivery.ID().IsEqual(d.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("delivery", fmt.Errorf("%s is not %s", d.ID(), o.delivery.ID()))
	}
	o.delivery = o.delivery.Resolve(d)
	return nil
}

// ResolveOrderItems loads the order items handle. items must be in position order.
func (o *Order) ResolveOrderItems(items []*OrderItem) error {
	for _, oi := range items {
		if err := oi.Validate(); err != nil {
			return err
		}
	}
	o.orderItems = o.orderItems.Resolve(items)
	return nil
}

// TotalPrice sums the order item totals. The order items handle must be loaded.
func (o *Order) TotalPrice() (int, error) {
	items, err := o.orderItems.Get()
	if err != nil {
		return 0, err
	}

	total := 0
	for _, oi := range items {
		total += oi.TotalPrice()
	}
	return total, nil
}

// Cancel cancels the order and restores the stock of every ordered item.
//
// The delivery and order items handles must be loaded, and so must the item handle of
// every order item. Nothing is changed when any of them is not, or when the order
// cannot be canceled:
//   - an already canceled order fails with errs.ErrIllegalState
//   - an order whose delivery is completed fails with errs.ErrIllegalState
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	d, err := o.delivery.Get()
	if err != nil {
		return err
	}
	if d.Status() == Completed {
		return errs.NewIllegalStateError("cancel order with delivery", d.Status().String())
	}

	items, err := o.orderItems.Get()
	if err != nil {
		return err
	}
	for _, oi := range items {
		if !oi.Item().IsLoaded() {
			return fmt.Errorf("order item %s: %w", oi.ID(), kernel.ErrRefIsNotLoaded)
		}
	}

	for _, oi := range items {
		if err = oi.cancel(); err != nil {
			return err
		}
	}

	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("order date")
	}
	o.orderDate = orderDate
	return nil
}
