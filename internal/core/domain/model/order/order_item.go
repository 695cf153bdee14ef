package order

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrOrderItemIsNotConstructed = errors.New("OrderItem must be created via NewOrderItem or RestoreOrderItem constructor")

// OrderItem is one line of an order. The order price is frozen when the line is
// created and does not follow later catalog price changes.
type OrderItem struct {
	id         kernel.UUID
	item       kernel.Ref[*item.Item]
	orderPrice int
	count      int

	guard guard.ConstructorGuard
}

// NewOrderItem creates an order line and removes count units from the item stock.
//
// Example:
//
//	oi, err := order.NewOrderItem(kernel.NewUUID(), book, book.Price(), 2)
//	if errors.Is(err, item.ErrInsufficientStock) {
//	    // not enough stock, book is unchanged
//	}
func NewOrderItem(id kernel.UUID, it *item.Item, orderPrice, count int) (*OrderItem, error) {
	if err := it.Validate(); err != nil {
		return nil, err
	}

	oi, err := RestoreOrderItem(id, kernel.LoadedRef(it.ID(), it), orderPrice, count)
	if err != nil {
		return nil, err
	}

	if err = it.RemoveStock(count); err != nil {
		return nil, err
	}

	return oi, nil
}

// RestoreOrderItem rebuilds an order line from persistence. The item handle is
// usually unloaded.
func RestoreOrderItem(id kernel.UUID, itemRef kernel.Ref[*item.Item], orderPrice, count int) (*OrderItem, error) {
	oi := &OrderItem{
		item:  itemRef,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		id.Validate(),
		itemRef.Validate(),
		oi.setOrderPrice(orderPrice),
		oi.setCount(count),
	); err != nil {
		return nil, err
	}
	oi.id = id

	return oi, nil
}

func (oi *OrderItem) Validate() error {
	if oi == nil {
		return ErrOrderItemIsNotConstructed
	}
	return oi.guard.Validate(ErrOrderItemIsNotConstructed)
}

func (oi *OrderItem) ID() kernel.UUID {
	return oi.id
}

func (oi *OrderItem) Item() kernel.Ref[*item.Item] {
	return oi.item
}

func (oi *OrderItem) OrderPrice() int {
	return oi.orderPrice
}

func (oi *OrderItem) Count() int {
	return oi.count
}

// TotalPrice is the frozen order price times the count.
func (oi *OrderItem) TotalPrice() int {
	return oi.orderPrice * oi.count
}

// ResolveItem loads the item handle. The item must be the one the line refers to.
func (oi *OrderItem) ResolveItem(it *item.Item) error {
	if err := it.Validate(); err != nil {
		return err
	}
	if !oi.item.ID().IsEqual(it.ID()) {
		return errs.NewValueIsInvalidErrorWithCause("item", fmt.Errorf("%s is not %s", it.ID(), oi.item.ID()))
	}
	oi.item = oi.item.Resolve(it)
	return nil
}

// cancel puts the ordered units back into stock.
func (oi *OrderItem) cancel() error {
	it, err := oi.item.Get()
	if err != nil {
		return err
	}
	return it.AddStock(oi.count)
}

func (oi *OrderItem) setOrderPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("order price", fmt.Errorf("%d is negative", price))
	}
	oi.orderPrice = price
	return nil
}

func (oi *OrderItem) setCount(count int) error {
	if count <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("%d is not greater than 0", count))
	}
	oi.count = count
	return nil
}
