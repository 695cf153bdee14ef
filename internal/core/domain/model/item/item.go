package item

import (
	"errors"
	"fmt"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrInsufficientStock is the sentinel behind InsufficientStockError.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// InsufficientStockError is returned when removing stock would make it negative.
type InsufficientStockError struct {
	ItemID    kernel.UUID
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("%s: item %s has %d, requested %d", ErrInsufficientStock, e.ItemID, e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error {
	return ErrInsufficientStock
}

// Item is a product in the catalog.
//
// Invariants:
//   - Must have a valid identifier, a name and valid kind details
//   - Price >= 0
//   - Stock quantity >= 0 at all times
type Item struct {
	id            kernel.UUID
	name          string
	price         int
	stockQuantity int
	details       Details

	guard guard.ConstructorGuard
}

// NewItem creates a catalog item. The kind is taken from details.
//
// Example:
//
//	book, err := item.NewItem(kernel.NewUUID(), "JPA1 BOOK", 10000, 100,
//	    item.Book{Author: "kim", ISBN: "1111"})
func NewItem(id kernel.UUID, name string, price, stockQuantity int, details Details) (*Item, error) {
	it := &Item{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		it.setID(id),
		it.setName(name),
		it.setPrice(price),
		it.setStockQuantity(stockQuantity),
		it.setDetails(details),
	); err != nil {
		return nil, err
	}

	return it, nil
}

// RestoreItem rebuilds an item from persistence.
func RestoreItem(id kernel.UUID, name string, price, stockQuantity int, details Details) (*Item, error) {
	return NewItem(id, name, price, stockQuantity, details)
}

func (i *Item) Validate() error {
	if i == nil {
		return ErrItemIsNotConstructed
	}
	return i.guard.Validate(ErrItemIsNotConstructed)
}

func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

func (i *Item) ID() kernel.UUID {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Price() int {
	return i.price
}

func (i *Item) StockQuantity() int {
	return i.stockQuantity
}

func (i *Item) Kind() Kind {
	return i.details.Kind()
}

func (i *Item) Details() Details {
	return i.details
}

// AddStock increases the stock, e.g. when an order is canceled.
func (i *Item) AddStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.stockQuantity += quantity
	return nil
}

// RemoveStock decreases the stock when an order line is placed.
// The stock is left untouched when the result would be negative.
func (i *Item) RemoveStock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if i.stockQuantity-quantity < 0 {
		return &InsufficientStockError{ItemID: i.id, Requested: quantity, Available: i.stockQuantity}
	}
	i.stockQuantity -= quantity
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setPrice(price int) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%d is negative", price))
	}
	i.price = price
	return nil
}

func (i *Item) setStockQuantity(quantity int) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock quantity", fmt.Errorf("%d is negative", quantity))
	}
	i.stockQuantity = quantity
	return nil
}

func (i *Item) setDetails(details Details) error {
	if details == nil {
		return errs.NewValueIsRequiredError("item details")
	}
	if err := details.Kind().Validate(); err != nil {
		return err
	}
	i.details = details
	return nil
}
