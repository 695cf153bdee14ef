package commands

import (
	"errors"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrCreateItemCommandIsNotConstructed = errors.New(
	"CreateItemCommand must be created via NewCreateItemCommand constructor",
)

// CreateItemCommand adds an item to the catalog. The kind follows from details.
//
// Example:
//
//	cmd, err := NewCreateItemCommand(kernel.NewUUID(), "JPA1 BOOK", 10000, 100,
//	    item.Book{Author: "kim", ISBN: "1111"})
type CreateItemCommand struct { //nolint:recvcheck //using for validation
	itemID        kernel.UUID
	name          string
	price         int
	stockQuantity int
	details       item.Details

	guard guard.ConstructorGuard
}

func NewCreateItemCommand(
	itemID kernel.UUID,
	name string,
	price, stockQuantity int,
	details item.Details,
) (CreateItemCommand, error) {
	var detailsErr error
	if details == nil {
		detailsErr = errs.NewValueIsRequiredError("item details")
	}

	if err := errors.Join(itemID.Validate(), detailsErr); err != nil {
		return CreateItemCommand{}, err
	}

	return CreateItemCommand{
		itemID:        itemID,
		name:          name,
		price:         price,
		stockQuantity: stockQuantity,
		details:       details,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

func (c CreateItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateItemCommandIsNotConstructed)
}

func (c CreateItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c CreateItemCommand) Name() string {
	return c.name
}

func (c CreateItemCommand) Price() int {
	return c.price
}

func (c CreateItemCommand) StockQuantity() int {
	return c.stockQuantity
}

func (c CreateItemCommand) Details() item.Details {
	return c.details
}
