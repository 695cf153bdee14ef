package commands

import (
	"errors"
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
	ErrOrderLinesAreRequired = errs.NewValueIsRequiredError("order lines")
)

// OrderLine is one requested item and quantity.
type OrderLine struct {
	ItemID kernel.UUID
	Count  int
}

// PlaceOrderCommand represents a request to order items for a member.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewPlaceOrderCommand(orderID, memberID, OrderLine{ItemID: bookID, Count: 2})
//	if err != nil {
//	    return err
//	}
//	if err = handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
//	// orderID identifies the placed order
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	memberID kernel.UUID
	lines    []OrderLine

	guard guard.ConstructorGuard
}

func NewPlaceOrderCommand(orderID, memberID kernel.UUID, lines ...OrderLine) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setMemberID(memberID),
		cmd.setLines(lines),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c PlaceOrderCommand) MemberID() kernel.UUID {
	return c.memberID
}

// Lines returns a copy of the requested lines in request order.
func (c PlaceOrderCommand) Lines() []OrderLine {
	return append([]OrderLine(nil), c.lines...)
}

func (c *PlaceOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *PlaceOrderCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *PlaceOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrOrderLinesAreRequired
	}

	for i, line := range lines {
		if err := line.ItemID.Validate(); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		if line.Count <= 0 {
			return errs.NewValueIsInvalidErrorWithCause("count", fmt.Errorf("line %d: %d is not greater than 0", i, line.Count))
		}
	}

	c.lines = append([]OrderLine(nil), lines...)
	return nil
}
