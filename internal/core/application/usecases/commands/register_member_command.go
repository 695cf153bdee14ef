package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrRegisterMemberCommandIsNotConstructed = errors.New(
	"RegisterMemberCommand must be created via NewRegisterMemberCommand constructor",
)

// RegisterMemberCommand represents a request to register a new member.
//
// Example:
//
//	memberID := kernel.NewUUID()
//	cmd, err := NewRegisterMemberCommand(memberID, "kim", kernel.NewAddress("Seoul", "1", "1111"))
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type RegisterMemberCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string
	address  kernel.Address

	guard guard.ConstructorGuard
}

func NewRegisterMemberCommand(memberID kernel.UUID, name string, address kernel.Address) (RegisterMemberCommand, error) {
	cmd := RegisterMemberCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setMemberID(memberID),
		cmd.setName(name),
	); err != nil {
		return RegisterMemberCommand{}, err
	}

	return cmd, nil
}

func (c RegisterMemberCommand) Validate() error {
	return c.guard.Validate(ErrRegisterMemberCommandIsNotConstructed)
}

func (c RegisterMemberCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c RegisterMemberCommand) Name() string {
	return c.name
}

func (c RegisterMemberCommand) Address() kernel.Address {
	return c.address
}

func (c *RegisterMemberCommand) setMemberID(memberID kernel.UUID) error {
	if err := memberID.Validate(); err != nil {
		return err
	}
	c.memberID = memberID
	return nil
}

func (c *RegisterMemberCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}
