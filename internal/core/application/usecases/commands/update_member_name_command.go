package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrUpdateMemberNameCommandIsNotConstructed = errors.New(
	"UpdateMemberNameCommand must be created via NewUpdateMemberNameCommand constructor",
)

// UpdateMemberNameCommand renames a member.
type UpdateMemberNameCommand struct { //nolint:recvcheck //using for validation
	memberID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

func NewUpdateMemberNameCommand(memberID kernel.UUID, name string) (UpdateMemberNameCommand, error) {
	cmd := UpdateMemberNameCommand{
		guard: guard.NewConstructorGuard(),
	}

	name = strings.TrimSpace(name)
	var nameErr error
	if name == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}

	if err := errors.Join(memberID.Validate(), nameErr); err != nil {
		return UpdateMemberNameCommand{}, err
	}

	cmd.memberID = memberID
	cmd.name = name
	return cmd, nil
}

func (c UpdateMemberNameCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMemberNameCommandIsNotConstructed)
}

func (c UpdateMemberNameCommand) MemberID() kernel.UUID {
	return c.memberID
}

func (c UpdateMemberNameCommand) Name() string {
	return c.name
}
