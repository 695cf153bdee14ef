package commands

import (
	"context"

	"shop/internal/core/domain/model/member"
	"shop/internal/pkg/errs"
)

// RegisterMemberCommandHandler registers members with unique names.
//
// The name lookup rejects the common duplicate early. Two concurrent registrations of
// the same name both pass the lookup; the unique index on members.name then rejects
// the second insert, which the repository reports as errs.ErrObjectAlreadyExists too.
type RegisterMemberCommandHandler struct {
	uowFactory MemberUoWFactory
}

func NewRegisterMemberCommandHandler(uowFactory MemberUoWFactory) RegisterMemberCommandHandler {
	return RegisterMemberCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterMemberCommandHandler) Handle(ctx context.Context, cmd RegisterMemberCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	m, err := member.NewMember(cmd.MemberID(), cmd.Name(), cmd.Address())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	memberRepo := uow.MemberRepository()

	existing, err := memberRepo.FindByName(ctx, m.Name())
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return errs.NewObjectAlreadyExistsError("member", m.Name())
	}

	if err = memberRepo.Add(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
