package commands

import (
	"context"

	"shop/internal/pkg/errs"
)

// UpdateMemberNameCommandHandler renames a member, keeping names unique.
type UpdateMemberNameCommandHandler struct {
	uowFactory MemberUoWFactory
}

func NewUpdateMemberNameCommandHandler(uowFactory MemberUoWFactory) UpdateMemberNameCommandHandler {
	return UpdateMemberNameCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateMemberNameCommandHandler) Handle(ctx context.Context, cmd UpdateMemberNameCommand) error {
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

	memberRepo := uow.MemberRepository()

	m, err := memberRepo.Get(ctx, cmd.MemberID())
	if err != nil {
		return err
	}

	existing, err := memberRepo.FindByName(ctx, cmd.Name())
	if err != nil {
		return err
	}
	for _, other := range existing {
		if !other.IsEqual(m) {
			return errs.NewObjectAlreadyExistsError("member", cmd.Name())
		}
	}

	if err = m.ChangeName(cmd.Name()); err != nil {
		return err
	}

	if err = memberRepo.Update(ctx, m); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
