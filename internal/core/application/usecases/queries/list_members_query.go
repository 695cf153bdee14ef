package queries

import (
	"context"
	"errors"

	"shop/internal/pkg/guard"
)

var ErrListMembersQueryIsNotConstructed = errors.New(
	"ListMembersQuery must be created via NewListMembersQuery constructor",
)

// ListMembersQuery lists every member ordered by name.
type ListMembersQuery struct {
	guard guard.ConstructorGuard
}

func NewListMembersQuery() ListMembersQuery {
	return ListMembersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListMembersQuery) Validate() error {
	return q.guard.Validate(ErrListMembersQueryIsNotConstructed)
}

type ListMembersQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListMembersQueryHandler(uowFactory ReadUoWFactory) ListMembersQueryHandler {
	return ListMembersQueryHandler{uowFactory: uowFactory}
}

func (h ListMembersQueryHandler) Handle(ctx context.Context, query ListMembersQuery) ([]MemberView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]MemberView, 0)
	err := inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
		members, err := uow.MemberRepository().FindAll(ctx)
		if err != nil {
			return err
		}
		for _, m := range members {
			views = append(views, memberViewOf(m))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
