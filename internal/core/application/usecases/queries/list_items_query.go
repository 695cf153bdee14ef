package queries

import (
	"context"
	"errors"

	"shop/internal/pkg/guard"
)

var ErrListItemsQueryIsNotConstructed = errors.New(
	"ListItemsQuery must be created via NewListItemsQuery constructor",
)

// ListItemsQuery lists the catalog ordered by item name.
type ListItemsQuery struct {
	guard guard.ConstructorGuard
}

func NewListItemsQuery() ListItemsQuery {
	return ListItemsQuery{guard: guard.NewConstructorGuard()}
}

func (q ListItemsQuery) Validate() error {
	return q.guard.Validate(ErrListItemsQueryIsNotConstructed)
}

type ListItemsQueryHandler struct {
	uowFactory ReadUoWFactory
}

func NewListItemsQueryHandler(uowFactory ReadUoWFactory) ListItemsQueryHandler {
	return ListItemsQueryHandler{uowFactory: uowFactory}
}

func (h ListItemsQueryHandler) Handle(ctx context.Context, query ListItemsQuery) ([]ItemView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	views := make([]ItemView, 0)
	err := inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
		items, err := uow.ItemRepository().FindAll(ctx)
		if err != nil {
			return err
		}
		for _, it := range items {
			views = append(views, itemViewOf(it))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return views, nil
}
