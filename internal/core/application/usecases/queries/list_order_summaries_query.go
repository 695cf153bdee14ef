package queries

import (
	"context"
	"errors"
	"fmt"

	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListOrderSummariesQueryIsNotConstructed = errors.New(
	"ListOrderSummariesQuery must be created via NewListOrderSummariesQuery constructor",
)

// ListOrderSummariesQuery lists order headers without their lines. Only LazyLoad,
// FetchJoin (member and delivery joined) and Direct are meaningful here. Summaries are
// never filtered.
type ListOrderSummariesQuery struct {
	strategy Strategy

	guard guard.ConstructorGuard
}

func NewListOrderSummariesQuery(strategy Strategy) (ListOrderSummariesQuery, error) {
	switch strategy {
	case LazyLoad, FetchJoin, Direct:
	default:
		return ListOrderSummariesQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"strategy", fmt.Errorf("%s is not supported for order summaries", strategy),
		)
	}

	return ListOrderSummariesQuery{strategy: strategy, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrderSummariesQuery) Validate() error {
	return q.guard.Validate(ErrListOrderSummariesQueryIsNotConstructed)
}

func (q ListOrderSummariesQuery) Strategy() Strategy {
	return q.strategy
}

type ListOrderSummariesQueryHandler struct {
	uowFactory ReadUoWFactory
	db         *gorm.DB
	limit      int
}

func NewListOrderSummariesQueryHandler(uowFactory ReadUoWFactory, db *gorm.DB, lazyListLimit int) ListOrderSummariesQueryHandler {
	if lazyListLimit <= 0 {
		lazyListLimit = DefaultLazyListLimit
	}
	return ListOrderSummariesQueryHandler{uowFactory: uowFactory, db: db, limit: lazyListLimit}
}

func (h ListOrderSummariesQueryHandler) Handle(ctx context.Context, query ListOrderSummariesQuery) ([]OrderSummaryView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var summaries []OrderSummaryView
	var err error

	switch query.Strategy() {
	case LazyLoad:
		err = inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
			orders, err := uow.OrderRepository().FindAll(ctx, ports.OrderSearch{}, h.limit)
			if err != nil {
				return err
			}
			if err = newLazyLoader(uow).loadHeaders(ctx, orders); err != nil {
				return err
			}
			summaries, err = orderSummariesOf(orders)
			return err
		})
	case FetchJoin:
		err = inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
			orders, err := uow.OrderRepository().FindAllWithMemberDelivery(ctx, nil)
			if err != nil {
				return err
			}
			summaries, err = orderSummariesOf(orders)
			return err
		})
	default:
		err = readOnly(ctx, h.db, func(tx *gorm.DB) error {
			var err error
			summaries, err = selectOrderHeaders(tx, ports.OrderSearch{}, nil)
			return err
		})
	}
	if err != nil {
		return nil, err
	}

	return summaries, nil
}
