package queries

import (
	"errors"

	"shop/internal/core/ports"
	"shop/internal/pkg/guard"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery lists orders as OrderView values using one retrieval strategy.
//
// The search is ignored by strategies that do not support it (see
// Strategy.SupportsSearch). A page is only accepted by strategies that apply it to the
// order level query; nil means every order.
//
// Example:
//
//	page, _ := ports.NewPage(0, 10)
//	query, err := NewListOrdersQuery(BatchFetch, ports.OrderSearch{}, &page)
//	if err != nil {
//	    return err
//	}
//	orders, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	strategy Strategy
	search   ports.OrderSearch
	page     *ports.Page

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(strategy Strategy, search ports.OrderSearch, page *ports.Page) (ListOrdersQuery, error) {
	if err := strategy.Validate(); err != nil {
		return ListOrdersQuery{}, err
	}
	if page != nil && !strategy.SupportsPaging() {
		return ListOrdersQuery{}, ErrPagingNotSupported
	}

	q := ListOrdersQuery{
		strategy: strategy,
		search:   search,
		guard:    guard.NewConstructorGuard(),
	}
	if page != nil {
		p := *page
		q.page = &p
	}

	return q, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Strategy() Strategy {
	return q.strategy
}

func (q ListOrdersQuery) Search() ports.OrderSearch {
	return q.search
}

// Page returns the requested page and whether one was given.
func (q ListOrdersQuery) Page() (ports.Page, bool) {
	if q.page == nil {
		return ports.Page{}, false
	}
	return *q.page, true
}
