package queries

import (
	"errors"
	"fmt"

	"shop/internal/pkg/errs"
)

// ErrPagingNotSupported is returned when a page is requested from a strategy that
// cannot apply it to the order level query.
var ErrPagingNotSupported = errs.NewValueIsInvalidErrorWithCause(
	"page", errors.New("the retrieval strategy does not support paging"),
)

// Strategy selects how an order list is read from storage. Every strategy returns the
// same orders for the same data; they differ in round trips and row shape.
//
//	LazyLoad        1 + member + delivery + collection + item lookups
//	FetchJoin       1, rows multiplied by the item count
//	BatchFetch      1 + ceil(orders / batch size)
//	DirectPerOrder  1 + one item query per order
//	Direct          2
//	Flat            1, regrouped in memory
type Strategy int

const (
	UnknownStrategy Strategy = iota
	LazyLoad
	FetchJoin
	BatchFetch
	DirectPerOrder
	Direct
	Flat
)

func getStrategyStrings() map[Strategy]string {
	//nolint:exhaustive // UnknownStrategy is intentionally excluded as it's invalid
	return map[Strategy]string{
		LazyLoad:       "lazy",
		FetchJoin:      "fetch-join",
		BatchFetch:     "batch-fetch",
		DirectPerOrder: "direct-per-order",
		Direct:         "direct",
		Flat:           "flat",
	}
}

func (s Strategy) Validate() error {
	if _, ok := getStrategyStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("strategy", fmt.Errorf("%d is not a valid strategy", s))
	}
	return nil
}

func (s Strategy) String() string {
	if str, ok := getStrategyStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ParseStrategy converts a strategy name such as "batch-fetch" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	for strategy, str := range getStrategyStrings() {
		if str == s {
			return strategy, nil
		}
	}
	return UnknownStrategy, errs.NewValueIsInvalidErrorWithCause("strategy", fmt.Errorf("%q is not a valid strategy", s))
}

// SupportsPaging reports whether a page can be applied to the order level query.
func (s Strategy) SupportsPaging() bool {
	return s == BatchFetch || s == Direct || s == DirectPerOrder
}

// SupportsSearch reports whether the strategy filters by an order search. FetchJoin and
// BatchFetch always list every order.
func (s Strategy) SupportsSearch() bool {
	return s == LazyLoad || s == Direct || s == DirectPerOrder || s == Flat
}
