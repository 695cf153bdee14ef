package ports

import (
	"fmt"

	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// OrderSearch filters order lists. The zero value matches every order.
type OrderSearch struct {
	// MemberName matches orders whose member name contains it. Empty matches all.
	MemberName string

	status *order.Status
}

// NewOrderSearch builds a search. A nil status matches every status.
func NewOrderSearch(memberName string, status *order.Status) (OrderSearch, error) {
	if status != nil {
		if err := status.Validate(); err != nil {
			return OrderSearch{}, err
		}
		s := *status
		status = &s
	}
	return OrderSearch{MemberName: memberName, status: status}, nil
}

// Status returns the status filter and whether it is set.
func (s OrderSearch) Status() (order.Status, bool) {
	if s.status == nil {
		return order.Unknown, false
	}
	return *s.status, true
}

const (
	DefaultPageLimit = 100
	MaxPageLimit     = 1000
)

// Page selects a window of orders. It always applies to the order level query, never to
// joined order item rows.
type Page struct {
	Offset int
	Limit  int
}

// NewPage validates offset and limit. Use DefaultPage when the caller gave none.
func NewPage(offset, limit int) (Page, error) {
	if offset < 0 {
		return Page{}, errs.NewValueIsInvalidErrorWithCause("offset", fmt.Errorf("%d is negative", offset))
	}
	if limit < 1 || limit > MaxPageLimit {
		return Page{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, MaxPageLimit)
	}
	return Page{Offset: offset, Limit: limit}, nil
}

func DefaultPage() Page {
	return Page{Offset: 0, Limit: DefaultPageLimit}
}
