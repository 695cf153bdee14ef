package queries

import (
	"context"
	"errors"

	"shop/internal/core/ports"
	"shop/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListOrderRowsQueryIsNotConstructed = errors.New(
	"ListOrderRowsQuery must be created via NewListOrderRowsQuery constructor",
)

// ListOrderRowsQuery returns the flat order join as is: one row per order line, the
// header repeated on each. RegroupOrderRows turns the result into OrderView values.
type ListOrderRowsQuery struct {
	search ports.OrderSearch

	guard guard.ConstructorGuard
}

func NewListOrderRowsQuery(search ports.OrderSearch) ListOrderRowsQuery {
	return ListOrderRowsQuery{search: search, guard: guard.NewConstructorGuard()}
}

func (q ListOrderRowsQuery) Validate() error {
	return q.guard.Validate(ErrListOrderRowsQueryIsNotConstructed)
}

func (q ListOrderRowsQuery) Search() ports.OrderSearch {
	return q.search
}

// ListOrderRowsQueryHandler runs the single four table join.
type ListOrderRowsQueryHandler struct {
	db *gorm.DB
}

func NewListOrderRowsQueryHandler(db *gorm.DB) ListOrderRowsQueryHandler {
	return ListOrderRowsQueryHandler{db: db}
}

func (h ListOrderRowsQueryHandler) Handle(ctx context.Context, query ListOrderRowsQuery) ([]OrderFlatRow, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []OrderFlatRow
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		var err error
		rows, err = selectOrderFlatRows(tx, query.Search())
		return err
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}
