package queries

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// headerKey is the full order header of a flat row. The order date is kept as unix
// nanoseconds since time.Time values scanned from separate rows are not == comparable.
type headerKey struct {
	orderID    kernel.UUID
	memberName string
	orderDate  int64
	status     order.Status
	address    kernel.Address
}

func headerKeyOf(row OrderFlatRow) headerKey {
	return headerKey{
		orderID:    row.OrderID,
		memberName: row.MemberName,
		orderDate:  row.OrderDate.UnixNano(),
		status:     row.Status,
		address:    row.Address,
	}
}

// RegroupOrderRows folds flat rows back into one OrderView per distinct order header.
// Groups keep the order in which their header was first seen and items keep the row
// order. Rows without an item produce a group with no items.
//
// It is a left inverse of FlattenOrderViews.
func RegroupOrderRows(rows []OrderFlatRow) []OrderView {
	index := make(map[headerKey]int, len(rows))
	views := make([]OrderView, 0)

	for _, row := range rows {
		key := headerKeyOf(row)
		i, ok := index[key]
		if !ok {
			i = len(views)
			index[key] = i
			views = append(views, OrderView{
				OrderID:    row.OrderID,
				MemberName: row.MemberName,
				OrderDate:  row.OrderDate,
				Status:     row.Status,
				Address:    row.Address,
				Items:      make([]OrderItemView, 0),
			})
		}

		if row.Item != nil {
			views[i].Items = append(views[i].Items, *row.Item)
		}
	}

	return views
}

// FlattenOrderViews emits one row per item line, or a single item-less row for an
// order without lines.
func FlattenOrderViews(views []OrderView) []OrderFlatRow {
	rows := make([]OrderFlatRow, 0, len(views))
	for _, v := range views {
		row := OrderFlatRow{
			OrderID:    v.OrderID,
			MemberName: v.MemberName,
			OrderDate:  v.OrderDate,
			Status:     v.Status,
			Address:    v.Address,
		}
		if len(v.Items) == 0 {
			rows = append(rows, row)
			continue
		}
		for _, it := range v.Items {
			line := it
			row.Item = &line
			rows = append(rows, row)
		}
	}
	return rows
}
