package queries

import (
	"context"
	"database/sql"
	"time"

	"shop/internal/core/application/ordersearch"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	orderHeaderSQL = `
		SELECT
			o.id AS order_id,
			m.name AS member_name,
			o.order_date,
			o.status AS order_status,
			d.city,
			d.street,
			d.zipcode
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.id = o.delivery_id
	`

	orderItemsByOrdersSQL = `
		SELECT
			oi.order_id,
			i.name AS item_name,
			oi.order_price,
			oi.count
		FROM order_items oi
		JOIN items i ON i.id = oi.item_id
		WHERE oi.order_id IN ?
		ORDER BY oi.order_id, oi.position
	`

	orderItemsOfOrderSQL = `
		SELECT
			oi.order_id,
			i.name AS item_name,
			oi.order_price,
			oi.count
		FROM order_items oi
		JOIN items i ON i.id = oi.item_id
		WHERE oi.order_id = ?
		ORDER BY oi.position
	`

	orderFlatSQL = `
		SELECT
			o.id AS order_id,
			m.name AS member_name,
			o.order_date,
			o.status AS order_status,
			d.city,
			d.street,
			d.zipcode,
			i.name AS item_name,
			oi.order_price,
			oi.count
		FROM orders o
		JOIN members m ON m.id = o.member_id
		JOIN deliveries d ON d.id = o.delivery_id
		LEFT JOIN order_items oi ON oi.order_id = o.id
		LEFT JOIN items i ON i.id = oi.item_id
	`

	orderListOrderBy = " ORDER BY o.order_date, o.id"
	orderFlatOrderBy = " ORDER BY o.order_date, o.id, oi.position"
)

type orderHeaderRow struct {
	OrderID     uuid.UUID
	MemberName  string
	OrderDate   time.Time
	OrderStatus string
	City        string
	Street      string
	Zipcode     string
}

func (r orderHeaderRow) toView() (OrderSummaryView, error) {
	id, err := kernel.UUIDFromBytes(r.OrderID[:])
	if err != nil {
		return OrderSummaryView{}, err
	}
	status, err := order.ParseStatus(r.OrderStatus)
	if err != nil {
		return OrderSummaryView{}, err
	}

	return OrderSummaryView{
		OrderID:    id,
		MemberName: r.MemberName,
		OrderDate:  r.OrderDate,
		Status:     status,
		Address:    kernel.NewAddress(r.City, r.Street, r.Zipcode),
	}, nil
}

type orderItemRow struct {
	OrderID    uuid.UUID
	ItemName   string
	OrderPrice int
	Count      int
}

func (r orderItemRow) toView() OrderItemView {
	return OrderItemView{ItemName: r.ItemName, OrderPrice: r.OrderPrice, Count: r.Count}
}

// orderFlatRow is one row of orderFlatSQL. The item columns are null for an order
// without lines.
type orderFlatRow struct {
	OrderID     uuid.UUID
	MemberName  string
	OrderDate   time.Time
	OrderStatus string
	City        string
	Street      string
	Zipcode     string
	ItemName    *string
	OrderPrice  *int
	Count       *int
}

func (r orderFlatRow) toView() (OrderFlatRow, error) {
	header, err := orderHeaderRow{
		OrderID:     r.OrderID,
		MemberName:  r.MemberName,
		OrderDate:   r.OrderDate,
		OrderStatus: r.OrderStatus,
		City:        r.City,
		Street:      r.Street,
		Zipcode:     r.Zipcode,
	}.toView()
	if err != nil {
		return OrderFlatRow{}, err
	}

	row := OrderFlatRow{
		OrderID:    header.OrderID,
		MemberName: header.MemberName,
		OrderDate:  header.OrderDate,
		Status:     header.Status,
		Address:    header.Address,
	}
	if r.ItemName != nil && r.OrderPrice != nil && r.Count != nil {
		row.Item = &OrderItemView{ItemName: *r.ItemName, OrderPrice: *r.OrderPrice, Count: *r.Count}
	}
	return row, nil
}

// readOnly runs fn in a read-only transaction so every statement of a listing sees the
// same snapshot.
func readOnly(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	return db.WithContext(ctx).Transaction(fn, &sql.TxOptions{ReadOnly: true})
}

// selectOrderHeaders runs the order level query of the direct strategies. Paging is
// applied here, before any item row is read.
func selectOrderHeaders(tx *gorm.DB, search ports.OrderSearch, page *ports.Page) ([]OrderSummaryView, error) {
	where, args := ordersearch.Where(search)
	query := orderHeaderSQL + where + orderListOrderBy
	if page != nil {
		query += " LIMIT ? OFFSET ?"
		args = append(args, page.Limit, page.Offset)
	}

	var rows []orderHeaderRow
	if err := tx.Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	headers := make([]OrderSummaryView, 0, len(rows))
	for _, row := range rows {
		v, err := row.toView()
		if err != nil {
			return nil, err
		}
		headers = append(headers, v)
	}
	return headers, nil
}

// selectOrderItems reads the lines of all given orders with one IN query.
func selectOrderItems(tx *gorm.DB, orderIDs []kernel.UUID) (map[kernel.UUID][]OrderItemView, error) {
	lines := make(map[kernel.UUID][]OrderItemView, len(orderIDs))
	if len(orderIDs) == 0 {
		return lines, nil
	}

	ids := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.Bytes())
	}

	var rows []orderItemRow
	if err := tx.Raw(orderItemsByOrdersSQL, ids).Scan(&rows).Error; err != nil {
		return nil, err
	}

	for _, row := range rows {
		orderID, err := kernel.UUIDFromBytes(row.OrderID[:])
		if err != nil {
			return nil, err
		}
		lines[orderID] = append(lines[orderID], row.toView())
	}
	return lines, nil
}

func selectOrderItemsOf(tx *gorm.DB, orderID kernel.UUID) ([]OrderItemView, error) {
	var rows []orderItemRow
	if err := tx.Raw(orderItemsOfOrderSQL, orderID.Bytes()).Scan(&rows).Error; err != nil {
		return nil, err
	}

	lines := make([]OrderItemView, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, row.toView())
	}
	return lines, nil
}

func selectOrderFlatRows(tx *gorm.DB, search ports.OrderSearch) ([]OrderFlatRow, error) {
	where, args := ordersearch.Where(search)

	var rows []orderFlatRow
	if err := tx.Raw(orderFlatSQL+where+orderFlatOrderBy, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}

	flat := make([]OrderFlatRow, 0, len(rows))
	for _, row := range rows {
		v, err := row.toView()
		if err != nil {
			return nil, err
		}
		flat = append(flat, v)
	}
	return flat, nil
}

func withItems(header OrderSummaryView, lines []OrderItemView) OrderView {
	if lines == nil {
		lines = make([]OrderItemView, 0)
	}
	return OrderView{
		OrderID:    header.OrderID,
		MemberName: header.MemberName,
		OrderDate:  header.OrderDate,
		Status:     header.Status,
		Address:    header.Address,
		Items:      lines,
	}
}
