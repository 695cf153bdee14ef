package orderrepo

import (
	"time"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"

	"github.com/google/uuid"
)

const fetchJoinSQL = `
	SELECT
		o.id AS order_id,
		o.order_date,
		o.status AS order_status,
		m.id AS member_id,
		m.name AS member_name,
		m.city AS member_city,
		m.street AS member_street,
		m.zipcode AS member_zipcode,
		d.id AS delivery_id,
		d.city AS delivery_city,
		d.street AS delivery_street,
		d.zipcode AS delivery_zipcode,
		d.status AS delivery_status,
		oi.id AS order_item_id,
		oi.order_price,
		oi.count,
		i.id AS item_id,
		i.kind AS item_kind,
		i.name AS item_name,
		i.price AS item_price,
		i.stock_quantity AS item_stock_quantity,
		i.author AS item_author,
		i.isbn AS item_isbn,
		i.artist AS item_artist,
		i.etc AS item_etc,
		i.director AS item_director,
		i.actor AS item_actor
	FROM orders o
	JOIN members m ON m.id = o.member_id
	JOIN deliveries d ON d.id = o.delivery_id
	LEFT JOIN order_items oi ON oi.order_id = o.id
	LEFT JOIN items i ON i.id = oi.item_id
	ORDER BY o.order_date, o.id, oi.position
`

// fetchJoinRow is one row of fetchJoinSQL. Order item and item columns are null for an
// order without items.
type fetchJoinRow struct {
	OrderID         uuid.UUID
	OrderDate       time.Time
	OrderStatus     string
	MemberID        uuid.UUID
	MemberName      string
	MemberCity      string
	MemberStreet    string
	MemberZipcode   string
	DeliveryID      uuid.UUID
	DeliveryCity    string
	DeliveryStreet  string
	DeliveryZipcode string
	DeliveryStatus  string

	OrderItemID       *uuid.UUID
	OrderPrice        *int
	Count             *int
	ItemID            *uuid.UUID
	ItemKind          *string
	ItemName          *string
	ItemPrice         *int
	ItemStockQuantity *int
	ItemAuthor        *string
	ItemIsbn          *string
	ItemArtist        *string
	ItemEtc           *string
	ItemDirector      *string
	ItemActor         *string
}

// foldFetchJoinRows de-duplicates the repeated order columns, keeping first-seen order
// and the row order of the items.
func foldFetchJoinRows(rows []fetchJoinRow) []OrderDTO {
	index := make(map[uuid.UUID]int)
	dtos := make([]OrderDTO, 0)

	for _, row := range rows {
		i, ok := index[row.OrderID]
		if !ok {
			i = len(dtos)
			index[row.OrderID] = i
			dtos = append(dtos, OrderDTO{
				ID:         row.OrderID,
				MemberID:   row.MemberID,
				DeliveryID: row.DeliveryID,
				OrderDate:  row.OrderDate,
				Status:     row.OrderStatus,
				Member: memberrepo.MemberDTO{
					ID:   row.MemberID,
					Name: row.MemberName,
					Address: memberrepo.AddressDTO{
						City:    row.MemberCity,
						Street:  row.MemberStreet,
						Zipcode: row.MemberZipcode,
					},
				},
				Delivery: DeliveryDTO{
					ID: row.DeliveryID,
					Address: memberrepo.AddressDTO{
						City:    row.DeliveryCity,
						Street:  row.DeliveryStreet,
						Zipcode: row.DeliveryZipcode,
					},
					Status: row.DeliveryStatus,
				},
				OrderItems: make([]OrderItemDTO, 0),
			})
		}

		if row.OrderItemID == nil || row.ItemID == nil {
			continue
		}

		dtos[i].OrderItems = append(dtos[i].OrderItems, OrderItemDTO{
			ID:         *row.OrderItemID,
			OrderID:    row.OrderID,
			ItemID:     *row.ItemID,
			OrderPrice: deref(row.OrderPrice),
			Count:      deref(row.Count),
			Position:   len(dtos[i].OrderItems),
			Item: itemrepo.ItemDTO{
				ID:            *row.ItemID,
				Kind:          deref(row.ItemKind),
				Name:          deref(row.ItemName),
				Price:         deref(row.ItemPrice),
				StockQuantity: deref(row.ItemStockQuantity),
				Author:        deref(row.ItemAuthor),
				ISBN:          deref(row.ItemIsbn),
				Artist:        deref(row.ItemArtist),
				Etc:           deref(row.ItemEtc),
				Director:      deref(row.ItemDirector),
				Actor:         deref(row.ItemActor),
			},
		})
	}

	return dtos
}

func deref[T any](v *T) T {
	if v == nil {
		var zero T
		return zero
	}
	return *v
}
