package queries

import (
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderView is the nested order projection: the order header and its item lines.
// Address is the delivery address.
type OrderView struct {
	OrderID    kernel.UUID
	MemberName string
	OrderDate  time.Time
	Status     order.Status
	Address    kernel.Address
	Items      []OrderItemView
}

type OrderItemView struct {
	ItemName   string
	OrderPrice int
	Count      int
}

// OrderSummaryView is the order header without item lines.
type OrderSummaryView struct {
	OrderID    kernel.UUID
	MemberName string
	OrderDate  time.Time
	Status     order.Status
	Address    kernel.Address
}

// OrderFlatRow is one row of the flat order join: the order header repeated for each
// item line. Item is nil for an order without lines.
type OrderFlatRow struct {
	OrderID    kernel.UUID
	MemberName string
	OrderDate  time.Time
	Status     order.Status
	Address    kernel.Address
	Item       *OrderItemView
}

type MemberView struct {
	ID      kernel.UUID
	Name    string
	Address kernel.Address
}

type ItemView struct {
	ID            kernel.UUID
	Kind          item.Kind
	Name          string
	Price         int
	StockQuantity int
	Details       item.Details
}
