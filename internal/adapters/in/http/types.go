package http

import (
	"time"

	"github.com/google/uuid"
)

// Request and response bodies of the API document (openapi.yaml).

type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Created struct {
	ID uuid.UUID `json:"id"`
}

type Address struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

type NewMember struct {
	Name    string  `json:"name"`
	Address Address `json:"address"`
}

type MemberName struct {
	Name string `json:"name"`
}

type RenamedMember struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type Member struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	Address Address   `json:"address"`
}

type NewItem struct {
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Price         int    `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	Author        string `json:"author,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	Artist        string `json:"artist,omitempty"`
	Etc           string `json:"etc,omitempty"`
	Director      string `json:"director,omitempty"`
	Actor         string `json:"actor,omitempty"`
}

type Item struct {
	ID            uuid.UUID `json:"id"`
	Kind          string    `json:"kind"`
	Name          string    `json:"name"`
	Price         int       `json:"price"`
	StockQuantity int       `json:"stockQuantity"`
	Author        string    `json:"author,omitempty"`
	ISBN          string    `json:"isbn,omitempty"`
	Artist        string    `json:"artist,omitempty"`
	Etc           string    `json:"etc,omitempty"`
	Director      string    `json:"director,omitempty"`
	Actor         string    `json:"actor,omitempty"`
}

type NewOrder struct {
	MemberID uuid.UUID `json:"memberId"`
	ItemID   uuid.UUID `json:"itemId"`
	Count    int       `json:"count"`
}

type OrderItem struct {
	ItemName   string `json:"itemName"`
	OrderPrice int    `json:"orderPrice"`
	Count      int    `json:"count"`
}

type OrderSummary struct {
	OrderID    uuid.UUID `json:"orderId"`
	MemberName string    `json:"memberName"`
	OrderDate  time.Time `json:"orderDate"`
	Status     string    `json:"status"`
	Address    Address   `json:"address"`
}

type Order struct {
	OrderID    uuid.UUID   `json:"orderId"`
	MemberName string      `json:"memberName"`
	OrderDate  time.Time   `json:"orderDate"`
	Status     string      `json:"status"`
	Address    Address     `json:"address"`
	Items      []OrderItem `json:"items"`
}

// OrderFlatRow leaves the item fields out for an order without lines.
type OrderFlatRow struct {
	OrderID    uuid.UUID `json:"orderId"`
	MemberName string    `json:"memberName"`
	OrderDate  time.Time `json:"orderDate"`
	Status     string    `json:"status"`
	Address    Address   `json:"address"`
	ItemName   *string   `json:"itemName,omitempty"`
	OrderPrice *int      `json:"orderPrice,omitempty"`
	Count      *int      `json:"count,omitempty"`
}

type Delivery struct {
	ID      uuid.UUID `json:"id"`
	Address Address   `json:"address"`
	Status  string    `json:"status"`
}

type OrderEntityItem struct {
	ID         uuid.UUID `json:"id"`
	Item       Item      `json:"item"`
	OrderPrice int       `json:"orderPrice"`
	Count      int       `json:"count"`
	TotalPrice int       `json:"totalPrice"`
}

type OrderEntity struct {
	ID         uuid.UUID         `json:"id"`
	Member     Member            `json:"member"`
	Delivery   Delivery          `json:"delivery"`
	OrderItems []OrderEntityItem `json:"orderItems"`
	OrderDate  time.Time         `json:"orderDate"`
	Status     string            `json:"status"`
	TotalPrice int               `json:"totalPrice"`
}
