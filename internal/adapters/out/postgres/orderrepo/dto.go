// Package orderrepo provides data transfer objects and mapping functions for order
// persistence. Orders own their delivery and their order items; members and items are
// referenced by foreign key and only joined in when a query asks for them.
package orderrepo

import (
	"time"

	"shop/internal/adapters/out/postgres/itemrepo"
	"shop/internal/adapters/out/postgres/memberrepo"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the orders table. Member and Delivery are only filled when the
// query joins them.
type OrderDTO struct {
	ID         uuid.UUID            `gorm:"type:uuid;primaryKey"`
	MemberID   uuid.UUID            `gorm:"type:uuid;not null;index"`
	Member     memberrepo.MemberDTO `gorm:"foreignKey:MemberID"`
	DeliveryID uuid.UUID            `gorm:"type:uuid;not null;uniqueIndex"`
	Delivery   DeliveryDTO          `gorm:"foreignKey:DeliveryID"`
	OrderDate  time.Time            `gorm:"not null;index"`
	Status     string               `gorm:"type:varchar(16);not null;index"`
	OrderItems []OrderItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type DeliveryDTO struct {
	ID      uuid.UUID             `gorm:"type:uuid;primaryKey"`
	Address memberrepo.AddressDTO `gorm:"embedded"`
	Status  string                `gorm:"type:varchar(16);not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

// OrderItemDTO represents one order line. Position keeps the insertion order of the
// lines within their order.
type OrderItemDTO struct {
	ID         uuid.UUID        `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID        `gorm:"type:uuid;not null;index"`
	ItemID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	Item       itemrepo.ItemDTO `gorm:"foreignKey:ItemID"`
	OrderPrice int              `gorm:"type:int;not null"`
	Count      int              `gorm:"type:int;not null"`
	Position   int              `gorm:"type:int;not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func deliveryFromDomain(d *order.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:      d.ID().Bytes(),
		Address: memberrepo.AddressFromDomain(d.Address()),
		Status:  d.Status().String(),
	}
}

func orderItemsFromDomain(orderID uuid.UUID, items []*order.OrderItem) []OrderItemDTO {
	dtos := make([]OrderItemDTO, 0, len(items))
	for i, oi := range items {
		dtos = append(dtos, OrderItemDTO{
			ID:         oi.ID().Bytes(),
			OrderID:    orderID,
			ItemID:     oi.Item().ID().Bytes(),
			OrderPrice: oi.OrderPrice(),
			Count:      oi.Count(),
			Position:   i,
		})
	}
	return dtos
}

// fromDomain maps the order columns. Associations are written separately.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Bytes(),
		MemberID:   o.Member().ID().Bytes(),
		DeliveryID: o.Delivery().ID().Bytes(),
		OrderDate:  o.OrderDate(),
		Status:     o.Status().String(),
	}
}

func (dto DeliveryDTO) toDomain() (*order.Delivery, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseDeliveryStatus(dto.Status)
	if err != nil {
		return nil, err
	}
	return order.RestoreDelivery(id, dto.Address.ToDomain(), status)
}

// toDomain converts an order line. withItem tells whether the Item field was joined in.
func (dto OrderItemDTO) toDomain(withItem bool) (*order.OrderItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	itemID, err := kernel.UUIDFromBytes(dto.ItemID[:])
	if err != nil {
		return nil, err
	}

	ref := kernel.NewRef[*item.Item](itemID)
	if withItem {
		it, itemErr := dto.Item.ToDomain()
		if itemErr != nil {
			return nil, itemErr
		}
		ref = ref.Resolve(it)
	}

	return order.RestoreOrderItem(id, ref, dto.OrderPrice, dto.Count)
}

func orderItemsToDomain(dtos []OrderItemDTO, withItem bool) ([]*order.OrderItem, error) {
	items := make([]*order.OrderItem, 0, len(dtos))
	for _, dto := range dtos {
		oi, err := dto.toDomain(withItem)
		if err != nil {
			return nil, err
		}
		items = append(items, oi)
	}
	return items, nil
}

// loadedRelations tells toDomain which associations of the DTO were loaded.
type loadedRelations struct {
	member     bool
	delivery   bool
	orderItems bool
	items      bool
}

func toDomain(dto OrderDTO, loaded loadedRelations) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	memberID, err := kernel.UUIDFromBytes(dto.MemberID[:])
	if err != nil {
		return nil, err
	}
	deliveryID, err := kernel.UUIDFromBytes(dto.DeliveryID[:])
	if err != nil {
		return nil, err
	}
	status, err := order.ParseStatus(dto.Status)
	if err != nil {
		return nil, err
	}

	memberRef := kernel.NewRef[*member.Member](memberID)
	if loaded.member {
		m, memberErr := dto.Member.ToDomain()
		if memberErr != nil {
			return nil, memberErr
		}
		memberRef = memberRef.Resolve(m)
	}

	deliveryRef := kernel.NewRef[*order.Delivery](deliveryID)
	if loaded.delivery {
		d, deliveryErr := dto.Delivery.toDomain()
		if deliveryErr != nil {
			return nil, deliveryErr
		}
		deliveryRef = deliveryRef.Resolve(d)
	}

	itemsRef := kernel.NewRef[[]*order.OrderItem](id)
	if loaded.orderItems {
		items, itemsErr := orderItemsToDomain(dto.OrderItems, loaded.items)
		if itemsErr != nil {
			return nil, itemsErr
		}
		itemsRef = itemsRef.Resolve(items)
	}

	return order.RestoreOrder(id, memberRef, deliveryRef, itemsRef, dto.OrderDate, status)
}
