package orderrepo

import (
	"context"
	"errors"

	"shop/internal/core/application/ordersearch"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its delivery and order items. The delivery and order
// items handles must be loaded. It has to run inside a transaction to be atomic.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	d, err := aggregate.Delivery().Get()
	if err != nil {
		return err
	}
	items, err := aggregate.OrderItems().Get()
	if err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)

	deliveryDTO := deliveryFromDomain(d)
	if err = tx.Create(&deliveryDTO).Error; err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err = tx.Omit(clause.Associations).Create(&dto).Error; err != nil {
		return err
	}

	if itemDTOs := orderItemsFromDomain(dto.ID, items); len(itemDTOs) > 0 {
		if err = tx.Omit(clause.Associations).Create(&itemDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the order status and, when the delivery handle is loaded, the delivery
// status. Order items never change after placement.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	tx := r.db.WithContext(ctx)

	dto := fromDomain(aggregate)
	result := tx.Model(&OrderDTO{}).Where("id = ?", dto.ID).Omit(clause.Associations).Select("*").Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	if aggregate.Delivery().IsLoaded() {
		d, err := aggregate.Delivery().Get()
		if err != nil {
			return err
		}
		deliveryDTO := deliveryFromDomain(d)
		result = tx.Model(&DeliveryDTO{}).Where("id = ?", deliveryDTO.ID).Select("*").Updates(&deliveryDTO)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return errs.NewObjectNotFoundError("delivery", d.ID().String())
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetForUpdate locks the order row with SELECT ... FOR UPDATE OF orders and loads the
// delivery in the same statement, then the order items in a second one.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	tx := r.db.WithContext(ctx)

	var dto OrderDTO
	err := tx.
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate, Table: clause.Table{Name: "orders"}}).
		InnerJoins("Delivery").
		First(&dto, "orders.id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	if err = tx.Where("order_id = ?", dto.ID).Order("position").Find(&dto.OrderItems).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, loadedRelations{delivery: true, orderItems: true})
}

// FindAll loads only the order rows. The members join is there for the name filter.
func (r *GormOrderRepository) FindAll(ctx context.Context, search ports.OrderSearch, limit int) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Table("orders AS o").
		Select("o.id, o.member_id, o.delivery_id, o.order_date, o.status").
		Joins("JOIN members m ON m.id = o.member_id").
		Scopes(ordersearch.Scope(search)).
		Order("o.order_date").
		Order("o.id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	return toDomainList(dtos, loadedRelations{})
}

// FindAllWithItems runs one four table join. Order rows repeat once per order item and
// are folded back into one order each. Orders without items come from the outer join
// with null item columns.
func (r *GormOrderRepository) FindAllWithItems(ctx context.Context) ([]*order.Order, error) {
	var rows []fetchJoinRow
	if err := r.db.WithContext(ctx).Raw(fetchJoinSQL).Scan(&rows).Error; err != nil {
		return nil, err
	}

	dtos := foldFetchJoinRows(rows)
	return toDomainList(dtos, loadedRelations{member: true, delivery: true, orderItems: true, items: true})
}

// FindAllWithMemberDelivery joins the to-one relations only, so paging applies to
// orders and never cuts an order's items.
func (r *GormOrderRepository) FindAllWithMemberDelivery(ctx context.Context, page *ports.Page) ([]*order.Order, error) {
	q := r.db.WithContext(ctx).
		InnerJoins("Member").
		InnerJoins("Delivery").
		Order("orders.order_date").
		Order("orders.id")
	if page != nil {
		q = q.Offset(page.Offset).Limit(page.Limit)
	}

	var dtos []OrderDTO
	if err := q.Find(&dtos).Error; err != nil {
		return nil, err
	}

	return toDomainList(dtos, loadedRelations{member: true, delivery: true})
}

// FindOrderItemsWithItem loads the order items of many orders with one IN query.
// Orders without items are absent from the result.
func (r *GormOrderRepository) FindOrderItemsWithItem(
	ctx context.Context,
	orderIDs []kernel.UUID,
) (map[kernel.UUID][]*order.OrderItem, error) {
	result := make(map[kernel.UUID][]*order.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	ids := make([]uuid.UUID, 0, len(orderIDs))
	for _, id := range orderIDs {
		ids = append(ids, id.Bytes())
	}

	var dtos []OrderItemDTO
	err := r.db.WithContext(ctx).
		Joins("Item").
		Where("order_items.order_id IN ?", ids).
		Order("order_items.order_id").
		Order("order_items.position").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	for _, dto := range dtos {
		orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
		if err != nil {
			return nil, err
		}
		oi, err := dto.toDomain(true)
		if err != nil {
			return nil, err
		}
		result[orderID] = append(result[orderID], oi)
	}

	return result, nil
}

func (r *GormOrderRepository) GetDelivery(ctx context.Context, id kernel.UUID) (*order.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto DeliveryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery", id.String())
		}
		return nil, err
	}

	return dto.toDomain()
}

func (r *GormOrderRepository) GetOrderItems(ctx context.Context, orderID kernel.UUID) ([]*order.OrderItem, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).Where("order_id = ?", orderID.Bytes()).Order("position").Find(&dtos).Error; err != nil {
		return nil, err
	}

	return orderItemsToDomain(dtos, false)
}

func toDomainList(dtos []OrderDTO, loaded loadedRelations) ([]*order.Order, error) {
	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto, loaded)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}
