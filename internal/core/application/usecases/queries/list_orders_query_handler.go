package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/ports"

	"gorm.io/gorm"
)

const (
	DefaultBatchFetchSize = 100
	DefaultLazyListLimit  = 1000
)

// ReadSettings tunes the entity based strategies.
type ReadSettings struct {
	// BatchFetchSize is the number of orders whose items are loaded by one IN query.
	BatchFetchSize int

	// LazyListLimit caps the number of orders the lazy strategy walks, since every
	// order costs several extra lookups.
	LazyListLimit int
}

func (s ReadSettings) withDefaults() ReadSettings {
	if s.BatchFetchSize <= 0 {
		s.BatchFetchSize = DefaultBatchFetchSize
	}
	if s.LazyListLimit <= 0 {
		s.LazyListLimit = DefaultLazyListLimit
	}
	return s
}

// ListOrdersQueryHandler reads order lists through the strategy named by the query.
// LazyLoad, FetchJoin and BatchFetch load order entities through a read-only unit of
// work and project them afterwards; DirectPerOrder, Direct and Flat select the view
// columns with raw SQL.
type ListOrdersQueryHandler struct {
	uowFactory ReadUoWFactory
	db         *gorm.DB
	settings   ReadSettings
}

func NewListOrdersQueryHandler(uowFactory ReadUoWFactory, db *gorm.DB, settings ReadSettings) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{
		uowFactory: uowFactory,
		db:         db,
		settings:   settings.withDefaults(),
	}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	switch query.Strategy() {
	case LazyLoad:
		return h.lazyLoad(ctx, query.Search())
	case FetchJoin:
		return h.fetchJoin(ctx)
	case BatchFetch:
		return h.batchFetch(ctx, query.page)
	case DirectPerOrder:
		return h.directPerOrder(ctx, query.Search(), query.page)
	case Direct:
		return h.direct(ctx, query.Search(), query.page)
	case Flat:
		return h.flat(ctx, query.Search())
	default:
		return nil, query.Strategy().Validate()
	}
}

func (h ListOrdersQueryHandler) lazyLoad(ctx context.Context, search ports.OrderSearch) ([]OrderView, error) {
	var views []OrderView
	err := inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
		orders, err := loadLazyOrders(ctx, uow, search, h.settings.LazyListLimit)
		if err != nil {
			return err
		}
		views, err = orderViewsOf(orders)
		return err
	})
	return views, err
}

func (h ListOrdersQueryHandler) fetchJoin(ctx context.Context) ([]OrderView, error) {
	var views []OrderView
	err := inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
		orders, err := uow.OrderRepository().FindAllWithItems(ctx)
		if err != nil {
			return err
		}
		views, err = orderViewsOf(orders)
		return err
	})
	return views, err
}

// batchFetch pages the to-one join and then loads the order items of BatchFetchSize
// orders per statement.
func (h ListOrdersQueryHandler) batchFetch(ctx context.Context, page *ports.Page) ([]OrderView, error) {
	var views []OrderView
	err := inReadOnlyUoW(ctx, h.uowFactory, func(uow ReadUoW) error {
		orderRepo := uow.OrderRepository()

		orders, err := orderRepo.FindAllWithMemberDelivery(ctx, page)
		if err != nil {
			return err
		}

		for start := 0; start < len(orders); start += h.settings.BatchFetchSize {
			batch := orders[start:min(start+h.settings.BatchFetchSize, len(orders))]
			if err = resolveOrderItemsBatch(ctx, orderRepo, batch); err != nil {
				return err
			}
		}

		views, err = orderViewsOf(orders)
		return err
	})
	return views, err
}

func resolveOrderItemsBatch(ctx context.Context, repo ports.OrderRepository, batch []*order.Order) error {
	ids := make([]kernel.UUID, 0, len(batch))
	for _, o := range batch {
		ids = append(ids, o.ID())
	}

	orderItems, err := repo.FindOrderItemsWithItem(ctx, ids)
	if err != nil {
		return err
	}

	for _, o := range batch {
		lines := orderItems[o.ID()]
		if lines == nil {
			lines = make([]*order.OrderItem, 0)
		}
		if err = o.ResolveOrderItems(lines); err != nil {
			return err
		}
	}
	return nil
}

func (h ListOrdersQueryHandler) directPerOrder(ctx context.Context, search ports.OrderSearch, page *ports.Page) ([]OrderView, error) {
	var views []OrderView
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		headers, err := selectOrderHeaders(tx, search, page)
		if err != nil {
			return err
		}

		views = make([]OrderView, 0, len(headers))
		for _, header := range headers {
			lines, err := selectOrderItemsOf(tx, header.OrderID)
			if err != nil {
				return err
			}
			views = append(views, withItems(header, lines))
		}
		return nil
	})
	return views, err
}

func (h ListOrdersQueryHandler) direct(ctx context.Context, search ports.OrderSearch, page *ports.Page) ([]OrderView, error) {
	var views []OrderView
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		headers, err := selectOrderHeaders(tx, search, page)
		if err != nil {
			return err
		}

		ids := make([]kernel.UUID, 0, len(headers))
		for _, header := range headers {
			ids = append(ids, header.OrderID)
		}

		lines, err := selectOrderItems(tx, ids)
		if err != nil {
			return err
		}

		views = make([]OrderView, 0, len(headers))
		for _, header := range headers {
			views = append(views, withItems(header, lines[header.OrderID]))
		}
		return nil
	})
	return views, err
}

func (h ListOrdersQueryHandler) flat(ctx context.Context, search ports.OrderSearch) ([]OrderView, error) {
	var rows []OrderFlatRow
	err := readOnly(ctx, h.db, func(tx *gorm.DB) error {
		var err error
		rows, err = selectOrderFlatRows(tx, search)
		return err
	})
	if err != nil {
		return nil, err
	}

	return RegroupOrderRows(rows), nil
}

// loadLazyOrders lists the bare orders and then resolves each handle with its own
// lookup.
func loadLazyOrders(ctx context.Context, uow ReadUoW, search ports.OrderSearch, limit int) ([]*order.Order, error) {
	orders, err := uow.OrderRepository().FindAll(ctx, search, limit)
	if err != nil {
		return nil, err
	}

	if err = newLazyLoader(uow).loadGraphs(ctx, orders); err != nil {
		return nil, err
	}
	return orders, nil
}
