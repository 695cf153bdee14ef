package http

import (
	"shop/internal/core/application/usecases/queries"
	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
)

func addressOf(a kernel.Address) Address {
	return Address{City: a.City(), Street: a.Street(), Zipcode: a.Zipcode()}
}

func (a Address) toDomain() kernel.Address {
	return kernel.NewAddress(a.City, a.Street, a.Zipcode)
}

// toDomain builds the kind specific details of a new item.
func (n NewItem) toDomain() (item.Details, error) {
	kind, err := item.ParseKind(n.Kind)
	if err != nil {
		return nil, err
	}

	switch kind {
	case item.AlbumKind:
		return item.Album{Artist: n.Artist, Etc: n.Etc}, nil
	case item.MovieKind:
		return item.Movie{Director: n.Director, Actor: n.Actor}, nil
	default:
		return item.Book{Author: n.Author, ISBN: n.ISBN}, nil
	}
}

func itemOf(id kernel.UUID, kind item.Kind, name string, price, stock int, details item.Details) Item {
	resp := Item{
		ID:            id.Bytes(),
		Kind:          kind.String(),
		Name:          name,
		Price:         price,
		StockQuantity: stock,
	}

	switch d := details.(type) {
	case item.Book:
		resp.Author, resp.ISBN = d.Author, d.ISBN
	case item.Album:
		resp.Artist, resp.Etc = d.Artist, d.Etc
	case item.Movie:
		resp.Director, resp.Actor = d.Director, d.Actor
	}

	return resp
}

func itemsOf(views []queries.ItemView) []Item {
	resp := make([]Item, 0, len(views))
	for _, v := range views {
		resp = append(resp, itemOf(v.ID, v.Kind, v.Name, v.Price, v.StockQuantity, v.Details))
	}
	return resp
}

func membersOf(views []queries.MemberView) []Member {
	resp := make([]Member, 0, len(views))
	for _, v := range views {
		resp = append(resp, Member{ID: v.ID.Bytes(), Name: v.Name, Address: addressOf(v.Address)})
	}
	return resp
}

func ordersOf(views []queries.OrderView) []Order {
	resp := make([]Order, 0, len(views))
	for _, v := range views {
		lines := make([]OrderItem, 0, len(v.Items))
		for _, it := range v.Items {
			lines = append(lines, OrderItem{ItemName: it.ItemName, OrderPrice: it.OrderPrice, Count: it.Count})
		}
		resp = append(resp, Order{
			OrderID:    v.OrderID.Bytes(),
			MemberName: v.MemberName,
			OrderDate:  v.OrderDate,
			Status:     v.Status.String(),
			Address:    addressOf(v.Address),
			Items:      lines,
		})
	}
	return resp
}

func orderSummariesOf(views []queries.OrderSummaryView) []OrderSummary {
	resp := make([]OrderSummary, 0, len(views))
	for _, v := range views {
		resp = append(resp, OrderSummary{
			OrderID:    v.OrderID.Bytes(),
			MemberName: v.MemberName,
			OrderDate:  v.OrderDate,
			Status:     v.Status.String(),
			Address:    addressOf(v.Address),
		})
	}
	return resp
}

func orderRowsOf(rows []queries.OrderFlatRow) []OrderFlatRow {
	resp := make([]OrderFlatRow, 0, len(rows))
	for _, r := range rows {
		row := OrderFlatRow{
			OrderID:    r.OrderID.Bytes(),
			MemberName: r.MemberName,
			OrderDate:  r.OrderDate,
			Status:     r.Status.String(),
			Address:    addressOf(r.Address),
		}
		if r.Item != nil {
			line := *r.Item
			row.ItemName, row.OrderPrice, row.Count = &line.ItemName, &line.OrderPrice, &line.Count
		}
		resp = append(resp, row)
	}
	return resp
}

// orderEntitiesOf renders fully resolved order graphs. Every handle must be loaded.
func orderEntitiesOf(orders []*order.Order) ([]OrderEntity, error) {
	resp := make([]OrderEntity, 0, len(orders))
	for _, o := range orders {
		entity, err := orderEntityOf(o)
		if err != nil {
			return nil, err
		}
		resp = append(resp, entity)
	}
	return resp, nil
}

func orderEntityOf(o *order.Order) (OrderEntity, error) {
	m, err := o.Member().Get()
	if err != nil {
		return OrderEntity{}, err
	}
	d, err := o.Delivery().Get()
	if err != nil {
		return OrderEntity{}, err
	}
	orderItems, err := o.OrderItems().Get()
	if err != nil {
		return OrderEntity{}, err
	}
	total, err := o.TotalPrice()
	if err != nil {
		return OrderEntity{}, err
	}

	lines := make([]OrderEntityItem, 0, len(orderItems))
	for _, oi := range orderItems {
		it, err := oi.Item().Get()
		if err != nil {
			return OrderEntity{}, err
		}
		lines = append(lines, OrderEntityItem{
			ID:         oi.ID().Bytes(),
			Item:       itemOf(it.ID(), it.Kind(), it.Name(), it.Price(), it.StockQuantity(), it.Details()),
			OrderPrice: oi.OrderPrice(),
			Count:      oi.Count(),
			TotalPrice: oi.TotalPrice(),
		})
	}

	return OrderEntity{
		ID:         o.ID().Bytes(),
		Member:     memberOf(m),
		Delivery:   Delivery{ID: d.ID().Bytes(), Address: addressOf(d.Address()), Status: d.Status().String()},
		OrderItems: lines,
		OrderDate:  o.OrderDate(),
		Status:     o.Status().String(),
		TotalPrice: total,
	}, nil
}

func memberOf(m *member.Member) Member {
	return Member{ID: m.ID().Bytes(), Name: m.Name(), Address: addressOf(m.Address())}
}
