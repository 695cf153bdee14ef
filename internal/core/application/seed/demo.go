// Package seed loads the demo data set: two members with one order of two books each.
package seed

import (
	"context"
	"fmt"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// Demo holds what the demo data set created.
type Demo struct {
	Members []*member.Member
	Items   []*item.Item
	Orders  []*order.Order
}

type bookLine struct {
	name  string
	price int
	count int
}

type memberOrder struct {
	name    string
	address kernel.Address
	books   []bookLine
}

var demoOrders = []memberOrder{
	{
		name:    "userA",
		address: kernel.NewAddress("Seoul", "1", "1111"),
		books: []bookLine{
			{name: "JPA1 BOOK", price: 10000, count: 1},
			{name: "JPA2 BOOK", price: 20000, count: 2},
		},
	},
	{
		name:    "userB",
		address: kernel.NewAddress("Busan", "2", "2222"),
		books: []bookLine{
			{name: "SPRING1 BOOK", price: 20000, count: 3},
			{name: "SPRING2 BOOK", price: 40000, count: 4},
		},
	},
}

// LoadDemo writes the demo data in one transaction. Every book starts with a stock of
// 100 and the orders are placed one second apart starting at orderDate.
func LoadDemo(ctx context.Context, factory ports.UnitOfWorkFactory, orderDate time.Time) (*Demo, error) {
	uow := factory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback(ctx) //nolint:errcheck // no-op after commit

	demo := &Demo{}
	placer := services.NewOrderPlacer()

	for i, mo := range demoOrders {
		m, err := member.NewMember(kernel.NewUUID(), mo.name, mo.address)
		if err != nil {
			return nil, err
		}
		if err = uow.MemberRepository().Add(ctx, m); err != nil {
			return nil, fmt.Errorf("add member %s: %w", mo.name, err)
		}
		demo.Members = append(demo.Members, m)

		lines := make([]services.Line, 0, len(mo.books))
		for _, b := range mo.books {
			book, err := item.NewItem(kernel.NewUUID(), b.name, b.price, 100, item.Book{})
			if err != nil {
				return nil, err
			}
			if err = uow.ItemRepository().Add(ctx, book); err != nil {
				return nil, fmt.Errorf("add item %s: %w", b.name, err)
			}
			demo.Items = append(demo.Items, book)
			lines = append(lines, services.Line{Item: book, Count: b.count})
		}

		o, err := placer.Place(kernel.NewUUID(), m, orderDate.Add(time.Duration(i)*time.Second), lines...)
		if err != nil {
			return nil, err
		}
		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return nil, fmt.Errorf("add order: %w", err)
		}
		for _, line := range lines {
			if err = uow.ItemRepository().Update(ctx, line.Item); err != nil {
				return nil, err
			}
		}
		demo.Orders = append(demo.Orders, o)
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}
	return demo, nil
}
