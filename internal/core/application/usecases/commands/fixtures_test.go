package commands_test

import (
	"testing"
	"time"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
	"shop/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newMember(t *testing.T, name string) *member.Member {
	t.Helper()
	m, err := member.NewMember(kernel.NewUUID(), name, kernel.NewAddress("Seoul", "1", "1111"))
	require.NoError(t, err)
	return m
}

func newBook(t *testing.T, stock int) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), "JPA1 BOOK", 10000, stock, item.Book{})
	require.NoError(t, err)
	return it
}

// storedOrder returns an order as GetForUpdate loads it: delivery and order items
// loaded, item handles unloaded. book has already lost count units of stock.
func storedOrder(t *testing.T, book *item.Item, count int) *order.Order {
	t.Helper()
	m := newMember(t, "userA")
	d, err := order.NewDelivery(kernel.NewUUID(), m.Address())
	require.NoError(t, err)
	oi, err := order.RestoreOrderItem(kernel.NewUUID(), kernel.NewRef[*item.Item](book.ID()), book.Price(), count)
	require.NoError(t, err)

	id := kernel.NewUUID()
	o, err := order.RestoreOrder(
		id,
		kernel.NewRef[*member.Member](m.ID()),
		kernel.LoadedRef(d.ID(), d),
		kernel.LoadedRef(id, []*order.OrderItem{oi}),
		time.Now(),
		order.Ordered,
	)
	require.NoError(t, err)
	return o
}
