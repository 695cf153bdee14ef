package item_test

import (
	"testing"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBook(t *testing.T, stock int) *item.Item {
	t.Helper()
	it, err := item.NewItem(kernel.NewUUID(), "JPA1 BOOK", 10000, stock, item.Book{Author: "kim", ISBN: "1111"})
	require.NoError(t, err)
	return it
}

func TestNewItem(t *testing.T) {
	t.Run("should create book", func(t *testing.T) {
		it := newBook(t, 100)

		require.NoError(t, it.Validate())
		assert.Equal(t, "JPA1 BOOK", it.Name())
		assert.Equal(t, 10000, it.Price())
		assert.Equal(t, 100, it.StockQuantity())
		assert.Equal(t, item.BookKind, it.Kind())
		assert.Equal(t, item.Book{Author: "kim", ISBN: "1111"}, it.Details())
	})

	t.Run("should create album and movie", func(t *testing.T) {
		album, err := item.NewItem(kernel.NewUUID(), "Album", 1, 1, item.Album{Artist: "a"})
		require.NoError(t, err)
		assert.Equal(t, item.AlbumKind, album.Kind())

		movie, err := item.NewItem(kernel.NewUUID(), "Movie", 1, 1, item.Movie{Director: "d"})
		require.NoError(t, err)
		assert.Equal(t, item.MovieKind, movie.Kind())
	})

	t.Run("should reject invalid values", func(t *testing.T) {
		it, err := item.NewItem(kernel.NewUUID(), "", -1, -1, nil)

		assert.Nil(t, it)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "price")
		assert.Contains(t, err.Error(), "stock quantity")
		assert.Contains(t, err.Error(), "item details")
	})
}

func TestItem_RemoveStock(t *testing.T) {
	t.Run("should decrement stock", func(t *testing.T) {
		it := newBook(t, 5)

		require.NoError(t, it.RemoveStock(5))
		assert.Equal(t, 0, it.StockQuantity())
	})

	t.Run("should fail when stock would go negative", func(t *testing.T) {
		it := newBook(t, 5)

		err := it.RemoveStock(6)

		require.ErrorIs(t, err, item.ErrInsufficientStock)
		var stockErr *item.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)
		assert.Equal(t, 5, it.StockQuantity())
	})

	t.Run("should reject non positive quantity", func(t *testing.T) {
		it := newBook(t, 5)

		require.ErrorIs(t, it.RemoveStock(0), errs.ErrValueIsInvalid)
		assert.Equal(t, 5, it.StockQuantity())
	})
}

func TestItem_AddStock(t *testing.T) {
	it := newBook(t, 5)

	require.NoError(t, it.AddStock(3))
	assert.Equal(t, 8, it.StockQuantity())
	require.ErrorIs(t, it.AddStock(-1), errs.ErrValueIsInvalid)
}

func TestKind(t *testing.T) {
	for _, k := range []item.Kind{item.BookKind, item.AlbumKind, item.MovieKind} {
		parsed, err := item.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)
	}

	_, err := item.ParseKind("UNKNOWN")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Error(t, item.UnknownKind.Validate())
	assert.Equal(t, "UNKNOWN", item.Kind(42).String())
}
