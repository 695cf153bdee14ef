// Package itemrepo provides the GORM persistence of catalog items.
//
// All kinds share the items table. The kind column discriminates the row and only the
// detail columns of that kind are filled.
package itemrepo

import (
	"fmt"

	"shop/internal/core/domain/model/item"
	"shop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// ItemDTO represents the items table. The check constraint mirrors the one created by
// the SQL migrations so both schemas refuse negative stock.
type ItemDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind          string    `gorm:"type:varchar(16);not null;index"`
	Name          string    `gorm:"type:varchar(255);not null"`
	Price         int       `gorm:"type:int;not null"`
	StockQuantity int       `gorm:"type:int;not null;check:chk_items_stock_quantity,stock_quantity >= 0"`

	Author string `gorm:"type:varchar(255)"`
	ISBN   string `gorm:"column:isbn;type:varchar(32)"`

	Artist string `gorm:"type:varchar(255)"`
	Etc    string `gorm:"type:varchar(255)"`

	Director string `gorm:"type:varchar(255)"`
	Actor    string `gorm:"type:varchar(255)"`
}

func (ItemDTO) TableName() string {
	return "items"
}

func fromDomain(it *item.Item) ItemDTO {
	dto := ItemDTO{
		ID:            it.ID().Bytes(),
		Kind:          it.Kind().String(),
		Name:          it.Name(),
		Price:         it.Price(),
		StockQuantity: it.StockQuantity(),
	}

	switch d := it.Details().(type) {
	case item.Book:
		dto.Author, dto.ISBN = d.Author, d.ISBN
	case item.Album:
		dto.Artist, dto.Etc = d.Artist, d.Etc
	case item.Movie:
		dto.Director, dto.Actor = d.Director, d.Actor
	}

	return dto
}

// ToDomain converts a row to an item. It is used by the order repository when items
// are joined into order queries.
func (dto ItemDTO) ToDomain() (*item.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	kind, err := item.ParseKind(dto.Kind)
	if err != nil {
		return nil, err
	}

	var details item.Details
	switch kind {
	case item.BookKind:
		details = item.Book{Author: dto.Author, ISBN: dto.ISBN}
	case item.AlbumKind:
		details = item.Album{Artist: dto.Artist, Etc: dto.Etc}
	case item.MovieKind:
		details = item.Movie{Director: dto.Director, Actor: dto.Actor}
	default:
		return nil, fmt.Errorf("item %s: unsupported kind %s", id, kind)
	}

	return item.RestoreItem(id, dto.Name, dto.Price, dto.StockQuantity, details)
}
