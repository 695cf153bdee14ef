// Package queries contains the read side of the shop: order listings in every retrieval
// strategy, simple order summaries, members and items.
//
// Queries never change state. Handlers that go through repositories run in a read-only
// unit of work; handlers that project straight into views run raw SQL in a read-only
// transaction on the *gorm.DB.
package queries

import (
	"context"

	"shop/internal/core/ports"
)

type (
	// ReadUoW is the part of the unit of work the read side needs.
	ReadUoW interface {
		BeginReadOnly(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error

		MemberRepository() ports.MemberRepository
		ItemRepository() ports.ItemRepository
		OrderRepository() ports.OrderRepository
	}

	ReadUoWFactory interface {
		Create() ReadUoW
	}
)

// inReadOnlyUoW runs fn inside a read-only transaction of a fresh unit of work.
func inReadOnlyUoW(ctx context.Context, factory ReadUoWFactory, fn func(uow ReadUoW) error) error {
	uow := factory.Create()
	if err := uow.BeginReadOnly(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(uow); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
