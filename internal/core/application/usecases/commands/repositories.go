// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	MemberRepoFactory interface {
		MemberRepository() ports.MemberRepository
	}

	ItemRepoFactory interface {
		ItemRepository() ports.ItemRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MemberUoW manages transactions for member-only operations.
	MemberUoW interface {
		TxManager
		MemberRepoFactory
	}

	MemberUoWFactory interface {
		Create() MemberUoW
	}

	// ItemUoW manages transactions for catalog-only operations.
	ItemUoW interface {
		TxManager
		ItemRepoFactory
	}

	ItemUoWFactory interface {
		Create() ItemUoW
	}

	// OrderUoW manages transactions that only touch order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// UoW manages transactions across members, items and orders. Placing and
	// canceling orders change item stock and order state together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   itemRepo := uow.ItemRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		MemberRepoFactory
		ItemRepoFactory
		OrderRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
