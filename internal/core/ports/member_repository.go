// Package ports defines the repository and unit of work contracts of the shop domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"
)

// MemberRepository defines the persistence contract for member aggregates.
type MemberRepository interface {
	// Add persists a new member. A name that is already taken fails with
	// errs.ErrObjectAlreadyExists.
	Add(ctx context.Context, aggregate *member.Member) error

	// Update persists changes to an existing member.
	Update(ctx context.Context, aggregate *member.Member) error

	// Get retrieves a member by id. Fails with errs.ErrObjectNotFound.
	Get(ctx context.Context, id kernel.UUID) (*member.Member, error)

	// FindByName returns the members with exactly this name.
	FindByName(ctx context.Context, name string) ([]*member.Member, error)

	// FindAll returns every member ordered by name.
	FindAll(ctx context.Context) ([]*member.Member, error)
}
