package kernel

import (
	"errors"
	"fmt"
)

// ErrRefIsNotLoaded is returned when an unloaded Ref is dereferenced. It signals a
// missing repository call, never bad input, so it wraps none of the errs sentinels.
var ErrRefIsNotLoaded = errors.New("reference must be loaded before it is dereferenced")

// Ref is a load-on-demand handle to a related entity or collection.
// A Ref is either Loaded, holding the resolved value, or Unloaded, holding only the
// identifier needed to fetch it. Get never performs I/O: resolving an unloaded Ref
// is an explicit repository call followed by Resolve.
//
// For collections the identifier is the owner's id (the foreign key used to look the
// collection up).
//
// Example:
//
//	ref := kernel.NewRef[*member.Member](memberID)
//	m, err := memberRepo.Get(ctx, ref.ID())
//	if err != nil {
//	    return err
//	}
//	ref = ref.Resolve(m)
type Ref[T any] struct {
	id     UUID
	value  T
	loaded bool
}

// NewRef returns an unloaded handle for id.
func NewRef[T any](id UUID) Ref[T] {
	return Ref[T]{id: id}
}

// LoadedRef returns a handle that already holds value.
func LoadedRef[T any](id UUID, value T) Ref[T] {
	return Ref[T]{id: id, value: value, loaded: true}
}

// ID returns the identifier of the referenced entity.
func (r Ref[T]) ID() UUID {
	return r.id
}

func (r Ref[T]) IsLoaded() bool {
	return r.loaded
}

// Get returns the resolved value or ErrRefIsNotLoaded.
func (r Ref[T]) Get() (T, error) {
	if !r.loaded {
		var zero T
		return zero, fmt.Errorf("%w: %s", ErrRefIsNotLoaded, r.id)
	}
	return r.value, nil
}

// Resolve returns a loaded copy of the handle holding value.
func (r Ref[T]) Resolve(value T) Ref[T] {
	return Ref[T]{id: r.id, value: value, loaded: true}
}

// Validate checks the handle identifier.
func (r Ref[T]) Validate() error {
	return r.id.Validate()
}
