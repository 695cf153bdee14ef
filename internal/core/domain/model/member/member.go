package member

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

// MaxNameLength bounds member names to the width of the members.name column.
const MaxNameLength = 100

var ErrMemberIsNotConstructed = errors.New("Member must be created via NewMember or RestoreMember constructor")

// Member is a registered customer.
//
// Invariants:
//   - Must have a valid unique identifier
//   - Name is required and at most MaxNameLength characters
type Member struct {
	id      kernel.UUID
	name    string
	address kernel.Address

	guard guard.ConstructorGuard
}

// NewMember registers a new member. Name uniqueness is checked by the
// registration use case and enforced by the storage layer.
func NewMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	m := &Member{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMember rebuilds a member from persistence.
func RestoreMember(id kernel.UUID, name string, address kernel.Address) (*Member, error) {
	return NewMember(id, name, address)
}

func (m *Member) Validate() error {
	if m == nil {
		return ErrMemberIsNotConstructed
	}
	return m.guard.Validate(ErrMemberIsNotConstructed)
}

func (m *Member) IsEqual(other *Member) bool {
	return other != nil && m.id.IsEqual(other.id)
}

func (m *Member) ID() kernel.UUID {
	return m.id
}

func (m *Member) Name() string {
	return m.name
}

func (m *Member) Address() kernel.Address {
	return m.address
}

// ChangeName renames the member.
func (m *Member) ChangeName(name string) error {
	return m.setName(name)
}

func (m *Member) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Member) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("member name")
	}
	if n := len([]rune(name)); n > MaxNameLength {
		return errs.NewValueIsOutOfRangeError("member name length", n, 1, MaxNameLength)
	}
	m.name = name
	return nil
}
