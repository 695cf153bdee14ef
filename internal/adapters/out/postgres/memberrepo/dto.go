// Package memberrepo provides the GORM persistence of member aggregates.
package memberrepo

import (
	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/member"

	"github.com/google/uuid"
)

// MemberDTO represents the members table. The unique index on name backs the
// duplicate member check under concurrent registration.
type MemberDTO struct {
	ID      uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name    string     `gorm:"type:varchar(100);not null;uniqueIndex"`
	Address AddressDTO `gorm:"embedded"`
}

func (MemberDTO) TableName() string {
	return "members"
}

// AddressDTO is the embedded address columns shared by members and deliveries.
type AddressDTO struct {
	City    string `gorm:"type:varchar(255)"`
	Street  string `gorm:"type:varchar(255)"`
	Zipcode string `gorm:"type:varchar(32)"`
}

func AddressFromDomain(a kernel.Address) AddressDTO {
	return AddressDTO{City: a.City(), Street: a.Street(), Zipcode: a.Zipcode()}
}

func (a AddressDTO) ToDomain() kernel.Address {
	return kernel.NewAddress(a.City, a.Street, a.Zipcode)
}

func fromDomain(m *member.Member) MemberDTO {
	return MemberDTO{
		ID:      m.ID().Bytes(),
		Name:    m.Name(),
		Address: AddressFromDomain(m.Address()),
	}
}

// ToDomain converts a row to a member. It is used by the order repository when members
// are joined into order queries.
func (dto MemberDTO) ToDomain() (*member.Member, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	return member.RestoreMember(id, dto.Name, dto.Address.ToDomain())
}
