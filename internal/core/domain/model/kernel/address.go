package kernel

import "strings"

// Address is the postal address of a member and, as a snapshot, of a delivery.
// It has no identity: two addresses are equal when all their parts are equal,
// so == can be used to compare them. Address is immutable; every copy is independent.
type Address struct {
	city    string
	street  string
	zipcode string
}

// NewAddress trims and stores the three address parts. Any part may be empty;
// registration forms only require the member name.
func NewAddress(city, street, zipcode string) Address {
	return Address{
		city:    strings.TrimSpace(city),
		street:  strings.TrimSpace(street),
		zipcode: strings.TrimSpace(zipcode),
	}
}

func (a Address) City() string {
	return a.city
}

func (a Address) Street() string {
	return a.street
}

func (a Address) Zipcode() string {
	return a.zipcode
}

// IsEmpty reports whether no part of the address is set.
func (a Address) IsEmpty() bool {
	return a == Address{}
}

// IsEqual compares two addresses by value.
func (a Address) IsEqual(other Address) bool {
	return a == other
}

// String renders the address as "city street zipcode", skipping empty parts.
func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.city, a.street, a.zipcode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}
