package item

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Kind discriminates item subtypes. It is stored in the items.kind column.
type Kind int

const (
	UnknownKind Kind = iota
	BookKind
	AlbumKind
	MovieKind
)

func getKindStrings() map[Kind]string {
	return map[Kind]string{
		UnknownKind: "UNKNOWN",
		BookKind:    "BOOK",
		AlbumKind:   "ALBUM",
		MovieKind:   "MOVIE",
	}
}

func (k Kind) String() string {
	if s, ok := getKindStrings()[k]; ok {
		return s
	}
	return "UNKNOWN"
}

func (k Kind) Validate() error {
	if k == BookKind || k == AlbumKind || k == MovieKind {
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause("item kind", fmt.Errorf("%d is not a valid kind", k))
}

// ParseKind converts the stored or transported name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range getKindStrings() {
		if k != UnknownKind && name == s {
			return k, nil
		}
	}
	return UnknownKind, errs.NewValueIsInvalidErrorWithCause("item kind", fmt.Errorf("%q is not a valid kind", s))
}

// Details carries the attributes specific to one item kind.
type Details interface {
	Kind() Kind
}

type Book struct {
	Author string
	ISBN   string
}

func (Book) Kind() Kind { return BookKind }

type Album struct {
	Artist string
	Etc    string
}

func (Album) Kind() Kind { return AlbumKind }

type Movie struct {
	Director string
	Actor    string
}

func (Movie) Kind() Kind { return MovieKind }
