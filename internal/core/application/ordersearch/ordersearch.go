// Package ordersearch turns an order search into SQL predicates over the order list
// join. The predicates use the aliases o for orders and m for members. The direct read
// queries and the order repository share it, so both filter the same way.
package ordersearch

import (
	"strings"

	"shop/internal/core/ports"

	"gorm.io/gorm"
)

// Predicate is one condition of the WHERE clause with its bound arguments.
type Predicate struct {
	SQL  string
	Args []any
}

// Predicates returns one predicate per criterion set on search. Unset criteria are
// skipped, so the zero search yields no predicate.
func Predicates(search ports.OrderSearch) []Predicate {
	var predicates []Predicate

	if status, ok := search.Status(); ok {
		predicates = append(predicates, Predicate{
			SQL:  "o.status = ?",
			Args: []any{status.String()},
		})
	}

	if search.MemberName != "" {
		predicates = append(predicates, Predicate{
			SQL:  `m.name LIKE ? ESCAPE '\'`,
			Args: []any{"%" + EscapeLike(search.MemberName) + "%"},
		})
	}

	return predicates
}

// Where renders the predicates as a WHERE clause joined with AND. It returns an empty
// string and no arguments when nothing is filtered.
//
// Example:
//
//	where, args := ordersearch.Where(search)
//	db.Raw("SELECT ... FROM orders o JOIN members m ON m.id = o.member_id "+where, args...)
func Where(search ports.OrderSearch) (string, []any) {
	predicates := Predicates(search)
	if len(predicates) == 0 {
		return "", nil
	}

	conditions := make([]string, 0, len(predicates))
	var args []any
	for _, p := range predicates {
		conditions = append(conditions, p.SQL)
		args = append(args, p.Args...)
	}

	return "WHERE " + strings.Join(conditions, " AND "), args
}

// Scope applies the predicates to a GORM chain that joins orders as o and members as m.
func Scope(search ports.OrderSearch) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		for _, p := range Predicates(search) {
			db = db.Where(p.SQL, p.Args...)
		}
		return db
	}
}

// EscapeLike escapes the LIKE wildcards so the value matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
