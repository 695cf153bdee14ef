// Package member provides the Member aggregate: a registered customer with a
// unique name and a postal address.
//
// Members are referenced by orders but never own them. The reverse direction
// (a member's orders) is an explicit query, not a back-pointer.
package member
