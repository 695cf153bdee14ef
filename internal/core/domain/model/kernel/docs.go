// Package kernel provides the domain primitives shared by every aggregate of the
// shop: identifiers, the Address value object and Ref, the explicit
// load-on-demand handle used for relations between aggregates.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Address: An immutable city/street/zipcode value, copied by value into deliveries
//   - Ref: A handle that is either Loaded(value) or Unloaded(id); dereferencing an
//     unloaded handle fails instead of issuing hidden I/O
package kernel
