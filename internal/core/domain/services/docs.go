// Package services provides domain services that orchestrate business operations
// across multiple aggregates of the shop.
//
// The package includes:
//   - OrderPlacer: builds an order for a member from catalog items, taking the stock
//     and snapshotting the delivery address
package services
