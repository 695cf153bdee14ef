// Package order provides the Order aggregate root together with its OrderItem and
// Delivery entities.
//
// The package includes:
//   - Order: the aggregate root holding the member, delivery and order item handles
//   - OrderItem: one ordered line with a frozen price and a count
//   - Delivery: the shipment with an address snapshot taken when the order was placed
//   - Status and DeliveryStatus: one-way state machines
//
// Related entities are held through kernel.Ref load-on-demand handles. The order never
// performs I/O: handles loaded by a repository are used as is, unloaded handles have to
// be resolved explicitly before they are dereferenced.
//
// Key business rules:
//   - An order is created with at least one order item
//   - Placing an order item removes stock from the item
//   - Canceling restores stock for every order item and is rejected when the order is
//     already canceled or its delivery is completed
//   - Order status goes ORDERED -> CANCELED, delivery status goes READY -> COMPLETED
package order
