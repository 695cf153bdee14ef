// Package item provides the catalog Item aggregate and its kinds.
//
// The package includes:
//   - Item: name, price, stock quantity and kind specific details
//   - Kind: the discriminator stored with every item (BOOK, ALBUM, MOVIE)
//   - Book, Album, Movie: the kind specific details
//
// Key business rules:
//   - Price and stock quantity are never negative
//   - RemoveStock fails with InsufficientStockError instead of driving stock below zero
package item
