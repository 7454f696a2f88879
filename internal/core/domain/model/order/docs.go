// Package order provides the Order aggregate of the storefront and the status
// progression it moves through after checkout.
//
// The package includes:
//   - Order: the aggregate root, a snapshot of a confirmed checkout
//   - Status: the fixed delivery progression
//     pending -> confirmed -> preparing -> ready -> delivering -> delivered
//   - LineItem, Payment and Restaurant: values copied into the order at checkout
//
// Key business rules:
//   - An order's status never moves backwards
//   - The total is computed once at checkout and never recomputed
//   - The delivery address is a copy taken at checkout
//   - Only card holder and last four digits of a card are ever kept
//   - A rating can be given once, and only after the order was delivered
package order
