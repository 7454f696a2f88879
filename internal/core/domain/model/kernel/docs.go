// Package kernel provides the value objects shared by the storefront domain model.
//
// The package includes:
//   - UUID: identifiers issued for users and line items
//   - Address: the delivery address snapshot embedded into an order
//   - Money: amounts in integer cents
//   - Rating: the 1..5 score a customer gives to a delivered order
//
// All values are immutable. Address carries a constructor guard so that a zero
// value can never be mistaken for a real address.
package kernel
