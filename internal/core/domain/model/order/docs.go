// Package order provides the Order aggregate: the order, its owned items, the
// total fixed at creation, the status and the parties involved.
//
// The package includes:
//   - Order: the aggregate root
//   - Item: one dish of the order with the options the customer selected
//   - Status: Pending, Cooking, Cooked, PickedUp, Delivered
//
// Key business rules:
//   - The total is fixed when the order is created and never recomputed
//   - New orders start Pending
//   - Status changes are not restricted by adjacency; who may request which
//     status is decided by the authorization policy in the services package
//   - A driver can be assigned exactly once
package order
