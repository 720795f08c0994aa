// Package kernel provides the domain primitives shared by every aggregate of
// the food ordering service.
//
// The package includes:
//   - ID: the storage-generated integer identity of users, restaurants,
//     dishes, orders and payments
//   - Price: a non-negative amount of money used by the menu and by orders
//
// Both are immutable value objects and are safe for concurrent use.
package kernel
