// Package services provides the domain services of the ordering core that do
// not belong to a single aggregate. Both services are stateless; their zero
// values are ready to use.
//
// The package includes:
//   - OrderPricer: folds dish base prices and option modifiers into an order total
//   - OrderPolicy: decides who may view an order and who may change its status
//
// # Viewing
//
// A Client sees the orders it placed, a Delivery driver the orders assigned to
// it and an Owner the orders of its restaurants.
//
// # Status changes
//
// Only an actor who can view the order may change it. Owners may set Cooking
// and Cooked; drivers may set PickedUp and Delivered. Clients may not change
// the status at all. Rejections are errs.NotAuthorizedError values caused by
// ErrOrderNotVisible or ErrStatusNotAllowedForRole.
package services
