// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence and, for order flows, notification after commit.
//
// # Construction
//
// Commands are built with their New* constructor, which validates the input.
// A zero-value command fails Validate with its ErrXIsNotConstructed error, so
// handlers never act on unchecked input.
//
// # Authorization
//
// A handler restricted to a role checks it before opening a transaction.
// Ownership of a loaded aggregate is checked right after reading it. Both
// failures are errs.NotAuthorizedError.
//
// # Notifications
//
// Order handlers publish only after a successful commit. A publish failure is
// logged and the handler still returns the persisted order.
package commands

import (
	"context"

	"eats/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	RestaurantRepoFactory interface {
		RestaurantRepository() ports.RestaurantRepository
	}

	DishRepoFactory interface {
		DishRepository() ports.DishRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	VerificationRepoFactory interface {
		VerificationRepository() ports.VerificationRepository
	}

	PaymentRepoFactory interface {
		PaymentRepository() ports.PaymentRepository
	}

	// OrderUoW serves the order flows: creation needs the restaurant and its
	// menu, edits and driver assignment only the order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   menu, err := uow.DishRepository().FindByRestaurant(ctx, restaurantID)
	//   // ... price and build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		RestaurantRepoFactory
		DishRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RestaurantUoW serves restaurant, menu and promotion management.
	RestaurantUoW interface {
		TxManager
		RestaurantRepoFactory
		DishRepoFactory
		CategoryRepoFactory
	}

	RestaurantUoWFactory interface {
		Create() RestaurantUoW
	}

	// AccountUoW serves account creation and email verification.
	AccountUoW interface {
		TxManager
		UserRepoFactory
		VerificationRepoFactory
	}

	AccountUoWFactory interface {
		Create() AccountUoW
	}

	// PaymentUoW records a payment and promotes the paid restaurant atomically.
	PaymentUoW interface {
		TxManager
		PaymentRepoFactory
		RestaurantRepoFactory
	}

	PaymentUoWFactory interface {
		Create() PaymentUoW
	}
)
