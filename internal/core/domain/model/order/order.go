package order

import (
	"errors"
	"fmt"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderAlreadyHasDriver is the cause of the conflict returned by AssignDriver.
	ErrOrderAlreadyHasDriver = errors.New("order already has a driver")
)

// Order is the aggregate root of one customer order placed at one restaurant.
//
// Invariants:
//   - total is set at creation and never recomputed
//   - items are owned by this order only
//   - driverID is set at most once
//   - restaurantOwnerID is the owner of the restaurant, loaded with the order
//     so authorization never needs a second lookup
type Order struct {
	id                kernel.ID
	customerID        *kernel.ID
	driverID          *kernel.ID
	restaurantID      kernel.ID
	restaurantOwnerID kernel.ID
	items             []Item
	total             kernel.Price
	status            Status

	isConstructed bool
}

// NewOrder creates a Pending order with a fixed total.
//
// Example:
//
//	total, items, err := services.NewOrderPricer().Price(menu, selections)
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(customer.ID(), r.ID(), r.OwnerID(), items, total)
func NewOrder(customerID, restaurantID, restaurantOwnerID kernel.ID, items []Item, total kernel.Price) (*Order, error) {
	o := &Order{status: Pending, total: total, isConstructed: true}
	if err := errors.Join(
		o.setCustomer(customerID),
		o.setRestaurant(restaurantID, restaurantOwnerID),
		o.setItems(items),
	); err != nil {
		return nil, err
	}
	return o, nil
}

// RestoreOrder rebuilds a persisted order. customerID is optional because the
// customer account may have been deleted since.
func RestoreOrder(
	id kernel.ID,
	customerID, driverID *kernel.ID,
	restaurantID, restaurantOwnerID kernel.ID,
	items []Item,
	total kernel.Price,
	status Status,
) (*Order, error) {
	o := &Order{total: total, isConstructed: true}
	if err := errors.Join(
		id.Validate(),
		o.setRestaurant(restaurantID, restaurantOwnerID),
		o.setItems(items),
		status.Validate(),
	); err != nil {
		return nil, err
	}
	o.id = id
	o.customerID = copyID(customerID)
	o.driverID = copyID(driverID)
	o.status = status
	return o, nil
}

// Validate ensures the order was built through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && !o.id.IsZero() && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.ID                { return o.id }
func (o *Order) CustomerID() *kernel.ID       { return copyID(o.customerID) }
func (o *Order) DriverID() *kernel.ID         { return copyID(o.driverID) }
func (o *Order) RestaurantID() kernel.ID      { return o.restaurantID }
func (o *Order) RestaurantOwnerID() kernel.ID { return o.restaurantOwnerID }
func (o *Order) Total() kernel.Price          { return o.total }
func (o *Order) Status() Status               { return o.status }

// Items returns a copy of the order items.
func (o *Order) Items() []Item {
	return append([]Item(nil), o.items...)
}

// HasDriver reports whether a driver took the order.
func (o *Order) HasDriver() bool {
	return o.driverID != nil
}

// AssignID records the identities generated by storage for the order and,
// in the same order, for its items. It can only happen once.
func (o *Order) AssignID(id kernel.ID, itemIDs []kernel.ID) error {
	if !o.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("order already has id %s", o.id))
	}
	if len(itemIDs) != len(o.items) {
		return errs.NewValueIsInvalidErrorWithCause("item ids",
			fmt.Errorf("got %d ids for %d items", len(itemIDs), len(o.items)))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	for i, itemID := range itemIDs {
		if err := itemID.Validate(); err != nil {
			return err
		}
		o.items[i].id = itemID
	}
	o.id = id
	return nil
}

// ChangeStatus moves the order to target. Any valid status is accepted;
// role-based legality is checked by the caller before.
func (o *Order) ChangeStatus(target Status) error {
	if err := target.Validate(); err != nil {
		return err
	}
	o.status = target
	return nil
}

// AssignDriver sets the delivery driver. A second assignment fails with a
// ConflictError caused by ErrOrderAlreadyHasDriver.
func (o *Order) AssignDriver(driverID kernel.ID) error {
	if err := driverID.Validate(); err != nil {
		return err
	}
	if o.driverID != nil {
		return errs.NewConflictErrorWithCause("driver", ErrOrderAlreadyHasDriver)
	}
	o.driverID = &driverID
	return nil
}

func (o *Order) setCustomer(customerID kernel.ID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = &customerID
	return nil
}

func (o *Order) setRestaurant(restaurantID, ownerID kernel.ID) error {
	if err := errors.Join(restaurantID.Validate(), ownerID.Validate()); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	o.restaurantOwnerID = ownerID
	return nil
}

func (o *Order) setItems(items []Item) error {
	for _, item := range items {
		if err := item.validate(); err != nil {
			return err
		}
	}
	o.items = append([]Item(nil), items...)
	return nil
}

func copyID(id *kernel.ID) *kernel.ID {
	if id == nil {
		return nil
	}
	cp := *id
	return &cp
}
