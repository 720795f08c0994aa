// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// An order is stored in "orders" with its items in "order_items"; the restaurant
// owner is read through a join on "restaurants" and never stored on the order.
package orderrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID           int64          `gorm:"primaryKey"`
	CustomerID   *int64         `gorm:"index"`
	DriverID     *int64         `gorm:"index"`
	RestaurantID int64          `gorm:"not null;index"`
	Total        float64        `gorm:"type:double precision;not null"`
	Status       int            `gorm:"type:smallint;not null;index"`
	CreatedAt    time.Time      `gorm:"not null"`
	Items        []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`

	// RestaurantOwnerID is filled by the restaurants join on reads only.
	RestaurantOwnerID int64 `gorm:"->;-:migration"`
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one dish of an order with the options requested for it.
type OrderItemDTO struct {
	ID      int64           `gorm:"primaryKey"`
	OrderID int64           `gorm:"not null;index"`
	DishID  int64           `gorm:"not null"`
	Options []ItemOptionDTO `gorm:"type:jsonb;serializer:json"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

// ItemOptionDTO is the JSON shape of a requested option.
type ItemOptionDTO struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

// fromDomain converts an order to its row. Zero ids stay zero so that
// GORM generates them on insert.
func fromDomain(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		options := make([]ItemOptionDTO, 0, len(item.Options()))
		for _, opt := range item.Options() {
			options = append(options, ItemOptionDTO{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, OrderItemDTO{
			ID:      item.ID().Int64(),
			OrderID: o.ID().Int64(),
			DishID:  item.DishID().Int64(),
			Options: options,
		})
	}

	return OrderDTO{
		ID:                o.ID().Int64(),
		CustomerID:        idPtr(o.CustomerID()),
		DriverID:          idPtr(o.DriverID()),
		RestaurantID:      o.RestaurantID().Int64(),
		Total:             o.Total().Amount(),
		Status:            int(o.Status()),
		Items:             items,
		RestaurantOwnerID: o.RestaurantOwnerID().Int64(),
	}
}

// toDomain rebuilds the aggregate with RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	customerID, err := optionalID(dto.CustomerID)
	if err != nil {
		return nil, err
	}
	driverID, err := optionalID(dto.DriverID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.NewID(dto.RestaurantOwnerID)
	if err != nil {
		return nil, err
	}
	total, err := kernel.NewPrice(dto.Total)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, customerID, driverID, restaurantID, ownerID, items, total, order.Status(dto.Status))
}

func itemToDomain(dto OrderItemDTO) (order.Item, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return order.Item{}, err
	}
	dishID, err := kernel.NewID(dto.DishID)
	if err != nil {
		return order.Item{}, err
	}

	options := make([]order.ItemOption, 0, len(dto.Options))
	for _, opt := range dto.Options {
		options = append(options, order.ItemOption{Name: opt.Name, Choice: opt.Choice})
	}

	return order.RestoreItem(id, dishID, options)
}

func idPtr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

func optionalID(v *int64) (*kernel.ID, error) {
	if v == nil {
		return nil, nil //nolint:nilnil // absent party
	}
	id, err := kernel.NewID(*v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
