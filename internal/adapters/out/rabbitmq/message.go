package rabbitmq

import (
	"fmt"

	"eats/internal/core/domain/model/order"
	"eats/internal/core/ports"
)

// NotificationMessage is the JSON body of every published message.
type NotificationMessage struct {
	Topic   string       `json:"topic"`
	OwnerID *int64       `json:"ownerId,omitempty"`
	Order   OrderMessage `json:"order"`
}

// OrderMessage is the wire form of an order.
type OrderMessage struct {
	ID           int64              `json:"id"`
	Status       string             `json:"status"`
	Total        float64            `json:"total"`
	CustomerID   *int64             `json:"customerId,omitempty"`
	DriverID     *int64             `json:"driverId,omitempty"`
	RestaurantID int64              `json:"restaurantId"`
	Items        []OrderItemMessage `json:"items"`
}

type OrderItemMessage struct {
	ID      int64               `json:"id"`
	DishID  int64               `json:"dishId"`
	Options []ItemOptionMessage `json:"options,omitempty"`
}

type ItemOptionMessage struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

func toMessage(topic ports.Topic, payload any) (NotificationMessage, error) {
	switch p := payload.(type) {
	case ports.PendingOrderEvent:
		ownerID := p.OwnerID.Int64()
		return NotificationMessage{Topic: string(topic), OwnerID: &ownerID, Order: orderMessage(p.Order)}, nil
	case *order.Order:
		return NotificationMessage{Topic: string(topic), Order: orderMessage(p)}, nil
	default:
		return NotificationMessage{}, fmt.Errorf("%w: %T", ErrUnsupportedPayload, payload)
	}
}

func orderMessage(o *order.Order) OrderMessage {
	if o == nil {
		return OrderMessage{}
	}

	items := make([]OrderItemMessage, 0, len(o.Items()))
	for _, item := range o.Items() {
		var options []ItemOptionMessage
		for _, opt := range item.Options() {
			options = append(options, ItemOptionMessage{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, OrderItemMessage{ID: item.ID().Int64(), DishID: item.DishID().Int64(), Options: options})
	}

	msg := OrderMessage{
		ID:           o.ID().Int64(),
		Status:       o.Status().String(),
		Total:        o.Total().Amount(),
		RestaurantID: o.RestaurantID().Int64(),
		Items:        items,
	}
	if id := o.CustomerID(); id != nil {
		v := id.Int64()
		msg.CustomerID = &v
	}
	if id := o.DriverID(); id != nil {
		v := id.Int64()
		msg.DriverID = &v
	}
	return msg
}
