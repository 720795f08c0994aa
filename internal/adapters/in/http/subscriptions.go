package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// PendingOrders handles GET /api/v1/subscriptions/pending-orders. Owners
// receive the orders placed at their own restaurants.
func (s *Server) PendingOrders(c echo.Context) error {
	actor := actorOf(c)
	if !actor.Is(user.Owner) {
		return s.fail(c, errs.NewNotAuthorizedError("role"))
	}

	return s.stream(c, ports.TopicNewPendingOrder, func(payload any) (*order.Order, bool) {
		event, ok := payload.(ports.PendingOrderEvent)
		if !ok || !event.OwnerID.IsEqual(actor.ID()) {
			return nil, false
		}
		return event.Order, true
	})
}

// CookedOrders handles GET /api/v1/subscriptions/cooked-orders. Drivers
// receive every order an owner marked as cooked.
func (s *Server) CookedOrders(c echo.Context) error {
	if !actorOf(c).Is(user.Delivery) {
		return s.fail(c, errs.NewNotAuthorizedError("role"))
	}

	return s.stream(c, ports.TopicNewCookedOrder, func(payload any) (*order.Order, bool) {
		o, ok := payload.(*order.Order)
		return o, ok
	})
}

// OrderUpdates handles GET /api/v1/subscriptions/orders/{id}. Only parties
// that can view the order may follow it.
func (s *Server) OrderUpdates(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	actor := actorOf(c)
	query, err := queries.NewGetOrderQuery(actor, orderID)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.handlers.GetOrder.Handle(c.Request().Context(), query); err != nil {
		return s.fail(c, err)
	}

	return s.stream(c, ports.TopicOrderUpdate, func(payload any) (*order.Order, bool) {
		o, ok := payload.(*order.Order)
		if !ok || !o.ID().IsEqual(orderID) {
			return nil, false
		}
		return o, s.policy.CanView(actor, o)
	})
}

// stream writes the events of topic accepted by filter as server-sent events
// until the client goes away.
func (s *Server) stream(c echo.Context, topic ports.Topic, filter func(any) (*order.Order, bool)) error {
	ctx := c.Request().Context()
	events, err := s.subscriber.Subscribe(ctx, topic)
	if err != nil {
		return s.fail(c, err)
	}

	res := c.Response()
	res.Header().Set(echo.HeaderContentType, "text/event-stream")
	res.Header().Set("Cache-Control", "no-cache")
	res.Header().Set("Connection", "keep-alive")
	res.WriteHeader(http.StatusOK)
	res.Flush()

	keepAlive := time.NewTicker(s.keepAlive)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-keepAlive.C:
			if _, err = fmt.Fprint(res, ": keep-alive\n\n"); err != nil {
				return nil
			}
			res.Flush()
		case event, ok := <-events:
			if !ok {
				return nil
			}
			o, accepted := filter(event.Payload)
			if !accepted || o == nil {
				continue
			}
			if err = writeEvent(res, event.Topic, o); err != nil {
				s.logger.WarnContext(ctx, "Failed to write event", "topic", topic, "error", err)
				return nil
			}
			res.Flush()
		}
	}
}

func writeEvent(res *echo.Response, topic ports.Topic, o *order.Order) error {
	data, err := json.Marshal(toOrderDTO(o))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(res, "event: %s\nid: %s\ndata: %s\n\n", topic, eventID(o.ID()), data)
	return err
}

func eventID(id kernel.ID) string {
	return fmt.Sprintf("%s-%d", id, time.Now().UnixNano())
}
