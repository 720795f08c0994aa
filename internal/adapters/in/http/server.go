// Package http is the API adapter. It binds requests to commands and queries,
// and renders every outcome as a CoreOutput so that clients only branch on ok.
package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
	"eats/internal/core/ports"
	"eats/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// Handler runs one command or query and returns its result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// Action runs one command that returns nothing.
type Action[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers lists the use cases exposed by the API.
type Handlers struct {
	CreateAccount    Handler[commands.CreateAccountCommand, *user.User]
	VerifyEmail      Action[commands.VerifyEmailCommand]
	EditProfile      Handler[commands.EditProfileCommand, *user.User]
	CreateRestaurant Handler[commands.CreateRestaurantCommand, *restaurant.Restaurant]
	EditRestaurant   Handler[commands.EditRestaurantCommand, *restaurant.Restaurant]
	DeleteRestaurant Action[commands.DeleteRestaurantCommand]
	CreateDish       Handler[commands.CreateDishCommand, *restaurant.Dish]
	EditDish         Handler[commands.EditDishCommand, *restaurant.Dish]
	DeleteDish       Action[commands.DeleteDishCommand]
	CreateOrder      Handler[commands.CreateOrderCommand, *order.Order]
	EditOrder        Handler[commands.EditOrderCommand, *order.Order]
	TakeOrder        Handler[commands.TakeOrderCommand, *order.Order]
	CreatePayment    Handler[commands.CreatePaymentCommand, *payment.Payment]

	GetOrder      Handler[queries.GetOrderQuery, *order.Order]
	GetOrders     Handler[queries.GetOrdersQuery, []*order.Order]
	GetRestaurant Handler[queries.GetRestaurantQuery, queries.GetRestaurantQueryResponse]
	GetPayments   Handler[queries.GetPaymentsQuery, []queries.GetPaymentsQueryResponse]

	GetRestaurants Handler[queries.GetRestaurantsQuery, queries.RestaurantsPage]
	GetCategories  Handler[queries.GetCategoriesQuery, []queries.GetCategoriesQueryResponse]
	GetCategory    Handler[queries.GetCategoryQuery, queries.GetCategoryQueryResponse]
	GetUser        Handler[queries.GetUserQuery, *user.User]
}

// Server implements the endpoints described by openapi.yml.
type Server struct {
	handlers   Handlers
	users      UserReader
	subscriber ports.Subscriber
	policy     services.OrderPolicy
	logger     *slog.Logger

	// keepAlive is the interval of comment frames on idle event streams.
	keepAlive time.Duration
}

// NewServer returns a Server running handlers. users resolves the X-User-Id
// header and subscriber feeds the event streams.
func NewServer(handlers Handlers, users UserReader, subscriber ports.Subscriber, logger *slog.Logger) *Server {
	return &Server{
		handlers:   handlers,
		users:      users,
		subscriber: subscriber,
		policy:     services.NewOrderPolicy(),
		logger:     logger.With("component", "http_server"),
		keepAlive:  15 * time.Second,
	}
}

// CreateAccount handles POST /api/v1/accounts.
func (s *Server) CreateAccount(c echo.Context) error {
	var in CreateAccountInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	role, err := user.ParseRole(in.Role)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreateAccountCommand(in.Email, in.Password, role)
	if err != nil {
		return s.fail(c, err)
	}

	u, err := s.handlers.CreateAccount.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreateAccountOutput{CoreOutput: success(), UserID: u.ID().Int64()})
}

// VerifyEmail handles POST /api/v1/accounts/verify.
func (s *Server) VerifyEmail(c echo.Context) error {
	var in VerifyEmailInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	cmd, err := commands.NewVerifyEmailCommand(in.Code)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.VerifyEmail.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

// CreateRestaurant handles POST /api/v1/restaurants.
func (s *Server) CreateRestaurant(c echo.Context) error {
	var in CreateRestaurantInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	cmd, err := commands.NewCreateRestaurantCommand(actorOf(c), in.Name, in.Address, in.CoverImage, in.CategoryName)
	if err != nil {
		return s.fail(c, err)
	}

	r, err := s.handlers.CreateRestaurant.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreateRestaurantOutput{CoreOutput: success(), RestaurantID: r.ID().Int64()})
}

// GetRestaurant handles GET /api/v1/restaurants/{id}.
func (s *Server) GetRestaurant(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetRestaurantQuery(id)
	if err != nil {
		return s.fail(c, err)
	}

	res, err := s.handlers.GetRestaurant.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	menu := make([]DishDTO, 0, len(res.Menu))
	for _, d := range res.Menu {
		menu = append(menu, toDishDTO(d))
	}
	return c.JSON(http.StatusOK, RestaurantOutput{
		CoreOutput: success(),
		Restaurant: toRestaurantDTO(res.Restaurant),
		Menu:       menu,
	})
}

// CreateDish handles POST /api/v1/restaurants/{id}/dishes.
func (s *Server) CreateDish(c echo.Context) error {
	restaurantID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var in CreateDishInput
	if err = c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	price, err := kernel.NewPrice(in.Price)
	if err != nil {
		return s.fail(c, err)
	}
	options, err := in.domainOptions()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateDishCommand(actorOf(c), restaurantID, in.Name, price, in.Photo, in.Description, options)
	if err != nil {
		return s.fail(c, err)
	}

	d, err := s.handlers.CreateDish.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreateDishOutput{CoreOutput: success(), DishID: d.ID().Int64()})
}

// DeleteDish handles DELETE /api/v1/dishes/{id}.
func (s *Server) DeleteDish(c echo.Context) error {
	dishID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewDeleteDishCommand(actorOf(c), dishID)
	if err != nil {
		return s.fail(c, err)
	}
	if err = s.handlers.DeleteDish.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var in CreateOrderInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	restaurantID, err := kernel.NewID(in.RestaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	selections, err := in.selections()
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewCreateOrderCommand(actorOf(c), restaurantID, selections)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, CreateOrderOutput{CoreOutput: success(), OrderID: o.ID().Int64()})
}

// GetOrders handles GET /api/v1/orders.
func (s *Server) GetOrders(c echo.Context) error {
	var rawStatus *string
	if err := runtime.BindQueryParameter("form", true, false, "status", c.QueryParams(), &rawStatus); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid parameter status"))
	}

	var status *order.Status
	if rawStatus != nil {
		parsed, err := order.ParseStatus(*rawStatus)
		if err != nil {
			return s.fail(c, err)
		}
		status = &parsed
	}

	query, err := queries.NewGetOrdersQuery(actorOf(c), status)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.handlers.GetOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	out := OrdersOutput{CoreOutput: success(), Orders: make([]OrderDTO, 0, len(orders))}
	for _, o := range orders {
		out.Orders = append(out.Orders, toOrderDTO(o))
	}
	return c.JSON(http.StatusOK, out)
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	query, err := queries.NewGetOrderQuery(actorOf(c), orderID)
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	dto := toOrderDTO(o)
	return c.JSON(http.StatusOK, OrderOutput{CoreOutput: success(), Order: &dto})
}

// EditOrder handles PATCH /api/v1/orders/{id}.
func (s *Server) EditOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	var in EditOrderInput
	if err = c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}
	status, err := order.ParseStatus(in.Status)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewEditOrderCommand(actorOf(c), orderID, status)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.handlers.EditOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

// TakeOrder handles POST /api/v1/orders/{id}/take.
func (s *Server) TakeOrder(c echo.Context) error {
	orderID, err := pathID(c)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewTakeOrderCommand(actorOf(c), orderID)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.handlers.TakeOrder.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusOK, success())
}

// CreatePayment handles POST /api/v1/payments.
func (s *Server) CreatePayment(c echo.Context) error {
	var in CreatePaymentInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, failure("invalid request body"))
	}

	restaurantID, err := kernel.NewID(in.RestaurantID)
	if err != nil {
		return s.fail(c, err)
	}
	cmd, err := commands.NewCreatePaymentCommand(actorOf(c), restaurantID, in.TransactionID)
	if err != nil {
		return s.fail(c, err)
	}
	if _, err = s.handlers.CreatePayment.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, err)
	}
	return c.JSON(http.StatusCreated, success())
}

// GetPayments handles GET /api/v1/payments.
func (s *Server) GetPayments(c echo.Context) error {
	query, err := queries.NewGetPaymentsQuery(actorOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	payments, err := s.handlers.GetPayments.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	out := PaymentsOutput{CoreOutput: success(), Payments: make([]PaymentDTO, 0, len(payments))}
	for _, p := range payments {
		out.Payments = append(out.Payments, toPaymentDTO(p))
	}
	return c.JSON(http.StatusOK, out)
}

func (s *Server) fail(c echo.Context, err error) error {
	return fail(c, s.logger, err)
}

// pathID binds the {id} path parameter.
func pathID(c echo.Context) (kernel.ID, error) {
	var raw int64
	err := runtime.BindStyledParameterWithOptions("simple", "id", c.Param("id"), &raw,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return kernel.ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return kernel.NewID(raw)
}
