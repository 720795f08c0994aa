package http

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// NewRouter builds the echo instance serving s. Requests are validated
// against doc before they reach a handler.
func NewRouter(s *Server, doc *openapi3.T) (*echo.Echo, error) {
	validator, err := openAPIValidator(doc)
	if err != nil {
		return nil, err
	}
	if err = registerSwagger(doc); err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = httpErrorHandler(s.logger)

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.InfoContext(c.Request().Context(), "Request handled",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency,
			)
			return nil
		},
	}))
	e.Use(validator)

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")
	api.POST("/accounts", s.CreateAccount)
	api.POST("/accounts/verify", s.VerifyEmail)
	api.GET("/restaurants", s.GetRestaurants)
	api.GET("/restaurants/:id", s.GetRestaurant)
	api.GET("/categories", s.GetCategories)
	api.GET("/categories/:slug", s.GetCategory)

	authed := api.Group("", requireActor(s.users, s.logger))
	authed.POST("/restaurants", s.CreateRestaurant)
	authed.PATCH("/restaurants/:id", s.EditRestaurant)
	authed.DELETE("/restaurants/:id", s.DeleteRestaurant)
	authed.POST("/restaurants/:id/dishes", s.CreateDish)
	authed.PATCH("/dishes/:id", s.EditDish)
	authed.DELETE("/dishes/:id", s.DeleteDish)
	authed.GET("/users/:id", s.GetUser)
	authed.GET("/profile", s.GetProfile)
	authed.PATCH("/profile", s.EditProfile)
	authed.GET("/orders", s.GetOrders)
	authed.POST("/orders", s.CreateOrder)
	authed.GET("/orders/:id", s.GetOrder)
	authed.PATCH("/orders/:id", s.EditOrder)
	authed.POST("/orders/:id/take", s.TakeOrder)
	authed.GET("/payments", s.GetPayments)
	authed.POST("/payments", s.CreatePayment)
	authed.GET("/subscriptions/pending-orders", s.PendingOrders)
	authed.GET("/subscriptions/cooked-orders", s.CookedOrders)
	authed.GET("/subscriptions/orders/:id", s.OrderUpdates)

	return e, nil
}
