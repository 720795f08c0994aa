package cmd

import (
	"context"
	"fmt"
	"log/slog"

	httpadapter "eats/internal/adapters/in/http"
	"eats/internal/adapters/out/mailgun"
	"eats/internal/adapters/out/postgres"
	"eats/internal/adapters/out/pubsub"
	"eats/internal/adapters/out/rabbitmq"
	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"
	"eats/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	broker     *pubsub.Broker
	rabbit     *rabbitmq.Connection
	publisher  ports.Publisher
	mailer     ports.Mailer
	logger     *slog.Logger
}

// NewCompositionRoot wires the adapters. When RabbitMQURL is set, notifications
// are also published to the AMQP exchange.
func NewCompositionRoot(configs Config, gormDB *gorm.DB, logger *slog.Logger) (*CompositionRoot, error) {
	broker := pubsub.NewBroker(pubsub.DefaultBufferSize, logger)

	c := &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		broker:     broker,
		publisher:  broker,
		mailer: mailgun.NewMailer(mailgun.Config{
			Domain: configs.MailgunDomain,
			APIKey: configs.MailgunAPIKey,
			From:   configs.MailFrom,
		}, nil, logger),
		logger: logger,
	}

	if configs.RabbitMQURL != "" {
		conn, err := rabbitmq.Dial(configs.RabbitMQURL, configs.RabbitMQExchange)
		if err != nil {
			return nil, err
		}
		c.rabbit = conn
		c.publisher = pubsub.NewFanout(broker, rabbitmq.NewPublisher(conn.Channel(), configs.RabbitMQExchange, logger))
	}

	return c, nil
}

// CloseStreams ends every open subscription.
func (c *CompositionRoot) CloseStreams() {
	c.broker.Close()
}

// Close releases the broker connection.
func (c *CompositionRoot) Close() error {
	if c.rabbit == nil {
		return nil
	}
	return c.rabbit.Close()
}

func (c *CompositionRoot) accountUoWFactory() commands.AccountUoWFactory {
	return FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateAccountCommandHandler() commands.CreateAccountCommandHandler {
	return commands.NewCreateAccountCommandHandler(c.accountUoWFactory(), c.mailer, c.logger)
}

func (c *CompositionRoot) CreateVerifyEmailCommandHandler() commands.VerifyEmailCommandHandler {
	return commands.NewVerifyEmailCommandHandler(c.accountUoWFactory())
}

func (c *CompositionRoot) CreateEditProfileCommandHandler() commands.EditProfileCommandHandler {
	return commands.NewEditProfileCommandHandler(c.accountUoWFactory(), c.mailer, c.logger)
}

func (c *CompositionRoot) restaurantUoWFactory() commands.RestaurantUoWFactory {
	return FuncRestaurantUoWFactory(func() commands.RestaurantUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateRestaurantCommandHandler() commands.CreateRestaurantCommandHandler {
	return commands.NewCreateRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateEditRestaurantCommandHandler() commands.EditRestaurantCommandHandler {
	return commands.NewEditRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateDeleteRestaurantCommandHandler() commands.DeleteRestaurantCommandHandler {
	return commands.NewDeleteRestaurantCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateEditDishCommandHandler() commands.EditDishCommandHandler {
	return commands.NewEditDishCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateCreateDishCommandHandler() commands.CreateDishCommandHandler {
	return commands.NewCreateDishCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateDeleteDishCommandHandler() commands.DeleteDishCommandHandler {
	return commands.NewDeleteDishCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) CreateExpirePromotionsCommandHandler() commands.ExpirePromotionsCommandHandler {
	return commands.NewExpirePromotionsCommandHandler(c.restaurantUoWFactory())
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateTakeOrderCommandHandler() commands.TakeOrderCommandHandler {
	return commands.NewTakeOrderCommandHandler(c.orderUoWFactory(), c.publisher, c.logger)
}

func (c *CompositionRoot) CreateCreatePaymentCommandHandler() commands.CreatePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(readers{c.uowFactory})
}

func (c *CompositionRoot) CreateGetOrdersQueryHandler() queries.GetOrdersQueryHandler {
	return queries.NewGetOrdersQueryHandler(readers{c.uowFactory})
}

func (c *CompositionRoot) CreateGetRestaurantQueryHandler() queries.GetRestaurantQueryHandler {
	r := readers{c.uowFactory}
	return queries.NewGetRestaurantQueryHandler(restaurantReader{r}, r)
}

func (c *CompositionRoot) CreateGetPaymentsQueryHandler() queries.GetPaymentsQueryHandler {
	return queries.NewGetPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetRestaurantsQueryHandler() queries.GetRestaurantsQueryHandler {
	return queries.NewGetRestaurantsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoriesQueryHandler() queries.GetCategoriesQueryHandler {
	return queries.NewGetCategoriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCategoryQueryHandler() queries.GetCategoryQueryHandler {
	return queries.NewGetCategoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(userReader{readers{c.uowFactory}})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateExpirePromotionsCommandHandler(), c.configs.PromotionCron, c.logger)
}

// CreateRouter builds the HTTP API.
func (c *CompositionRoot) CreateRouter(ctx context.Context) (*echo.Echo, error) {
	doc, err := httpadapter.LoadOpenAPI(ctx)
	if err != nil {
		return nil, err
	}

	handlers := httpadapter.Handlers{
		CreateAccount:    c.CreateCreateAccountCommandHandler(),
		VerifyEmail:      c.CreateVerifyEmailCommandHandler(),
		EditProfile:      c.CreateEditProfileCommandHandler(),
		CreateRestaurant: c.CreateCreateRestaurantCommandHandler(),
		EditRestaurant:   c.CreateEditRestaurantCommandHandler(),
		DeleteRestaurant: c.CreateDeleteRestaurantCommandHandler(),
		CreateDish:       c.CreateCreateDishCommandHandler(),
		EditDish:         c.CreateEditDishCommandHandler(),
		DeleteDish:       c.CreateDeleteDishCommandHandler(),
		CreateOrder:      c.CreateCreateOrderCommandHandler(),
		EditOrder:        c.CreateEditOrderCommandHandler(),
		TakeOrder:        c.CreateTakeOrderCommandHandler(),
		CreatePayment:    c.CreateCreatePaymentCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		GetOrders:        c.CreateGetOrdersQueryHandler(),
		GetRestaurant:    c.CreateGetRestaurantQueryHandler(),
		GetPayments:      c.CreateGetPaymentsQueryHandler(),
		GetRestaurants:   c.CreateGetRestaurantsQueryHandler(),
		GetCategories:    c.CreateGetCategoriesQueryHandler(),
		GetCategory:      c.CreateGetCategoryQueryHandler(),
		GetUser:          c.CreateGetUserQueryHandler(),
	}

	server := httpadapter.NewServer(handlers, userReader{readers{c.uowFactory}}, c.broker, c.logger)
	router, err := httpadapter.NewRouter(server, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to build router: %w", err)
	}
	return router, nil
}

// readers serves queries outside of any transaction. Each call gets its own
// unit of work so nothing stays tracked between requests.
type readers struct {
	uowFactory *postgres.GormUnitOfWorkFactory
}

func (r readers) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	return r.uowFactory.Create().OrderRepository().Get(ctx, id)
}

func (r readers) FindMatching(ctx context.Context, criteria ports.OrderCriteria) ([]*order.Order, error) {
	return r.uowFactory.Create().OrderRepository().FindMatching(ctx, criteria)
}

func (r readers) FindByRestaurant(ctx context.Context, restaurantID kernel.ID) ([]*restaurant.Dish, error) {
	return r.uowFactory.Create().DishRepository().FindByRestaurant(ctx, restaurantID)
}

type restaurantReader struct{ readers }

func (r restaurantReader) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	return r.uowFactory.Create().RestaurantRepository().Get(ctx, id)
}

type userReader struct{ readers }

func (r userReader) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	return r.uowFactory.Create().UserRepository().Get(ctx, id)
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncRestaurantUoWFactory func() commands.RestaurantUoW

func (f FuncRestaurantUoWFactory) Create() commands.RestaurantUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}
