package commands_test

import (
	"context"
	"time"

	"eats/internal/core/application/usecases/commands"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/payment"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

func (m *MockOrderRepository) FindMatching(ctx context.Context, c ports.OrderCriteria) ([]*order.Order, error) {
	args := m.Called(ctx, c)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}

type MockRestaurantRepository struct{ mock.Mock }

func (m *MockRestaurantRepository) Add(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Update(ctx context.Context, r *restaurant.Restaurant) error {
	return m.Called(ctx, r).Error(0)
}

func (m *MockRestaurantRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Restaurant, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*restaurant.Restaurant)
	return r, args.Error(1)
}

func (m *MockRestaurantRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockRestaurantRepository) FindPromotedUntil(ctx context.Context, t time.Time) ([]*restaurant.Restaurant, error) {
	args := m.Called(ctx, t)
	list, _ := args.Get(0).([]*restaurant.Restaurant)
	return list, args.Error(1)
}

type MockDishRepository struct{ mock.Mock }

func (m *MockDishRepository) Add(ctx context.Context, d *restaurant.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Update(ctx context.Context, d *restaurant.Dish) error {
	return m.Called(ctx, d).Error(0)
}

func (m *MockDishRepository) Get(ctx context.Context, id kernel.ID) (*restaurant.Dish, error) {
	args := m.Called(ctx, id)
	d, _ := args.Get(0).(*restaurant.Dish)
	return d, args.Error(1)
}

func (m *MockDishRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockDishRepository) FindByRestaurant(ctx context.Context, id kernel.ID) ([]*restaurant.Dish, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]*restaurant.Dish)
	return list, args.Error(1)
}

type MockCategoryRepository struct{ mock.Mock }

func (m *MockCategoryRepository) GetOrCreate(ctx context.Context, name string) (restaurant.Category, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(restaurant.Category), args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Add(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, u *user.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *MockUserRepository) Get(ctx context.Context, id kernel.ID) (*user.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*user.User)
	return u, args.Error(1)
}

type MockVerificationRepository struct{ mock.Mock }

func (m *MockVerificationRepository) Add(ctx context.Context, v *user.Verification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *MockVerificationRepository) GetByCode(ctx context.Context, code string) (*user.Verification, error) {
	args := m.Called(ctx, code)
	v, _ := args.Get(0).(*user.Verification)
	return v, args.Error(1)
}

func (m *MockVerificationRepository) Delete(ctx context.Context, id kernel.ID) error {
	return m.Called(ctx, id).Error(0)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, p *payment.Payment) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPaymentRepository) FindByUser(ctx context.Context, id kernel.ID) ([]*payment.Payment, error) {
	args := m.Called(ctx, id)
	list, _ := args.Get(0).([]*payment.Payment)
	return list, args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) RestaurantRepository() ports.RestaurantRepository {
	return m.Called().Get(0).(ports.RestaurantRepository)
}

func (m *MockUoW) DishRepository() ports.DishRepository {
	return m.Called().Get(0).(ports.DishRepository)
}

func (m *MockUoW) CategoryRepository() ports.CategoryRepository {
	return m.Called().Get(0).(ports.CategoryRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	return m.Called().Get(0).(ports.UserRepository)
}

func (m *MockUoW) VerificationRepository() ports.VerificationRepository {
	return m.Called().Get(0).(ports.VerificationRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	return m.Called().Get(0).(ports.PaymentRepository)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) order() commands.OrderUoWFactory           { return orderUoWFactory(f) }
func (f uowFactory) restaurant() commands.RestaurantUoWFactory { return restaurantUoWFactory(f) }
func (f uowFactory) account() commands.AccountUoWFactory       { return accountUoWFactory(f) }
func (f uowFactory) payment() commands.PaymentUoWFactory       { return paymentUoWFactory(f) }

type orderUoWFactory uowFactory

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type restaurantUoWFactory uowFactory

func (f restaurantUoWFactory) Create() commands.RestaurantUoW { return f.uow }

type accountUoWFactory uowFactory

func (f accountUoWFactory) Create() commands.AccountUoW { return f.uow }

type paymentUoWFactory uowFactory

func (f paymentUoWFactory) Create() commands.PaymentUoW { return f.uow }

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) Publish(ctx context.Context, topic ports.Topic, payload any) error {
	return m.Called(ctx, topic, payload).Error(0)
}

type MockMailer struct{ mock.Mock }

func (m *MockMailer) SendVerificationEmail(ctx context.Context, email, code string) error {
	return m.Called(ctx, email, code).Error(0)
}
