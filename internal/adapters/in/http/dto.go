package http

import (
	"time"

	"eats/internal/core/application/usecases/queries"
	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/order"
	"eats/internal/core/domain/model/restaurant"
	"eats/internal/core/domain/model/user"
	"eats/internal/core/domain/services"
)

type CreateAccountInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type CreateAccountOutput struct {
	CoreOutput
	UserID int64 `json:"userId,omitempty"`
}

type VerifyEmailInput struct {
	Code string `json:"code"`
}

type CreateRestaurantInput struct {
	Name         string `json:"name"`
	Address      string `json:"address"`
	CoverImage   string `json:"coverImage"`
	CategoryName string `json:"categoryName"`
}

type EditRestaurantInput struct {
	Name         *string `json:"name"`
	Address      *string `json:"address"`
	CoverImage   *string `json:"coverImage"`
	CategoryName *string `json:"categoryName"`
}

type CreateRestaurantOutput struct {
	CoreOutput
	RestaurantID int64 `json:"restaurantId,omitempty"`
}

type DishChoiceDTO struct {
	Name  string   `json:"name"`
	Extra *float64 `json:"extra,omitempty"`
}

type DishOptionDTO struct {
	Name    string          `json:"name"`
	Extra   *float64        `json:"extra,omitempty"`
	Choices []DishChoiceDTO `json:"choices,omitempty"`
}

type CreateDishInput struct {
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Photo       string          `json:"photo"`
	Description string          `json:"description"`
	Options     []DishOptionDTO `json:"options"`
}

type EditDishInput struct {
	Name        *string          `json:"name"`
	Price       *float64         `json:"price"`
	Photo       *string          `json:"photo"`
	Description *string          `json:"description"`
	Options     *[]DishOptionDTO `json:"options"`
}

type CreateDishOutput struct {
	CoreOutput
	DishID int64 `json:"dishId,omitempty"`
}

type DishDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       float64         `json:"price"`
	Photo       string          `json:"photo,omitempty"`
	Description string          `json:"description"`
	Options     []DishOptionDTO `json:"options,omitempty"`
}

type RestaurantDTO struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Address       string     `json:"address"`
	CoverImage    string     `json:"coverImage,omitempty"`
	OwnerID       int64      `json:"ownerId"`
	CategoryID    *int64     `json:"categoryId,omitempty"`
	IsPromoted    bool       `json:"isPromoted"`
	PromotedUntil *time.Time `json:"promotedUntil,omitempty"`
}

type RestaurantOutput struct {
	CoreOutput
	Restaurant *RestaurantDTO `json:"restaurant,omitempty"`
	Menu       []DishDTO      `json:"menu,omitempty"`
}

type RestaurantsOutput struct {
	CoreOutput
	Restaurants  []RestaurantDTO `json:"restaurants"`
	TotalPages   int             `json:"totalPages"`
	TotalResults int64           `json:"totalResults"`
}

type CategoryDTO struct {
	ID              int64  `json:"id"`
	Name            string `json:"name"`
	Slug            string `json:"slug"`
	RestaurantCount *int64 `json:"restaurantCount,omitempty"`
}

type CategoriesOutput struct {
	CoreOutput
	Categories []CategoryDTO `json:"categories"`
}

type CategoryOutput struct {
	RestaurantsOutput
	Category *CategoryDTO `json:"category,omitempty"`
}

type UserDTO struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Verified bool   `json:"verified"`
}

type UserOutput struct {
	CoreOutput
	User *UserDTO `json:"user,omitempty"`
}

type EditProfileInput struct {
	Email    *string `json:"email"`
	Password *string `json:"password"`
}

type ItemOptionDTO struct {
	Name   string  `json:"name"`
	Choice *string `json:"choice,omitempty"`
}

type OrderItemInput struct {
	DishID  int64           `json:"dishId"`
	Options []ItemOptionDTO `json:"options"`
}

type CreateOrderInput struct {
	RestaurantID int64            `json:"restaurantId"`
	Items        []OrderItemInput `json:"items"`
}

type CreateOrderOutput struct {
	CoreOutput
	OrderID int64 `json:"orderId,omitempty"`
}

type EditOrderInput struct {
	Status string `json:"status"`
}

type OrderItemDTO struct {
	ID      int64           `json:"id"`
	DishID  int64           `json:"dishId"`
	Options []ItemOptionDTO `json:"options,omitempty"`
}

type OrderDTO struct {
	ID           int64          `json:"id"`
	Status       string         `json:"status"`
	Total        float64        `json:"total"`
	CustomerID   *int64         `json:"customerId,omitempty"`
	DriverID     *int64         `json:"driverId,omitempty"`
	RestaurantID int64          `json:"restaurantId"`
	Items        []OrderItemDTO `json:"items"`
}

type OrderOutput struct {
	CoreOutput
	Order *OrderDTO `json:"order,omitempty"`
}

type OrdersOutput struct {
	CoreOutput
	Orders []OrderDTO `json:"orders"`
}

type CreatePaymentInput struct {
	RestaurantID  int64  `json:"restaurantId"`
	TransactionID string `json:"transactionId"`
}

type PaymentDTO struct {
	ID            int64     `json:"id"`
	TransactionID string    `json:"transactionId"`
	RestaurantID  int64     `json:"restaurantId"`
	CreatedAt     time.Time `json:"createdAt"`
}

type PaymentsOutput struct {
	CoreOutput
	Payments []PaymentDTO `json:"payments"`
}

func (in CreateDishInput) domainOptions() ([]restaurant.DishOption, error) {
	return toDomainOptions(in.Options)
}

// changes converts the fields present in the body. Absent fields stay nil.
func (in EditDishInput) changes() (restaurant.DishChanges, error) {
	changes := restaurant.DishChanges{Name: in.Name, Photo: in.Photo, Description: in.Description}
	if in.Price != nil {
		price, err := kernel.NewPrice(*in.Price)
		if err != nil {
			return restaurant.DishChanges{}, err
		}
		changes.Price = &price
	}
	if in.Options != nil {
		options, err := toDomainOptions(*in.Options)
		if err != nil {
			return restaurant.DishChanges{}, err
		}
		changes.Options = &options
	}
	return changes, nil
}

func toDomainOptions(dtos []DishOptionDTO) ([]restaurant.DishOption, error) {
	options := make([]restaurant.DishOption, 0, len(dtos))
	for _, opt := range dtos {
		extra, err := optionalPrice(opt.Extra)
		if err != nil {
			return nil, err
		}
		choices := make([]restaurant.DishChoice, 0, len(opt.Choices))
		for _, c := range opt.Choices {
			choiceExtra, choiceErr := optionalPrice(c.Extra)
			if choiceErr != nil {
				return nil, choiceErr
			}
			choices = append(choices, restaurant.DishChoice{Name: c.Name, Extra: choiceExtra})
		}
		options = append(options, restaurant.DishOption{Name: opt.Name, Extra: extra, Choices: choices})
	}
	return options, nil
}

func (in CreateOrderInput) selections() ([]services.Selection, error) {
	selections := make([]services.Selection, 0, len(in.Items))
	for _, item := range in.Items {
		dishID, err := kernel.NewID(item.DishID)
		if err != nil {
			return nil, err
		}
		options := make([]order.ItemOption, 0, len(item.Options))
		for _, opt := range item.Options {
			options = append(options, order.ItemOption{Name: opt.Name, Choice: opt.Choice})
		}
		selections = append(selections, services.Selection{DishID: dishID, Options: options})
	}
	return selections, nil
}

func optionalPrice(v *float64) (*kernel.Price, error) {
	if v == nil {
		return nil, nil //nolint:nilnil // no extra
	}
	p, err := kernel.NewPrice(*v)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func amountOf(p *kernel.Price) *float64 {
	if p == nil {
		return nil
	}
	v := p.Amount()
	return &v
}

func int64Of(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

func toOrderDTO(o *order.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		var options []ItemOptionDTO
		for _, opt := range item.Options() {
			options = append(options, ItemOptionDTO{Name: opt.Name, Choice: opt.Choice})
		}
		items = append(items, OrderItemDTO{ID: item.ID().Int64(), DishID: item.DishID().Int64(), Options: options})
	}

	return OrderDTO{
		ID:           o.ID().Int64(),
		Status:       o.Status().String(),
		Total:        o.Total().Amount(),
		CustomerID:   int64Of(o.CustomerID()),
		DriverID:     int64Of(o.DriverID()),
		RestaurantID: o.RestaurantID().Int64(),
		Items:        items,
	}
}

func toRestaurantDTO(r *restaurant.Restaurant) *RestaurantDTO {
	return &RestaurantDTO{
		ID:            r.ID().Int64(),
		Name:          r.Name(),
		Address:       r.Address(),
		CoverImage:    r.CoverImage(),
		OwnerID:       r.OwnerID().Int64(),
		CategoryID:    int64Of(r.CategoryID()),
		IsPromoted:    r.IsPromoted(),
		PromotedUntil: r.PromotedUntil(),
	}
}

func toRestaurantsOutput(page queries.RestaurantsPage) RestaurantsOutput {
	out := RestaurantsOutput{
		CoreOutput:   success(),
		Restaurants:  make([]RestaurantDTO, 0, len(page.Restaurants)),
		TotalPages:   page.TotalPages,
		TotalResults: page.TotalResults,
	}
	for _, r := range page.Restaurants {
		out.Restaurants = append(out.Restaurants, *toRestaurantDTO(r))
	}
	return out
}

func toCategoryDTO(c restaurant.Category) CategoryDTO {
	return CategoryDTO{ID: c.ID().Int64(), Name: c.Name(), Slug: c.Slug()}
}

func toUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:       u.ID().Int64(),
		Email:    u.Email(),
		Role:     u.Role().String(),
		Verified: u.Verified(),
	}
}

func toDishDTO(d *restaurant.Dish) DishDTO {
	var options []DishOptionDTO
	for _, opt := range d.Options() {
		var choices []DishChoiceDTO
		for _, c := range opt.Choices {
			choices = append(choices, DishChoiceDTO{Name: c.Name, Extra: amountOf(c.Extra)})
		}
		options = append(options, DishOptionDTO{Name: opt.Name, Extra: amountOf(opt.Extra), Choices: choices})
	}

	return DishDTO{
		ID:          d.ID().Int64(),
		Name:        d.Name(),
		Price:       d.Price().Amount(),
		Photo:       d.Photo(),
		Description: d.Description(),
		Options:     options,
	}
}

func toPaymentDTO(p queries.GetPaymentsQueryResponse) PaymentDTO {
	return PaymentDTO{
		ID:            p.ID.Int64(),
		TransactionID: p.TransactionID,
		RestaurantID:  p.RestaurantID.Int64(),
		CreatedAt:     p.CreatedAt,
	}
}
