// Package restaurantrepo persists restaurants, their menus and categories.
package restaurantrepo

import (
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/core/domain/model/restaurant"
)

// RestaurantDTO represents the database structure for restaurants.
type RestaurantDTO struct {
	ID            int64      `gorm:"primaryKey"`
	Name          string     `gorm:"size:255;not null"`
	Address       string     `gorm:"size:255;not null"`
	CoverImage    string     `gorm:"size:1024"`
	OwnerID       int64      `gorm:"not null;index"`
	CategoryID    *int64     `gorm:"index"`
	IsPromoted    bool       `gorm:"not null;default:false"`
	PromotedUntil *time.Time `gorm:"index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Category *CategoryDTO `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	Dishes   []DishDTO    `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

// DishDTO stores a dish with its options as a JSON document.
type DishDTO struct {
	ID           int64           `gorm:"primaryKey"`
	RestaurantID int64           `gorm:"not null;index"`
	Name         string          `gorm:"size:255;not null"`
	Price        float64         `gorm:"type:double precision;not null"`
	Photo        string          `gorm:"size:1024"`
	Description  string          `gorm:"size:140;not null"`
	Options      []DishOptionDTO `gorm:"type:jsonb;serializer:json"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (DishDTO) TableName() string {
	return "dishes"
}

// DishOptionDTO is the JSON shape of a dish option.
type DishOptionDTO struct {
	Name    string          `json:"name"`
	Extra   *float64        `json:"extra,omitempty"`
	Choices []DishChoiceDTO `json:"choices,omitempty"`
}

// DishChoiceDTO is the JSON shape of an option choice.
type DishChoiceDTO struct {
	Name  string   `json:"name"`
	Extra *float64 `json:"extra,omitempty"`
}

// CategoryDTO is a restaurant category, unique by slug.
type CategoryDTO struct {
	ID   int64  `gorm:"primaryKey"`
	Name string `gorm:"size:255;not null"`
	Slug string `gorm:"size:255;not null;uniqueIndex"`
}

func (CategoryDTO) TableName() string {
	return "categories"
}

func restaurantFromDomain(r *restaurant.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:            r.ID().Int64(),
		Name:          r.Name(),
		Address:       r.Address(),
		CoverImage:    r.CoverImage(),
		OwnerID:       r.OwnerID().Int64(),
		CategoryID:    idPtr(r.CategoryID()),
		IsPromoted:    r.IsPromoted(),
		PromotedUntil: r.PromotedUntil(),
	}
}

func restaurantToDomain(dto RestaurantDTO) (*restaurant.Restaurant, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	ownerID, err := kernel.NewID(dto.OwnerID)
	if err != nil {
		return nil, err
	}
	var categoryID *kernel.ID
	if dto.CategoryID != nil {
		cid, cidErr := kernel.NewID(*dto.CategoryID)
		if cidErr != nil {
			return nil, cidErr
		}
		categoryID = &cid
	}

	return restaurant.RestoreRestaurant(
		id, dto.Name, dto.Address, dto.CoverImage, ownerID, categoryID, dto.IsPromoted, dto.PromotedUntil,
	)
}

func dishFromDomain(d *restaurant.Dish) DishDTO {
	options := make([]DishOptionDTO, 0, len(d.Options()))
	for _, opt := range d.Options() {
		choices := make([]DishChoiceDTO, 0, len(opt.Choices))
		for _, c := range opt.Choices {
			choices = append(choices, DishChoiceDTO{Name: c.Name, Extra: amountPtr(c.Extra)})
		}
		options = append(options, DishOptionDTO{Name: opt.Name, Extra: amountPtr(opt.Extra), Choices: choices})
	}

	return DishDTO{
		ID:           d.ID().Int64(),
		RestaurantID: d.RestaurantID().Int64(),
		Name:         d.Name(),
		Price:        d.Price().Amount(),
		Photo:        d.Photo(),
		Description:  d.Description(),
		Options:      options,
	}
}

func dishToDomain(dto DishDTO) (*restaurant.Dish, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.NewID(dto.RestaurantID)
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewPrice(dto.Price)
	if err != nil {
		return nil, err
	}

	options := make([]restaurant.DishOption, 0, len(dto.Options))
	for _, opt := range dto.Options {
		extra, extraErr := priceFromAmount(opt.Extra)
		if extraErr != nil {
			return nil, extraErr
		}
		choices := make([]restaurant.DishChoice, 0, len(opt.Choices))
		for _, c := range opt.Choices {
			choiceExtra, choiceErr := priceFromAmount(c.Extra)
			if choiceErr != nil {
				return nil, choiceErr
			}
			choices = append(choices, restaurant.DishChoice{Name: c.Name, Extra: choiceExtra})
		}
		options = append(options, restaurant.DishOption{Name: opt.Name, Extra: extra, Choices: choices})
	}

	return restaurant.RestoreDish(id, restaurantID, dto.Name, price, dto.Photo, dto.Description, options)
}

func categoryToDomain(dto CategoryDTO) (restaurant.Category, error) {
	id, err := kernel.NewID(dto.ID)
	if err != nil {
		return restaurant.Category{}, err
	}
	return restaurant.RestoreCategory(id, dto.Name, dto.Slug)
}

func idPtr(id *kernel.ID) *int64 {
	if id == nil {
		return nil
	}
	v := id.Int64()
	return &v
}

func amountPtr(p *kernel.Price) *float64 {
	if p == nil {
		return nil
	}
	v := p.Amount()
	return &v
}

func priceFromAmount(v *float64) (*kernel.Price, error) {
	if v == nil {
		return nil, nil //nolint:nilnil // option without extra
	}
	p, err := kernel.NewPrice(*v)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
