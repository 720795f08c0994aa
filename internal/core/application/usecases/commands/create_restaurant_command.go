package commands

import (
	"errors"
	"strings"

	"eats/internal/core/domain/model/user"
	"eats/internal/pkg/guard"
)

var (
	ErrCreateRestaurantCommandIsNotConstructed = errors.New(
		"CreateRestaurantCommand must be created via NewCreateRestaurantCommand constructor",
	)
)

// CreateRestaurantCommand opens a restaurant for the acting owner.
// The category is referenced by name and created on first use.
type CreateRestaurantCommand struct { //nolint:recvcheck //using for validation
	actor        user.Actor
	name         string
	address      string
	coverImage   string
	categoryName string

	guard guard.ConstructorGuard
}

// NewCreateRestaurantCommand keeps the values for the domain to validate. An
// empty categoryName leaves the restaurant without a category.
func NewCreateRestaurantCommand(
	actor user.Actor,
	name, address, coverImage, categoryName string,
) (CreateRestaurantCommand, error) {
	if err := actor.Validate(); err != nil {
		return CreateRestaurantCommand{}, err
	}

	return CreateRestaurantCommand{
		actor:        actor,
		name:         name,
		address:      address,
		coverImage:   coverImage,
		categoryName: strings.TrimSpace(categoryName),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c CreateRestaurantCommand) Validate() error {
	return c.guard.Validate(ErrCreateRestaurantCommandIsNotConstructed)
}

func (c CreateRestaurantCommand) Actor() user.Actor    { return c.actor }
func (c CreateRestaurantCommand) Name() string         { return c.name }
func (c CreateRestaurantCommand) Address() string      { return c.address }
func (c CreateRestaurantCommand) CoverImage() string   { return c.coverImage }
func (c CreateRestaurantCommand) CategoryName() string { return c.categoryName }
