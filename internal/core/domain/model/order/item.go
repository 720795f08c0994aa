package order

import (
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// ItemOption is an option the customer selected for a dish. Choice is nil for
// options without choices.
type ItemOption struct {
	Name   string
	Choice *string
}

// Item is one dish of an order with the raw selected options. Prices are not
// stored per item, only the order total is.
type Item struct {
	id      kernel.ID
	dishID  kernel.ID
	options []ItemOption
}

// NewItem creates an item for a dish that exists in the restaurant menu.
func NewItem(dishID kernel.ID, options []ItemOption) (Item, error) {
	if err := dishID.Validate(); err != nil {
		return Item{}, err
	}
	for _, o := range options {
		if strings.TrimSpace(o.Name) == "" {
			return Item{}, errs.NewValueIsRequiredError("option name")
		}
	}
	return Item{dishID: dishID, options: append([]ItemOption(nil), options...)}, nil
}

// RestoreItem rebuilds a persisted item.
func RestoreItem(id, dishID kernel.ID, options []ItemOption) (Item, error) {
	item, err := NewItem(dishID, options)
	if err != nil {
		return Item{}, err
	}
	if err = id.Validate(); err != nil {
		return Item{}, err
	}
	item.id = id
	return item, nil
}

func (i Item) ID() kernel.ID     { return i.id }
func (i Item) DishID() kernel.ID { return i.dishID }

// Options returns a copy of the selected options.
func (i Item) Options() []ItemOption {
	return append([]ItemOption(nil), i.options...)
}

func (i Item) validate() error {
	return i.dishID.Validate()
}
