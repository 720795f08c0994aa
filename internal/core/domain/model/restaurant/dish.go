package restaurant

import (
	"errors"
	"fmt"
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

var ErrDishIsNotConstructed = errors.New("Dish must be created via NewDish or RestoreDish")

// DishChoice is one named alternative of a DishOption, e.g. "large" for "size".
type DishChoice struct {
	Name  string
	Extra *kernel.Price
}

// DishOption is a named price modifier of a dish. It is priced either by a flat
// Extra or, when Extra is absent or zero, by the Extra of the selected choice.
type DishOption struct {
	Name    string
	Extra   *kernel.Price
	Choices []DishChoice
}

// HasFlatExtra reports whether the option is priced by its own Extra.
func (o DishOption) HasFlatExtra() bool {
	return o.Extra != nil && !o.Extra.IsZero()
}

// FindChoice looks up a choice by exact name.
func (o DishOption) FindChoice(name string) (DishChoice, bool) {
	for _, c := range o.Choices {
		if c.Name == name {
			return c, true
		}
	}
	return DishChoice{}, false
}

// Dish is an item of a restaurant menu.
type Dish struct {
	id           kernel.ID
	restaurantID kernel.ID
	name         string
	price        kernel.Price
	photo        string
	description  string
	options      []DishOption

	isConstructed bool
}

// NewDish creates a dish for a persisted restaurant.
func NewDish(
	restaurantID kernel.ID,
	name string,
	price kernel.Price,
	photo, description string,
	options []DishOption,
) (*Dish, error) {
	d := &Dish{isConstructed: true, price: price, photo: photo}
	if err := errors.Join(
		restaurantID.Validate(),
		d.setName(name),
		d.setDescription(description),
		d.setOptions(options),
	); err != nil {
		return nil, err
	}
	d.restaurantID = restaurantID
	return d, nil
}

// RestoreDish rebuilds a persisted dish.
func RestoreDish(
	id, restaurantID kernel.ID,
	name string,
	price kernel.Price,
	photo, description string,
	options []DishOption,
) (*Dish, error) {
	d, err := NewDish(restaurantID, name, price, photo, description, options)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	d.id = id
	return d, nil
}

func (d *Dish) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDishIsNotConstructed
	}
	return nil
}

func (d *Dish) ID() kernel.ID           { return d.id }
func (d *Dish) RestaurantID() kernel.ID { return d.restaurantID }
func (d *Dish) Name() string            { return d.name }
func (d *Dish) Price() kernel.Price     { return d.price }
func (d *Dish) Photo() string           { return d.photo }
func (d *Dish) Description() string     { return d.description }

// Options returns a copy of the dish options.
func (d *Dish) Options() []DishOption {
	out := make([]DishOption, len(d.options))
	copy(out, d.options)
	return out
}

// FindOption looks up an option by exact name.
func (d *Dish) FindOption(name string) (DishOption, bool) {
	for _, o := range d.options {
		if o.Name == name {
			return o, true
		}
	}
	return DishOption{}, false
}

// DishChanges lists the fields replaced by Edit. Nil fields are kept; a
// non-nil Options replaces the whole option list.
type DishChanges struct {
	Name        *string
	Price       *kernel.Price
	Photo       *string
	Description *string
	Options     *[]DishOption
}

// Edit applies changes atomically: on error the dish keeps its state.
func (d *Dish) Edit(changes DishChanges) error {
	next := *d

	var errList []error
	if changes.Name != nil {
		errList = append(errList, next.setName(*changes.Name))
	}
	if changes.Description != nil {
		errList = append(errList, next.setDescription(*changes.Description))
	}
	if changes.Options != nil {
		errList = append(errList, next.setOptions(*changes.Options))
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if changes.Price != nil {
		next.price = *changes.Price
	}
	if changes.Photo != nil {
		next.photo = *changes.Photo
	}
	*d = next
	return nil
}

// AssignID records the identity generated by storage. It can only happen once.
func (d *Dish) AssignID(id kernel.ID) error {
	if !d.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("dish already has id %s", d.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dish) setName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 5 {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q is shorter than 5 characters", name))
	}
	d.name = name
	return nil
}

func (d *Dish) setDescription(description string) error {
	description = strings.TrimSpace(description)
	if len(description) < 5 || len(description) > 140 {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 5, 140)
	}
	d.description = description
	return nil
}

func (d *Dish) setOptions(options []DishOption) error {
	for i, o := range options {
		if strings.TrimSpace(o.Name) == "" {
			return errs.NewValueIsRequiredErrorWithCause("option name", fmt.Errorf("option #%d has no name", i))
		}
	}
	d.options = append([]DishOption(nil), options...)
	return nil
}
