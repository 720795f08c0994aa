package restaurant

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// PromotionPeriod is how long a payment keeps a restaurant promoted.
const PromotionPeriod = 7 * 24 * time.Hour

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant or RestoreRestaurant")

// Restaurant is owned by one Owner account and groups the dishes of its menu.
type Restaurant struct {
	id            kernel.ID
	name          string
	address       string
	coverImage    string
	ownerID       kernel.ID
	categoryID    *kernel.ID
	isPromoted    bool
	promotedUntil *time.Time

	isConstructed bool
}

// NewRestaurant creates a restaurant that is not promoted yet.
func NewRestaurant(name, address, coverImage string, ownerID kernel.ID, categoryID *kernel.ID) (*Restaurant, error) {
	r := &Restaurant{isConstructed: true, coverImage: coverImage, categoryID: categoryID}
	if err := errors.Join(
		r.setName(name),
		r.setAddress(address),
		ownerID.Validate(),
	); err != nil {
		return nil, err
	}
	r.ownerID = ownerID
	return r, nil
}

// RestoreRestaurant rebuilds a persisted restaurant.
func RestoreRestaurant(
	id kernel.ID,
	name, address, coverImage string,
	ownerID kernel.ID,
	categoryID *kernel.ID,
	isPromoted bool,
	promotedUntil *time.Time,
) (*Restaurant, error) {
	r, err := NewRestaurant(name, address, coverImage, ownerID, categoryID)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	r.id = id
	r.isPromoted = isPromoted
	r.promotedUntil = promotedUntil
	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRestaurantIsNotConstructed
	}
	return nil
}

func (r *Restaurant) ID() kernel.ID             { return r.id }
func (r *Restaurant) Name() string              { return r.name }
func (r *Restaurant) Address() string           { return r.address }
func (r *Restaurant) CoverImage() string        { return r.coverImage }
func (r *Restaurant) OwnerID() kernel.ID        { return r.ownerID }
func (r *Restaurant) CategoryID() *kernel.ID    { return r.categoryID }
func (r *Restaurant) IsPromoted() bool          { return r.isPromoted }
func (r *Restaurant) PromotedUntil() *time.Time { return r.promotedUntil }

// IsOwnedBy reports whether ownerID owns the restaurant.
func (r *Restaurant) IsOwnedBy(ownerID kernel.ID) bool {
	return r.ownerID.IsEqual(ownerID)
}

// AssignID records the identity generated by storage. It can only happen once.
func (r *Restaurant) AssignID(id kernel.ID) error {
	if !r.id.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("restaurant already has id %s", r.id))
	}
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

// RestaurantChanges lists the fields replaced by Edit. Nil fields are kept.
type RestaurantChanges struct {
	Name       *string
	Address    *string
	CoverImage *string
	CategoryID *kernel.ID
}

// Edit applies changes. When one of them is invalid the restaurant is left
// untouched and all violations are returned.
func (r *Restaurant) Edit(changes RestaurantChanges) error {
	next := *r

	var errList []error
	if changes.Name != nil {
		errList = append(errList, next.setName(*changes.Name))
	}
	if changes.Address != nil {
		errList = append(errList, next.setAddress(*changes.Address))
	}
	if changes.CategoryID != nil {
		errList = append(errList, changes.CategoryID.Validate())
		id := *changes.CategoryID
		next.categoryID = &id
	}
	if err := errors.Join(errList...); err != nil {
		return err
	}

	if changes.CoverImage != nil {
		next.coverImage = *changes.CoverImage
	}
	*r = next
	return nil
}

// Promote marks the restaurant as promoted for PromotionPeriod starting at now.
// Promoting an already promoted restaurant restarts the period.
func (r *Restaurant) Promote(now time.Time) {
	until := now.Add(PromotionPeriod)
	r.isPromoted = true
	r.promotedUntil = &until
}

// ExpirePromotion lifts the promotion when its period ended at or before now.
// It returns true when the restaurant changed.
func (r *Restaurant) ExpirePromotion(now time.Time) bool {
	if !r.isPromoted || r.promotedUntil == nil || r.promotedUntil.After(now) {
		return false
	}
	r.isPromoted = false
	r.promotedUntil = nil
	return true
}

func (r *Restaurant) setName(name string) error {
	name = strings.TrimSpace(name)
	if len(name) < 5 {
		return errs.NewValueIsInvalidErrorWithCause("name", fmt.Errorf("%q is shorter than 5 characters", name))
	}
	r.name = name
	return nil
}

func (r *Restaurant) setAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return errs.NewValueIsRequiredError("address")
	}
	r.address = address
	return nil
}
