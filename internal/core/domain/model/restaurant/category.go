package restaurant

import (
	"strings"

	"eats/internal/core/domain/model/kernel"
	"eats/internal/pkg/errs"
)

// Category groups restaurants. Categories are identified by their slug.
type Category struct {
	id   kernel.ID
	name string
	slug string
}

// NewCategory normalizes name (lowercase, trimmed) and derives the slug by
// replacing spaces with dashes.
func NewCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	if normalized == "" {
		return Category{}, errs.NewValueIsRequiredError("category name")
	}
	return Category{name: normalized, slug: strings.ReplaceAll(normalized, " ", "-")}, nil
}

// RestoreCategory rebuilds a persisted category.
func RestoreCategory(id kernel.ID, name, slug string) (Category, error) {
	if err := id.Validate(); err != nil {
		return Category{}, err
	}
	return Category{id: id, name: name, slug: slug}, nil
}

func (c Category) ID() kernel.ID { return c.id }
func (c Category) Name() string  { return c.name }
func (c Category) Slug() string  { return c.slug }
