package kernel

import (
	"fmt"
	"strconv"

	"eats/internal/pkg/errs"
)

// ErrIDIsNotAssigned indicates that an ID is still the zero value, usually because
// the owning entity has not been persisted yet.
var ErrIDIsNotAssigned = errs.NewValueIsRequiredError("ID must be assigned by storage or created via NewID")

// ID identifies an entity. Identities are generated by the storage collaborator
// when an entity is first saved, so the zero value means "not persisted yet".
//
// Example:
//
//	id, err := kernel.NewID(42)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(id) // 42
type ID struct {
	value int64
}

// NewID creates an ID from a positive integer.
func NewID(value int64) (ID, error) {
	if value <= 0 {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is not greater than 0", value))
	}
	return ID{value: value}, nil
}

// MustNewID is NewID for literals known to be valid. It panics otherwise.
func MustNewID(value int64) ID {
	id, err := NewID(value)
	if err != nil {
		panic(err)
	}
	return id
}

// IDFromString parses a decimal ID, as received in path parameters and headers.
func IDFromString(s string) (ID, error) {
	value, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return ID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return NewID(value)
}

// Int64 returns the raw identity value.
func (id ID) Int64() int64 {
	return id.value
}

// String returns the decimal representation.
func (id ID) String() string {
	return strconv.FormatInt(id.value, 10)
}

// IsEqual reports whether both IDs denote the same entity.
func (id ID) IsEqual(other ID) bool {
	return id.value == other.value
}

// IsZero reports whether the ID has not been assigned.
func (id ID) IsZero() bool {
	return id.value == 0
}

// Validate returns ErrIDIsNotAssigned for the zero value.
func (id ID) Validate() error {
	if id.IsZero() {
		return ErrIDIsNotAssigned
	}
	return nil
}
