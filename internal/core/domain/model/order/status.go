package order

import (
	"fmt"

	"eats/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// Nominal path:
//
//	Pending ──> Cooking ──> Cooked ──> PickedUp ──> Delivered
//
// The path is descriptive only. ChangeStatus accepts any valid target, so an
// owner may go straight from Pending to Cooked and Delivered is not terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Pending
	Cooking
	Cooked
	PickedUp
	Delivered
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Cooking:   "Cooking",
		Cooked:    "Cooked",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
	}
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	if s <= Unknown || s > Delivered {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ParseStatus converts the wire/persisted name of a status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// AllStatuses lists the valid statuses in nominal order.
func AllStatuses() []Status {
	return []Status{Pending, Cooking, Cooked, PickedUp, Delivered}
}
