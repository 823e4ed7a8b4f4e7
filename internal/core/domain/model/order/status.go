package order

import (
	"errors"
	"fmt"

	"orderdesk/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	Created ──> Informed ──> Paid
//	               │  ▲
//	               └──┘
//	  (customer info can be resubmitted until paid)
//
// Paid is terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Created is the initial status: priced, no customer info yet.
	Created

	// Informed indicates email and shipping address are present and the tax
	// has been recomputed with the province rate.
	Informed

	// Paid indicates the payment gateway accepted the charge.
	Paid
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "Unknown",
		Created:  "Created",
		Informed: "Informed",
		Paid:     "Paid",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Created:  "Created",
		Informed: "Informed",
		Paid:     "Paid",
	}
}

// Validate checks if the Status value is one of Created, Informed, Paid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status, "Unknown" for
// invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsPaid reports whether the order reached its terminal state.
func (s Status) IsPaid() bool {
	return s == Paid
}

// ValidateSetCustomerInfo checks that customer info can be (re)submitted.
//
// Returns:
//   - nil for Created and Informed
//   - ErrOrderIsAlreadyPaid for Paid
//   - ValueIsInvalidError for any other value
func (s Status) ValidateSetCustomerInfo() error {
	switch s {
	case Created, Informed:
		return nil
	case Paid:
		return ErrOrderIsAlreadyPaid
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to set customer info", s.String()),
		)
	}
}

// ValidatePay checks that the order can be charged. Missing customer info is
// reported before the paid check.
//
// Returns:
//   - nil for Informed
//   - ValueIsRequiredError for Created
//   - ErrOrderIsAlreadyPaid for Paid
//   - ValueIsInvalidError for any other value
func (s Status) ValidatePay() error {
	switch s {
	case Informed:
		return nil
	case Created:
		return errs.NewValueIsRequiredErrorWithCause(
			"shipping_information",
			errors.New("customer info must be set before paying"),
		)
	case Paid:
		return ErrOrderIsAlreadyPaid
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to pay", s.String()),
		)
	}
}

// ValidateCanHaveCustomerInfo checks that customer info is present exactly
// when the status requires it: Created orders have none, Informed and Paid
// orders have both email and shipping address.
func (s Status) ValidateCanHaveCustomerInfo(hasCustomerInfo bool) error {
	if hasCustomerInfo && s == Created {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have customer info", s.String()),
		)
	}

	if !hasCustomerInfo && (s == Informed || s == Paid) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no customer info", s.String()),
		)
	}

	return nil
}

// SetCustomerInfo transitions Created or Informed to Informed.
func (s Status) SetCustomerInfo() (Status, error) {
	if err := s.ValidateSetCustomerInfo(); err != nil {
		return 0, err
	}

	return Informed, nil
}

// Pay transitions Informed to Paid.
func (s Status) Pay() (Status, error) {
	if err := s.ValidatePay(); err != nil {
		return 0, err
	}

	return Paid, nil
}
