package kernel

import (
	"fmt"

	"courier/internal/pkg/errs"
	"courier/internal/pkg/guard"
)

// PhoneLength is the exact number of digits a phone number must contain.
const PhoneLength = 10

// ErrPhoneIsNotConstructed is returned when attempting to use an improperly
// initialized Phone. Phones must be created via NewPhone.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone constructor")

// Phone is a validated 10-digit phone number. It is an immutable value
// object; the zero value is invalid and fails Validate.
//
// Example:
//
//	phone, err := kernel.NewPhone("5551234567")
//	if err != nil {
//	    // not exactly 10 digits
//	}
type Phone struct {
	digits string
	guard  guard.ConstructorGuard
}

// NewPhone creates a Phone from a string of exactly ten ASCII digits.
// Anything else, including separators or country prefixes, is rejected.
func NewPhone(s string) (Phone, error) {
	if s == "" {
		return Phone{}, errs.NewValueIsRequiredError("phone")
	}
	if len(s) != PhoneLength {
		return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
			fmt.Errorf("%q is not exactly %d digits", s, PhoneLength))
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return Phone{}, errs.NewValueIsInvalidErrorWithCause("phone",
				fmt.Errorf("%q contains a non-digit character", s))
		}
	}

	return Phone{digits: s, guard: guard.NewConstructorGuard()}, nil
}

// Validate checks the Phone was created via NewPhone.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// String returns the raw ten-digit string.
func (p Phone) String() string {
	return p.digits
}

// IsEqual reports whether two phone numbers are digit-for-digit identical.
func (p Phone) IsEqual(other Phone) bool {
	return p.digits == other.digits
}
