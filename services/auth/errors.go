package auth

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors are recoverable by the caller and are translated to
// distinct client-facing messages at the handler boundary. Anything
// else bubbling out of the usecase is an infrastructure fault.
var (
	ErrOTPNotFound            = errors.New("no OTP found for this phone number")
	ErrOTPExpired             = errors.New("OTP has expired")
	ErrOTPAlreadyUsed         = errors.New("OTP has already been used")
	ErrInvalidOTP             = errors.New("invalid OTP")
	ErrIdentityNotFound       = errors.New("identity not found")
	ErrPhoneAlreadyRegistered = errors.New("phone number is already registered")
	ErrInvalidCredentials     = errors.New("invalid phone number or password")
	ErrInvalidPhoneNumber     = errors.New("invalid phone number format")
	ErrInvalidUserType        = errors.New("user type must be supplier, client or admin")
)

// ValidationError reports the required fields missing from a request
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}
