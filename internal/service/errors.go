package service

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidCredentials covers both unknown email and wrong password,
	// deliberately indistinguishable to the client.
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrWrongTokenKind = errors.New("invalid token type")
	ErrEmailTaken     = errors.New("email already registered")
	ErrAccessDenied   = errors.New("access denied")
)

// ValidationError carries field-level failures. Services stay language
// agnostic; the handler converts this into a localized VALIDATION_ERROR.
type ValidationError struct {
	Details map[string][]string
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Details))
	for field := range e.Details {
		fields = append(fields, field)
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}
