package common

import (
	"errors"
	"fmt"

	"techblog/logger"
)

// ErrNotFound marks lookups for posts, users, or comments that do not exist.
// Controllers translate it to 404.
var ErrNotFound = errors.New("not found")

// ErrValidation marks rejected input (short password, malformed email,
// duplicate email). Controllers translate it to 400.
var ErrValidation = errors.New("validation failed")

func NewErrorf(format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	return errors.New(msg)
}

// NewNotFoundf wraps ErrNotFound with a formatted message.
func NewNotFoundf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrNotFound)...)
}

// NewValidationf wraps ErrValidation with a formatted message.
func NewValidationf(format string, a ...any) error {
	return fmt.Errorf(format+": %w", append(a, ErrValidation)...)
}

// Combine merges multiple errors into one, dropping nils.
func Combine(errs ...error) error {
	var combined error
	for _, err := range errs {
		if err == nil {
			continue
		}
		if combined == nil {
			combined = err
		} else {
			combined = fmt.Errorf("%v; %w", combined, err)
		}
	}
	return combined
}

func Recover(msg string) any {
	panicErr := recover()
	if panicErr != nil {
		if msg != "" {
			logger.Error(msg, "panic:", panicErr)
		}
	}
	return panicErr
}
