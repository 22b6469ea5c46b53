package errors

import (
	"errors"
	"fmt"
)

// Common error types for the Legal Suite client
var (
	// Request errors
	ErrUnauthorized  = errors.New("unauthorized")
	ErrNotFound      = errors.New("not found")
	ErrValidation    = errors.New("validation failed")
	ErrOutOfSequence = errors.New("flow step out of sequence")

	// Session file errors
	ErrSessionFileCorrupt = errors.New("session file corrupt")
	ErrWrongPassphrase    = errors.New("session file passphrase incorrect")
	ErrPassphraseRequired = errors.New("session file is encrypted, passphrase required")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
