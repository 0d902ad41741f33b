package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingType is returned when a schema has no usable "type" key.
	ErrMissingType = errors.New("schema: missing type")

	// ErrUnknownType is returned when no validator can handle the declared type.
	ErrUnknownType = errors.New("schema: unknown type")

	// ErrInvalidConstraint is returned when a constraint key holds a value of the wrong shape.
	ErrInvalidConstraint = errors.New("schema: invalid constraint")

	// ErrNotFingerprintable is returned when a schema contains values that cannot be canonically encoded.
	ErrNotFingerprintable = errors.New("schema: cannot fingerprint")
)

// ConfigError describes a problem found while compiling a schema.
// It is disjoint from per-value validation failures.
type ConfigError struct {
	Key    string
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%v: %s", e.Err, e.Reason)
	}
	return fmt.Sprintf("%v: %q %s", e.Err, e.Key, e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

func invalid(key, format string, args ...any) error {
	return &ConfigError{Key: key, Reason: fmt.Sprintf(format, args...), Err: ErrInvalidConstraint}
}

// IsConfigError reports whether err is a build-time schema error.
func IsConfigError(err error) bool {
	var cerr *ConfigError
	return errors.As(err, &cerr)
}
