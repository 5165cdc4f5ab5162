package ctqmc

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSolver is returned when a solver name matches no variant
	ErrUnknownSolver = errors.New("unrecognized quantum impurity solver")
	// ErrWrongKey is returned when an override names a key the solver does not know
	ErrWrongKey = errors.New("wrong key")
	// ErrWrongValue is returned when an override's type differs from the default's
	ErrWrongValue = errors.New("wrong value")
)

// KeyError reports an override key that is absent from the baseline
type KeyError struct {
	Key     string
	Variant Variant
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("wrong key %s for solver %s", e.Key, e.Variant)
}

func (e *KeyError) Unwrap() error {
	return ErrWrongKey
}

// ValueError reports an override whose type differs from the baseline default
type ValueError struct {
	Key   string
	Value Value
	Want  Kind
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("wrong value %s = %s (got %s, want %s)", e.Key, e.Value, e.Value.Kind(), e.Want)
}

func (e *ValueError) Unwrap() error {
	return ErrWrongValue
}
