package booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBookingID is returned for identifiers that are not ObjectID hex strings.
	ErrInvalidBookingID = errors.New("invalid booking id")
	// ErrBookingNotFound is returned when a payment targets an unknown booking.
	ErrBookingNotFound = errors.New("booking not found")
)

// StoreError wraps a persistence failure with the operation that produced it.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

func storeError(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}
