package movement

import (
	"errors"
	"fmt"
)

var (
	ErrItemNotFound   = errors.New("item not found")
	ErrAlreadyShipped = errors.New("item already shipped")
	ErrSameLocation   = errors.New("item already at target location")
	ErrItemRemoved    = errors.New("item removed")
	// ErrNoKeys is returned when a call names no usable key.
	ErrNoKeys = errors.New("no item keys given")
	// ErrInvalidRequest reports a request missing a required field.
	ErrInvalidRequest = errors.New("invalid request")
)

// PreconditionError is the expected failure of one key. It never aborts the
// other keys of the same call.
type PreconditionError struct {
	Key string
	Err error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Err)
}

func (e *PreconditionError) Unwrap() error {
	return e.Err
}

// Code returns a stable identifier for the violated precondition.
func (e *PreconditionError) Code() string {
	switch {
	case errors.Is(e.Err, ErrItemNotFound):
		return "not_found"
	case errors.Is(e.Err, ErrAlreadyShipped):
		return "already_shipped"
	case errors.Is(e.Err, ErrSameLocation):
		return "same_location"
	case errors.Is(e.Err, ErrItemRemoved):
		return "removed"
	}
	return "precondition_failed"
}

func violated(key string, err error) error {
	return &PreconditionError{Key: key, Err: err}
}
