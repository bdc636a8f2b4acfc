package planner

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a slug does not resolve to a BBQ.
	ErrNotFound = errors.New("bbq not found")

	// ErrInvalidDate is returned when a commit names a date that is not
	// one of the BBQ's proposed dates.
	ErrInvalidDate = errors.New("date is not one of the proposed dates")
)

// DispatchError signals a partial success: the date was committed but the
// confirmation batch failed to go out. The commit is never rolled back.
type DispatchError struct {
	Err error
}

func (e *DispatchError) Error() string {
	return fmt.Sprintf("date committed but confirmation dispatch failed: %v", e.Err)
}

func (e *DispatchError) Unwrap() error {
	return e.Err
}
