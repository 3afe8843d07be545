// Package agecheck validates that an age lies in an inclusive range and
// reports violations with a structured error type.
package agecheck

import (
	"errors"
	"fmt"
)

// Inclusive bounds of a valid age.
const (
	MinAge = 18
	MaxAge = 100
)

// ErrAgeOutOfRange matches any *ValidationError through errors.Is.
var ErrAgeOutOfRange = errors.New("age out of range")

// ValidationError carries the rejected age and the range it was checked
// against. Callers extract it with errors.As.
type ValidationError struct {
	Age int
	Min int
	Max int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("age %d out of allowed range (%d-%d)", e.Age, e.Min, e.Max)
}

// Is lets errors.Is(err, ErrAgeOutOfRange) succeed for any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrAgeOutOfRange
}

// Validate returns nil when MinAge <= age <= MaxAge and a *ValidationError
// otherwise.
func Validate(age int) error {
	if age < MinAge || age > MaxAge {
		return &ValidationError{Age: age, Min: MinAge, Max: MaxAge}
	}
	return nil
}

// Describe returns a confirmation message for a valid age.
func Describe(age int) (string, error) {
	if err := Validate(age); err != nil {
		return "", err
	}
	return fmt.Sprintf("age %d is valid", age), nil
}
