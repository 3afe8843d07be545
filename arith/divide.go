// Package arith holds a floating-point divider that treats a zero
// denominator as an error instead of returning ±Inf.
package arith

import (
	"errors"
	"fmt"
	"log"
	"math"
)

// ErrDivideByZero is returned by Quotient when the denominator is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// Quotient returns num/den. IEEE 754 division by zero does not fail on its
// own (10/0 is +Inf), so the zero denominator is checked explicitly; the
// result is then NaN together with an error wrapping ErrDivideByZero.
// -0.0 counts as zero.
func Quotient(num, den float64) (float64, error) {
	if den == 0 {
		return math.NaN(), fmt.Errorf("divide %g by %g: %w", num, den, ErrDivideByZero)
	}
	return num / den, nil
}

// Divide is Quotient with the error recovered: the failure is logged and the
// caller only sees NaN. A nil logger means log.Default().
func Divide(logger *log.Logger, num, den float64) float64 {
	q, err := Quotient(num, den)
	if err != nil {
		if logger == nil {
			logger = log.Default()
		}
		logger.Printf("error: %v", err)
		return math.NaN()
	}
	return q
}
