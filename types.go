// This file declares the Signed constraint, the SafeInt value type,
// its sentinel errors, and the width-bound helpers MinOf and MaxOf.
//
// Errors:
//
//	ErrOverflow  - true result exceeds MaxOf[W].
//	ErrUnderflow - true result is below MinOf[W].
//	ErrDomain    - division or modulo by zero.

package safeint

import "errors"

// Sentinel errors for checked arithmetic. Match with errors.Is.
var (
	// ErrOverflow indicates the mathematically exact result exceeds
	// the maximum representable value of the underlying width.
	ErrOverflow = errors.New("safeint: result exceeds maximum representable value")

	// ErrUnderflow indicates the mathematically exact result is below
	// the minimum representable value of the underlying width.
	ErrUnderflow = errors.New("safeint: result below minimum representable value")

	// ErrDomain indicates the operation is mathematically undefined
	// for the given operands (division or modulo by zero).
	ErrDomain = errors.New("safeint: operation undefined for operands")
)

// Signed is the set of underlying signed integer widths SafeInt wraps.
type Signed interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64
}

// SafeInt wraps a signed integer of width W and guarantees the stored
// value is always a valid member of [MinOf[W], MaxOf[W]]: operations
// that would wrap around fail instead, leaving the value untouched.
//
// SafeInt is a plain value type — copy it freely, compare with ==.
// Concurrent mutation of the same instance needs the same external
// synchronization as a plain scalar would.
type SafeInt[W Signed] struct {
	val W
}

// New wraps a raw scalar of width W. A value of type W is representable
// by definition, so construction cannot fail.
func New[W Signed](v W) SafeInt[W] {
	return SafeInt[W]{val: v}
}

// Value returns the wrapped scalar. Unwrapping is deliberately
// explicit so the value does not leak into unchecked arithmetic
// by accident.
func (s SafeInt[W]) Value() W {
	return s.val
}

// Set overwrites the stored value with a raw scalar of the same width.
// Same-width assignment is always representable and never fails.
func (s *SafeInt[W]) Set(v W) {
	s.val = v
}

// Cmp compares the wrapped values: -1 if s < rhs, 0 if equal, +1 if s > rhs.
// Comparison is not safety-relevant; it never fails.
func (s SafeInt[W]) Cmp(rhs SafeInt[W]) int {
	switch {
	case s.val < rhs.val:
		return -1
	case s.val > rhs.val:
		return 1
	}
	return 0
}

// MaxOf returns the largest value representable by W.
//
// The probe doubles until the next candidate wraps past the sign bit;
// signed overflow is well defined in Go (two's complement), so the
// loop terminates at exactly 2^(bits-1)-1.
func MaxOf[W Signed]() W {
	max := W(1)
	for next := max<<1 | 1; next > max; next = next<<1 | 1 {
		max = next
	}
	return max
}

// MinOf returns the smallest value representable by W.
// Two's-complement asymmetry: MinOf[W] == -MaxOf[W]-1.
func MinOf[W Signed]() W {
	return -MaxOf[W]() - 1
}
