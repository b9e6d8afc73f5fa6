// Package safeint: explicit, fallible cross-width conversion.
//
// Narrowing is never silent: a source value outside the destination
// range is rejected with the sentinel naming the violated bound.
// int64 covers every Signed width, so the range check widens both
// sides into it before comparing.

package safeint

// Convert wraps a raw scalar of one signed width as a SafeInt of
// another. It succeeds only when the value is representable in To;
// otherwise it fails ErrOverflow or ErrUnderflow depending on which
// bound the value violates, returning the zero SafeInt.
//
// The destination width is given explicitly, the source is inferred:
//
//	wide := int64(40_000)
//	_, err := safeint.Convert[int16](wide) // ErrOverflow: 40000 > 32767
func Convert[To, From Signed](v From) (SafeInt[To], error) {
	switch {
	case int64(v) > int64(MaxOf[To]()):
		return SafeInt[To]{}, ErrOverflow
	case int64(v) < int64(MinOf[To]()):
		return SafeInt[To]{}, ErrUnderflow
	}
	return SafeInt[To]{val: To(v)}, nil
}

// ConvertSafe converts a SafeInt of one width to a SafeInt of another,
// with the same representability rule as Convert.
func ConvertSafe[To, From Signed](s SafeInt[From]) (SafeInt[To], error) {
	return Convert[To](s.val)
}
