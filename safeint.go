// Package safeint: checked arithmetic kernels and operator methods.
//
// One kernel per operator (checkedAdd, checkedSub, checkedMul,
// checkedDiv, checkedMod, checkedNeg) holds the boundary conditions;
// the exported methods are thin adapters over them for each accepted
// right-hand-side shape (SafeInt or raw scalar) and mutation mode
// (returning a fresh value or compound-assigning into the receiver).
// Every kernel returns the untouched operand alongside the error, so
// a failed compound assignment never writes.

package safeint

// checkedNeg returns -val, or ErrOverflow when val == MinOf[W]:
// -MinOf[W] is MaxOf[W]+1 and cannot be represented.
func checkedNeg[W Signed](val W) (W, error) {
	if val < -MaxOf[W]() {
		return val, ErrOverflow
	}
	return -val, nil
}

// checkedAdd returns val+rhs with wraparound detected up front.
func checkedAdd[W Signed](val, rhs W) (W, error) {
	switch {
	case rhs > 0 && val > MaxOf[W]()-rhs:
		return val, ErrOverflow
	case rhs < 0 && val < MinOf[W]()-rhs:
		return val, ErrUnderflow
	}
	return val + rhs, nil
}

// checkedSub returns val-rhs with wraparound detected up front.
//
// The rhs < -MaxOf[W] guard is the asymmetry case: subtracting a value
// more negative than -MaxOf[W] from any non-negative val lands above
// MaxOf[W], yet MaxOf[W]+rhs in the general guard would itself wrap.
func checkedSub[W Signed](val, rhs W) (W, error) {
	max := MaxOf[W]()
	if val >= 0 && rhs < -max {
		return val, ErrOverflow
	}
	switch {
	case rhs < 0 && val > max+rhs:
		return val, ErrOverflow
	case rhs > 0 && val < MinOf[W]()+rhs:
		return val, ErrUnderflow
	}
	return val - rhs, nil
}

// checkedMul returns val*rhs with wraparound detected up front.
//
// For val > 0 the bound rhs > MaxOf[W]/val uses truncating division;
// for positive rhs it is exact (val*(MaxOf/val+1) always lands above
// MaxOf). The val < 0 branch first catches the MinOf-times-minus-one
// overflow class, then probes the underflow bound MinOf[W]/val.
// The probe is skipped for val == -1: its exact bound, MinOf/-1, is
// MaxOf+1 and therefore above every representable rhs, while the
// expression itself would wrap if evaluated in W.
func checkedMul[W Signed](val, rhs W) (W, error) {
	max := MaxOf[W]()
	switch {
	case val > 0:
		if rhs > max/val {
			return val, ErrOverflow
		}
	case val < 0:
		if (val < -max || rhs < -max) && (val == -1 || rhs == -1) {
			return val, ErrOverflow
		}
		if val != -1 && rhs > MinOf[W]()/val {
			return val, ErrUnderflow
		}
	}
	return val * rhs, nil
}

// checkedDiv returns the truncating quotient val/rhs.
//
// MinOf[W] / -1 (and its mirror with a MinOf divisor) is rejected
// before the zero check: the quotient lands at MaxOf[W]+1.
func checkedDiv[W Signed](val, rhs W) (W, error) {
	max := MaxOf[W]()
	if (val < -max || rhs < -max) && (val == -1 || rhs == -1) {
		return val, ErrUnderflow
	}
	if rhs == 0 {
		return val, ErrDomain
	}
	return val / rhs, nil
}

// checkedMod returns the remainder of truncating division. The
// remainder's magnitude is bounded by the divisor's, so only the
// zero divisor can fail.
func checkedMod[W Signed](val, rhs W) (W, error) {
	if rhs == 0 {
		return val, ErrDomain
	}
	return val % rhs, nil
}

// Pos is unary plus: the identity, provided for symmetry with Neg.
func (s SafeInt[W]) Pos() SafeInt[W] {
	return s
}

// Neg is unary minus. Fails ErrOverflow exactly when the stored value
// is MinOf[W], whose negation is not representable.
func (s SafeInt[W]) Neg() (SafeInt[W], error) {
	v, err := checkedNeg(s.val)
	return SafeInt[W]{val: v}, err
}

// Inc is the pre-increment form: on success the receiver is advanced
// by one and the new value is returned. Fails ErrOverflow at
// MaxOf[W], leaving the receiver untouched.
func (s *SafeInt[W]) Inc() (SafeInt[W], error) {
	if s.val == MaxOf[W]() {
		return *s, ErrOverflow
	}
	s.val++
	return *s, nil
}

// IncPost is the post-increment form: on success the receiver is
// advanced by one and the prior value is returned. Fails ErrOverflow
// at MaxOf[W], leaving the receiver untouched.
func (s *SafeInt[W]) IncPost() (SafeInt[W], error) {
	if s.val == MaxOf[W]() {
		return *s, ErrOverflow
	}
	prev := *s
	s.val++
	return prev, nil
}

// Dec is the pre-decrement form: on success the receiver is lowered
// by one and the new value is returned. Fails ErrUnderflow at
// MinOf[W], leaving the receiver untouched.
func (s *SafeInt[W]) Dec() (SafeInt[W], error) {
	if s.val == MinOf[W]() {
		return *s, ErrUnderflow
	}
	s.val--
	return *s, nil
}

// DecPost is the post-decrement form: on success the receiver is
// lowered by one and the prior value is returned. Fails ErrUnderflow
// at MinOf[W], leaving the receiver untouched.
func (s *SafeInt[W]) DecPost() (SafeInt[W], error) {
	if s.val == MinOf[W]() {
		return *s, ErrUnderflow
	}
	prev := *s
	s.val--
	return prev, nil
}

// Add returns s+rhs without mutating s.
// Fails ErrOverflow / ErrUnderflow by which bound the exact sum violates.
func (s SafeInt[W]) Add(rhs SafeInt[W]) (SafeInt[W], error) {
	return s.AddScalar(rhs.val)
}

// AddScalar returns s+rhs for a raw scalar rhs without mutating s.
func (s SafeInt[W]) AddScalar(rhs W) (SafeInt[W], error) {
	v, err := checkedAdd(s.val, rhs)
	return SafeInt[W]{val: v}, err
}

// AddAssign adds rhs into the receiver. On failure the stored value
// is left exactly as it was.
func (s *SafeInt[W]) AddAssign(rhs SafeInt[W]) error {
	return s.AddAssignScalar(rhs.val)
}

// AddAssignScalar adds a raw scalar rhs into the receiver.
func (s *SafeInt[W]) AddAssignScalar(rhs W) error {
	v, err := checkedAdd(s.val, rhs)
	if err != nil {
		return err
	}
	s.val = v
	return nil
}

// Sub returns s-rhs without mutating s.
func (s SafeInt[W]) Sub(rhs SafeInt[W]) (SafeInt[W], error) {
	return s.SubScalar(rhs.val)
}

// SubScalar returns s-rhs for a raw scalar rhs without mutating s.
func (s SafeInt[W]) SubScalar(rhs W) (SafeInt[W], error) {
	v, err := checkedSub(s.val, rhs)
	return SafeInt[W]{val: v}, err
}

// SubAssign subtracts rhs from the receiver. On failure the stored
// value is left exactly as it was.
func (s *SafeInt[W]) SubAssign(rhs SafeInt[W]) error {
	return s.SubAssignScalar(rhs.val)
}

// SubAssignScalar subtracts a raw scalar rhs from the receiver.
func (s *SafeInt[W]) SubAssignScalar(rhs W) error {
	v, err := checkedSub(s.val, rhs)
	if err != nil {
		return err
	}
	s.val = v
	return nil
}

// Mul returns s*rhs without mutating s.
func (s SafeInt[W]) Mul(rhs SafeInt[W]) (SafeInt[W], error) {
	return s.MulScalar(rhs.val)
}

// MulScalar returns s*rhs for a raw scalar rhs without mutating s.
func (s SafeInt[W]) MulScalar(rhs W) (SafeInt[W], error) {
	v, err := checkedMul(s.val, rhs)
	return SafeInt[W]{val: v}, err
}

// MulAssign multiplies the receiver by rhs. On failure the stored
// value is left exactly as it was.
func (s *SafeInt[W]) MulAssign(rhs SafeInt[W]) error {
	return s.MulAssignScalar(rhs.val)
}

// MulAssignScalar multiplies the receiver by a raw scalar rhs.
func (s *SafeInt[W]) MulAssignScalar(rhs W) error {
	v, err := checkedMul(s.val, rhs)
	if err != nil {
		return err
	}
	s.val = v
	return nil
}

// Div returns the truncating quotient s/rhs without mutating s.
// Fails ErrDomain on a zero divisor and ErrUnderflow on the
// MinOf[W]/-1 class.
func (s SafeInt[W]) Div(rhs SafeInt[W]) (SafeInt[W], error) {
	return s.DivScalar(rhs.val)
}

// DivScalar returns the truncating quotient s/rhs for a raw scalar rhs.
func (s SafeInt[W]) DivScalar(rhs W) (SafeInt[W], error) {
	v, err := checkedDiv(s.val, rhs)
	return SafeInt[W]{val: v}, err
}

// DivAssign divides the receiver by rhs. On failure the stored value
// is left exactly as it was.
func (s *SafeInt[W]) DivAssign(rhs SafeInt[W]) error {
	return s.DivAssignScalar(rhs.val)
}

// DivAssignScalar divides the receiver by a raw scalar rhs.
func (s *SafeInt[W]) DivAssignScalar(rhs W) error {
	v, err := checkedDiv(s.val, rhs)
	if err != nil {
		return err
	}
	s.val = v
	return nil
}

// Mod returns the remainder of s/rhs without mutating s, with the
// sign convention of Go's truncating division. Fails ErrDomain on a
// zero divisor.
func (s SafeInt[W]) Mod(rhs SafeInt[W]) (SafeInt[W], error) {
	return s.ModScalar(rhs.val)
}

// ModScalar returns the remainder of s/rhs for a raw scalar rhs.
func (s SafeInt[W]) ModScalar(rhs W) (SafeInt[W], error) {
	v, err := checkedMod(s.val, rhs)
	return SafeInt[W]{val: v}, err
}

// ModAssign reduces the receiver modulo rhs. On failure the stored
// value is left exactly as it was.
func (s *SafeInt[W]) ModAssign(rhs SafeInt[W]) error {
	return s.ModAssignScalar(rhs.val)
}

// ModAssignScalar reduces the receiver modulo a raw scalar rhs.
func (s *SafeInt[W]) ModAssignScalar(rhs W) error {
	v, err := checkedMod(s.val, rhs)
	if err != nil {
		return err
	}
	s.val = v
	return nil
}
