// Package safeint provides SafeInt[W], a generic wrapper around the
// signed integer widths that detects overflow, underflow, and
// division-by-zero before they corrupt the stored value.
//
// 🚀 What is SafeInt?
//
//	A drop-in replacement for a plain signed integer wherever silent
//	two's-complement wraparound is unacceptable:
//	  • Financial counters & balances
//	  • Indices and offsets fed by untrusted input
//	  • Resource/quota accounting
//
// ✨ Key guarantees:
//   - Every arithmetic operation is checked against [MinOf[W], MaxOf[W]]
//     before the result is stored; a failing operation reports
//     ErrOverflow, ErrUnderflow, or ErrDomain and leaves the operand
//     exactly as it was (strong failure-atomicity).
//   - Cross-width conversion is explicit and fallible — narrowing is
//     never silent.
//   - Pure value semantics: no locks, no allocation, no hidden state.
//
// ⚙️ Usage:
//
//	import safeint "github.com/JL2210/safe-integer"
//
//	balance := safeint.New[int64](900)
//	sum, err := balance.AddScalar(100)       // 1000
//	if err != nil {
//	  // errors.Is(err, safeint.ErrOverflow) etc.
//	}
//
//	small, err := safeint.Convert[int8](balance.Value()) // ErrOverflow: 1000 > 127
//
// Each operator comes in four shapes, mirroring ordinary infix use:
// non-mutating with a SafeInt rhs (Add), non-mutating with a raw
// scalar rhs (AddScalar), and the compound-assignment forms
// (AddAssign, AddAssignScalar) that mutate the receiver on success.
// All four share one checked kernel, so their failure conditions are
// identical by construction.
//
// Errors:
//
//	ErrOverflow  - true result above MaxOf[W].
//	ErrUnderflow - true result below MinOf[W].
//	ErrDomain    - division or modulo by zero.
//
// Performance: every operation is O(1) with zero allocations.
//
// See example_test.go for runnable scenarios.
package safeint
