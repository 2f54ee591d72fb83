// Package extint implements the extended integers Z ∪ {-∞, +∞}: a
// total order with saturating addition, used throughout cmdp as the
// value domain of the resource-safety fixed points.
//
// The source this package is ported from represented an ExtInt as a
// (isInfinite bool, value int) pair, with infinity built by setting
// value to 1 and isInfinite to true: a representation that admits an
// unreachable-but-representable "infinity with payload 0" state. This
// package uses a tagged union instead (see kind below), which makes
// that state unrepresentable and turns saturating addition into
// exhaustive case analysis rather than sign bookkeeping.
package extint

import (
	"errors"
	"fmt"
)

type kind int8

const (
	kindFinite kind = iota
	kindNegInf
	kindPosInf
)

// ExtInt is an element of Z ∪ {-∞, +∞}. The zero value is finite(0),
// unlike the ported source where a default-constructed value was
// documented as unspecified and required initialisation before use.
type ExtInt struct {
	k kind
	v int64
}

// ErrUndefinedArithmetic is returned by Add when asked to add +∞ and -∞.
var ErrUndefinedArithmetic = errors.New("extint: +infinity + -infinity is undefined")

// ErrNotFinite is returned by Value when called on an infinite ExtInt.
var ErrNotFinite = errors.New("extint: value of an infinite ExtInt")

// Finite constructs a finite extended integer.
func Finite(v int64) ExtInt { return ExtInt{k: kindFinite, v: v} }

// PosInf returns +∞.
func PosInf() ExtInt { return ExtInt{k: kindPosInf} }

// NegInf returns -∞.
func NegInf() ExtInt { return ExtInt{k: kindNegInf} }

// IsFinite reports whether x has a finite payload.
func (x ExtInt) IsFinite() bool { return x.k == kindFinite }

// IsInfinite reports whether x is +∞ or -∞.
func (x ExtInt) IsInfinite() bool { return x.k != kindFinite }

// Value returns the finite payload of x, or ErrNotFinite if x is infinite.
func (x ExtInt) Value() (int64, error) {
	if x.k != kindFinite {
		return 0, fmt.Errorf("%w: %s", ErrNotFinite, x)
	}
	return x.v, nil
}

// MustValue is Value without the error return, for callers that have
// already established x is finite (e.g. immediately after a Less
// check against a known-finite bound).
func (x ExtInt) MustValue() int64 {
	v, err := x.Value()
	if err != nil {
		panic(err)
	}
	return v
}

// Sign returns -1, 0 or +1. Signs of infinities are fixed by their
// kind; the sign of a finite value is the sign of its payload.
func (x ExtInt) Sign() int {
	switch x.k {
	case kindPosInf:
		return 1
	case kindNegInf:
		return -1
	default:
		switch {
		case x.v > 0:
			return 1
		case x.v < 0:
			return -1
		default:
			return 0
		}
	}
}

// Neg returns -x, flipping the sign of an infinity or negating a
// finite payload.
func (x ExtInt) Neg() ExtInt {
	switch x.k {
	case kindPosInf:
		return NegInf()
	case kindNegInf:
		return PosInf()
	default:
		return Finite(-x.v)
	}
}

// Less reports whether x < y under the total order -∞ < z < +∞.
func (x ExtInt) Less(y ExtInt) bool {
	if x.k == kindFinite && y.k == kindFinite {
		return x.v < y.v
	}
	if x.k == kindPosInf || y.k == kindNegInf {
		return false
	}
	// Remaining cases all have x ∈ {-∞, finite} and y ∈ {finite, +∞}
	// with x ≠ y, so x < y unconditionally.
	return true
}

// LessEqual reports whether x <= y.
func (x ExtInt) LessEqual(y ExtInt) bool { return !y.Less(x) }

// Greater reports whether x > y.
func (x ExtInt) Greater(y ExtInt) bool { return y.Less(x) }

// GreaterEqual reports whether x >= y.
func (x ExtInt) GreaterEqual(y ExtInt) bool { return !x.Less(y) }

// Equal reports whether x and y denote the same extended integer.
func (x ExtInt) Equal(y ExtInt) bool {
	if x.k != y.k {
		return false
	}
	if x.k != kindFinite {
		return true
	}
	return x.v == y.v
}

// Max returns the greater of x and y.
func Max(x, y ExtInt) ExtInt {
	if x.Less(y) {
		return y
	}
	return x
}

// Min returns the lesser of x and y.
func Min(x, y ExtInt) ExtInt {
	if y.Less(x) {
		return y
	}
	return x
}

// Add returns x + y, saturating: any infinity absorbs a finite value
// and an infinity of the same sign, and returns ErrUndefinedArithmetic
// for +∞ + -∞ (in either order).
func Add(x, y ExtInt) (ExtInt, error) {
	if x.k == kindFinite && y.k == kindFinite {
		return Finite(x.v + y.v), nil
	}
	if x.k != kindFinite && y.k != kindFinite && x.k != y.k {
		return ExtInt{}, fmt.Errorf("%w: %s + %s", ErrUndefinedArithmetic, x, y)
	}
	if x.k != kindFinite {
		return x, nil
	}
	return y, nil
}

// MustAdd is Add without the error return. Callers use it where the
// arguments are, by construction, never both infinite with opposite
// signs (every fixed point in this module only ever adds a finite
// cost to an already-computed resource level).
func MustAdd(x, y ExtInt) ExtInt {
	sum, err := Add(x, y)
	if err != nil {
		panic(err)
	}
	return sum
}

// String renders x as "infinity", "-infinity", or the decimal payload,
// matching the source's ostream operator<<.
func (x ExtInt) String() string {
	switch x.k {
	case kindPosInf:
		return "infinity"
	case kindNegInf:
		return "-infinity"
	default:
		return fmt.Sprintf("%d", x.v)
	}
}
