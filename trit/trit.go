// Package trit implements balanced-ternary digit and word arithmetic: the
// foundation that the instruction codec (package isa), the memory model
// (package mem) and the CPU core (package cpu) are all built on.
package trit

// A Trit provides compile-time safety when working with a single balanced
// ternary digit: its only valid values are N, Z and P.
type Trit int8

const (
	N Trit = -1 // Negative
	Z Trit = 0  // Zero
	P Trit = 1  // Positive
)

// Valid reports whether t is one of N, Z, P.
func (t Trit) Valid() bool {
	return t >= N && t <= P
}

// Int returns the signed integer value of t (-1, 0, or 1).
func (t Trit) Int() int { return int(t) }

// Neg returns the negation of t: N and P swap, Z is fixed.
func (t Trit) Neg() Trit { return -t }

// String renders t using the register-dump glyphs: '-', '0', '+'.
func (t Trit) String() string {
	switch t {
	case N:
		return "-"
	case Z:
		return "0"
	case P:
		return "+"
	default:
		return "?"
	}
}

// FromInt converts an integer into a Trit. It is the caller's job to check
// Valid() (or check the returned bool) before trusting the result; FromInt
// itself never panics.
func FromInt(n int) (Trit, bool) {
	if n < -1 || n > 1 {
		return Z, false
	}
	return Trit(n), true
}

// AddTrits is the balanced-ternary full adder: a single step that sums three
// trits and produces a sum trit plus a carry trit, with no further carry
// propagation required within this digit.
func AddTrits(a, b, cIn Trit) (sum, cOut Trit) {
	s := a.Int() + b.Int() + cIn.Int() // s in [-3, 3]

	switch {
	case s <= -2:
		cOut = N
	case s >= 2:
		cOut = P
	default:
		cOut = Z
	}

	sum = Trit(s - 3*cOut.Int())
	return sum, cOut
}
