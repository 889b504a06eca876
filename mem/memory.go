// Package mem implements the fixed-size trit-addressable memory and the
// program loader that reconstitutes a trit stream (package trit's wire
// format) into it. Adapted from the teacher's mem.Bus: a single owned
// backing store reached through bounds-checked Read/Write, resized here
// from a 64 kB byte bus to a 19,683-tryte balanced-ternary one.
package mem

import (
	"errors"
	"fmt"

	"github.com/hejops/btern/trit"
)

// Capacity is the number of addressable trytes: 3^9.
const Capacity = 19683

// ErrMalformedProgram is returned by Load when the trit count is not a
// multiple of 9 (one tryte).
var ErrMalformedProgram = errors.New("mem: program trit count is not a multiple of 9")

// ErrProgramTooLarge is returned by Load when the trit count exceeds
// 9 * Capacity.
var ErrProgramTooLarge = errors.New("mem: program exceeds memory capacity")

// ErrAddressOutOfRange is returned by Read3/Write3 when the effective
// address names a tryte range that falls outside [0, Capacity).
var ErrAddressOutOfRange = errors.New("mem: address out of range")

// Memory is a fixed vector of Capacity trytes, all-Z initialized. It never
// grows or shrinks for the lifetime of a Memory value.
type Memory struct {
	trytes [Capacity]trit.Tryte
}

// New returns a freshly zero-initialized Memory.
func New() *Memory {
	return &Memory{}
}

// Load populates memory starting at tryte 0 from a flat trit stream (the
// output of trit.Decode). Trits fill tryte 0 first (LSB trit of the tryte
// first), then tryte 1, and so on; any remaining memory is left untouched
// (zero, for a fresh Memory).
func (m *Memory) Load(trits []trit.Trit) error {
	if len(trits)%trit.TryteLen != 0 {
		return fmt.Errorf("mem: %d trits: %w", len(trits), ErrMalformedProgram)
	}
	if len(trits) > trit.TryteLen*Capacity {
		return fmt.Errorf("mem: %d trits: %w", len(trits), ErrProgramTooLarge)
	}

	for i := 0; i < len(trits); i += trit.TryteLen {
		var ty trit.Tryte
		copy(ty[:], trits[i:i+trit.TryteLen])
		m.trytes[i/trit.TryteLen] = ty
	}
	return nil
}

// Tryte returns the tryte at addr, bounds-checked.
func (m *Memory) Tryte(addr int) (trit.Tryte, error) {
	if addr < 0 || addr >= Capacity {
		return trit.Tryte{}, fmt.Errorf("mem: tryte address %d: %w", addr, ErrAddressOutOfRange)
	}
	return m.trytes[addr], nil
}

// SetTryte writes the tryte at addr, bounds-checked.
func (m *Memory) SetTryte(addr int, ty trit.Tryte) error {
	if addr < 0 || addr >= Capacity {
		return fmt.Errorf("mem: tryte address %d: %w", addr, ErrAddressOutOfRange)
	}
	m.trytes[addr] = ty
	return nil
}

// Read3 reads the Word spanning trytes [addr, addr+2], used for both
// instruction fetch and LDW. Tryte at addr fills trit indices [0, 9), at
// addr+1 fills [9, 18), at addr+2 fills [18, 27).
func (m *Memory) Read3(addr int) (trit.Word, error) {
	if addr < 0 || addr+2 >= Capacity {
		return trit.Word{}, fmt.Errorf("mem: word address %d: %w", addr, ErrAddressOutOfRange)
	}
	var w trit.Word
	copy(w[0:9], m.trytes[addr][:])
	copy(w[9:18], m.trytes[addr+1][:])
	copy(w[18:27], m.trytes[addr+2][:])
	return w, nil
}

// Write3 writes a Word across trytes [addr, addr+2].
func (m *Memory) Write3(addr int, w trit.Word) error {
	if addr < 0 || addr+2 >= Capacity {
		return fmt.Errorf("mem: word address %d: %w", addr, ErrAddressOutOfRange)
	}
	var t0, t1, t2 trit.Tryte
	copy(t0[:], w[0:9])
	copy(t1[:], w[9:18])
	copy(t2[:], w[18:27])
	m.trytes[addr] = t0
	m.trytes[addr+1] = t1
	m.trytes[addr+2] = t2
	return nil
}
