package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hejops/btern/trit"
)

func TestLoadMalformedProgram(t *testing.T) {
	m := New()
	err := m.Load(make([]trit.Trit, 10)) // not a multiple of 9
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedProgram))
}

func TestLoadProgramTooLarge(t *testing.T) {
	m := New()
	err := m.Load(make([]trit.Trit, trit.TryteLen*Capacity+trit.TryteLen))
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrProgramTooLarge))
}

func TestLoadPopulatesInOrder(t *testing.T) {
	m := New()
	trits := make([]trit.Trit, trit.TryteLen*2)
	trits[0] = trit.P // LSB trit of tryte 0
	trits[trit.TryteLen] = trit.N // LSB trit of tryte 1

	err := m.Load(trits)
	assert.NoError(t, err)

	ty0, err := m.Tryte(0)
	assert.NoError(t, err)
	assert.Equal(t, trit.P, ty0[0])

	ty1, err := m.Tryte(1)
	assert.NoError(t, err)
	assert.Equal(t, trit.N, ty1[0])

	// remaining memory is unchanged (zero-initialized)
	ty2, err := m.Tryte(2)
	assert.NoError(t, err)
	assert.Equal(t, trit.Tryte{}, ty2)
}

func TestRead3Write3RoundTrip(t *testing.T) {
	m := New()
	w := trit.IntToWord(777)
	assert.NoError(t, m.Write3(100, w))

	got, err := m.Read3(100)
	assert.NoError(t, err)
	assert.Equal(t, w, got)
}

func TestWord3BoundsChecking(t *testing.T) {
	m := New()
	_, err := m.Read3(-1)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	_, err = m.Read3(Capacity - 1)
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))

	err = m.Write3(Capacity-2, trit.Word{})
	assert.True(t, errors.Is(err, ErrAddressOutOfRange))
}
