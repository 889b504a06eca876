package trit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNeg(t *testing.T) {
	assert.Equal(t, P, N.Neg())
	assert.Equal(t, N, P.Neg())
	assert.Equal(t, Z, Z.Neg())
	assert.Equal(t, N, N.Neg().Neg()) // self-inverse
}

func TestString(t *testing.T) {
	assert.Equal(t, "-", N.String())
	assert.Equal(t, "0", Z.String())
	assert.Equal(t, "+", P.String())
}

func TestFromInt(t *testing.T) {
	for _, n := range []int{-1, 0, 1} {
		tr, ok := FromInt(n)
		assert.True(t, ok)
		assert.Equal(t, n, tr.Int())
	}
	_, ok := FromInt(2)
	assert.False(t, ok)
	_, ok = FromInt(-2)
	assert.False(t, ok)
}

func TestAddTrits(t *testing.T) {
	for _, tt := range []struct {
		a, b, cIn    Trit
		sum, cOut Trit
	}{
		{Z, Z, Z, Z, Z},
		{P, Z, Z, P, Z},
		{N, Z, Z, N, Z},
		{P, P, Z, N, P},    // 1+1 = 3*1 + -1
		{P, P, P, Z, P},    // 1+1+1 = 3*1 + 0
		{N, N, Z, P, N},    // -1-1 = 3*-1 + 1
		{N, N, N, Z, N},    // -1-1-1 = 3*-1 + 0
		{P, N, P, P, Z},    // 1-1+1 = 1
	} {
		sum, cOut := AddTrits(tt.a, tt.b, tt.cIn)
		assert.Equal(t, tt.sum, sum, "sum of %v+%v+%v", tt.a, tt.b, tt.cIn)
		assert.Equal(t, tt.cOut, cOut, "carry of %v+%v+%v", tt.a, tt.b, tt.cIn)
	}
}
