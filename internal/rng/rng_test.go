package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func assertCoversRange(t *testing.T, g Generator, n int) {
	t.Helper()

	found := make(map[int]bool)
	// it's possible this could fail, but not likely
	for i := 0; i < 1000; i++ {
		v := g.Intn(n)
		assert.True(t, v >= 0 && v < n)
		found[v] = true
	}

	assert.Len(t, found, n)
}

func TestCrypto_Intn(t *testing.T) {
	assertCoversRange(t, Crypto{}, 5)
}

func TestMath_Intn(t *testing.T) {
	assertCoversRange(t, NewMath(7), 5)

	m1 := NewMath(42)
	m2 := NewMath(42)
	for i := 0; i < 100; i++ {
		assert.Equal(t, m1.Intn(52), m2.Intn(52))
	}
}

func TestSeed(t *testing.T) {
	assert.Greater(t, Seed(Crypto{}), int64(0))
	assert.Equal(t, int64(1), Seed(fixed(0)))
	assert.Equal(t, int64(10), Seed(fixed(9)))
	assert.NotNil(t, NewMathFromCrypto())
}

type fixed int

func (f fixed) Intn(int) int {
	return int(f)
}
