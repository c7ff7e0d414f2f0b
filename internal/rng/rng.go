// Package rng provides the random sources used to shuffle decks
package rng

import (
	"crypto/rand"
	"math"
	"math/big"
	mrand "math/rand"
)

// Generator provides a simple random number
type Generator interface {
	// Intn will return a random number up to but not including n
	Intn(n int) int
}

// Crypto draws from crypto/rand
// It is safe for concurrent use but too slow for simulations.
type Crypto struct{}

// Intn returns a random number from 0 < n
func (Crypto) Intn(n int) int {
	b, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}

	return int(b.Int64())
}

// Math wraps a seeded math/rand source
// It is not safe for concurrent use; give each goroutine its own.
type Math struct {
	r *mrand.Rand
}

// NewMath returns a generator seeded with seed
func NewMath(seed int64) *Math {
	return &Math{r: mrand.New(mrand.NewSource(seed))}
}

// NewMathFromCrypto returns a generator seeded from crypto/rand
func NewMathFromCrypto() *Math {
	return NewMath(Seed(Crypto{}))
}

// Intn returns a random number from 0 < n
func (m *Math) Intn(n int) int {
	return m.r.Intn(n)
}

// Seed draws a positive seed from the generator
func Seed(g Generator) int64 {
	return int64(g.Intn(math.MaxInt32)) + 1
}
