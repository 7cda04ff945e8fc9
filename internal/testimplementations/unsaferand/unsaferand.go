package unsaferand

import (
	"fmt"
	"hash/fnv"
	"io"
	"math/big"
	mrand "math/rand"
)

// UnsafeRand is a test implementation of io.Reader based on math/rand.Rand, used to draw reproducible scalars and
// field elements in tests. The generated sequence is not cryptographically secure and should only be used for
// testing purposes. The underlying math.Rand is not safe for concurrent use.
type UnsafeRand struct {
	*mrand.Rand
}

var _ io.Reader = &UnsafeRand{}

// Initializes a new UnsafeRand that produces a deterministic randomness based on the given seed argument(s).
// Deterministic behavior depends on the fmt.Sprintf("%#v", seedArgs...) representation of the passed arguments.
// Map iteration order is not guaranteed, so passing a map as a seed argument may lead to non-deterministic behavior.
func New(seedArgs ...any) *UnsafeRand {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%#v", seedArgs)

	seed := int64(h.Sum64())
	return &UnsafeRand{mrand.New(mrand.NewSource(seed))}
}

// r.Scalar(n) returns a pseudo-random integer in [0, n).
func (r *UnsafeRand) Scalar(n *big.Int) *big.Int {
	return new(big.Int).Rand(r.Rand, n)
}

// r.Scalars(count, n) returns count pseudo-random integers in [0, n).
func (r *UnsafeRand) Scalars(count int, n *big.Int) []*big.Int {
	scalars := make([]*big.Int, count)
	for i := range scalars {
		scalars[i] = r.Scalar(n)
	}
	return scalars
}
