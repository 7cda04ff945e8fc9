package weierstrass

import (
	"fmt"
	"math/big"
	"math/bits"

	"golang.org/x/exp/constraints"
)

// The scalar multiplications below use the binary double-and-add method. They are NOT constant time; the sequence of
// field operations depends on the bits of the scalar.

// ScalarMult returns k·p for a scalar of any integer type. A negative k yields |k|·(-p).
func ScalarMult[E Element[E], K constraints.Integer](c *Curve[E], k K, p Point[E]) (Point[E], error) {
	if k < 0 {
		// -(k + 1) does not overflow, even for the most negative value of K
		return c.ScalarMult(uint64(-(k+1))+1, c.Negate(p))
	}
	return c.ScalarMult(uint64(k), p)
}

// c.ScalarMult(k, p) returns k·p, the sum of k copies of p. For k = 0 the identity is returned.
func (c *Curve[E]) ScalarMult(k uint64, p Point[E]) (Point[E], error) {
	bitLength := bits.Len64(k)
	trail, err := c.doublings(p, bitLength)
	if err != nil {
		return Point[E]{}, err
	}

	// trail[i] = 2^i·p, consumed from the highest weight down
	result := Identity[E]()
	remaining := k
	for i := bitLength - 1; i >= 0; i-- {
		weight := uint64(1) << i
		if remaining < weight {
			continue
		}
		remaining -= weight
		if result, err = c.Add(result, trail[i]); err != nil {
			return Point[E]{}, err
		}
	}
	return result, nil
}

// c.ScalarMultBig(k, p) returns k·p for an arbitrary size integer k. A negative k yields |k|·(-p).
func (c *Curve[E]) ScalarMultBig(k *big.Int, p Point[E]) (Point[E], error) {
	if k.Sign() < 0 {
		p = c.Negate(p)
	}
	abs := new(big.Int).Abs(k)

	bitLength := abs.BitLen()
	trail, err := c.doublings(p, bitLength)
	if err != nil {
		return Point[E]{}, err
	}

	result := Identity[E]()
	for i := bitLength - 1; i >= 0; i-- {
		if abs.Bit(i) == 0 {
			continue
		}
		if result, err = c.Add(result, trail[i]); err != nil {
			return Point[E]{}, err
		}
	}
	return result, nil
}

// c.doublings(p, n) returns [p, 2p, 4p, ..., 2^(n-1)·p].
func (c *Curve[E]) doublings(p Point[E], n int) ([]Point[E], error) {
	trail := make([]Point[E], n)
	for i := range trail {
		if i == 0 {
			trail[i] = p
			continue
		}
		var err error
		if trail[i], err = c.Double(trail[i-1]); err != nil {
			return nil, fmt.Errorf("doubling 2^%d·p: %w", i-1, err)
		}
	}
	return trail, nil
}
