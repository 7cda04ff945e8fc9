// Package weierstrass implements the group law of short Weierstrass curves y² = x³ + a·x + b, generic over the
// coordinate field. Nothing in this package runs in constant time.
package weierstrass

import (
	"errors"
	"fmt"
)

var ErrOrderExceedsLimit = errors.New("point order exceeds limit")

// Curve is the short Weierstrass curve y² = x³ + a·x + b over the field of E.
// A Curve is immutable after construction and may be shared between goroutines.
type Curve[E Element[E]] struct {
	name string
	a, b E
}

// NewCurve returns the curve y² = x³ + a·x + b. The name is used for display and logging purposes only.
func NewCurve[E Element[E]](name string, a, b E) *Curve[E] {
	return &Curve[E]{name, a, b}
}

func (c *Curve[E]) Name() string {
	return c.name
}

// c.A() returns the curve's linear coefficient a.
func (c *Curve[E]) A() E {
	return c.a
}

// c.B() returns the curve's constant term b.
func (c *Curve[E]) B() E {
	return c.b
}

// c.Identity() returns the point at infinity, same as Identity[E]().
func (c *Curve[E]) Identity() Point[E] {
	return Identity[E]()
}

// c.IsOnCurve(p) returns true if p is an affine point satisfying the curve equation. The identity is not considered
// to be on the curve by this check.
func (c *Curve[E]) IsOnCurve(p Point[E]) bool {
	if p.kind == identity {
		return false
	}
	lhs := p.y.Multiply(p.y)
	rhs := p.x.Multiply(p.x).Multiply(p.x).Add(c.a.Multiply(p.x)).Add(c.b)
	return lhs.Equal(rhs)
}

// c.Add(p, q) returns p + q using the chord-and-tangent rule.
//
// The inputs are not validated; for points not on the curve the result is meaningless. An error is only returned
// if the field reports a division failure, which cannot happen for points on a curve over a field of characteristic
// other than two.
func (c *Curve[E]) Add(p, q Point[E]) (Point[E], error) {
	if p.kind == identity {
		return q, nil
	}
	if q.kind == identity {
		return p, nil
	}
	if p.x.Equal(q.x) && !p.y.Equal(q.y) {
		return Identity[E](), nil
	}

	var (
		s   E
		err error
	)
	if p.x.Equal(q.x) {
		// p == q here, the tangent at p gives the slope
		zero := p.y.Subtract(p.y)
		if p.y.Equal(zero) {
			// vertical tangent, p has order two
			return Identity[E](), nil
		}
		xx := p.x.Multiply(p.x)
		s, err = xx.Add(xx).Add(xx).Add(c.a).Divide(p.y.Add(p.y))
		if err != nil {
			return Point[E]{}, fmt.Errorf("tangent slope at %v: %w", p, err)
		}
	} else {
		s, err = q.y.Subtract(p.y).Divide(q.x.Subtract(p.x))
		if err != nil {
			return Point[E]{}, fmt.Errorf("chord slope through %v and %v: %w", p, q, err)
		}
	}

	x := s.Multiply(s).Subtract(p.x).Subtract(q.x)
	y := s.Multiply(p.x.Subtract(x)).Subtract(p.y)
	return Affine(x, y), nil
}

// c.Double(p) returns p + p.
func (c *Curve[E]) Double(p Point[E]) (Point[E], error) {
	return c.Add(p, p)
}

// c.Negate(p) returns -p, i.e., the reflection (x, -y) of p. The identity is its own inverse.
func (c *Curve[E]) Negate(p Point[E]) Point[E] {
	if p.kind == identity {
		return p
	}
	zero := p.y.Subtract(p.y)
	return Affine(p.x, zero.Subtract(p.y))
}

// c.Subtract(p, q) returns p - q.
func (c *Curve[E]) Subtract(p, q Point[E]) (Point[E], error) {
	return c.Add(p, c.Negate(q))
}

// c.Sum(points...) returns the sum of all given points. If no points are given, Sum returns the identity.
func (c *Curve[E]) Sum(points ...Point[E]) (Point[E], error) {
	result := Identity[E]()
	for _, pᵢ := range points {
		var err error
		if result, err = c.Add(result, pᵢ); err != nil {
			return Point[E]{}, err
		}
	}
	return result, nil
}

// c.Order(p, limit) returns the smallest n ≥ 1 with n·p = identity, found by repeated addition of p. If no such n
// exists up to limit, ErrOrderExceedsLimit is returned. Only practical for small groups.
func (c *Curve[E]) Order(p Point[E], limit uint64) (uint64, error) {
	acc := p
	for n := uint64(1); n <= limit; n++ {
		if acc.kind == identity {
			return n, nil
		}
		var err error
		if acc, err = c.Add(acc, p); err != nil {
			return 0, err
		}
	}
	return 0, fmt.Errorf("%w: no n ≤ %d with n·%v = identity", ErrOrderExceedsLimit, limit, p)
}

func (c *Curve[E]) String() string {
	return fmt.Sprintf("Curve y^2 = x^3 + %v*x + %v", c.a, c.b)
}

// c.PointString(p) returns the human readable representation of p including the curve equation.
func (c *Curve[E]) PointString(p Point[E]) string {
	if p.kind == identity {
		return p.String()
	}
	return p.String() + " on " + c.String()
}
