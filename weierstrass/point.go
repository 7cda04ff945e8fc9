package weierstrass

import "fmt"

// Element is the set of operations the group law needs from the coordinate field.
// Implementations must have field semantics: every nonzero element is invertible, and Divide returns an error iff
// the divisor is zero. None of the operations may modify the receiver or the argument.
type Element[E any] interface {
	Add(y E) E
	Subtract(y E) E
	Multiply(y E) E
	Divide(y E) (E, error)
	Equal(y E) bool
}

type pointKind uint8

const (
	identity pointKind = iota
	affine
)

// Point is either the point at infinity (the group's identity) or an affine point (x, y).
// The zero value is the identity. Points are immutable values; constructing an affine point does not check that it
// lies on any curve, use Curve.IsOnCurve for that.
type Point[E Element[E]] struct {
	kind pointKind
	x, y E
}

// Identity returns the point at infinity.
func Identity[E Element[E]]() Point[E] {
	return Point[E]{}
}

// Affine returns the (unchecked) affine point (x, y).
func Affine[E Element[E]](x, y E) Point[E] {
	return Point[E]{affine, x, y}
}

// p.IsInfinity() returns true iff p is the point at infinity.
func (p Point[E]) IsInfinity() bool {
	return p.kind == identity
}

// p.Coordinates() returns (x, y, true) for an affine point, and zero values and false for the identity.
func (p Point[E]) Coordinates() (x, y E, ok bool) {
	if p.kind == identity {
		return x, y, false
	}
	return p.x, p.y, true
}

// p.X() returns the affine x coordinate. Panics for the point at infinity.
func (p Point[E]) X() E {
	p.mustBeAffine()
	return p.x
}

// p.Y() returns the affine y coordinate. Panics for the point at infinity.
func (p Point[E]) Y() E {
	p.mustBeAffine()
	return p.y
}

// p.Equal(q) returns true if both points are the identity, or both are affine with equal coordinates.
func (p Point[E]) Equal(q Point[E]) bool {
	switch {
	case p.kind == identity:
		return q.kind == identity
	case q.kind == identity:
		return false
	default:
		return p.x.Equal(q.x) && p.y.Equal(q.y)
	}
}

func (p Point[E]) String() string {
	if p.kind == identity {
		return "Point Infinity"
	}
	return fmt.Sprintf("Point (%v, %v)", p.x, p.y)
}

func (p Point[E]) mustBeAffine() {
	if p.kind == identity {
		panic("point at infinity has no affine coordinates")
	}
}
