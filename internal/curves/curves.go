package curves

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/smartcontractkit/weierstrass/internal/math"
	"github.com/smartcontractkit/weierstrass/weierstrass"
)

type Point = weierstrass.Point[math.Element]

var ErrUnknownCurve = errors.New("unknown curve")

// NamedCurve is a short Weierstrass curve over a prime field, together with its standard base point.
type NamedCurve struct {
	*weierstrass.Curve[math.Element]

	// Field is the prime modulus of the coordinate field.
	Field *math.Modulus

	// G is the generator (base point) of the prime order subgroup.
	G Point

	// N is the order of G. This is NOT the prime modulus for the field over which the curve is defined.
	N *big.Int
}

var SupportedCurves = []*NamedCurve{
	Secp256k1,
	P256,
	Toy17,
}

var (
	// See:
	//  - https://www.secg.org/sec2-v2.pdf
	//  - https://nvlpubs.nist.gov/nistpubs/SpecialPublications/NIST.SP.800-186.pdf

	// SEC 2, Section 2.4.1
	Secp256k1 = newNamedCurve(
		"secp256k1",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEFFFFFC2F",
		"0",
		"7",
		"79BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798",
		"483ADA7726A3C4655DA4FBFC0E1108A8FD17B448A68554199C47D08FFB10D4B8",
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141",
	)

	// NIST 800-186, Section 3.2.1.3 (a = -3)
	P256 = newNamedCurve(
		"P256",
		"FFFFFFFF00000001000000000000000000000000FFFFFFFFFFFFFFFFFFFFFFFF",
		"-3",
		"5AC635D8AA3A93E7B3EBBD55769886BC651D06B0CC53B0F63BCE3C3E27D2604B",
		"6B17D1F2E12C4247F8BCE6E563A440F277037D812DEB33A0F4A13945D898C296",
		"4FE342E2FE1A7F9B8EE7EB4A7C0F9E162BCE33576B315ECECBB6406837BF51F5",
		"FFFFFFFF00000000FFFFFFFFFFFFFFFFBCE6FAADA7179E84F3B9CAC2FC632551",
	)

	// The textbook curve y² = x³ + 2x + 2 over F₁₇ (Paar & Pelzl, Understanding Cryptography, Chapter 9),
	// a cyclic group of prime order 19 generated by (5, 1).
	Toy17 = newNamedCurve("toy17", "11", "2", "2", "5", "1", "13")
)

// All parameters are given in base 16, a and b may carry a minus sign.
func newNamedCurve(name, p, a, b, gx, gy, n string) *NamedCurve {
	field := math.NewModulusFromHex(p)
	curve := weierstrass.NewCurve(name, mustElementFromHex(a, field), mustElementFromHex(b, field))
	g := weierstrass.Affine(mustElementFromHex(gx, field), mustElementFromHex(gy, field))
	if !curve.IsOnCurve(g) {
		panic("generator of curve " + name + " does not satisfy the curve equation")
	}

	order, ok := new(big.Int).SetString(n, 16)
	if !ok {
		panic("invalid group order for curve " + name + ": " + n)
	}
	return &NamedCurve{curve, field, g, order}
}

func mustElementFromHex(value string, field *math.Modulus) math.Element {
	n, ok := new(big.Int).SetString(value, 16)
	if !ok {
		panic("invalid field element value: " + value)
	}
	return math.NewElementFromBig(n, field)
}

// CurveByName returns the supported curve with the given (case-insensitive) name.
func CurveByName(name string) (*NamedCurve, error) {
	for _, curve := range SupportedCurves {
		if strings.EqualFold(curve.Name(), name) {
			return curve, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownCurve, name)
}

// Names returns the names of all supported curves.
func Names() []string {
	names := make([]string, len(SupportedCurves))
	for i, curve := range SupportedCurves {
		names[i] = curve.Name()
	}
	return names
}

// c.Element(value) parses a field element given in base 10, or base 16 with 0x prefix. Negative values (and values
// larger than the modulus) are reduced modulo the field's characteristic.
func (c *NamedCurve) Element(value string) (math.Element, error) {
	n, ok := new(big.Int).SetString(value, 0)
	if !ok {
		return nil, fmt.Errorf("invalid field element value: %q", value)
	}
	return math.NewElementFromBig(n, c.Field), nil
}

// c.Point(x, y) parses an affine point, see Element for the accepted formats. The point is not checked to be on the
// curve.
func (c *NamedCurve) Point(x, y string) (Point, error) {
	xe, err := c.Element(x)
	if err != nil {
		return Point{}, fmt.Errorf("x coordinate: %w", err)
	}
	ye, err := c.Element(y)
	if err != nil {
		return Point{}, fmt.Errorf("y coordinate: %w", err)
	}
	return weierstrass.Affine(xe, ye), nil
}

// c.Generator() returns the base point G.
func (c *NamedCurve) Generator() Point {
	return c.G
}

// c.ScalarBaseMult(k) returns k·G.
func (c *NamedCurve) ScalarBaseMult(k *big.Int) (Point, error) {
	return c.ScalarMultBig(k, c.G)
}
