// Prime field arithmetic based on the bigmod package from Go's internal stdlib, exported via filippo.io/bigmod.
// Unlike the group law built on top of it, the basic operations (except Inverse/Divide) run in constant time.

package math

import (
	"errors"
	"io"
	"math/big"

	"filippo.io/bigmod"
)

// Element represents an element of the prime field defined by a modulus.
// Elements of different moduli are not compatible, and cannot be used together in arithmetic operations.
// Executing any arithmetic operation on elements with different moduli will result in a panic.
//
// The arithmetic methods (Add, Subtract, Multiply, Divide, Negate, Exp, Inverse) never modify their receiver or
// arguments, they return a freshly allocated result. Only the Set* methods write to the receiver.
type Element = *element
type Elements []Element

type Nat = *bigmod.Nat

var ErrDivisionByZero = errors.New("division by zero")

type element struct {
	value   Nat
	modulus *Modulus
}

// NewElement creates a new element of the field defined by m.
// The value is initialized to zero.
func NewElement(m *Modulus) Element {
	return &element{bigmod.NewNat().ExpandFor(&m.value), m}
}

// NewElementFromUint creates a new element with the given value, which must be smaller than the modulus.
func NewElementFromUint(value uint, m *Modulus) Element {
	return NewElement(m).SetUint(value)
}

// Non-constant time function, to be used for testing purposes and initialization only.
// Panics on invalid inputs; value must represent a natural number smaller than the modulus (base 10).
func NewElementFromString(value string, m *Modulus) Element {
	n, ok := new(big.Int).SetString(value, 10)
	if !ok || n.Sign() < 0 {
		panic("invalid field element value: " + value)
	}

	e := NewElement(m)
	if _, err := e.value.SetBytes(n.Bytes(), &m.value); err != nil {
		panic("invalid field element value: " + value + ", error: " + err.Error())
	}
	return e
}

// Non-constant time function, to be used for testing purposes and initialization only.
// The value n is reduced modulo m, negative values are mapped to their additive inverse.
func NewElementFromBig(n *big.Int, m *Modulus) Element {
	r := new(big.Int).Mod(n, m.big)
	e := NewElement(m)
	if r.Sign() == 0 {
		return e
	}
	if _, err := e.value.SetBytes(r.Bytes(), &m.value); err != nil {
		// unreachable, r < m after reduction
		panic("invalid field element value: " + n.String() + ", error: " + err.Error())
	}
	return e
}

func (x *element) IsNil() bool {
	return x == nil
}

// x.Set(y) sets x = y, and returns the element x.
// This creates a copy of the value of y, so that x and y can be modified independently.
// This functions panics if x and y have different moduli.
func (x *element) Set(y Element) Element {
	requireEqualModulus(x, y)
	copy(x.value.Bits(), y.value.Bits())
	return x
}

// x.SetUint(y) sets x = y, returns the element x.
// y must be smaller than the modulus of x.
func (x *element) SetUint(y uint) Element {
	x.value.SetUint(y).ExpandFor(&x.modulus.value)
	return x
}

// x.SetBytes(y) sets x to the element represented by the big-endian byte slice y, and returns x.
// If y does not represent a valid element (smaller than x.modulus), SetBytes returns an error and the receiver is
// unchanged. Otherwise, SetBytes returns x.
func (x *element) SetBytes(y []byte) (Element, error) {
	v, err := bigmod.NewNat().SetBytes(y, &x.modulus.value)
	if err != nil {
		return nil, err
	}
	x.value = v
	return x, nil
}

// x.SetRandom(rand) sets x to a random element and returns x. The underlying implementation reads 128 bits more than
// the modulus size from rand and reduces, so that x is statistically close to uniformly distributed in
// {0, 1, ..., modulus - 1}. The same value is deterministically derived from the same input stream.
func (x *element) SetRandom(rand io.Reader) (Element, error) {
	rngBytes := make([]byte, x.modulus.Size()+16)
	if _, err := io.ReadFull(rand, rngBytes); err != nil {
		return nil, err
	}

	// Build a modulus that is larger than rngBytes (when interpreted as big-endian number).
	largeModBytes := make([]byte, len(rngBytes)+1)
	largeModBytes[0] = 1
	largeMod, err := bigmod.NewModulus(largeModBytes)
	if err != nil {
		return nil, err
	}

	t := bigmod.NewNat()
	if _, err := t.SetBytes(rngBytes, largeMod); err != nil {
		return nil, err
	}

	x.value.Mod(t, &x.modulus.value)
	return x, nil
}

// x.Add(y) returns x + y (mod modulus).
// This functions panics if x and y have different moduli.
func (x *element) Add(y Element) Element {
	requireEqualModulus(x, y)
	z := x.Clone()
	z.value.Add(y.value, &z.modulus.value)
	return z
}

// x.Subtract(y) returns x - y (mod modulus).
// This functions panics if x and y have different moduli.
func (x *element) Subtract(y Element) Element {
	requireEqualModulus(x, y)
	z := x.Clone()
	z.value.Sub(y.value, &z.modulus.value)
	return z
}

// x.Multiply(y) returns x * y (mod modulus).
// This functions panics if x and y have different moduli.
func (x *element) Multiply(y Element) Element {
	requireEqualModulus(x, y)
	z := x.Clone()
	z.value.Mul(y.value, &z.modulus.value)
	return z
}

// x.Divide(y) returns x * y^-1 (mod modulus), or ErrDivisionByZero if y is zero.
// This functions panics if x and y have different moduli.
func (x *element) Divide(y Element) (Element, error) {
	requireEqualModulus(x, y)
	inv, ok := y.Inverse()
	if !ok {
		return nil, ErrDivisionByZero
	}
	return x.Multiply(inv), nil
}

// x.Inverse() returns (x^-1, true) if the inverse exists, or (nil, false) otherwise.
func (x *element) Inverse() (Element, bool) {
	z := x.Clone()
	if _, ok := z.value.InverseVarTime(x.value, &z.modulus.value); !ok {
		return nil, false
	}
	return z, true
}

// x.Negate() returns -x (mod modulus).
func (x *element) Negate() Element {
	z := NewElement(x.modulus)
	z.value.Sub(x.value, &z.modulus.value)
	return z
}

// x.Exp(e) returns x^e (mod modulus).
// The exponent e is interpreted as a big-endian integer.
func (x *element) Exp(e []byte) Element {
	z := NewElement(x.modulus)
	z.value.Exp(x.value, e, &z.modulus.value)
	return z
}

// x.IsZero() returns true if x is zero, and false otherwise.
func (x *element) IsZero() bool {
	return x.value.IsZero() == 1
}

// x.IsOne() returns true if x is one, and false otherwise.
func (x *element) IsOne() bool {
	return x.value.IsOne() == 1
}

// Returns an independent copy of the element.
func (x *element) Clone() Element {
	return NewElement(x.modulus).Set(x)
}

// Returns the internal reference to the modulus underlying the element.
// Must not be modified by the caller.
func (x *element) Modulus() *Modulus {
	return x.modulus
}

// x.Bytes() returns the big-endian encoding of x, padded to the size of the modulus.
func (x *element) Bytes() []byte {
	return x.value.Bytes(&x.modulus.value)
}

// x.Big() returns the value of x as big.Int. Non-constant time.
func (x *element) Big() *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}

// x.Equal(y) tests two elements for equality. Equality is defined as having the same value and the same modulus.
func (x *element) Equal(y Element) bool {
	return x == y || (x.modulus.Equal(y.modulus) && x.value.Equal(y.value) == 1)
}

// x.String() returns the decimal representation of the element's value. It is a non-constant time function, to be
// used for testing and display purposes.
func (x *element) String() string {
	return x.Big().String()
}

// Checks that two elements have the same modulus, and panics otherwise.
// The check is typically very cheap, as it only compares pointers to the modulus in the first step.
func requireEqualModulus(x Element, y Element) {
	if !x.modulus.Equal(y.modulus) {
		panic("field elements have different moduli")
	}
}

// ω.Sum() returns the sum of all elements in ω. If ω is empty, Sum returns nil.
func (ω Elements) Sum() Element {
	var result Element
	for _, ωᵢ := range ω {
		if result == nil {
			result = ωᵢ.Clone()
		} else {
			result = result.Add(ωᵢ)
		}
	}
	return result
}
