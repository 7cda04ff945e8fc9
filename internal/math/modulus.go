package math

import (
	"math/big"

	"filippo.io/bigmod"
)

// Modulus is the (odd prime) characteristic of a field. Field elements hold a reference to their modulus, and
// arithmetic between elements of different moduli panics.
type Modulus struct {
	value bigmod.Modulus
	big   *big.Int
}

// Non-constant time function, to be used for testing purposes and initialization only.
// Panics on invalid input; value must represent a natural number greater than one in base 10.
func NewModulus(value string) *Modulus {
	return newModulus(value, 10)
}

// Same as NewModulus, but the value is given in base 16 (without 0x prefix).
func NewModulusFromHex(value string) *Modulus {
	return newModulus(value, 16)
}

func newModulus(value string, base int) *Modulus {
	n, ok := new(big.Int).SetString(value, base)
	if !ok || n.Cmp(big.NewInt(1)) <= 0 {
		panic("invalid modulus value: " + value)
	}
	m, err := bigmod.NewModulus(n.Bytes())
	if err != nil {
		panic("invalid modulus value: " + value + ", error: " + err.Error())
	}
	return &Modulus{*m, n}
}

// Moduli are public parameters, the comparison is not constant time.
func (m *Modulus) Equal(other *Modulus) bool {
	return m == other || m.big.Cmp(other.big) == 0
}

// Size returns the length of the big-endian encoding of the modulus in bytes.
func (m *Modulus) Size() int {
	return (&m.value).Size()
}

func (m *Modulus) Bytes() []byte {
	return (&m.value).Nat().Bytes(&m.value)
}

// Big returns a copy of the modulus as big.Int.
func (m *Modulus) Big() *big.Int {
	return new(big.Int).Set(m.big)
}

func (m *Modulus) String() string {
	return m.big.String()
}
