package weierstrass_test

import (
	"errors"
	"strconv"
)

var errDivisionByZero = errors.New("fp: division by zero")

// fp is a minimal value typed prime field for small p (p < 2^32), used to exercise the group law independently of
// the bigmod based field elements.
type fp struct {
	v, p uint64
}

func newFp(v int64, p uint64) fp {
	r := v % int64(p)
	if r < 0 {
		r += int64(p)
	}
	return fp{uint64(r), p}
}

func (x fp) Add(y fp) fp      { return fp{(x.v + y.v) % x.p, x.p} }
func (x fp) Subtract(y fp) fp { return fp{(x.v + x.p - y.v) % x.p, x.p} }
func (x fp) Multiply(y fp) fp { return fp{x.v * y.v % x.p, x.p} }
func (x fp) Equal(y fp) bool  { return x.v == y.v && x.p == y.p }
func (x fp) String() string   { return strconv.FormatUint(x.v, 10) }

func (x fp) Divide(y fp) (fp, error) {
	if y.v == 0 {
		return fp{}, errDivisionByZero
	}
	// y^(p-2) = y^-1
	inv, base := uint64(1), y.v
	for e := x.p - 2; e > 0; e >>= 1 {
		if e&1 == 1 {
			inv = inv * base % x.p
		}
		base = base * base % x.p
	}
	return x.Multiply(fp{inv, x.p}), nil
}
