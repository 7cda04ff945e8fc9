package curves

import (
	"errors"
	"math/big"
	"testing"

	"filippo.io/nistec"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/smartcontractkit/weierstrass/internal/testimplementations/unsaferand"
	"github.com/smartcontractkit/weierstrass/weierstrass"
	"github.com/stretchr/testify/require"
)

// Returns the uncompressed SEC 1 encoding 0x04 || X || Y of p, or 0x00 for the identity, the format used by nistec.
func uncompressed(p Point) []byte {
	if p.IsInfinity() {
		return []byte{0}
	}
	return append(append([]byte{4}, p.X().Bytes()...), p.Y().Bytes()...)
}

func p256Reference(t *testing.T, k *big.Int) []byte {
	r, err := nistec.NewP256Point().ScalarBaseMult(k.FillBytes(make([]byte, 32)))
	require.NoError(t, err)
	return r.Bytes()
}

func secp256k1Reference(k *big.Int) []byte {
	x, y := secp256k1.S256().ScalarBaseMult(k.Bytes())
	if x.Sign() == 0 && y.Sign() == 0 {
		return []byte{0}
	}
	return append(append([]byte{4}, x.FillBytes(make([]byte, 32))...), y.FillBytes(make([]byte, 32))...)
}

func TestCurveByName(t *testing.T) {
	for _, c := range SupportedCurves {
		found, err := CurveByName(c.Name())
		require.NoError(t, err)
		require.Same(t, c, found)
	}

	c, err := CurveByName("SECP256K1")
	require.NoError(t, err)
	require.Same(t, Secp256k1, c)

	_, err = CurveByName("curve25519")
	require.True(t, errors.Is(err, ErrUnknownCurve))

	require.Equal(t, []string{"secp256k1", "P256", "toy17"}, Names())
}

func TestGenerators(t *testing.T) {
	for _, c := range SupportedCurves {
		require.True(t, c.IsOnCurve(c.Generator()), c.Name())

		r, err := c.ScalarBaseMult(c.N)
		require.NoError(t, err)
		require.True(t, r.IsInfinity(), "N·G must be the identity on %s", c.Name())

		r, err = c.ScalarBaseMult(new(big.Int).Sub(c.N, big.NewInt(1)))
		require.NoError(t, err)
		require.True(t, r.Equal(c.Negate(c.G)), "(N-1)·G must be -G on %s", c.Name())
	}
}

func TestToy17Order(t *testing.T) {
	order, err := Toy17.Order(Toy17.G, 100)
	require.NoError(t, err)
	require.Equal(t, Toy17.N.Uint64(), order)
}

func TestSecp256k1KnownMultiples(t *testing.T) {
	g2, err := Secp256k1.Point(
		"0xC6047F9441ED7D6D3045406E95C07CD85C778E4B8CEF3CA7ABAC09B95C709EE5",
		"0x1AE168FEA63DC339A3C58419466CEAEEF7F632653266D0E1236431A950CFE52A",
	)
	require.NoError(t, err)
	g3, err := Secp256k1.Point(
		"0xF9308A019258C31049344F85F89D5229B531C845836F99B08601F113BCE036F9",
		"0x388F7B0F632DE8140FE337E62A37F3566500A99934C2231B6CB9FD7584B8E672",
	)
	require.NoError(t, err)

	r, err := Secp256k1.Double(Secp256k1.G)
	require.NoError(t, err)
	require.True(t, r.Equal(g2))

	r, err = Secp256k1.Add(r, Secp256k1.G)
	require.NoError(t, err)
	require.True(t, r.Equal(g3))

	r, err = weierstrass.ScalarMult(Secp256k1.Curve, 3, Secp256k1.G)
	require.NoError(t, err)
	require.True(t, r.Equal(g3))
}

func TestP256KnownMultiples(t *testing.T) {
	g2, err := P256.Point(
		"0x7CF27B188D034F7E8A52380304B51AC3C08969E277F21B35A60B48FC47669978",
		"0x07775510DB8ED040293D9AC69F7430DBBA7DADE63CE982299E04B79D227873D1",
	)
	require.NoError(t, err)

	r, err := P256.Double(P256.G)
	require.NoError(t, err)
	require.True(t, r.Equal(g2))
	require.True(t, P256.IsOnCurve(r))
}

func TestP256MatchesNistec(t *testing.T) {
	rand := unsaferand.New("TestP256MatchesNistec")
	scalars := append(rand.Scalars(8, P256.N), big.NewInt(1), big.NewInt(2), big.NewInt(0xFFFF))
	for _, k := range scalars {
		r, err := P256.ScalarBaseMult(k)
		require.NoError(t, err)
		require.Equal(t, p256Reference(t, k), uncompressed(r), "k = %v", k)
		require.True(t, P256.IsOnCurve(r))
	}
}

func TestSecp256k1MatchesDecred(t *testing.T) {
	rand := unsaferand.New("TestSecp256k1MatchesDecred")
	scalars := append(rand.Scalars(8, Secp256k1.N), big.NewInt(1), big.NewInt(2), big.NewInt(0xFFFF))
	for _, k := range scalars {
		r, err := Secp256k1.ScalarBaseMult(k)
		require.NoError(t, err)
		require.Equal(t, secp256k1Reference(k), uncompressed(r), "k = %v", k)
	}
}

func TestScalarMultDistributivity(t *testing.T) {
	rand := unsaferand.New("TestScalarMultDistributivity")
	for _, c := range []*NamedCurve{Secp256k1, P256} {
		for i := 0; i < 4; i++ {
			j, k := rand.Scalar(c.N), rand.Scalar(c.N)

			jG, err := c.ScalarBaseMult(j)
			require.NoError(t, err)
			kG, err := c.ScalarBaseMult(k)
			require.NoError(t, err)
			sum, err := c.Add(jG, kG)
			require.NoError(t, err)

			jk, err := c.ScalarBaseMult(new(big.Int).Add(j, k))
			require.NoError(t, err)
			require.True(t, jk.Equal(sum), "%s: (%v + %v)·G", c.Name(), j, k)
		}
	}
}

func TestScalarMultNegative(t *testing.T) {
	rand := unsaferand.New("TestScalarMultNegative")
	for _, c := range SupportedCurves {
		k := rand.Scalar(c.N)
		kG, err := c.ScalarBaseMult(k)
		require.NoError(t, err)

		r, err := c.ScalarBaseMult(new(big.Int).Neg(k))
		require.NoError(t, err)
		require.True(t, r.Equal(c.Negate(kG)), c.Name())

		// -k·G = (N - k)·G
		r, err = c.ScalarBaseMult(new(big.Int).Sub(c.N, k))
		require.NoError(t, err)
		require.True(t, r.Equal(c.Negate(kG)), c.Name())
	}
}

func TestParsing(t *testing.T) {
	e, err := Toy17.Element("0x10")
	require.NoError(t, err)
	require.Equal(t, "16", e.String())

	e, err = Toy17.Element("-1")
	require.NoError(t, err)
	require.Equal(t, "16", e.String())

	_, err = Toy17.Element("one")
	require.Error(t, err)

	p, err := Toy17.Point("5", "1")
	require.NoError(t, err)
	require.True(t, p.Equal(Toy17.G))

	_, err = Toy17.Point("5", "y")
	require.Error(t, err)
}
