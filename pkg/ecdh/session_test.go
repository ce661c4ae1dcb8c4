package ecdh_test

import (
	"errors"
	"testing"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/stretchr/testify/require"

	"github.com/kexlab/ecdh-go/pkg/ecdh"
	"github.com/kexlab/ecdh-go/pkg/ecdh/curve"
)

// seqBytes returns n bytes counting up from start; handy for
// deterministic private scalars that are valid on every 256-bit group.
func seqBytes(start byte, n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = start + byte(i)
	}
	return b
}

// TestExchangeSymmetry runs a full exchange on every supported group
// and requires both sides to derive the same secret.
func TestExchangeSymmetry(t *testing.T) {
	for _, id := range curve.All() {
		t.Run(id.String(), func(t *testing.T) {
			g, err := curve.Resolve(id)
			require.NoError(t, err)

			alice, err := ecdh.NewSession(id, ecdh.Config{})
			require.NoError(t, err)
			defer alice.Destroy()
			bob, err := ecdh.NewSession(id, ecdh.Config{})
			require.NoError(t, err)
			defer bob.Destroy()

			alicePub, err := alice.PublicValue()
			require.NoError(t, err)
			bobPub, err := bob.PublicValue()
			require.NoError(t, err)

			// Public values are always both coordinates and decode back
			// to a point on the curve.
			require.Len(t, alicePub, 2*g.FieldByteLen())
			pt, err := curve.DecodePoint(g, alicePub)
			require.NoError(t, err)
			require.True(t, g.IsOnCurve(pt))

			require.NoError(t, alice.SetPeerPublicValue(bobPub))
			require.NoError(t, bob.SetPeerPublicValue(alicePub))

			aliceSecret, err := alice.SharedSecret()
			require.NoError(t, err)
			bobSecret, err := bob.SharedSecret()
			require.NoError(t, err)

			require.Equal(t, aliceSecret, bobSecret)
			// Default policy is x-coordinate-only (RFC 4753 errata).
			require.Len(t, aliceSecret, g.FieldByteLen())
		})
	}
}

// TestXCoordinateOnlyToggle checks that the policy changes only the
// secret's length: the x-coordinate bytes are identical in both modes.
func TestXCoordinateOnlyToggle(t *testing.T) {
	g, err := curve.Resolve(curve.ECP256BP)
	require.NoError(t, err)

	privA := seqBytes(0x01, 32)
	privB := seqBytes(0x41, 32)

	exchange := func(xOnly bool) []byte {
		cfg := ecdh.Config{Settings: ecdh.MapSettings{ecdh.SettingXCoordinateOnly: xOnly}}
		a, err := ecdh.NewSession(curve.ECP256BP, cfg)
		require.NoError(t, err)
		defer a.Destroy()
		b, err := ecdh.NewSession(curve.ECP256BP, cfg)
		require.NoError(t, err)
		defer b.Destroy()

		require.NoError(t, a.SetPrivateValue(privA))
		require.NoError(t, b.SetPrivateValue(privB))

		bPub, err := b.PublicValue()
		require.NoError(t, err)
		require.NoError(t, a.SetPeerPublicValue(bPub))

		secret, err := a.SharedSecret()
		require.NoError(t, err)
		return secret
	}

	xOnlySecret := exchange(true)
	fullSecret := exchange(false)

	require.Len(t, xOnlySecret, g.FieldByteLen())
	require.Len(t, fullSecret, 2*g.FieldByteLen())
	require.Equal(t, xOnlySecret, fullSecret[:g.FieldByteLen()])
}

func TestSetPrivateValueDeterministic(t *testing.T) {
	priv := seqBytes(0x11, 32)

	a, err := ecdh.NewSession(curve.ECP256, ecdh.Config{})
	require.NoError(t, err)
	defer a.Destroy()
	b, err := ecdh.NewSession(curve.ECP256, ecdh.Config{})
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, a.SetPrivateValue(priv))
	require.NoError(t, b.SetPrivateValue(priv))

	aPub, err := a.PublicValue()
	require.NoError(t, err)
	bPub, err := b.PublicValue()
	require.NoError(t, err)
	require.Equal(t, aPub, bPub)
}

func TestSetPrivateValueInvalid(t *testing.T) {
	sess, err := ecdh.NewSession(curve.ECP256, ecdh.Config{})
	require.NoError(t, err)
	defer sess.Destroy()

	before, err := sess.PublicValue()
	require.NoError(t, err)

	g, err := curve.Resolve(curve.ECP256)
	require.NoError(t, err)
	order := g.Order().Bytes()

	for _, bad := range [][]byte{
		nil,
		{},
		{0x00},
		make([]byte, 32), // zero scalar
		order,            // d must be < q
	} {
		err := sess.SetPrivateValue(bad)
		require.Error(t, err)
		require.True(t, errors.Is(err, ecdh.ErrInvalidScalar))
	}

	// The prior key pair survives every failed override.
	after, err := sess.PublicValue()
	require.NoError(t, err)
	require.Equal(t, before, after)
}

func TestSetPeerPublicValueRejected(t *testing.T) {
	g, err := curve.Resolve(curve.ECP256)
	require.NoError(t, err)

	sess, err := ecdh.NewSession(curve.ECP256, ecdh.Config{})
	require.NoError(t, err)
	defer sess.Destroy()

	peer, err := ecdh.NewSession(curve.ECP256, ecdh.Config{})
	require.NoError(t, err)
	defer peer.Destroy()
	good, err := peer.PublicValue()
	require.NoError(t, err)

	// One byte short of 2 * field length.
	err = sess.SetPeerPublicValue(good[:len(good)-1])
	require.Error(t, err)
	require.True(t, errors.Is(err, ecdh.ErrInvalidPeerValue))

	// Right length, not on the curve.
	offCurve := make([]byte, 2*g.FieldByteLen())
	copy(offCurve, good)
	offCurve[len(offCurve)-1] ^= 0x01
	err = sess.SetPeerPublicValue(offCurve)
	require.Error(t, err)
	require.True(t, errors.Is(err, ecdh.ErrInvalidPeerValue))
	require.True(t, errors.Is(err, curve.ErrMalformedPoint))

	// Nothing was accepted, so no secret exists.
	_, err = sess.SharedSecret()
	require.Error(t, err)
	require.True(t, errors.Is(err, ecdh.ErrSecretNotAvailable))
}

func TestSharedSecretBeforePeer(t *testing.T) {
	sess, err := ecdh.NewSession(curve.ECP512BP, ecdh.Config{})
	require.NoError(t, err)
	defer sess.Destroy()

	_, err = sess.SharedSecret()
	require.Error(t, err)
	require.True(t, errors.Is(err, ecdh.ErrSecretNotAvailable))
}

// TestSecp256k1MatchesBtcec cross-checks the x-coordinate-only shared
// secret against btcec's independent RFC 4753/5903 implementation.
func TestSecp256k1MatchesBtcec(t *testing.T) {
	privA := seqBytes(0x01, 32)
	privB := seqBytes(0x21, 32)

	a, err := ecdh.NewSession(curve.Secp256k1, ecdh.Config{})
	require.NoError(t, err)
	defer a.Destroy()
	b, err := ecdh.NewSession(curve.Secp256k1, ecdh.Config{})
	require.NoError(t, err)
	defer b.Destroy()

	require.NoError(t, a.SetPrivateValue(privA))
	require.NoError(t, b.SetPrivateValue(privB))

	aPub, err := a.PublicValue()
	require.NoError(t, err)
	require.NoError(t, b.SetPeerPublicValue(aPub))
	got, err := b.SharedSecret()
	require.NoError(t, err)

	// btcec expects the uncompressed SEC 1 form: 0x04 || x || y.
	btcecPub, err := btcec.ParsePubKey(append([]byte{0x04}, aPub...))
	require.NoError(t, err)
	btcecPriv, _ := btcec.PrivKeyFromBytes(privB)
	want := btcec.GenerateSharedSecret(btcecPriv, btcecPub)

	require.Equal(t, want, got)
}

func TestUnsupportedGroup(t *testing.T) {
	_, err := ecdh.NewSession(curve.GroupID(999), ecdh.Config{})
	require.Error(t, err)
	require.True(t, errors.Is(err, curve.ErrUnsupportedGroup))
}

func TestDestroy(t *testing.T) {
	sess, err := ecdh.NewSession(curve.ECP224, ecdh.Config{})
	require.NoError(t, err)

	sess.Destroy()
	sess.Destroy() // idempotent

	_, err = sess.PublicValue()
	require.True(t, errors.Is(err, ecdh.ErrSessionDestroyed))
	_, err = sess.SharedSecret()
	require.True(t, errors.Is(err, ecdh.ErrSessionDestroyed))
	err = sess.SetPrivateValue(seqBytes(0x01, 28))
	require.True(t, errors.Is(err, ecdh.ErrSessionDestroyed))
	err = sess.SetPeerPublicValue(make([]byte, 56))
	require.True(t, errors.Is(err, ecdh.ErrSessionDestroyed))
}
