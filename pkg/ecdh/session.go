package ecdh

import (
	"context"
	"crypto/rand"
	"io"
	"math/big"

	"github.com/kexlab/ecdh-go/pkg/ecdh/curve"
	"github.com/kexlab/ecdh-go/pkg/ecdh/logging"
)

// Config carries the collaborators a session reads from. The zero value
// is usable: defaults resolve to crypto/rand, slog.Default() and the
// built-in settings defaults.
type Config struct {
	// Settings resolves the shared-secret encoding policy at
	// computation time. Nil means Defaults().
	Settings Settings

	// Logger receives peer-value rejection and computation failure
	// events. Secrets are never logged. Nil means logging.New(nil).
	Logger logging.Logger

	// Rand is the entropy source for key generation. Nil means
	// crypto/rand.Reader. Override only in deterministic tests.
	Rand io.Reader
}

// Session owns one ECDH key pair and the peer state of a single key
// exchange. The group descriptor is shared with the registry, not
// owned.
//
// A Session is a single-owner object: the mutating operations
// (SetPrivateValue, SetPeerPublicValue, Destroy) must be serialized by
// the caller. Operations are synchronous, CPU-bound scalar
// multiplications with no cancellation concept; a caller wanting a
// timeout bounds how long it waits for the call to return.
//
// The private scalar and the shared secret are overwritten, not merely
// dereferenced, on every replacement and on Destroy. Copies made
// internally by math/big during arithmetic are beyond reach; see the
// non-goals in the package documentation.
type Session struct {
	group    *curve.Group
	d        *big.Int
	pub      curve.Point
	peer     *curve.Point
	secret   []byte
	computed bool

	destroyed bool
	settings  Settings
	logger    logging.Logger
}

// NewSession resolves the group and generates a fresh key pair with a
// private scalar in [1, q-1]. A resolution or generation failure is
// fatal: no partially initialized session is ever returned.
func NewSession(id curve.GroupID, cfg Config) (*Session, error) {
	const op = "NewSession"

	group, err := curve.Resolve(id)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = rand.Reader
	}
	settings := cfg.Settings
	if settings == nil {
		settings = Defaults()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.New(nil)
	}

	d, pub, err := generateKeyPair(group, rng)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}

	return &Session{
		group:    group,
		d:        d,
		pub:      pub,
		settings: settings,
		logger:   logger.With(logging.Group(id.String())),
	}, nil
}

// generateKeyPair draws d uniformly from [1, q-1] and derives Q = d*G.
func generateKeyPair(group *curve.Group, rng io.Reader) (*big.Int, curve.Point, error) {
	max := group.Order()
	max.Sub(max, big.NewInt(1))
	d, err := rand.Int(rng, max)
	if err != nil {
		return nil, curve.Point{}, err
	}
	d.Add(d, big.NewInt(1))

	pub := group.ScalarBaseMult(d)
	if pub.IsInfinity() {
		return nil, curve.Point{}, ErrComputationFailed
	}
	return d, pub, nil
}

// Group returns the identifier of the session's group.
func (s *Session) Group() curve.GroupID {
	return s.group.ID()
}

// PublicValue returns the local public value in RFC 4753 wire form. The
// public value always carries both coordinates, independent of the
// shared-secret encoding policy.
func (s *Session) PublicValue() ([]byte, error) {
	const op = "PublicValue"
	if s.destroyed {
		return nil, &Error{Op: op, Err: ErrSessionDestroyed}
	}
	out, err := curve.EncodePoint(s.group, s.pub, false)
	if err != nil {
		return nil, &Error{Op: op, Err: err}
	}
	return out, nil
}

// SetPrivateValue replaces the key pair with one derived from the given
// big-endian scalar, recomputing the public point. It exists for
// deterministic tests and known-answer exchanges, not for production
// randomness. The scalar must be in [1, q-1]. On failure the prior key
// pair is left intact.
//
// A successful override invalidates any previously computed shared
// secret, which is wiped.
func (s *Session) SetPrivateValue(value []byte) error {
	const op = "SetPrivateValue"
	if s.destroyed {
		return &Error{Op: op, Err: ErrSessionDestroyed}
	}

	d := new(big.Int).SetBytes(value)
	if d.Sign() == 0 || d.Cmp(s.group.Order()) >= 0 {
		return errorf(op, "%w: scalar out of range", ErrInvalidScalar)
	}
	pub := s.group.ScalarBaseMult(d)
	if pub.IsInfinity() {
		return errorf(op, "%w: public point derivation failed", ErrInvalidScalar)
	}

	s.wipeSecret()
	zeroizeInt(s.d)
	s.d = d
	s.pub = pub
	return nil
}

// SetPeerPublicValue validates and accepts the peer's public value,
// then computes the shared secret S = d*Q_peer and stores its encoding
// per the session's x-coordinate-only policy.
//
// Validation failures (wrong length, malformed point) leave the session
// untouched. Once a decoded peer value is accepted the previous secret
// is stale and is wiped before the new computation; a computation
// failure after that point leaves the session with no secret and
// computed false.
func (s *Session) SetPeerPublicValue(value []byte) error {
	const op = "SetPeerPublicValue"
	ctx := context.Background()

	if s.destroyed {
		return &Error{Op: op, Err: ErrSessionDestroyed}
	}

	// Reject obviously wrong lengths before attempting a point decode.
	if want := 2 * s.group.FieldByteLen(); len(value) != want {
		s.logger.Warn(ctx, "ECDH public value has wrong length",
			logging.WireLen(len(value), want))
		return errorf(op, "%w: got %d bytes, want %d", ErrInvalidPeerValue, len(value), want)
	}

	peer, err := curve.DecodePoint(s.group, value)
	if err != nil {
		s.logger.Warn(ctx, "ECDH public value is malformed", "err", err)
		return errorf(op, "%w: %w", ErrInvalidPeerValue, err)
	}

	s.peer = &peer
	s.wipeSecret()

	secret := s.group.ScalarMult(peer, s.d)
	if secret.IsInfinity() {
		// Unreachable for validated input on a cofactor-1 curve; a
		// degenerate zero secret must never be returned in its place.
		s.logger.Error(ctx, "ECDH shared secret computation failed")
		return &Error{Op: op, Err: ErrComputationFailed}
	}

	xOnly := s.settings.Bool(SettingXCoordinateOnly, true)
	encoded, err := curve.EncodePoint(s.group, secret, xOnly)
	if err != nil {
		s.logger.Error(ctx, "ECDH shared secret encoding failed", "err", err)
		return errorf(op, "%w: %w", ErrComputationFailed, err)
	}
	zeroizeInt(secret.X)
	zeroizeInt(secret.Y)

	s.secret = encoded
	s.computed = true
	s.logger.Debug(ctx, "ECDH shared secret computed",
		"x_coordinate_only", xOnly, logging.Redacted("secret"))
	return nil
}

// SharedSecret returns a copy of the computed shared secret. It fails
// with ErrSecretNotAvailable until a valid peer value has been accepted
// since the last key pair change.
func (s *Session) SharedSecret() ([]byte, error) {
	const op = "SharedSecret"
	if s.destroyed {
		return nil, &Error{Op: op, Err: ErrSessionDestroyed}
	}
	if !s.computed {
		return nil, &Error{Op: op, Err: ErrSecretNotAvailable}
	}
	out := make([]byte, len(s.secret))
	copy(out, s.secret)
	return out, nil
}

// Destroy wipes the private scalar and the shared secret and renders
// the session unusable. It is idempotent. The group reference is
// shared, not owned, and is simply dropped.
func (s *Session) Destroy() {
	if s.destroyed {
		return
	}
	s.wipeSecret()
	zeroizeInt(s.d)
	s.d = nil
	s.pub = curve.Point{}
	s.peer = nil
	s.destroyed = true
}

// wipeSecret overwrites and drops the stored shared secret. Runs on
// every replacement and on teardown, including failure paths.
func (s *Session) wipeSecret() {
	ZeroizeBytes(s.secret)
	s.secret = nil
	s.computed = false
}
