// Package ecdh implements Elliptic-Curve Diffie-Hellman key agreement
// over a closed set of named prime-curve groups, producing a shared
// secret from a local private scalar and a peer-supplied public point,
// encoded per RFC 4753.
//
// # Sessions
//
// A Session is created bound to one group, generates a fresh key pair,
// and derives the shared secret once the peer's public value has been
// validated and accepted:
//
//	sess, err := ecdh.NewSession(curve.ECP256BP, ecdh.Config{})
//	if err != nil {
//	    return err
//	}
//	defer sess.Destroy()
//
//	mine, _ := sess.PublicValue()          // send to peer
//	if err := sess.SetPeerPublicValue(theirs); err != nil {
//	    return err                         // negotiation failure
//	}
//	secret, err := sess.SharedSecret()
//
// Sessions are single-owner objects: callers serialize mutating
// operations. Group descriptors are immutable and shared.
//
// # Wire Format and the x-coordinate-only Policy
//
// Public values are always the fixed-width concatenation x || y of the
// affine coordinates (RFC 4753). The shared secret uses the same format
// by the letter of the RFC, but the published errata (ID 9) reduces it
// to the x coordinate alone, and that errata behavior is the default
// here. The choice is wire-visible to peers, so it stays a caller
// configuration (SettingXCoordinateOnly through the Settings
// collaborator), read each time a secret is computed.
//
// # Validation and Error Handling
//
// Peer values are length-checked and validated for on-curve membership
// before acceptance; subgroup-order validation is deliberately out of
// scope (all supported groups have cofactor 1). Every failure is
// reported as a typed error and nothing is downgraded to a default
// value; in particular a point-at-infinity multiplication result is a
// computation failure, never an all-zero secret.
//
// # Secret Hygiene
//
// The private scalar and stored shared secret are overwritten in place
// on every replacement and on Destroy. This is best effort: Go's
// runtime and math/big may hold transient copies that cannot be wiped,
// and no constant-time guarantees are made beyond those of the
// underlying arithmetic.
package ecdh
