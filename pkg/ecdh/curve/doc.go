// Package curve provides the elliptic curve groups used for ECDH key
// agreement, together with the RFC 4753 point wire codec.
//
// This package defines a stable public API for curve group resolution,
// including group descriptors (Group), affine points (Point), and the
// fixed-width field-element and point codecs used on the wire.
//
// # Supported Groups
//
//   - ECP192, ECP224, ECP256, ECP384, ECP521 (NIST prime curves)
//   - ECP224BP, ECP256BP, ECP384BP, ECP512BP (Brainpool, RFC 5639)
//   - Secp256k1 (supplemental, private-use identifier)
//
// Group identifiers are the IANA IKEv2 Diffie-Hellman group numbers, so
// values are wire-stable across releases.
//
// # Group Sourcing
//
// A group is backed either by a host catalog curve (crypto/elliptic for
// the NIST curves, btcec for secp256k1) or by domain parameters built
// from embedded constants (Brainpool curves and secp192r1, which are
// absent from the Go catalog). Callers never distinguish the two paths:
// Resolve returns the same immutable *Group type for both, constructed
// once per identifier and cached.
//
// # Wire Format
//
// Points travel as the fixed-width big-endian concatenation x || y of
// the affine coordinates, each padded to the field byte length
// (RFC 4753). DecodePoint validates curve membership and never
// substitutes the point at infinity for malformed input. EncodePoint
// can emit the x coordinate alone for the shared-secret errata path.
//
// # Validation Depth
//
// Peer points are checked for on-curve membership only. Subgroup-order
// and cofactor validation are deliberately not performed (all supported
// groups have cofactor 1); strengthening this would change wire
// compatibility with existing peers.
//
// # Concurrency
//
// Group values are immutable after construction and safe for concurrent
// use by any number of goroutines. Resolve is safe for concurrent use.
package curve
