package curve

import "errors"

var (
	// ErrUnsupportedGroup indicates an unknown or unavailable group
	// identifier. Fatal to session creation.
	ErrUnsupportedGroup = errors.New("curve: unsupported group")

	// ErrDomainConstruction indicates malformed embedded constants or a
	// generator/order pairing the arithmetic layer rejects. This is a
	// packaging bug, not a runtime input problem.
	ErrDomainConstruction = errors.New("curve: domain parameter construction failed")

	// ErrMalformedPoint indicates a point encoding that fails length,
	// parse, or curve-membership checks. Peer-controlled input; callers
	// should treat it as a negotiation failure.
	ErrMalformedPoint = errors.New("curve: malformed point")

	// ErrPointAtInfinity indicates an attempt to encode the point at
	// infinity, which has no affine coordinates.
	ErrPointAtInfinity = errors.New("curve: point at infinity")
)
