package curve

import "fmt"

// DecodePoint parses the RFC 4753 wire encoding x || y into an affine
// point and validates curve membership. The encoding must be exactly
// 2 * FieldByteLen bytes; anything else fails with ErrMalformedPoint,
// as does a coordinate pair that is not on the curve. Malformed input
// is never mapped to the point at infinity or any other default.
func DecodePoint(g *Group, data []byte) (Point, error) {
	fl := g.FieldByteLen()
	if len(data) != 2*fl {
		return Point{}, fmt.Errorf("%w: got %d bytes, want %d", ErrMalformedPoint, len(data), 2*fl)
	}

	p := Point{
		X: DecodeFieldElement(data[:fl]),
		Y: DecodeFieldElement(data[fl:]),
	}
	if !g.IsOnCurve(p) {
		return Point{}, fmt.Errorf("%w: not on %s", ErrMalformedPoint, g.name)
	}
	return p, nil
}

// EncodePoint serializes an affine point as the fixed-width big-endian
// concatenation x || y, or x alone when xCoordinateOnly is set (the
// RFC 4753 errata form used for shared secrets). The point at infinity
// has no affine coordinates and fails with ErrPointAtInfinity.
func EncodePoint(g *Group, p Point, xCoordinateOnly bool) ([]byte, error) {
	if p.IsInfinity() {
		return nil, ErrPointAtInfinity
	}

	fl := g.FieldByteLen()
	x := EncodeFieldElement(p.X, fl)
	if xCoordinateOnly {
		return x, nil
	}
	out := make([]byte, 2*fl)
	copy(out, x)
	copy(out[fl:], EncodeFieldElement(p.Y, fl))
	return out, nil
}
