package curve

import "math/big"

// EncodeFieldElement converts a field coordinate to its fixed-width
// big-endian encoding, zero-padded on the left to size bytes. Values
// wider than size are truncated to their low-order bytes; callers are
// expected to pass reduced coordinates.
func EncodeFieldElement(v *big.Int, size int) []byte {
	out := make([]byte, size)
	b := v.Bytes()
	if len(b) > size {
		b = b[len(b)-size:]
	}
	copy(out[size-len(b):], b)
	return out
}

// DecodeFieldElement converts a big-endian encoding back to a field
// coordinate. Length validation is the caller's responsibility; the
// point codec checks the full encoding length before splitting.
func DecodeFieldElement(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}
