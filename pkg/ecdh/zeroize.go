package ecdh

import (
	"math/big"
	"runtime"
)

// ZeroizeBytes overwrites the provided slice with zeros and prevents
// compiler dead store elimination using runtime.KeepAlive.
//
// This follows the pattern recommended in golang/go#33325 and used by
// security-focused libraries. It cannot guarantee complete memory
// sanitization (the garbage collector may have made copies), but it is
// the current best practice in the Go ecosystem for sensitive buffers
// and it runs on every secret replacement and on session teardown,
// including failure paths.
func ZeroizeBytes(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	// Prevent dead store elimination per golang/go#33325
	runtime.KeepAlive(buf)
}

// zeroizeInt overwrites the limbs of a big.Int in place. Intermediate
// values allocated inside math/big during arithmetic are out of reach;
// this covers the long-lived private scalar itself.
func zeroizeInt(v *big.Int) {
	if v == nil {
		return
	}
	bits := v.Bits()
	for i := range bits {
		bits[i] = 0
	}
	v.SetInt64(0)
	runtime.KeepAlive(bits)
}
