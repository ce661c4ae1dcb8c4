package curve

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
	"sync"

	"github.com/btcsuite/btcd/btcec/v2"
)

// GroupID identifies an ECDH group. Values are the IANA IKEv2
// Diffie-Hellman group numbers, so they are stable on the wire;
// Secp256k1 has no IKE assignment and uses a private-use number.
type GroupID uint16

const (
	ECP256   GroupID = 19
	ECP384   GroupID = 20
	ECP521   GroupID = 21
	ECP192   GroupID = 25
	ECP224   GroupID = 26
	ECP224BP GroupID = 27
	ECP256BP GroupID = 28
	ECP384BP GroupID = 29
	ECP512BP GroupID = 30

	// Secp256k1 is a supplemental catalog entry backed by btcec. It is
	// not part of the IKE-numbered set; 1024 is in the private-use
	// range.
	Secp256k1 GroupID = 1024
)

// String returns the conventional group name, e.g. "ecp256bp".
func (id GroupID) String() string {
	switch id {
	case ECP192:
		return "ecp192"
	case ECP224:
		return "ecp224"
	case ECP256:
		return "ecp256"
	case ECP384:
		return "ecp384"
	case ECP521:
		return "ecp521"
	case ECP224BP:
		return "ecp224bp"
	case ECP256BP:
		return "ecp256bp"
	case ECP384BP:
		return "ecp384bp"
	case ECP512BP:
		return "ecp512bp"
	case Secp256k1:
		return "secp256k1"
	default:
		return fmt.Sprintf("unknown(%d)", uint16(id))
	}
}

// All returns the supported group identifiers in ascending identifier
// order.
func All() []GroupID {
	return []GroupID{
		ECP256, ECP384, ECP521,
		ECP192, ECP224,
		ECP224BP, ECP256BP, ECP384BP, ECP512BP,
		Secp256k1,
	}
}

// ParseGroupID maps a conventional group name (as printed by String)
// back to its identifier.
func ParseGroupID(name string) (GroupID, error) {
	for _, id := range All() {
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedGroup, name)
}

// groupSource is the tagged sourcing variant for one identifier: either
// a host catalog curve (with its a coefficient, which CurveParams lacks)
// or an explicit constant table for the domain-parameter builder.
type groupSource struct {
	catalog   func() elliptic.Curve
	catalogA  func(p *big.Int) *big.Int
	constants *domainConstants
}

var sources = map[GroupID]groupSource{
	ECP224:    {catalog: elliptic.P224, catalogA: aMinusThree},
	ECP256:    {catalog: elliptic.P256, catalogA: aMinusThree},
	ECP384:    {catalog: elliptic.P384, catalogA: aMinusThree},
	ECP521:    {catalog: elliptic.P521, catalogA: aMinusThree},
	Secp256k1: {catalog: func() elliptic.Curve { return btcec.S256() }, catalogA: func(*big.Int) *big.Int { return big.NewInt(0) }},

	ECP192:   {constants: secp192r1},
	ECP224BP: {constants: brainpoolP224r1},
	ECP256BP: {constants: brainpoolP256r1},
	ECP384BP: {constants: brainpoolP384r1},
	ECP512BP: {constants: brainpoolP512r1},
}

var registry = struct {
	sync.Mutex
	groups map[GroupID]*Group
}{groups: make(map[GroupID]*Group)}

// Resolve returns the shared immutable Group for an identifier,
// constructing it on first use and caching it afterwards. Unrecognized
// identifiers fail with ErrUnsupportedGroup. Resolution has no side
// effects beyond the cache.
func Resolve(id GroupID) (*Group, error) {
	registry.Lock()
	defer registry.Unlock()

	if g, ok := registry.groups[id]; ok {
		return g, nil
	}

	src, ok := sources[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGroup, id)
	}

	var g *Group
	var err error
	if src.catalog != nil {
		impl := src.catalog()
		g = newGroupFromCatalog(id, impl, src.catalogA(impl.Params().P))
	} else {
		g, err = newGroupFromConstants(id, src.constants)
		if err != nil {
			return nil, err
		}
	}

	registry.groups[id] = g
	return g, nil
}
