package curve

import (
	"crypto/elliptic"
	"fmt"
	"math/big"
)

// newGroupFromConstants builds a validated Group from an explicit
// domain-parameter table. Construction fails with ErrDomainConstruction
// if any constant fails to parse or the candidate generator does not
// satisfy the curve equation; a failure here indicates corrupted
// embedded data, never bad runtime input.
func newGroupFromConstants(id GroupID, c *domainConstants) (*Group, error) {
	parse := func(field, hexval string) (*big.Int, error) {
		v, ok := new(big.Int).SetString(hexval, 16)
		if !ok {
			return nil, fmt.Errorf("%w: %s: bad constant %q", ErrDomainConstruction, c.name, field)
		}
		return v, nil
	}

	g := &Group{id: id, name: c.name, cofactor: 1}
	var err error
	if g.p, err = parse("p", c.p); err != nil {
		return nil, err
	}
	if g.a, err = parse("a", c.a); err != nil {
		return nil, err
	}
	if g.b, err = parse("b", c.b); err != nil {
		return nil, err
	}
	if g.gx, err = parse("x", c.x); err != nil {
		return nil, err
	}
	if g.gy, err = parse("y", c.y); err != nil {
		return nil, err
	}
	if g.order, err = parse("q", c.q); err != nil {
		return nil, err
	}

	if g.order.Sign() <= 0 {
		return nil, fmt.Errorf("%w: %s: non-positive order", ErrDomainConstruction, c.name)
	}
	if !g.IsOnCurve(Point{X: g.gx, Y: g.gy}) {
		return nil, fmt.Errorf("%w: %s: generator not on curve", ErrDomainConstruction, c.name)
	}
	return g, nil
}

// newGroupFromCatalog wraps a host catalog curve as a Group. The a
// coefficient must be supplied by the caller because
// elliptic.CurveParams does not carry it (the crypto/elliptic NIST
// curves use a = p - 3, secp256k1 uses a = 0). Scalar multiplication
// stays delegated to the catalog implementation.
func newGroupFromCatalog(id GroupID, impl elliptic.Curve, a *big.Int) *Group {
	params := impl.Params()
	return &Group{
		id:       id,
		name:     params.Name,
		p:        params.P,
		a:        a,
		b:        params.B,
		gx:       params.Gx,
		gy:       params.Gy,
		order:    params.N,
		cofactor: 1,
		impl:     impl,
	}
}

func aMinusThree(p *big.Int) *big.Int {
	return new(big.Int).Sub(p, big.NewInt(3))
}
