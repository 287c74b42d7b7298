// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package testcurve is a minimal group instantiation of the msm package's
// Scalar/Repr/Affine/Projective contracts, used only to exercise that
// package's own tests. It is not a cryptographically meaningful elliptic
// curve: group elements are plain integers mod a fixed prime, with
// addition standing in for point addition and doubling for point
// doubling. The bucket method cares only that its group is abelian with
// a fast add and double, so this is enough to drive every property the
// msm package's tests check without pulling in an unverified curve
// library.
package testcurve

import (
	"encoding/binary"
	"math/big"
)

// groupOrder is 2^127 - 1, a Mersenne prime, used as the modulus for both
// the toy group and its scalar field.
var groupOrder = func() *big.Int {
	r := new(big.Int).Lsh(big.NewInt(1), 127)
	return r.Sub(r, big.NewInt(1))
}()

// NumBits is the bit length of groupOrder.
const NumBits = 127

// Repr is the little-endian 2-limb representation of a value reduced mod
// groupOrder.
type Repr [2]uint64

// Shr returns a copy of r shifted right by bits.
func (r Repr) Shr(bits uint) Repr {
	v := reprToBig(r)
	v.Rsh(v, bits)
	return bigToRepr(v)
}

// Limbs exposes r as little-endian 64-bit limbs.
func (r Repr) Limbs() []uint64 { return r[:] }

func bigToRepr(v *big.Int) Repr {
	var buf [16]byte
	v.FillBytes(buf[:])
	var r Repr
	r[0] = binary.BigEndian.Uint64(buf[8:16])
	r[1] = binary.BigEndian.Uint64(buf[0:8])
	return r
}

func reprToBig(r Repr) *big.Int {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], r[1])
	binary.BigEndian.PutUint64(buf[8:16], r[0])
	return new(big.Int).SetBytes(buf[:])
}

// Scalar is an element of the toy scalar field Z/groupOrder.
type Scalar struct {
	v *big.Int
}

// NewScalar reduces v mod groupOrder.
func NewScalar(v *big.Int) Scalar {
	return Scalar{v: new(big.Int).Mod(v, groupOrder)}
}

// ScalarFromUint64 is a convenience constructor for small test scalars.
func ScalarFromUint64(v uint64) Scalar {
	return NewScalar(new(big.Int).SetUint64(v))
}

// ScalarZero is the additive identity of the scalar field.
func ScalarZero() Scalar { return Scalar{v: big.NewInt(0)} }

// ScalarOne is the scalar field's multiplicative identity, 1.
func ScalarOne() Scalar { return Scalar{v: big.NewInt(1)} }

// ScalarMax is groupOrder - 1, the largest representable scalar; useful
// for exercising the top of the window range.
func ScalarMax() Scalar {
	return Scalar{v: new(big.Int).Sub(groupOrder, big.NewInt(1))}
}

func (s Scalar) IsZero() bool { return s.v.Sign() == 0 }
func (s Scalar) IsOne() bool  { return s.v.Cmp(big.NewInt(1)) == 0 }
func (s Scalar) ToRepr() Repr { return bigToRepr(s.v) }
func (s Scalar) NumBits() uint { return NumBits }

// BigInt returns a copy of s's value as a big.Int, for use by reference
// (naive) implementations in tests.
func (s Scalar) BigInt() *big.Int { return new(big.Int).Set(s.v) }

// Affine is a group element in its comparable, by-value form.
type Affine struct {
	v    Repr
	zero bool
}

// AffineFromBig builds an Affine from an arbitrary integer, reduced mod
// groupOrder.
func AffineFromBig(v *big.Int) Affine {
	return Affine{v: bigToRepr(new(big.Int).Mod(v, groupOrder))}
}

// AffineZero is the group identity in affine form.
func AffineZero() Affine { return Affine{zero: true} }

// AffineGenerator is a fixed non-identity element used as the group's
// generator in tests.
func AffineGenerator() Affine { return AffineFromBig(big.NewInt(7)) }

func (a Affine) IsZero() bool { return a.zero }

// BigInt returns a's value as a big.Int.
func (a Affine) BigInt() *big.Int {
	if a.zero {
		return big.NewInt(0)
	}
	return reprToBig(a.v)
}

// Projective is the mutable accumulator type bucket and window state is
// built from. Unlike Affine it carries no comparable constraint, so it is
// free to hold a *big.Int directly.
type Projective struct {
	v    *big.Int
	zero bool
}

// ProjectiveFromAffine lifts an Affine point into projective form.
func ProjectiveFromAffine(a Affine) Projective {
	if a.IsZero() {
		var z Projective
		z.SetZero()
		return z
	}
	return Projective{v: a.BigInt()}
}

func (p *Projective) ensure() {
	if p.v == nil {
		p.v = big.NewInt(0)
	}
}

func (p *Projective) SetZero() {
	p.v = big.NewInt(0)
	p.zero = true
}

func (p *Projective) IsZero() bool {
	return p.zero || p.v == nil || p.v.Sign() == 0
}

// normalized returns p's value reduced into [0, groupOrder).
func (p *Projective) normalized() *big.Int {
	if p.v == nil {
		return big.NewInt(0)
	}
	return new(big.Int).Mod(p.v, groupOrder)
}

func (p *Projective) Equal(other *Projective) bool {
	return p.normalized().Cmp(other.normalized()) == 0
}

func (p *Projective) AddAssign(other *Projective) {
	p.ensure()
	p.v.Add(p.v, other.normalized())
	p.v.Mod(p.v, groupOrder)
	p.zero = p.v.Sign() == 0
}

func (p *Projective) AddMixed(a *Affine) {
	if a.IsZero() {
		return
	}
	p.ensure()
	p.v.Add(p.v, a.BigInt())
	p.v.Mod(p.v, groupOrder)
	p.zero = p.v.Sign() == 0
}

func (p *Projective) Double() {
	p.ensure()
	p.v.Lsh(p.v, 1)
	p.v.Mod(p.v, groupOrder)
	p.zero = p.v.Sign() == 0
}

// BigInt returns p's current value as a big.Int.
func (p *Projective) BigInt() *big.Int { return p.normalized() }
