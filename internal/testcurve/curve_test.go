// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package testcurve

import (
	"math/big"
	"testing"
)

func TestScalarZeroOne(t *testing.T) {
	if !ScalarZero().IsZero() {
		t.Error("ScalarZero().IsZero() = false")
	}
	if !ScalarOne().IsOne() {
		t.Error("ScalarOne().IsOne() = false")
	}
	if ScalarOne().IsZero() {
		t.Error("ScalarOne().IsZero() = true")
	}
}

func TestScalarReprRoundTrip(t *testing.T) {
	for _, v := range []uint64{0, 1, 2, 12345, 1 << 40} {
		s := ScalarFromUint64(v)
		r := s.ToRepr()
		got := reprToBig(r)
		if got.Cmp(new(big.Int).SetUint64(v)) != 0 {
			t.Errorf("ToRepr round trip for %d: got %s", v, got)
		}
	}
}

func TestReprShr(t *testing.T) {
	s := ScalarFromUint64(0b1011000)
	r := s.ToRepr().Shr(3)
	if got := r.Limbs()[0]; got != 0b1011 {
		t.Errorf("Shr(3) limb0 = %b, want %b", got, 0b1011)
	}
}

func TestProjectiveAddAssignMatchesBigInt(t *testing.T) {
	a := ProjectiveFromAffine(AffineFromBig(big.NewInt(41)))
	b := ProjectiveFromAffine(AffineFromBig(big.NewInt(1)))
	a.AddAssign(&b)
	if a.BigInt().Cmp(big.NewInt(42)) != 0 {
		t.Errorf("AddAssign: got %s, want 42", a.BigInt())
	}
}

func TestProjectiveDoubleMatchesAddAssign(t *testing.T) {
	a := ProjectiveFromAffine(AffineFromBig(big.NewInt(19)))
	b := ProjectiveFromAffine(AffineFromBig(big.NewInt(19)))
	a.Double()
	b.AddAssign(&b)
	if !a.Equal(&b) {
		t.Errorf("Double() = %s, want %s", a.BigInt(), b.BigInt())
	}
}

func TestProjectiveAddMixedZeroIsNoop(t *testing.T) {
	a := ProjectiveFromAffine(AffineFromBig(big.NewInt(5)))
	zero := AffineZero()
	a.AddMixed(&zero)
	if a.BigInt().Cmp(big.NewInt(5)) != 0 {
		t.Errorf("AddMixed(zero) changed value: got %s", a.BigInt())
	}
}

func TestProjectiveSetZero(t *testing.T) {
	var p Projective
	p.SetZero()
	if !p.IsZero() {
		t.Error("SetZero then IsZero() = false")
	}
}

func TestProjectiveWrapsModGroupOrder(t *testing.T) {
	var p Projective
	p.SetZero()
	p.v = new(big.Int).Sub(groupOrder, big.NewInt(1))
	one := AffineFromBig(big.NewInt(1))
	p.AddMixed(&one)
	if !p.IsZero() {
		t.Errorf("groupOrder-1 + 1 should wrap to zero, got %s", p.BigInt())
	}
}

func TestAffineComparable(t *testing.T) {
	a := AffineFromBig(big.NewInt(3))
	b := AffineFromBig(big.NewInt(3))
	if a != b {
		t.Error("equal-valued Affine points should compare equal")
	}
	c := AffineFromBig(big.NewInt(4))
	if a == c {
		t.Error("different-valued Affine points should not compare equal")
	}
}
