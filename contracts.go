// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

// Package msm computes multi-scalar multiplications R = Σ k_i·G_i over a
// prime-order elliptic curve subgroup using Pippenger's bucket method.
//
// The package is deliberately curve-agnostic: it never defines field or
// group arithmetic itself. Callers supply a scalar field and a curve group
// satisfying the contracts in this file, generic over the concrete point
// and representation types. See package internal/testcurve for a small
// reference instantiation exercised by this package's own tests.
package msm

// Repr is the fixed-width, little-endian limb representation of a scalar,
// obtained by reducing a Scalar out of its field's internal form (e.g. out
// of Montgomery form). Shr returns a shifted copy rather than mutating in
// place: window extraction runs concurrently across chunk workers that all
// read the same backing scalar slice, and a shared Repr must never be
// mutated underneath another goroutine.
type Repr[T any] interface {
	comparable

	// Shr returns a copy of the representation shifted right by bits.
	Shr(bits uint) T

	// Limbs exposes the representation as little-endian 64-bit limbs.
	// The kernel only ever reads Limbs()[0] after shifting, matching the
	// reference algorithm's "exp.as_ref()[0] % (1<<c)" digit extraction.
	Limbs() []uint64
}

// Scalar is a prime-field element. R is its Repr type.
type Scalar[R Repr[R]] interface {
	IsZero() bool
	IsOne() bool

	// ToRepr returns the canonical (non-Montgomery) representation.
	ToRepr() R

	// NumBits is the bit length of the field's modulus (b in the spec).
	NumBits() uint
}

// Affine is a curve point in the representation optimised for mixed
// addition into a Projective accumulator.
type Affine[A any] interface {
	comparable
	IsZero() bool
}

// Projective is implemented by *P for a concrete projective point type P.
// Accumulators are mutated in place by design: every bucket and every
// per-chunk accumulator is owned by exactly one goroutine for its entire
// lifetime (§3 Lifecycle), so in-place mutation needs no synchronization.
type Projective[P any, A any] interface {
	*P

	SetZero()
	IsZero() bool
	Equal(other *P) bool

	// AddAssign adds a projective point into the receiver.
	AddAssign(other *P)

	// AddMixed adds an affine point into the receiver (mixed addition).
	AddMixed(a *A)

	// Double doubles the receiver in place.
	Double()
}
