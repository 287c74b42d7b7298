// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package msm

// runKernelDense runs the Pippenger bucket method (§4.2) over one
// contiguous slice of bases and scalars for a single window task. It is
// the C2 "window worker" applied to the dense entry points, where bases
// are a plain borrowed slice.
func runKernelDense[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	bases []A, scalars []S, task windowTask,
) P {
	buckets := newBuckets[P, A, PT](task.c)

	var acc P
	PT(&acc).SetZero()

	n := len(scalars)
	for i := 0; i < n; i++ {
		s := scalars[i]

		// Advisory prefetch of the next bucket this iteration will
		// touch; correctness does not depend on it (§4.2 prefetch
		// discipline).
		if i+1 < n {
			prefetchBucket(buckets, digitOf(scalars[i+1], task.skip, task.c))
		}

		if s.IsZero() {
			continue
		}
		if s.IsOne() {
			if task.handleTrivial {
				PT(&acc).AddMixed(&bases[i])
			}
			continue
		}

		d := digitOf(s, task.skip, task.c)
		if d == 0 {
			continue
		}
		PT(&buckets[d-1]).AddMixed(&bases[i])
	}

	return reduceBuckets[P, A, PT](acc, buckets)
}

// runKernelSparse is the same algorithm applied against a streamed Source
// and an optional DensityMap (§4.4): a false density entry advances the
// base cursor without being charged against a scalar.
func runKernelSparse[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	src Source[A, P, PT], density DensityMap, scalars []S, task windowTask,
) (P, error) {
	buckets := newBuckets[P, A, PT](task.c)

	var acc P
	PT(&acc).SetZero()

	for i, s := range scalars {
		if !density.Bit(i) {
			if err := src.Skip(1); err != nil {
				return acc, err
			}
			continue
		}

		if s.IsZero() {
			if err := src.Skip(1); err != nil {
				return acc, err
			}
			continue
		}
		if s.IsOne() {
			if task.handleTrivial {
				if err := src.AddAssignMixed(&acc); err != nil {
					return acc, err
				}
			} else if err := src.Skip(1); err != nil {
				return acc, err
			}
			continue
		}

		d := digitOf(s, task.skip, task.c)
		if d == 0 {
			if err := src.Skip(1); err != nil {
				return acc, err
			}
			continue
		}
		if err := src.AddAssignMixed(&buckets[d-1]); err != nil {
			return acc, err
		}
	}

	return reduceBuckets[P, A, PT](acc, buckets), nil
}

// runKernelUnrolled is the fixed-block variant described in §4.2's
// "Optional unrolling": pairs are copied into a stack-local block before
// being processed, trading branch-predictor-friendly batching for the
// exact same output as runKernelDense.
func runKernelUnrolled[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	bases []A, scalars []S, task windowTask,
) P {
	const blockSize = 8

	buckets := newBuckets[P, A, PT](task.c)
	var acc P
	PT(&acc).SetZero()

	n := len(scalars)
	var blockS [blockSize]S
	var blockA [blockSize]A

	for start := 0; start < n; start += blockSize {
		end := min(start+blockSize, n)
		width := end - start
		copy(blockS[:width], scalars[start:end])
		copy(blockA[:width], bases[start:end])

		for i := 0; i < width; i++ {
			if i+1 < width {
				prefetchBucket(buckets, digitOf(blockS[i+1], task.skip, task.c))
			}
			s := blockS[i]
			if s.IsZero() {
				continue
			}
			if s.IsOne() {
				if task.handleTrivial {
					PT(&acc).AddMixed(&blockA[i])
				}
				continue
			}
			d := digitOf(s, task.skip, task.c)
			if d == 0 {
				continue
			}
			PT(&buckets[d-1]).AddMixed(&blockA[i])
		}
	}

	return reduceBuckets[P, A, PT](acc, buckets)
}

// newBuckets allocates the 2^c - 1 bucket array; bucket 0 (the "scalar
// digit is 0" case) is never materialised (§3 invariant 4).
func newBuckets[P any, A any, PT Projective[P, A]](c uint) []P {
	buckets := make([]P, (uint(1)<<c)-1)
	for i := range buckets {
		PT(&buckets[i]).SetZero()
	}
	return buckets
}

// reduceBuckets performs the summation-by-parts reduction (§4.2 step 3):
// running = 0; for i = 2^c-1 down to 1: running += B[i]; acc += running.
func reduceBuckets[P any, A any, PT Projective[P, A]](acc P, buckets []P) P {
	var running P
	PT(&running).SetZero()
	for i := len(buckets) - 1; i >= 0; i-- {
		PT(&running).AddAssign(&buckets[i])
		PT(&acc).AddAssign(&running)
	}
	return acc
}

// digitOf extracts the window digit d = (scalar >> skip) mod 2^c. Digit
// overflow past 2^c-1 is prohibited by construction: the mask below always
// yields a value in [0, 2^c).
func digitOf[R Repr[R], S Scalar[R]](s S, skip, c uint) int {
	shifted := s.ToRepr().Shr(skip)
	limbs := shifted.Limbs()
	if len(limbs) == 0 {
		return 0
	}
	mask := (uint64(1) << c) - 1
	return int(limbs[0] & mask)
}

// prefetchBucket is an advisory cache hint only. Go exposes no portable
// prefetch intrinsic, so this is a deliberate no-op: the spec requires
// prefetching be elidable on platforms without a prefetch primitive, and
// correctness must never depend on whether it ran.
func prefetchBucket[P any](buckets []P, nextDigit int) {
	_ = buckets
	_ = nextDigit
}
