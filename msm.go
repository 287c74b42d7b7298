// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package msm

import (
	"github.com/openmsm/pippenger/workerpool"
)

// MSMDense computes R = Σ k_i·G_i over bases and scalars held as plain,
// caller-owned slices (§6.1). Windows are processed sequentially, lowest
// first; within each window, parallelism comes from chunking across the
// pool via the C3 reducer (runWindowDense).
func MSMDense[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	pool *workerpool.Pool, bases []A, scalars []S, opts Options,
) (P, error) {
	return msmDense[A, P, PT, R, S](pool, bases, scalars, opts, false)
}

// MSMDenseConsuming is the same computation as MSMDense, offered for
// callers that already hold a disposable copy of bases and scalars and
// want to say so: it never mutates or retains its arguments beyond the
// call, but a caller that owns a throwaway slice need not make a
// defensive copy before calling it. It uses the fixed-block unrolled
// kernel (§4.2's "optional unrolling"), which is byte-for-byte equivalent
// to the straight-line kernel but processes bases in batches of 8.
func MSMDenseConsuming[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	pool *workerpool.Pool, bases []A, scalars []S, opts Options,
) (P, error) {
	return msmDense[A, P, PT, R, S](pool, bases, scalars, opts, true)
}

func msmDense[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	pool *workerpool.Pool, bases []A, scalars []S, opts Options, unroll bool,
) (P, error) {
	var zero P
	if err := validateLengths(len(bases), len(scalars)); err != nil {
		PT(&zero).SetZero()
		return zero, err
	}
	if len(scalars) == 0 {
		PT(&zero).SetZero()
		return zero, nil
	}

	numBits := scalars[0].NumBits()
	c := opts.ForceWindowBits
	if c == 0 {
		c = chooseDenseWindowSize(pool.GetChunkSize(len(scalars)))
	}
	tasks := planWindows(numBits, c)

	results := make([]P, len(tasks))
	for i, task := range tasks {
		w, err := runWindowDense[A, P, PT, R, S](pool, bases, scalars, task, unroll)
		if err != nil {
			PT(&zero).SetZero()
			return zero, err
		}
		results[i] = w
	}
	return combineWindows[P, A, PT](results, c), nil
}

// MSMSparse computes R = Σ k_i·G_i against a streamed base Source and an
// optional density map (§6.1, §4.4). Parallelism comes from windows
// instead of chunks: one pool task per window, each running the
// unchunked C2 kernel directly against its own Source cursor. The
// returned Future resolves once every window has finished and been
// combined; it is itself produced by an unbounded coordinating goroutine
// (workerpool.Go) rather than a pool slot, so waiting on window futures
// can never starve the pool of the workers it needs to produce them.
func MSMSparse[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	pool *workerpool.Pool, basesBuilder SourceBuilder[A, P, PT], density DensityMap, scalars []S, opts Options,
) (*workerpool.Future[P], error) {
	var zero P
	PT(&zero).SetZero()

	if size, ok := density.QuerySize(); ok && size != len(scalars) {
		return nil, lengthMismatch("density map size does not match scalar count")
	}
	if len(scalars) == 0 {
		return workerpool.Compute(pool, func() (P, error) { return zero, nil }), nil
	}

	numBits := scalars[0].NumBits()
	c := opts.ForceWindowBits
	if c == 0 {
		c = chooseWindowSize(len(scalars), numBits, pool.CPUs(), opts.Strategy)
	}
	tasks := planWindows(numBits, c)

	futs := make([]*workerpool.Future[P], len(tasks))
	for i, task := range tasks {
		task := task
		futs[i] = workerpool.Compute(pool, func() (P, error) {
			src := basesBuilder.New()
			return runKernelSparse[A, P, PT, R, S](src, density, scalars, task)
		})
	}

	return workerpool.Go(func() (P, error) {
		results, err := workerpool.Join(futs)
		if err != nil {
			return zero, workerFailure(err)
		}
		return combineWindows[P, A, PT](results, c), nil
	}), nil
}

// validateLengths implements §7's synchronous, pre-spawn length check:
// bases must cover every scalar.
func validateLengths(numBases, numScalars int) error {
	if numBases < numScalars {
		return lengthMismatch("fewer bases than scalars")
	}
	return nil
}
