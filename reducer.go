// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package msm

import (
	"sync"

	"github.com/samber/lo"

	"github.com/openmsm/pippenger/workerpool"
)

// runWindowDense is the C3 parallel reducer (§4.3) applied to a single
// window: it partitions one window's bases and scalars into the pool's
// chunks, runs the C2 kernel on each chunk concurrently, and folds the
// per-chunk partials into a single shared accumulator under a mutex.
//
// This is the dense path's source of parallelism. The sparse path instead
// parallelizes across windows (see MSMSparse) and calls the C2 kernel
// directly, unchunked.
func runWindowDense[A any, P any, PT Projective[P, A], R Repr[R], S Scalar[R]](
	pool *workerpool.Pool, bases []A, scalars []S, task windowTask, unroll bool,
) (P, error) {
	var shared P
	PT(&shared).SetZero()
	var mu sync.Mutex

	n := len(scalars)
	if n == 0 {
		return shared, nil
	}

	// lo.Chunk partitions the window's index range into pool.GetChunkSize
	// -sized pieces; each piece becomes one spawned chunk task, matching
	// §4.3's "split the input into p contiguous chunks of size ⌈n/p⌉".
	err := pool.Scope(n, func(scope *workerpool.Scope, chunkSize int) {
		for _, idx := range lo.Chunk(lo.Range(n), chunkSize) {
			start, end := idx[0], idx[len(idx)-1]+1
			scope.Spawn(func() error {
				var local P
				if unroll {
					local = runKernelUnrolled[A, P, PT, R, S](bases[start:end], scalars[start:end], task)
				} else {
					local = runKernelDense[A, P, PT, R, S](bases[start:end], scalars[start:end], task)
				}
				mu.Lock()
				PT(&shared).AddAssign(&local)
				mu.Unlock()
				return nil
			})
		}
	})
	if err != nil {
		return shared, workerFailure(err)
	}
	return shared, nil
}
