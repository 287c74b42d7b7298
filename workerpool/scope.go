// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Scope is a scoped fan-out over a pool: Spawn may be called any number of
// times inside the callback passed to Pool.Scope, and Pool.Scope only
// returns to its caller once every spawned task has completed (§6.2).
type Scope struct {
	pool *Pool
	g    *errgroup.Group
	core int
}

// Scope runs fn with a scope sized for totalItems, recommending a chunk
// size via GetChunkSize. It blocks until every task spawned inside fn has
// finished, and returns the first error any of them produced (§5, §7): a
// panic inside a spawned task is recovered and surfaces the same way,
// never silently dropped.
func (p *Pool) Scope(totalItems int, fn func(scope *Scope, chunkSize int)) error {
	var g errgroup.Group
	scope := &Scope{pool: p, g: &g}
	fn(scope, p.GetChunkSize(totalItems))
	return g.Wait()
}

// Spawn schedules fn on the pool as part of this scope. If the pool was
// constructed with WithPinning(true), each successive Spawn call is bound
// to the next logical processor in round-robin order, modulo
// physicalCoreCount() (runtime.NumCPU); pinning never changes
// what fn computes, only which core it runs on (§4.3).
func (s *Scope) Spawn(fn func() error) {
	coreIdx := s.core
	s.core++
	s.g.Go(func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("workerpool: spawned task panicked: %v", r)
			}
		}()

		done := make(chan struct{})
		var taskErr error
		s.pool.submit(func() {
			defer close(done)
			if s.pool.pin {
				// Best-effort; pinning failures are not fatal,
				// matching the spec's "semantically invisible"
				// requirement for this optimisation.
				_ = pinToCore(coreIdx % physicalCoreCount())
			}
			defer func() {
				if r := recover(); r != nil {
					taskErr = fmt.Errorf("workerpool: spawned task panicked: %v", r)
				}
			}()
			taskErr = fn()
		})
		<-done
		return taskErr
	})
}
