// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build linux

package workerpool

import (
	"runtime"

	"golang.org/x/sys/unix"
)

// pinToCore locks the calling goroutine to its OS thread and binds that
// thread to a single logical processor. It is best-effort: pinning is a
// performance optimisation and its failure must never be treated as a
// computation error (§4.3).
func pinToCore(core int) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(core)
	return unix.SchedSetaffinity(0, &set)
}

// physicalCoreCount approximates the host's physical core count. Go has no
// portable way to enumerate physical cores versus hyperthread siblings
// without an external topology library (the reference source uses
// hwloc2, which has no counterpart in this module's dependency set);
// runtime.NumCPU is used as the practical substitute, consistent with
// pinning being advisory rather than load-bearing for correctness.
func physicalCoreCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
