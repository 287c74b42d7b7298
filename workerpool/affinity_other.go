// Copyright 2025 The go-highway Authors. SPDX-License-Identifier: Apache-2.0

//go:build !linux

package workerpool

import "runtime"

// pinToCore is a no-op outside Linux: there is no portable cross-platform
// affinity syscall in this module's dependency set. Pinning is advisory
// (§4.3), so its absence here changes performance, never correctness.
func pinToCore(core int) error {
	_ = core
	return nil
}

func physicalCoreCount() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}
