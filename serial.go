// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import "code.hybscloud.com/atomix"

// Serial identifies a select invocation.
// Each call to New or NewBiased assigns the next serial value.
type Serial = uint32

// counter is the global monotonic counter for select serials.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}

// sweepOrigin returns the first branch index of sweep number sweep of the
// invocation identified by serial, over n branches.
// Consecutive sweeps and consecutive invocations start one branch later.
// The origin is not random, only never pinned to 0.
func sweepOrigin(serial Serial, sweep uint32, n int) int {
	return int((serial + sweep) % uint32(n))
}

// origin returns the first index of the next sweep.
func (s *Select[R]) origin() int {
	if s.fairness == Biased {
		return 0
	}
	start := sweepOrigin(s.serial, s.sweeps, len(s.slots))
	s.sweeps++
	return start
}
