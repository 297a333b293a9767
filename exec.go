// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"code.hybscloud.com/iox"
)

// Exec drives the select until a terminal outcome and returns the result of
// the handler it dispatched. Between sweeps that resolve nothing it waits
// with adaptive backoff (iox.Backoff), without spawning goroutines or
// creating channels. A sweep that completes or rejects a branch resets the
// backoff.
//
// Operation errors end the loop and are returned unchanged.
func (s *Select[R]) Exec() (R, error) {
	var bo iox.Backoff
	for {
		before := s.completed
		r, err := s.Advance()
		if err == nil {
			return r, nil
		}
		if !iox.IsWouldBlock(err) {
			return r, err
		}
		if s.completed != before {
			bo.Reset()
			continue
		}
		bo.Wait()
	}
}

// Run constructs an unbiased select from clauses and executes it.
// Configuration errors are returned without polling.
func Run[R any](clauses ...Clause[R]) (R, error) {
	s, err := New(clauses...)
	if err != nil {
		var zero R
		return zero, err
	}
	return s.Exec()
}

// RunBiased is like Run, with Biased fairness.
func RunBiased[R any](clauses ...Clause[R]) (R, error) {
	s, err := NewBiased(clauses...)
	if err != nil {
		var zero R
		return zero, err
	}
	return s.Exec()
}
