// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel_test

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/sel"
)

// probe is an operation that becomes ready with value after `after`
// not-ready polls. It records how often it was polled and discarded.
type probe[T any] struct {
	value     T
	after     int
	polls     int
	discarded int
	err       error
}

func (p *probe[T]) Poll() (T, error) {
	p.polls++
	if p.err != nil {
		var zero T
		return zero, p.err
	}
	if p.polls <= p.after {
		var zero T
		return zero, iox.ErrWouldBlock
	}
	return p.value, nil
}

func (p *probe[T]) Discard() { p.discarded++ }

// open returns a constructor for p that counts its calls in opened.
func open[T any](p *probe[T], opened *int) func() sel.Op[T] {
	return func() sel.Op[T] {
		*opened++
		return p
	}
}

// ready returns a constructor for an operation ready with v.
func ready[T any](v T) func() sel.Op[T] {
	return func() sel.Op[T] { return sel.Ready(v) }
}

// pending returns a constructor for an operation that never becomes ready.
func pending[T any]() func() sel.Op[T] {
	return sel.Pending[T]
}

func identity[T any](v T) T { return v }

func constant[R any](r R) func() R {
	return func() R { return r }
}

// exhausted runs f and reports whether it panicked with sel.ErrExhausted.
func exhausted(f func()) (ok bool) {
	defer func() {
		ok = recover() == sel.ErrExhausted
	}()
	f()
	return false
}
