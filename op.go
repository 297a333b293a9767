// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"errors"

	"code.hybscloud.com/iox"
)

// Op is a suspendable operation producing a value of type T.
//
// Poll advances the operation by one step and never blocks:
//   - (v, nil): ready with v. The operation is consumed and is not polled again.
//   - iox.ErrWouldBlock or iox.ErrMore: not ready yet, poll again later.
//   - any other error: the operation failed. Select propagates it unchanged.
type Op[T any] interface {
	Poll() (T, error)
}

// OpFunc adapts a function to Op.
type OpFunc[T any] func() (T, error)

// Poll implements Op.
func (f OpFunc[T]) Poll() (T, error) { return f() }

// Discarder is implemented by operations that release resources when dropped.
// Select calls Discard exactly once on each enabled operation that had not
// resolved when the invocation terminated. A discarded operation is never
// polled again.
type Discarder interface {
	Discard()
}

// readyOp is ready on its first poll.
type readyOp[T any] struct {
	v    T
	done bool
}

func (o *readyOp[T]) Poll() (T, error) {
	if o.done {
		panic("sel: Ready polled after completion")
	}
	o.done = true
	v := o.v
	var zero T
	o.v = zero
	return v, nil
}

// Ready returns an operation that is ready with v on its first poll.
// Polling it again panics.
func Ready[T any](v T) Op[T] {
	return &readyOp[T]{v: v}
}

// pendingOp never becomes ready.
type pendingOp[T any] struct{}

func (pendingOp[T]) Poll() (T, error) {
	var zero T
	return zero, iox.ErrWouldBlock
}

// Pending returns an operation that never becomes ready.
func Pending[T any]() Op[T] {
	return pendingOp[T]{}
}

// isPending reports whether err means "not ready yet".
func isPending(err error) bool {
	return iox.IsWouldBlock(err) || errors.Is(err, iox.ErrMore)
}
