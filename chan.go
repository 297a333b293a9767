// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Chan is a bounded lock-free channel for select operations.
// Transport is a single-producer single-consumer queue from lfq: at most one
// goroutine sends and at most one goroutine receives at a time.
//
// Every method is non-blocking and returns iox.ErrWouldBlock at the boundary:
// send on a full queue, receive on an empty open queue.
type Chan[T any] struct {
	q      lfq.SPSC[T]
	closed atomix.Uint32
}

// minChanCap is the smallest capacity lfq accepts.
const minChanCap = 2

// NewChan creates a channel buffering up to Cap values.
// Capacity rounds up to the next power of 2, with a minimum of 2.
func NewChan[T any](capacity int) *Chan[T] {
	c := &Chan[T]{}
	c.q.Init(max(capacity, minChanCap))
	return c
}

// Cap returns the number of values the channel buffers.
func (c *Chan[T]) Cap() int { return c.q.Cap() }

// Close marks the channel closed. Buffered values remain receivable.
// Close must be called by the sending side.
func (c *Chan[T]) Close() {
	c.closed.StoreRelease(1)
}

// Closed reports whether Close has been called.
func (c *Chan[T]) Closed() bool {
	return c.closed.LoadAcquire() != 0
}

// TrySend enqueues v.
// Returns ErrClosed after Close, iox.ErrWouldBlock if the queue is full.
func (c *Chan[T]) TrySend(v T) error {
	if c.Closed() {
		return ErrClosed
	}
	if err := c.q.Enqueue(&v); err != nil {
		return iox.ErrWouldBlock
	}
	return nil
}

// TryRecv dequeues a value.
// Returns iox.ErrWouldBlock if the queue is empty and the channel is open.
// On a closed and drained channel it returns the zero value and ok false.
func (c *Chan[T]) TryRecv() (v T, ok bool, err error) {
	if v, err := c.q.Dequeue(); err == nil {
		return v, true, nil
	}
	if !c.Closed() {
		return v, false, iox.ErrWouldBlock
	}
	// A send may have completed between the first dequeue and Close.
	if v, err := c.q.Dequeue(); err == nil {
		return v, true, nil
	}
	return v, false, nil
}

// Received is the result of a receive operation.
// OK is false when the channel was closed and drained.
type Received[T any] struct {
	Value T
	OK    bool
}

type recvOp[T any] struct{ c *Chan[T] }

func (o recvOp[T]) Poll() (Received[T], error) {
	v, ok, err := o.c.TryRecv()
	if err != nil {
		return Received[T]{}, err
	}
	return Received[T]{Value: v, OK: ok}, nil
}

// Recv returns an operation that is ready when a value is received or the
// channel is closed and drained. Pair it with Ok to fire only on delivery.
func (c *Chan[T]) Recv() Op[Received[T]] {
	return recvOp[T]{c: c}
}

type sendOp[T any] struct {
	c *Chan[T]
	v T
}

func (o *sendOp[T]) Poll() (struct{}, error) {
	if err := o.c.TrySend(o.v); err != nil {
		return struct{}{}, err
	}
	var zero T
	o.v = zero
	return struct{}{}, nil
}

// Send returns an operation that is ready once v is enqueued.
// Polling it after Close fails with ErrClosed.
func (c *Chan[T]) Send(v T) Op[struct{}] {
	return &sendOp[T]{c: c, v: v}
}
