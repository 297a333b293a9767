// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"code.hybscloud.com/kont"
)

// Dispatcher interprets the effects of a stepped kont computation.
// Dispatch is non-blocking: it returns iox.ErrWouldBlock when the effect
// cannot make progress now. The suspension is then kept unconsumed and
// dispatched again on the next poll. Any other error fails the operation.
type Dispatcher interface {
	Dispatch(op kont.Operation) (kont.Resumed, error)
}

// DispatchFunc adapts a function to Dispatcher.
type DispatchFunc func(op kont.Operation) (kont.Resumed, error)

// Dispatch implements Dispatcher.
func (f DispatchFunc) Dispatch(op kont.Operation) (kont.Resumed, error) { return f(op) }

// exprOp steps an Expr-world computation one effect at a time.
type exprOp[R any] struct {
	protocol kont.Expr[R]
	d        Dispatcher
	susp     *kont.Suspension[R]
	started  bool
}

// FromExpr returns an operation that evaluates protocol with kont.StepExpr
// and interprets its effects with d. Each poll dispatches effects until the
// protocol completes (ready) or a dispatch would block (pending).
//
// If the select terminates first, the outstanding suspension is discarded.
func FromExpr[R any](protocol kont.Expr[R], d Dispatcher) Op[R] {
	return &exprOp[R]{protocol: protocol, d: d}
}

func (o *exprOp[R]) Poll() (R, error) {
	var result R
	if !o.started {
		o.started = true
		result, o.susp = kont.StepExpr(o.protocol)
		o.protocol = kont.Expr[R]{}
	}
	for o.susp != nil {
		v, err := o.d.Dispatch(o.susp.Op())
		if err != nil {
			var zero R
			return zero, err
		}
		result, o.susp = o.susp.Resume(v)
	}
	return result, nil
}

// Discard implements Discarder.
func (o *exprOp[R]) Discard() {
	if o.susp != nil {
		o.susp.Discard()
		o.susp = nil
	}
}

// errorDispatcher is the structural interface of kont error operations.
type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// exprErrorOp steps an Expr-world computation with error effects.
type exprErrorOp[E, R any] struct {
	inner exprOp[kont.Either[E, R]]
}

// FromExprError is like FromExpr, with kont error effects.
// Error operations are dispatched eagerly: Throw discards the suspension and
// the operation is ready with Left. Other effects go to d. A successful
// protocol is ready with Right. Use RightOf to fire only on success.
func FromExprError[E, R any](protocol kont.Expr[R], d Dispatcher) Op[kont.Either[E, R]] {
	wrapped := kont.ExprMap(protocol, func(r R) kont.Either[E, R] {
		return kont.Right[E, R](r)
	})
	o := &exprErrorOp[E, R]{}
	o.inner = exprOp[kont.Either[E, R]]{protocol: wrapped, d: d}
	return o
}

func (o *exprErrorOp[E, R]) Poll() (kont.Either[E, R], error) {
	in := &o.inner
	var result kont.Either[E, R]
	if !in.started {
		in.started = true
		result, in.susp = kont.StepExpr(in.protocol)
		in.protocol = kont.Expr[kont.Either[E, R]]{}
	}
	for in.susp != nil {
		if eop, ok := in.susp.Op().(errorDispatcher[E]); ok {
			var ctx kont.ErrorContext[E]
			v, _ := eop.DispatchError(&ctx)
			if ctx.HasErr {
				in.susp.Discard()
				in.susp = nil
				return kont.Left[E, R](ctx.Err), nil
			}
			result, in.susp = in.susp.Resume(v)
			continue
		}
		v, err := in.d.Dispatch(in.susp.Op())
		if err != nil {
			var zero kont.Either[E, R]
			return zero, err
		}
		result, in.susp = in.susp.Resume(v)
	}
	return result, nil
}

// Discard implements Discarder.
func (o *exprErrorOp[E, R]) Discard() {
	o.inner.Discard()
}
