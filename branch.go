// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"fmt"

	"code.hybscloud.com/kont"
)

// Clause is one entry of a select: a branch, Default, or Complete.
type Clause[R any] interface {
	declare(d *declaration[R])
}

// declaration is the result of the first construction pass.
// Conditions are recorded here; no operation exists yet.
type declaration[R any] struct {
	branches   []opener[R]
	onDefault  func() R
	onComplete func() R
	defaults   int
	completes  int
	err        error
}

// opener constructs the arm of an enabled branch. nil for a disabled branch.
type opener[R any] func() arm[R]

// arm is the type-erased live state of an enabled branch.
type arm[R any] interface {
	// advance polls the operation once. A nil error means it was ready: the
	// operation is dropped and ok reports whether the match accepted the value.
	advance() (bound kont.Erased, ok bool, err error)
	// handle runs the branch handler with a value bound by advance.
	handle(bound kont.Erased) R
	// discard drops an unresolved operation.
	discard()
}

// caseClause is a branch of operations of type T, matched to V, handled to R.
type caseClause[T, V, R any] struct {
	enabled bool
	open    func() Op[T]
	match   Match[T, V]
	handle  func(V) R
}

func (c caseClause[T, V, R]) declare(d *declaration[R]) {
	if c.enabled && (c.open == nil || c.match == nil || c.handle == nil) {
		d.fail(fmt.Errorf("%w: branch %d", ErrNilClause, len(d.branches)))
	}
	if !c.enabled {
		d.branches = append(d.branches, nil)
		return
	}
	d.branches = append(d.branches, func() arm[R] {
		return &caseArm[T, V, R]{op: c.open(), match: c.match, handler: c.handle}
	})
}

type caseArm[T, V, R any] struct {
	op      Op[T]
	match   Match[T, V]
	handler func(V) R
}

// advance on a consumed operation reports a rejected value: a match that
// panicked completes its branch without firing.
func (a *caseArm[T, V, R]) advance() (kont.Erased, bool, error) {
	if a.op == nil {
		return nil, false, nil
	}
	v, err := a.op.Poll()
	if err != nil {
		return nil, false, err
	}
	a.op = nil
	bound, ok := a.match(v)
	if !ok {
		return nil, false, nil
	}
	return kont.Erased(bound), true, nil
}

func (a *caseArm[T, V, R]) handle(bound kont.Erased) R {
	v, _ := bound.(V)
	return a.handler(v)
}

func (a *caseArm[T, V, R]) discard() {
	if d, ok := a.op.(Discarder); ok {
		d.Discard()
	}
	a.op = nil
}

// Case declares an always-enabled branch that fires with any value of open's
// operation.
func Case[T, R any](open func() Op[T], handle func(T) R) Clause[R] {
	return caseClause[T, T, R]{enabled: true, open: open, match: Any[T](), handle: handle}
}

// CaseIf declares a branch enabled only when cond is true.
// When cond is false, open is never called.
func CaseIf[T, R any](cond bool, open func() Op[T], handle func(T) R) Clause[R] {
	return caseClause[T, T, R]{enabled: cond, open: open, match: Any[T](), handle: handle}
}

// CaseMatch declares a branch enabled when cond is true, firing only if
// match accepts the ready value. A rejected value completes the branch.
func CaseMatch[T, V, R any](cond bool, open func() Op[T], match Match[T, V], handle func(V) R) Clause[R] {
	return caseClause[T, V, R]{enabled: cond, open: open, match: match, handle: handle}
}

type defaultClause[R any] struct{ handle func() R }

func (c defaultClause[R]) declare(d *declaration[R]) {
	d.defaults++
	d.onDefault = c.handle
	if c.handle == nil {
		d.fail(fmt.Errorf("%w: default", ErrNilClause))
	}
}

// Default declares the would-block clause. Its presence makes the select
// non-blocking: a sweep that finds nothing ready resolves to handle.
func Default[R any](handle func() R) Clause[R] {
	return defaultClause[R]{handle: handle}
}

type completeClause[R any] struct{ handle func() R }

func (c completeClause[R]) declare(d *declaration[R]) {
	d.completes++
	d.onComplete = c.handle
	if c.handle == nil {
		d.fail(fmt.Errorf("%w: complete", ErrNilClause))
	}
}

// Complete declares the clause fired when every branch is disabled or
// completed without a match.
func Complete[R any](handle func() R) Clause[R] {
	return completeClause[R]{handle: handle}
}

func (d *declaration[R]) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// validate reports configuration errors found in the first pass.
func (d *declaration[R]) validate() error {
	switch {
	case d.defaults > 1:
		return ErrDuplicateDefault
	case d.completes > 1:
		return ErrDuplicateComplete
	}
	if len(d.branches) == 0 {
		switch {
		case d.defaults > 0 && d.completes > 0:
			return fmt.Errorf("%w except default and complete", ErrNoBranch)
		case d.defaults > 0:
			return fmt.Errorf("%w except default", ErrNoBranch)
		case d.completes > 0:
			return fmt.Errorf("%w except complete", ErrNoBranch)
		}
		return ErrNoBranch
	}
	return d.err
}

// declare runs the first pass over clauses.
func declare[R any](clauses []Clause[R]) *declaration[R] {
	d := &declaration[R]{branches: make([]opener[R], 0, len(clauses))}
	for i, c := range clauses {
		if c == nil {
			d.fail(fmt.Errorf("%w: clause %d", ErrNilClause, i))
			continue
		}
		c.declare(d)
	}
	return d
}

// slotState is the lifecycle state of a branch slot.
type slotState uint8

const (
	slotDisabled slotState = iota
	slotPending
	slotRejected
	slotMatched
	slotDropped
)

// slot is one entry of the branch table.
type slot[R any] struct {
	arm   arm[R]
	state slotState
}

// open runs the second pass: constructs the operations of enabled branches
// in declaration order. Returns the table and its initial completion count.
func (d *declaration[R]) open() ([]slot[R], int) {
	slots := make([]slot[R], len(d.branches))
	completed := 0
	for i, o := range d.branches {
		if o == nil {
			slots[i].state = slotDisabled
			completed++
			continue
		}
		slots[i].arm = o()
		slots[i].state = slotPending
	}
	return slots, completed
}
