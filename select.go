// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/kont"
)

// Fairness selects the sweep order of a select.
type Fairness uint8

const (
	// Unbiased starts each sweep at a rotating index, so late-declared
	// branches are not starved.
	Unbiased Fairness = iota
	// Biased starts each sweep at index 0: earlier branches win ties.
	Biased
)

// OutcomeKind classifies a terminal outcome.
type OutcomeKind uint8

const (
	// Matched: a branch became ready and its match accepted the value.
	Matched OutcomeKind = iota + 1
	// WouldBlock: a sweep found nothing ready and Default is declared.
	WouldBlock
	// Completed: every branch is disabled or completed without a match.
	Completed
)

func (k OutcomeKind) String() string {
	switch k {
	case Matched:
		return "Matched"
	case WouldBlock:
		return "WouldBlock"
	case Completed:
		return "Completed"
	}
	return "OutcomeKind(?)"
}

// Outcome is the terminal result of a select.
// Index and Value are meaningful only when Kind is Matched; Value holds the
// value bound by the branch's match.
type Outcome struct {
	Value kont.Erased
	Index int
	Kind  OutcomeKind
}

// Select is one select invocation over a fixed branch table.
//
// A Select is owned by a single goroutine. It is created by New or NewBiased,
// driven by Poll (or Advance/Exec) until a terminal outcome, and discarded.
type Select[R any] struct {
	slots      []slot[R]
	onDefault  func() R
	onComplete func() R
	err        error
	completed  int
	sweeps     uint32
	serial     Serial
	fairness   Fairness
	terminated bool
	dispatched bool
}

// New constructs an unbiased select from clauses.
//
// Construction is two-phase: every clause is declared first, then the
// configuration is validated, and only then are the operations of enabled
// branches opened in declaration order. Configuration errors are returned
// before any operation is opened.
func New[R any](clauses ...Clause[R]) (*Select[R], error) {
	return build(Unbiased, clauses)
}

// NewBiased is like New, but every sweep starts at the first branch.
func NewBiased[R any](clauses ...Clause[R]) (*Select[R], error) {
	return build(Biased, clauses)
}

func build[R any](fairness Fairness, clauses []Clause[R]) (*Select[R], error) {
	d := declare(clauses)
	if err := d.validate(); err != nil {
		return nil, err
	}
	slots, completed := d.open()
	return &Select[R]{
		slots:      slots,
		onDefault:  d.onDefault,
		onComplete: d.onComplete,
		completed:  completed,
		serial:     nextSerial(),
		fairness:   fairness,
	}, nil
}

// Len returns the number of declared branches.
func (s *Select[R]) Len() int { return len(s.slots) }

// CompletedBranches returns how many branches are disabled or completed.
func (s *Select[R]) CompletedBranches() int { return s.completed }

// Blocking reports whether the select has no Default clause.
func (s *Select[R]) Blocking() bool { return s.onDefault == nil }

// Fairness returns the sweep policy.
func (s *Select[R]) Fairness() Fairness { return s.fairness }

// Serial returns the serial number assigned to this select.
func (s *Select[R]) Serial() Serial { return s.serial }

// Poll performs one sweep over the branch table.
//
// Each pending branch is polled once, in sweep order. The first branch that
// is ready and matched ends the sweep with a Matched outcome. Otherwise the
// sweep resolves to Completed when every branch is completed (and Complete is
// declared or Default is not), to WouldBlock when Default is declared, or
// returns iox.ErrWouldBlock: nothing terminal yet, poll again.
//
// An operation error other than iox.ErrWouldBlock or iox.ErrMore ends the
// invocation and is returned unchanged, then and on every later call.
// After a terminal outcome, Poll returns ErrTerminated.
func (s *Select[R]) Poll() (Outcome, error) {
	if s.err != nil {
		return Outcome{}, s.err
	}
	if s.terminated {
		return Outcome{}, ErrTerminated
	}
	n := len(s.slots)
	next := s.origin()
	for range n {
		i := next
		if next++; next == n {
			next = 0
		}
		sl := &s.slots[i]
		if sl.state != slotPending {
			continue
		}
		bound, ok, err := sl.arm.advance()
		if err != nil {
			if isPending(err) {
				continue
			}
			s.err = err
			s.terminate()
			return Outcome{}, err
		}
		s.completed++
		if !ok {
			sl.state = slotRejected
			continue
		}
		sl.state = slotMatched
		s.terminate()
		return Outcome{Kind: Matched, Index: i, Value: bound}, nil
	}
	if s.completed == n && (s.onComplete != nil || s.onDefault == nil) {
		s.terminate()
		return Outcome{Kind: Completed}, nil
	}
	if s.onDefault != nil {
		s.terminate()
		return Outcome{Kind: WouldBlock}, nil
	}
	return Outcome{}, iox.ErrWouldBlock
}

// terminate ends the invocation and drops every unresolved operation.
func (s *Select[R]) terminate() {
	s.terminated = true
	for i := range s.slots {
		sl := &s.slots[i]
		if sl.state != slotPending {
			continue
		}
		sl.arm.discard()
		sl.state = slotDropped
	}
}
