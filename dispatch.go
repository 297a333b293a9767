// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

// Dispatch runs the handler for a terminal outcome returned by Poll and
// returns its result. Exactly one handler runs per select:
//   - Matched: the branch handler, with the value bound by its match.
//   - WouldBlock: the Default handler.
//   - Completed: the Complete handler. Without one, Dispatch panics with
//     ErrExhausted.
//
// Dispatch never polls. Dispatching a second time panics with ErrDispatched.
func (s *Select[R]) Dispatch(o Outcome) R {
	if s.dispatched {
		panic(ErrDispatched)
	}
	if !s.terminated || s.err != nil {
		panic("sel: dispatch without terminal outcome")
	}
	if o.Kind == Matched && (o.Index < 0 || o.Index >= len(s.slots) || s.slots[o.Index].state != slotMatched) {
		panic("sel: outcome does not belong to this select")
	}
	s.dispatched = true
	switch o.Kind {
	case Matched:
		a := s.slots[o.Index].arm
		s.slots[o.Index].arm = nil
		return a.handle(o.Value)
	case WouldBlock:
		if s.onDefault == nil {
			panic("sel: would-block outcome without default")
		}
		return s.onDefault()
	case Completed:
		if s.onComplete == nil {
			panic(ErrExhausted)
		}
		return s.onComplete()
	}
	panic("sel: invalid outcome kind")
}

// Advance performs one sweep and, on a terminal outcome, dispatches it.
// Returns iox.ErrWouldBlock while no outcome is terminal; the select may be
// advanced again later. Operation errors are returned unchanged.
func (s *Select[R]) Advance() (R, error) {
	o, err := s.Poll()
	if err != nil {
		var zero R
		return zero, err
	}
	return s.Dispatch(o), nil
}
