// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sel multiplexes suspendable operations: it drives every enabled
// branch forward and resolves to exactly one handler.
//
// A select resolves to one of three outcomes:
//   - a branch whose operation became ready and whose match accepted the value,
//   - would-block: a sweep found nothing ready and a [Default] clause exists,
//   - completed: every branch is disabled or completed without a match, and
//     a [Complete] clause exists (or [Default] does not).
//
// # Architecture
//
//   - Operations: [Op] is a single non-blocking step. Not-ready is reported
//     with [code.hybscloud.com/iox.ErrWouldBlock]; any other error fails the select.
//   - Branch table: [New] declares every clause first, validates, then opens
//     the operations of enabled branches. A disabled branch's constructor is
//     never called.
//   - Poll loop: [Select.Poll] performs one sweep. The first branch in sweep
//     order that is ready and matched wins. Sweeps start at a rotating index,
//     or always at 0 with [NewBiased].
//   - Dispatch: [Select.Dispatch] runs exactly one handler. Exhaustion without
//     [Default] or [Complete] panics with [ErrExhausted].
//
// # Matches
//
// A [Match] is a typed extraction. A ready value it rejects completes its
// branch without firing, exactly like a branch that was never enabled:
// [Any], [Equal], [OneOf], [InRange], [Where], [RightOf], [LeftOf], [Ok].
//
// # Integration
//
//   - Stepping: [Select.Poll] and [Select.Advance] never block, making them
//     easy to integrate with a proactor loop.
//   - Blocking: [Select.Exec], [Run] and [RunBiased] wait between sweeps with
//     adaptive backoff, without spawning goroutines or creating channels.
//   - kont: [FromExpr], [FromEff] (and Error variants) step a
//     [code.hybscloud.com/kont] computation as an operation.
//   - Channels: [Chan] is a bounded lock-free SPSC channel via
//     [code.hybscloud.com/lfq] with [Chan.Send] and [Chan.Recv] operations.
//
// # Example
//
//	ch := sel.NewChan[int](4)
//	_ = ch.TrySend(5)
//	r, err := sel.Run(
//		sel.CaseMatch(true, ch.Recv, sel.Ok[int](), func(v int) int { return v }),
//		sel.Case(sel.Pending[int], func(v int) int { return v }),
//		sel.Default(func() int { return -1 }),
//	)
//	// r == 5, err == nil
package sel
