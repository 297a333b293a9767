// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import "errors"

// Configuration errors, returned by New and NewBiased before any
// operation is opened.
var (
	// ErrNoBranch: no branch clause was declared.
	ErrNoBranch = errors.New("sel: no branch")
	// ErrDuplicateDefault: more than one Default clause.
	ErrDuplicateDefault = errors.New("sel: more than one default clause")
	// ErrDuplicateComplete: more than one Complete clause.
	ErrDuplicateComplete = errors.New("sel: more than one complete clause")
	// ErrNilClause: a nil clause, or an enabled clause missing its
	// constructor, match, or handler.
	ErrNilClause = errors.New("sel: nil clause")
)

// ErrExhausted is the panic value raised when every branch is disabled or
// completed without a match and neither Default nor Complete is declared.
// This is a programming error in the branch set and is never returned.
var ErrExhausted = errors.New("sel: all branches are disabled or completed and there is no default nor complete")

// ErrDispatched is the panic value raised when an outcome is dispatched on a
// select that already ran a handler.
var ErrDispatched = errors.New("sel: outcome already dispatched")

// ErrTerminated is returned by Poll after a terminal outcome.
var ErrTerminated = errors.New("sel: select already terminated")

// ErrClosed is returned when sending on a closed Chan.
var ErrClosed = errors.New("sel: send on closed chan")
