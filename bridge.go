// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel

import (
	"code.hybscloud.com/kont"
)

// FromEff converts a Cont-world computation to Expr-world with kont.Reify
// and returns it as an operation stepped like FromExpr.
func FromEff[R any](protocol kont.Eff[R], d Dispatcher) Op[R] {
	return FromExpr(kont.Reify(protocol), d)
}

// FromEffError is the Cont-world counterpart of FromExprError.
func FromEffError[E, R any](protocol kont.Eff[R], d Dispatcher) Op[kont.Either[E, R]] {
	return FromExprError[E](kont.Reify(protocol), d)
}
