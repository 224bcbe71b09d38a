// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Reify converts a Cont-world machine to Expr-world.
// The resulting Expr can be walked frame by frame with kont.StepExpr,
// which is useful for inspecting a machine without evaluating it under
// a driver.
func Reify[K, O any](m Machine[K, O]) kont.Expr[Step[K, O]] {
	return kont.Reify(m)
}

// Reflect converts an Expr-world machine back to Cont-world.
// The resulting machine can be evaluated with [Run], [RunWith], or
// composed like any other.
func Reflect[K, O any](m kont.Expr[Step[K, O]]) Machine[K, O] {
	return kont.Reflect(m)
}
