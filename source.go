// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Unfold produces a machine from a seed: step is applied to the current
// seed and each (value, next) pair becomes one Yield until step reports
// exhaustion. The recursion is suspended inside the returned continuation,
// so unbounded generators are fine — only pulled steps are evaluated.
func Unfold[S any, K, O any](initial S, step func(S) (O, S, bool)) Machine[K, O] {
	var from func(S) Machine[K, O]
	from = func(s S) Machine[K, O] {
		return func(k func(Step[K, O]) kont.Resumed) kont.Resumed {
			o, next, ok := step(s)
			if !ok {
				return k(Stop[K, O]{})
			}
			return k(Yield[K, O]{Value: o, Next: from(next)})
		}
	}
	return from(initial)
}

// Source yields each of values in order, then stops. It never awaits, so
// it composes on the left of any selector algebra K.
func Source[K any, O any](values []O) Machine[K, O] {
	return Unfold[int, K, O](0, func(i int) (O, int, bool) {
		if i >= len(values) {
			var zero O
			return zero, i, false
		}
		return values[i], i + 1, true
	})
}
