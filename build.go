// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// compiledYield interprets a plan's yield capability as a [Yield] step.
func compiledYield[K, O any](o O, next Machine[K, O]) Machine[K, O] {
	return Encase[K, O](Yield[K, O]{Value: o, Next: next})
}

// compiledAwait interprets a plan's await capability as an [Await] step.
// Both continuations are compiled; at most one is ever followed.
func compiledAwait[K, O any](feed func(kont.Resumed) Machine[K, O], sel K, fallback Machine[K, O]) Machine[K, O] {
	return Encase[K, O](Await[K, O]{feed: feed, sel: sel, fallback: fallback})
}

// Construct compiles a plan into a machine that runs it once:
// a returned answer and an explicit [Halt] both become [Stop].
func Construct[K, O, A any](p Plan[K, O, A]) Machine[K, O] {
	return p(
		func(A) Machine[K, O] { return Stopped[K, O]() },
		compiledYield[K, O],
		compiledAwait[K, O],
		Stopped[K, O](),
	)
}

// Repeatedly compiles a plan into a machine that restarts it from the top
// each time it returns an answer, modeling a process that perpetually
// re-requests and re-emits. [Halt] and exhausted awaits still stop.
// The loop is an explicit fixed point: the machine closes over its own
// binding, so each cycle re-runs the same plan with no mutable state.
func Repeatedly[K, O, A any](p Plan[K, O, A]) Machine[K, O] {
	var loop Machine[K, O]
	loop = func(k func(Step[K, O]) kont.Resumed) kont.Resumed {
		return p(
			func(A) Machine[K, O] { return loop },
			compiledYield[K, O],
			compiledAwait[K, O],
			Stopped[K, O](),
		)(k)
	}
	return loop
}

// Before compiles a plan as [Construct] does, except that a returned answer
// falls through to the given machine instead of stopping — a finite prefix
// computation handing off control.
func Before[K, O, A any](m Machine[K, O], p Plan[K, O, A]) Machine[K, O] {
	return p(
		func(A) Machine[K, O] { return m },
		compiledYield[K, O],
		compiledAwait[K, O],
		Stopped[K, O](),
	)
}
