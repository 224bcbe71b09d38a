// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Machine is a resumable stream transducer over the selector algebra K,
// emitting values of type O. It is the pending effectful computation of
// exactly one [Step]: holding a machine performs nothing; executing it
// performs its ambient kont effects and delivers the step. Continuations
// inside the step own their successor machines outright, so a machine
// unfolds into a lazily generated, possibly infinite tree of steps.
type Machine[K, O any] = kont.Eff[Step[K, O]]

// Encase lifts an already-computed step into a machine with no effects.
func Encase[K, O any](s Step[K, O]) Machine[K, O] {
	return kont.Pure(s)
}

// Stopped returns the machine that is permanently stopped.
func Stopped[K, O any]() Machine[K, O] {
	return Encase[K, O](Stop[K, O]{})
}

// Map applies f to every value the machine emits. Stop is unaffected and
// Await keeps its selector; both the delivered-value and exhausted
// continuations of an Await are mapped recursively.
func Map[K, O, P any](m Machine[K, O], f func(O) P) Machine[K, P] {
	return kont.Map(m, func(s Step[K, O]) Step[K, P] {
		switch s := s.(type) {
		case Yield[K, O]:
			return Yield[K, P]{Value: f(s.Value), Next: Map(s.Next, f)}
		case Await[K, O]:
			feed := s.feed
			return Await[K, P]{
				feed:     func(v kont.Resumed) Machine[K, P] { return Map(feed(v), f) },
				sel:      s.sel,
				fallback: Map(s.fallback, f),
			}
		default:
			return Stop[K, P]{}
		}
	})
}
