// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Run drives m to completion synchronously and collects every yielded
// value in order. Awaits take their exhaustion branch, so a machine that
// still demands input produces whatever its fallbacks allow. Run handles
// no effects: a machine performing an ambient operation must go through
// [RunWith] instead, and Run panics if one is encountered.
func Run[K, O any](m Machine[K, O]) []O {
	var out []O
	for {
		s, susp := kont.Step(m)
		if susp != nil {
			susp.Discard()
			panic("mach: unhandled effect in Run")
		}
		switch s := s.(type) {
		case Yield[K, O]:
			out = append(out, s.Value)
			m = s.Next
		case Await[K, O]:
			m = s.fallback
		default:
			return out
		}
	}
}

// RunWith is Run with an effect handler interposed: each machine step is
// dispatched through h, so plans lifted over state, writer, or other
// kont operations run against the shared handler context. The same h is
// threaded across every step, which is what lets stateful handlers
// accumulate between yields.
func RunWith[K, O any, H kont.Handler[H, Step[K, O]]](m Machine[K, O], h H) []O {
	var out []O
	for {
		s := kont.Handle(m, h)
		switch s := s.(type) {
		case Yield[K, O]:
			out = append(out, s.Value)
			m = s.Next
		case Await[K, O]:
			m = s.fallback
		default:
			return out
		}
	}
}

// DrainWith runs m to completion under h, discarding yielded values. It
// exists for machines whose interesting output is the handler context
// itself, such as a writer accumulating a log.
func DrainWith[K, O any, H kont.Handler[H, Step[K, O]]](m Machine[K, O], h H) {
	for {
		s := kont.Handle(m, h)
		switch s := s.(type) {
		case Yield[K, O]:
			m = s.Next
		case Await[K, O]:
			m = s.fallback
		default:
			return
		}
	}
}
