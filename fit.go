// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Fit remaps a machine's selector algebra through translate, leaving
// Yield and Stop behavior identical and refitting both continuations of
// every Await. translate must preserve the hidden request type of each
// selector: the value delivered through translate(sel) is fed to the
// handler that was paired with sel.
//
// Fitting through the identity translation behaves as the original machine.
func Fit[K, L, O any](translate func(K) L, m Machine[K, O]) Machine[L, O] {
	return kont.Map(m, func(s Step[K, O]) Step[L, O] {
		switch s := s.(type) {
		case Yield[K, O]:
			return Yield[L, O]{Value: s.Value, Next: Fit(translate, s.Next)}
		case Await[K, O]:
			feed := s.feed
			return Await[L, O]{
				feed:     func(v kont.Resumed) Machine[L, O] { return Fit(translate, feed(v)) },
				sel:      translate(s.sel),
				fallback: Fit(translate, s.fallback),
			}
		default:
			return Stop[L, O]{}
		}
	})
}

// Pass is the machine that forwards every value read through sel straight
// to output, forever: request, re-emit, repeat. The selector's hidden type
// must be O. It stops only when the channel is exhausted.
func Pass[O any, K any](sel K) Machine[K, O] {
	var loop Machine[K, O]
	loop = func(k func(Step[K, O]) kont.Resumed) kont.Resumed {
		return k(Await[K, O]{
			feed: func(v kont.Resumed) Machine[K, O] {
				return Encase[K, O](Yield[K, O]{Value: v.(O), Next: loop})
			},
			sel:      sel,
			fallback: Stopped[K, O](),
		})
	}
	return loop
}
