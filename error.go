// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

type errorDispatcher[E any] interface {
	DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
}

// RunEither drives m to completion, interpreting kont error operations
// raised from lifted plans. A Throw aborts the run: the pending machine
// step is discarded and the error comes back as Left. A machine that
// stops normally returns Right with all values yielded before the stop.
// Operations outside the error dispatch surface panic, as in [Run].
func RunEither[E any, K, O any](m Machine[K, O]) kont.Either[E, []O] {
	var out []O
	var ctx kont.ErrorContext[E]
	for {
		s, susp := kont.Step(m)
		for susp != nil {
			d, ok := susp.Op().(errorDispatcher[E])
			if !ok {
				susp.Discard()
				panic("mach: unhandled effect in RunEither")
			}
			v, handled := d.DispatchError(&ctx)
			if !handled {
				susp.Discard()
				panic("mach: unhandled effect in RunEither")
			}
			if ctx.HasErr {
				susp.Discard()
				return kont.Left[E, []O](ctx.Err)
			}
			s, susp = susp.Resume(v)
		}
		switch s := s.(type) {
		case Yield[K, O]:
			out = append(out, s.Value)
			m = s.Next
		case Await[K, O]:
			m = s.fallback
		default:
			return kont.Right[E, []O](out)
		}
	}
}
