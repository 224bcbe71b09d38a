// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Attach appends the single-channel machine proc after the output of base,
// which may be over any selector algebra. Sequencing is pull-driven: the
// composite steps proc first, and base advances only when proc awaits.
//
//   - proc stops            → the composite stops; base is never stepped.
//   - proc yields           → the composite yields; base is not stepped.
//   - proc awaits, base stops  → base is permanently exhausted; proc's
//     fallback continues against the stopped base.
//   - proc awaits, base yields → the value is fed straight to proc's handler
//     and composition re-enters, possibly cascading through several of
//     base's yields before proc awaits again.
//   - proc awaits, base awaits → the composite awaits on base's own selector,
//     re-establishing proc's pending await on either resumption path.
func Attach[K, B, C any](base Machine[K, B], proc Process[B, C]) Machine[K, C] {
	return kont.Bind(proc, func(sp Step[Is[B], C]) Machine[K, C] {
		switch sp := sp.(type) {
		case Yield[Is[B], C]:
			return Encase[K, C](Yield[K, C]{Value: sp.Value, Next: Attach(base, sp.Next)})
		case Await[Is[B], C]:
			return kont.Bind(base, func(sb Step[K, B]) Machine[K, C] {
				switch sb := sb.(type) {
				case Yield[K, B]:
					return Attach(sb.Next, sp.feed(sb.Value))
				case Await[K, B]:
					pending := Encase[Is[B], C](sp)
					feed := sb.feed
					return Encase[K, C](Await[K, C]{
						feed:     func(v kont.Resumed) Machine[K, C] { return Attach(feed(v), pending) },
						sel:      sb.sel,
						fallback: Attach(sb.fallback, pending),
					})
				default:
					return Attach(Stopped[K, B](), sp.fallback)
				}
			})
		default:
			return Stopped[K, C]()
		}
	})
}

// Compose sequences two single-channel machines so that g consumes exactly
// the stream produced by f, pull-driven from the downstream end. It is
// [Attach] at the single-channel algebra. Under the drivers, [Echo] is a
// left and right identity and Compose is associative.
func Compose[A, B, C any](g Process[B, C], f Process[A, B]) Process[A, C] {
	return Attach(f, g)
}

// Supply satisfies the machine's next awaits from values, one value per
// await, in order. Yields encountered while values remain pass through
// unchanged. Reaching Stop discards the rest of the sequence. Once the
// sequence is exhausted the remaining machine is returned as-is — not
// terminated — so the caller may feed it again or drive it further.
func Supply[I, O any](values []I, m Process[I, O]) Process[I, O] {
	if len(values) == 0 {
		return m
	}
	return kont.Bind(m, func(s Step[Is[I], O]) Process[I, O] {
		switch s := s.(type) {
		case Yield[Is[I], O]:
			return Encase[Is[I], O](Yield[Is[I], O]{Value: s.Value, Next: Supply(values, s.Next)})
		case Await[Is[I], O]:
			return Supply(values[1:], s.feed(values[0]))
		default:
			return Stopped[Is[I], O]()
		}
	})
}

// Interpret reinterprets every request of a machine over an arbitrary
// selector algebra as a request on a single channel of type I: the value
// each selector asks for is derived by extract from one uniformly typed
// input. extract must return a value of the hidden type its selector
// argument names — it is the per-request visitor of the translation.
func Interpret[K, I, O any](extract func(K, I) kont.Resumed, m Machine[K, O]) Process[I, O] {
	return kont.Map(m, func(s Step[K, O]) Step[Is[I], O] {
		switch s := s.(type) {
		case Yield[K, O]:
			return Yield[Is[I], O]{Value: s.Value, Next: Interpret(extract, s.Next)}
		case Await[K, O]:
			feed, sel := s.feed, s.sel
			return Await[Is[I], O]{
				feed: func(v kont.Resumed) Process[I, O] {
					return Interpret(extract, feed(extract(sel, v.(I))))
				},
				sel:      Is[I]{},
				fallback: Interpret(extract, s.fallback),
			}
		default:
			return Stop[Is[I], O]{}
		}
	})
}
