// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Is is the reflexive single-channel selector: a machine over Is[A] has
// exactly one input channel, and requesting through Is[A] delivers exactly
// an A. The proof is carried by the type itself — every Await of a
// Process[A, O] was built against Is[A], so routing code ([Compose],
// [Supply], [Drive]) may feed channel values without a run-time tag check.
type Is[A any] struct{}

// Process is a machine restricted to the single-channel selector algebra:
// one input channel of type I, one output stream of type O.
type Process[I, O any] = Machine[Is[I], O]

// Echo is the identity process: it forwards every input to output until
// the input is exhausted. It is a left and right identity for [Compose].
func Echo[A any]() Process[A, A] {
	return Pass[A](Is[A]{})
}

// Contramap pre-applies f to every value fed to the process, translating
// the selector from Is[I] to Is[A] and the handler input in the opposite
// direction — the contravariant counterpart of [Map].
func Contramap[A, I, O any](f func(A) I, m Process[I, O]) Process[A, O] {
	return kont.Map(m, func(s Step[Is[I], O]) Step[Is[A], O] {
		switch s := s.(type) {
		case Yield[Is[I], O]:
			return Yield[Is[A], O]{Value: s.Value, Next: Contramap(f, s.Next)}
		case Await[Is[I], O]:
			feed := s.feed
			return Await[Is[A], O]{
				feed:     func(v kont.Resumed) Process[A, O] { return Contramap(f, feed(f(v.(A)))) },
				sel:      Is[A]{},
				fallback: Contramap(f, s.fallback),
			}
		default:
			return Stop[Is[A], O]{}
		}
	})
}

// Prepended emits each of values in order, then behaves as the identity
// pass-through for all further input.
func Prepended[A any](values []A) Process[A, A] {
	p := PlanPure[Is[A], A](struct{}{})
	for i := len(values) - 1; i >= 0; i-- {
		p = EmitThen(values[i], p)
	}
	return Before(Echo[A](), p)
}

// Filtered forwards exactly the inputs satisfying pred, in order, and
// never stops on its own.
func Filtered[A any](pred func(A) bool) Process[A, A] {
	return Repeatedly(AwaitBind(func(a A) Plan[Is[A], A, struct{}] {
		if pred(a) {
			return Emit[Is[A]](a)
		}
		return PlanPure[Is[A], A](struct{}{})
	}))
}

func droppingPlan[A any](n int) Plan[Is[A], A, struct{}] {
	if n <= 0 {
		return PlanPure[Is[A], A](struct{}{})
	}
	return AwaitBind(func(A) Plan[Is[A], A, struct{}] {
		return droppingPlan[A](n - 1)
	})
}

// Dropping discards exactly the first n inputs (stopping early if the
// input is exhausted first), then behaves as the identity pass-through.
func Dropping[A any](n int) Process[A, A] {
	return Before(Echo[A](), droppingPlan[A](n))
}

func takingPlan[A any](n int) Plan[Is[A], A, struct{}] {
	if n <= 0 {
		return PlanPure[Is[A], A](struct{}{})
	}
	return AwaitBind(func(a A) Plan[Is[A], A, struct{}] {
		return EmitThen(a, takingPlan[A](n-1))
	})
}

// Taking forwards exactly n inputs then stops; if the input is exhausted
// first, it stops with however many it obtained.
func Taking[A any](n int) Process[A, A] {
	return Construct(takingPlan[A](n))
}

// TakingWhile forwards inputs while pred holds and stops on the first
// failing value, without emitting it.
func TakingWhile[A any](pred func(A) bool) Process[A, A] {
	return Repeatedly(AwaitBind(func(a A) Plan[Is[A], A, struct{}] {
		if pred(a) {
			return Emit[Is[A]](a)
		}
		return Halt[Is[A], A, struct{}]()
	}))
}

func droppingWhilePlan[A any](pred func(A) bool) Plan[Is[A], A, struct{}] {
	return AwaitBind(func(a A) Plan[Is[A], A, struct{}] {
		if pred(a) {
			return droppingWhilePlan(pred)
		}
		return Emit[Is[A]](a)
	})
}

// DroppingWhile discards inputs while pred holds; the first failing value
// is emitted, and everything after passes through unchanged.
func DroppingWhile[A any](pred func(A) bool) Process[A, A] {
	return Before(Echo[A](), droppingWhilePlan(pred))
}

// bufferedPlan accumulates one group. Exhaustion mid-group attempts the
// input first and only then flushes: the AwaitsOr fallback emits the
// partial group (when non-empty) and halts. Swapping that precedence
// would change what Buffered emits on exhaustion.
func bufferedPlan[A any](group []A, room int) Plan[Is[A], []A, struct{}] {
	if room <= 0 {
		if len(group) == 0 {
			return Halt[Is[A], []A, struct{}]()
		}
		return Emit[Is[A]](group)
	}
	flush := Halt[Is[A], []A, A]()
	if len(group) > 0 {
		flush = PlanThen(Emit[Is[A]](group), flush)
	}
	return PlanBind(AwaitsOr(Is[A]{}, flush), func(a A) Plan[Is[A], []A, struct{}] {
		return bufferedPlan(append(group, a), room-1)
	})
}

// Buffered groups inputs into slices of up to n values in arrival order,
// emitting each group once full. A non-empty partial group is emitted once
// when the input is exhausted; an empty group is never emitted, and
// Buffered(0) stops immediately.
func Buffered[A any](n int) Process[A, []A] {
	return Repeatedly(bufferedPlan[A](nil, n))
}
