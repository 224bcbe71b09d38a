// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// YieldCont is a plan continuation that emits one value and proceeds
// with the given machine.
type YieldCont[K, O any] = func(O, Machine[K, O]) Machine[K, O]

// AwaitCont is a plan continuation that requests input: a handler for the
// delivered value (type-erased; paired with the selector by the plan
// primitives), the selector, and the machine followed on exhaustion.
type AwaitCont[K, O any] = func(func(kont.Resumed) Machine[K, O], K, Machine[K, O]) Machine[K, O]

// Plan is a suspended transducer program in Church encoding: it is run by
// supplying interpretations for its four capabilities — returning an answer
// (done), emitting a value (yield), requesting input (await), and aborting
// (stop) — with the machine type as the answer. The builders [Construct],
// [Repeatedly], and [Before] differ only in the done and stop continuations
// they supply; compilation is therefore a single application of the plan.
//
// Plans sequence with [PlanBind]/[PlanThen]/[PlanMap]; ambient kont effects
// enter through [Lift] and thread through kont's suspension machinery
// untouched.
type Plan[K, O, A any] func(
	done func(A) Machine[K, O],
	yield YieldCont[K, O],
	await AwaitCont[K, O],
	stop Machine[K, O],
) Machine[K, O]

// PlanPure is the plan that immediately returns a.
func PlanPure[K, O, A any](a A) Plan[K, O, A] {
	return func(done func(A) Machine[K, O], _ YieldCont[K, O], _ AwaitCont[K, O], _ Machine[K, O]) Machine[K, O] {
		return done(a)
	}
}

// PlanBind sequences two plans (monadic bind).
// It runs p, then passes the result to f to get the next plan.
func PlanBind[K, O, A, B any](p Plan[K, O, A], f func(A) Plan[K, O, B]) Plan[K, O, B] {
	return func(done func(B) Machine[K, O], yield YieldCont[K, O], await AwaitCont[K, O], stop Machine[K, O]) Machine[K, O] {
		return p(func(a A) Machine[K, O] {
			return f(a)(done, yield, await, stop)
		}, yield, await, stop)
	}
}

// PlanMap applies a pure function to the result of a plan.
func PlanMap[K, O, A, B any](p Plan[K, O, A], f func(A) B) Plan[K, O, B] {
	return func(done func(B) Machine[K, O], yield YieldCont[K, O], await AwaitCont[K, O], stop Machine[K, O]) Machine[K, O] {
		return p(func(a A) Machine[K, O] { return done(f(a)) }, yield, await, stop)
	}
}

// PlanThen sequences two plans, discarding the first result.
func PlanThen[K, O, A, B any](p Plan[K, O, A], n Plan[K, O, B]) Plan[K, O, B] {
	return func(done func(B) Machine[K, O], yield YieldCont[K, O], await AwaitCont[K, O], stop Machine[K, O]) Machine[K, O] {
		return p(func(A) Machine[K, O] {
			return n(done, yield, await, stop)
		}, yield, await, stop)
	}
}

// Emit is the plan primitive that emits one value.
func Emit[K, O any](o O) Plan[K, O, struct{}] {
	return func(done func(struct{}) Machine[K, O], yield YieldCont[K, O], _ AwaitCont[K, O], _ Machine[K, O]) Machine[K, O] {
		return yield(o, done(struct{}{}))
	}
}

// Awaits is the plan primitive that requests a value of type T through the
// given selector. On exhaustion the plan aborts (the compiled machine's
// Await falls back per the builder's stop continuation).
// T is the type the selector names; the pairing happens here, once.
func Awaits[T any, K, O any](sel K) Plan[K, O, T] {
	return func(done func(T) Machine[K, O], _ YieldCont[K, O], await AwaitCont[K, O], stop Machine[K, O]) Machine[K, O] {
		return await(func(v kont.Resumed) Machine[K, O] { return done(v.(T)) }, sel, stop)
	}
}

// AwaitsOr is [Awaits] with an explicit exhaustion alternative: attempt the
// input first; only when the channel is exhausted run fallback in its place.
// The precedence is fixed — fallback never preempts an available value.
func AwaitsOr[T any, K, O any](sel K, fallback Plan[K, O, T]) Plan[K, O, T] {
	return func(done func(T) Machine[K, O], yield YieldCont[K, O], await AwaitCont[K, O], stop Machine[K, O]) Machine[K, O] {
		return await(
			func(v kont.Resumed) Machine[K, O] { return done(v.(T)) },
			sel,
			fallback(done, yield, await, stop),
		)
	}
}

// Halt is the plan primitive that aborts with no further output.
// Builders compile it to [Stop] regardless of their done continuation.
func Halt[K, O, A any]() Plan[K, O, A] {
	return func(_ func(A) Machine[K, O], _ YieldCont[K, O], _ AwaitCont[K, O], stop Machine[K, O]) Machine[K, O] {
		return stop
	}
}

// Lift embeds an ambient effectful computation in a plan. The effect
// operations performed by m surface as kont suspensions of the compiled
// machine's step execution, to be dispatched by [RunWith], [DrainWith],
// [RunEither], or an external [Next] loop.
func Lift[K, O, A any](m kont.Eff[A]) Plan[K, O, A] {
	return func(done func(A) Machine[K, O], _ YieldCont[K, O], _ AwaitCont[K, O], _ Machine[K, O]) Machine[K, O] {
		return kont.Bind(m, done)
	}
}
