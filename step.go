// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/kont"
)

// Step is the observable outcome of executing a machine once:
// [Stop], [Yield], or [Await]. The marker method ties each variant
// to the machine's selector algebra K and output type O, so a
// Step[K, O] can only hold variants of matching instantiation.
type Step[K, O any] interface {
	step(K, O)
}

// Stop is the terminal step. No further steps are possible.
type Stop[K, O any] struct{}

func (Stop[K, O]) step(K, O) {}

// Yield carries one output value and the machine that continues
// after this emission.
type Yield[K, O any] struct {
	Value O
	Next  Machine[K, O]
}

func (Yield[K, O]) step(K, O) {}

// Await is a request for input on the channel identified by its selector.
// The handler for the delivered value and the selector are packed together
// at construction ([AwaitStep]), so the hidden request type can only be fed
// values of exactly the type the selector names. The fallback machine is
// followed instead when the channel is exhausted.
type Await[K, O any] struct {
	feed     func(kont.Resumed) Machine[K, O]
	sel      K
	fallback Machine[K, O]
}

func (Await[K, O]) step(K, O) {}

// Feed resumes the await with a delivered value.
// The value must have the type the selector requested; the typed
// constructors ([AwaitStep], [Awaits], [AwaitBind]) guarantee this
// for every value routed by [Supply], [Attach], [Compose], and [Drive].
func (a Await[K, O]) Feed(v kont.Resumed) Machine[K, O] { return a.feed(v) }

// Sel returns the selector identifying the requested channel.
func (a Await[K, O]) Sel() K { return a.sel }

// Fallback returns the machine followed when the channel is exhausted.
func (a Await[K, O]) Fallback() Machine[K, O] { return a.fallback }

// AwaitStep builds an Await whose handler accepts exactly the type T the
// selector requests. Pairing the typed handler with the selector in a single
// constructor makes a request/handler type mismatch unrepresentable; the
// type-erased boundary inside the variant is never visible to callers.
func AwaitStep[T any, K, O any](sel K, feed func(T) Machine[K, O], fallback Machine[K, O]) Step[K, O] {
	return Await[K, O]{
		feed:     func(v kont.Resumed) Machine[K, O] { return feed(v.(T)) },
		sel:      sel,
		fallback: fallback,
	}
}

// Next evaluates a machine until it produces its step or suspends on an
// ambient effect operation. Returns (step, nil) when the step is available,
// or (zero, suspension) when an effect must be dispatched first.
// The suspension is one-shot: resuming it twice panics (kont affine rule).
func Next[K, O any](m Machine[K, O]) (Step[K, O], *kont.Suspension[Step[K, O]]) {
	return kont.Step(m)
}
