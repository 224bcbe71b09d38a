// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/mach"
)

func TestComposeChainsProcesses(t *testing.T) {
	m := mach.Compose(doubler(), mach.Filtered(func(n int) bool { return n%2 == 1 }))
	got := runOn(m, []int{1, 2, 3, 4, 5})
	if !reflect.DeepEqual(got, []int{2, 6, 10}) {
		t.Fatalf("got %v, want [2 6 10]", got)
	}
}

func TestComposeEchoIdentity(t *testing.T) {
	input := []int{3, 1, 4}

	left := runOn(mach.Compose(mach.Echo[int](), doubler()), input)
	right := runOn(mach.Compose(doubler(), mach.Echo[int]()), input)
	plain := runOn(doubler(), input)

	if !reflect.DeepEqual(left, plain) || !reflect.DeepEqual(right, plain) {
		t.Fatalf("identity violated: left %v right %v plain %v", left, right, plain)
	}
}

func TestComposeDownstreamStopCutsDemand(t *testing.T) {
	// Taking(1) downstream stops the composite after one value even
	// though the upstream could keep producing.
	m := mach.Compose(mach.Taking[int](1), doubler())
	got := runOn(m, []int{5, 6, 7})
	if !reflect.DeepEqual(got, []int{10}) {
		t.Fatalf("got %v, want [10]", got)
	}
}

func TestComposeUpstreamExhaustionPropagates(t *testing.T) {
	// Upstream Taking(2) exhausts; downstream sees end of input and its
	// buffered remainder flushes.
	m := mach.Compose(mach.Buffered[int](3), mach.Taking[int](2))
	got := runOn(m, []int{7, 8, 9})
	want := [][]int{{7, 8}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestAttachSourceFeedsProcess(t *testing.T) {
	m := mach.Attach(mach.Source[struct{}]([]int{1, 2, 3}), doubler())
	got := mach.Run(m)
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Fatalf("got %v, want [2 4 6]", got)
	}
}

func TestAttachPreservesBaseAlgebra(t *testing.T) {
	// The composite still awaits on the base's own selector; Supply at
	// the outer single-channel algebra satisfies it.
	base := mach.Pass[int](mach.Is[int]{})
	m := mach.Attach(base, mach.Taking[int](2))
	got := runOn(m, []int{9, 8, 7})
	if !reflect.DeepEqual(got, []int{9, 8}) {
		t.Fatalf("got %v, want [9 8]", got)
	}
}

func TestSupplyFeedsInOrder(t *testing.T) {
	got := mach.Run(mach.Supply([]int{1, 2, 3}, doubler()))
	if !reflect.DeepEqual(got, []int{2, 4, 6}) {
		t.Fatalf("got %v, want [2 4 6]", got)
	}
}

func TestSupplyLeftoverValuesDiscardedOnStop(t *testing.T) {
	got := mach.Run(mach.Supply([]int{1, 2, 3, 4, 5}, mach.Taking[int](2)))
	if !reflect.DeepEqual(got, []int{1, 2}) {
		t.Fatalf("got %v, want [1 2]", got)
	}
}

func TestSupplyExhaustedKeepsMachineLive(t *testing.T) {
	// After the first Supply runs dry the machine still awaits; a second
	// Supply continues feeding it.
	m := mach.Supply([]int{1}, doubler())
	m = mach.Supply([]int{2}, m)
	got := mach.Run(m)
	if !reflect.DeepEqual(got, []int{2, 4}) {
		t.Fatalf("got %v, want [2 4]", got)
	}
}

func TestSupplyEmptyIsNoOp(t *testing.T) {
	got := mach.Run(mach.Supply(nil, mach.Source[mach.Is[int]]([]int{1})))
	if !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("got %v, want [1]", got)
	}
}

func TestComposeUpstreamStopEndsComposite(t *testing.T) {
	// Echo downstream never decides to stop on its own; the composite
	// still ends after one value because Taking(1) upstream exhausts.
	m := mach.Compose(mach.Echo[int](), mach.Taking[int](1))
	got := runOn(m, []int{42, 43, 44})
	if !reflect.DeepEqual(got, []int{42}) {
		t.Fatalf("got %v, want [42]", got)
	}
}

func TestSupplyThenContinueDriving(t *testing.T) {
	// Partial feed leaves Taking(3) awaiting its third value; one more
	// supplied value completes the run.
	m := mach.Supply([]int{10, 20}, mach.Taking[int](3))
	got := mach.Run(mach.Supply([]int{30, 40}, m))
	if !reflect.DeepEqual(got, []int{10, 20, 30}) {
		t.Fatalf("got %v, want [10 20 30]", got)
	}
}

func TestComposeAssociative(t *testing.T) {
	input := []int{1, 2, 3, 4, 5, 6}
	f := mach.Filtered(func(n int) bool { return n%2 == 0 })
	g := doubler()
	h := mach.Taking[int](2)

	left := runOn(mach.Compose(mach.Compose(h, g), f), input)
	right := runOn(mach.Compose(h, mach.Compose(g, f)), input)
	if !reflect.DeepEqual(left, right) {
		t.Fatalf("associativity violated: left %v right %v", left, right)
	}
	if !reflect.DeepEqual(left, []int{4, 8}) {
		t.Fatalf("got %v, want [4 8]", left)
	}
}
