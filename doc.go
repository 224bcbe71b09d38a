// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package mach provides composable stream transducers via algebraic effects
// on [code.hybscloud.com/kont].
//
// A [Machine] pulls typed requests through a selector algebra K and yields
// a stream of outputs; a [Process] is a machine over the single-channel
// selector [Is].
//
// # Architecture
//
//   - Steps: [Stop], [Yield], and [Await] form the observable shape of a
//     machine; [Next] exposes one step at a time.
//   - Plans: [Plan] is the monadic construction language — [Emit],
//     [Awaits], [AwaitsOr], [Halt], [Lift] — compiled by [Construct],
//     [Repeatedly], and [Before].
//   - Composition: [Compose] and [Attach] fuse machines pull-first, so the
//     downstream side drives demand. [Fit] and [Pass] reshape the selector
//     algebra; [Supply] and [Interpret] connect machines to concrete input.
//   - Transport: [Duct] carries inputs and outputs across goroutines on
//     bounded lock-free SPSC queues via [code.hybscloud.com/lfq], with
//     [Drive] evaluating the process and waiting past
//     [code.hybscloud.com/iox.ErrWouldBlock] with adaptive backoff.
//   - Effects: plans lifted with [Lift] run against kont handlers through
//     [RunWith] and [DrainWith]; error operations short-circuit through
//     [RunEither] returning [code.hybscloud.com/kont.Either].
//
// # Example
//
//	double := mach.Repeatedly(mach.AwaitBind(func(n int) mach.Plan[mach.Is[int], int, struct{}] {
//		return mach.Emit[mach.Is[int]](n * 2)
//	}))
//	out := mach.Run(mach.Supply([]int{1, 2, 3}, double))
//	// out == []int{2, 4, 6}
package mach
