// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach_test

import (
	"code.hybscloud.com/iox"
	"code.hybscloud.com/mach"
)

// doubler forwards each input multiplied by two, forever.
// The canonical one-in one-out process used across the tests.
func doubler() mach.Process[int, int] {
	return mach.Repeatedly(mach.AwaitBind(func(n int) mach.Plan[mach.Is[int], int, struct{}] {
		return mach.Emit[mach.Is[int]](n * 2)
	}))
}

// runOn drives a process over a finite input and collects all output:
// supply the values, exhaust the single channel, run to completion.
func runOn[I, O any](m mach.Process[I, O], values []I) []O {
	return mach.Run(mach.Supply(values, m))
}

// pushAll feeds every value into the duct, waiting past backpressure,
// then closes the input side. Used on the producer goroutine.
func pushAll[I, O any](d *mach.Duct[I, O], values []I) {
	var bo iox.Backoff
	for _, v := range values {
		for d.Push(v) != nil {
			bo.Wait()
		}
		bo.Reset()
	}
	d.CloseInput()
}

// pullAll collects duct output until the driven process stops and the
// output queue is drained. Used on the consumer goroutine.
func pullAll[I, O any](d *mach.Duct[I, O]) []O {
	var out []O
	var bo iox.Backoff
	for {
		v, err := d.Pull()
		if err == nil {
			out = append(out, v)
			bo.Reset()
			continue
		}
		if d.Done() {
			if v, err := d.Pull(); err == nil {
				out = append(out, v)
				continue
			}
			return out
		}
		bo.Wait()
	}
}
