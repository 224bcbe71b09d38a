// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package mach

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// ductCapacity is the bounded capacity for duct transport queues.
// 4 balances amortizing producer-side cached-index refresh cost while
// keeping ring buffers within a single cache line.
const ductCapacity = 4

// Duct is the concurrent transport around a running process: a producer
// goroutine pushes inputs on one side while [Drive] evaluates the process
// and a consumer pulls outputs on the other. Each direction is a bounded
// lock-free single-producer single-consumer queue, so exactly one
// goroutine may call Push/CloseInput and exactly one may call Pull.
type Duct[I, O any] struct {
	in     lfq.SPSC[any]
	out    lfq.SPSC[any]
	closed atomix.Uint32
	done   atomix.Uint32
	serial Serial

	pushSlot  any
	yieldSlot any
}

// NewDuct creates a duct with bounded input and output queues.
// The duct transports values for one process run under [Drive].
func NewDuct[I, O any]() *Duct[I, O] {
	d := &Duct[I, O]{serial: nextSerial()}
	d.in.Init(ductCapacity)
	d.out.Init(ductCapacity)
	return d
}

// Serial returns the serial number assigned to this duct.
func (d *Duct[I, O]) Serial() Serial {
	return d.serial
}

// Push offers one input value to the driven process.
// Non-blocking: returns iox.ErrWouldBlock if the bounded queue is full.
func (d *Duct[I, O]) Push(v I) error {
	d.pushSlot = v
	return d.in.Enqueue(&d.pushSlot)
}

// CloseInput marks the input side exhausted. After the driven process
// drains the queued values, its awaits take the exhaustion branch.
// Never blocks.
func (d *Duct[I, O]) CloseInput() {
	d.closed.Add(1)
}

// Pull takes one output value yielded by the driven process.
// Non-blocking: returns iox.ErrWouldBlock if no output is available yet.
func (d *Duct[I, O]) Pull() (o O, err error) {
	v, err := d.out.Dequeue()
	if err != nil {
		return o, err
	}
	return v.(O), nil
}

// Done reports whether the driven process has stopped. Outputs queued
// before the stop may still be pending in Pull.
func (d *Duct[I, O]) Done() bool {
	return d.done.Load() != 0
}

// Drive evaluates m against the duct until the machine stops, feeding
// awaits from the input queue and publishing yields to the output queue.
// Meant to run on its own goroutine; it waits past the iox.ErrWouldBlock
// boundary with iox.Backoff on both queues. Drive handles no ambient
// effects and panics if the machine performs one.
func Drive[I, O any](d *Duct[I, O], m Process[I, O]) {
	var bo iox.Backoff
	for {
		s, susp := Next(m)
		if susp != nil {
			susp.Discard()
			panic("mach: unhandled effect in Drive")
		}
		switch s := s.(type) {
		case Yield[Is[I], O]:
			d.yieldSlot = s.Value
			for d.out.Enqueue(&d.yieldSlot) != nil {
				bo.Wait()
			}
			bo.Reset()
			m = s.Next
		case Await[Is[I], O]:
			m = d.awaitInput(s, &bo)
		default:
			d.done.Add(1)
			return
		}
	}
}

// awaitInput resolves one await from the input queue. A close signal is
// honored only once the queue is observed empty, so every value pushed
// before CloseInput is still delivered in order.
func (d *Duct[I, O]) awaitInput(s Await[Is[I], O], bo *iox.Backoff) Process[I, O] {
	for {
		v, err := d.in.Dequeue()
		if err == nil {
			bo.Reset()
			return s.feed(v)
		}
		if d.closed.Load() != 0 {
			if v, err := d.in.Dequeue(); err == nil {
				bo.Reset()
				return s.feed(v)
			}
			return s.fallback
		}
		bo.Wait()
	}
}
