// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Waker is the wake handle handed to every resumption.
// Scheduling is driven by polling, so no notification is ever delivered
// and Wake does nothing. Computations may ignore it.
type Waker struct{}

// Wake is a no-op.
func (Waker) Wake() {}

// Context is passed to Computation.Resume.
// Value type: the Scheduler builds one on the stack per Step.
type Context struct {
	waker Waker
	slot  int
}

// Waker returns the inert wake handle.
func (cx *Context) Waker() Waker {
	return cx.waker
}

// Slot returns the index of the slot being resumed.
func (cx *Context) Slot() int {
	return cx.slot
}
