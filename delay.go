// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// DelayChunk is the most busy-work units a Delay consumes per Resume.
const DelayChunk = 1000

// Delay approximates a timed wait without blocking: each Resume performs
// at most DelayChunk units of busy-work and reports Pending until all
// units are consumed. A Delay of n units completes on Resume number
// ceil(n/DelayChunk), or on the first Resume when n is zero.
type Delay struct {
	remaining int
	consumed  int
	sink      uint32
}

// NewDelay returns a Delay of units units. Negative units count as zero.
func NewDelay(units int) *Delay {
	return &Delay{remaining: max(units, 0)}
}

// Reset rearms d with units units, keeping nothing of the previous wait.
func (d *Delay) Reset(units int) {
	d.remaining = max(units, 0)
	d.consumed = 0
}

// Resume implements Computation.
func (d *Delay) Resume(*Context) Poll {
	n := min(d.remaining, DelayChunk)
	d.spin(n)
	d.remaining -= n
	d.consumed += n
	if d.remaining > 0 {
		return Pending
	}
	return Done
}

// Release implements Computation.
func (*Delay) Release() {}

// Remaining returns the units still to be consumed.
func (d *Delay) Remaining() int {
	return d.remaining
}

// Consumed returns the units consumed so far.
func (d *Delay) Consumed() int {
	return d.consumed
}

// spin performs n units of synchronous busy-work.
func (d *Delay) spin(n int) {
	x := d.sink
	for range n {
		x = x*1664525 + 1013904223
	}
	d.sink = x
}
