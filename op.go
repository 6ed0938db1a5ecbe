// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// waits holds the suspension primitives an Effect delegates to.
// Embedded by value in Effect so awaiting Pause or Sleep never allocates.
type waits struct {
	yield Yield
	delay Delay
}

// awaiter is the structural interface for suspension operations.
// await returns the computation the Effect resumes until it reports Done.
type awaiter interface {
	await(w *waits) Computation
}

// Pause is the effect operation for a one-shot yield.
// Perform(Pause{}) suspends the body for exactly one turn of the Scheduler.
type Pause struct {
	kont.Phantom[struct{}]
}

func (Pause) await(w *waits) Computation {
	w.yield = Yield{}
	return &w.yield
}

// Sleep is the effect operation for a chunked delay.
// Perform(Sleep{Units: n}) suspends the body until a Delay of n units
// has been consumed, one DelayChunk per turn.
type Sleep struct {
	kont.Phantom[struct{}]
	Units int
}

func (s Sleep) await(w *waits) Computation {
	w.delay = Delay{remaining: max(s.Units, 0)}
	return &w.delay
}

// Await is the effect operation for running a sub-computation inline.
// Perform(Await{C: c}) resumes c in the body's own slot until it reports
// Done, then releases it. The body owns c from this point on.
type Await struct {
	kont.Phantom[struct{}]
	C Computation
}

func (a Await) await(*waits) Computation {
	if a.C == nil {
		panic("coop: nil computation")
	}
	return a.C
}

// Pre-allocated erased operations and resume values, avoiding per-dispatch
// heap escape when boxing empty structs into any.
var (
	exprPause   kont.Erased  = Pause{}
	resumedUnit kont.Resumed = struct{}{}
)
