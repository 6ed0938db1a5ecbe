// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coop provides a fixed-slot cooperative executor for
// single-threaded, non-preemptive environments.
//
// Computations are resumable state machines. Each lives in one of
// [SlotCount] fixed slots of a [Scheduler], is advanced one short step at a
// time, and is released exactly once when it reports [Done].
//
// # Architecture
//
//   - Storage: a [Slot] holds at most one [Computation] whose footprint is at
//     most [SlotCapacity] bytes. A [Task] moves a computation into a slot
//     exactly once; reusing a consumed Task panics.
//   - Policy: [Scheduler.Step] resumes only the slot under the cursor and
//     advances the cursor by one, occupied or not. Over [SlotCount] steps
//     every slot is visited exactly once. A computation reporting Done is
//     released inside the same Step.
//   - Suspension: [Yield] suspends once; [Delay] spreads busy-work over
//     many steps, at most [DelayChunk] units per step.
//   - Cancellation: there is none in the executor. A computation checks its
//     injected [Stopper] and returns Done on its own.
//
// Slot [Background] is reserved by convention for a computation that lives
// for the whole process; the other slots host transient foreground work,
// and [Scheduler.Foreground] reports whether any of it is still running.
//
// # Effects
//
// Long-running bodies can be written as straight-line code on
// [code.hybscloud.com/kont] and run by an [Effect]:
//
//   - Operations: [Pause], [Sleep], [Await].
//   - Cont-world: [PauseThen], [SleepThen], [AwaitThen], [Do], [Loop], [Cycle].
//   - Expr-world: [ExprPauseThen], [ExprSleepThen].
//   - Errors: [FromEffError] and [FromExprError] turn kont.ThrowError into a
//     Left result.
//   - Outside a Scheduler: [Block] runs any computation to Done inline, and
//     [Exec] / [ExecExpr] handle a body directly with kont.Handle.
//
// # Observability
//
// [Trace] is a bounded lock-free ring of slot lifecycle events, drained on
// another goroutine with [Trace.Next], which returns
// [code.hybscloud.com/iox.ErrWouldBlock] when empty.
//
// # Example
//
//	var s coop.Scheduler
//	body := coop.Cycle(0, stop, 2500, func(n int) int { return n + 1 })
//	s.Spawn(coop.NewTask(coop.FromEff(body)))
//	for s.Len() > 0 {
//		s.Step()
//	}
package coop
