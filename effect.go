// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// Effect is a Computation that evaluates a kont.Expr one effect at a time.
//
// Each Resume runs the body up to its next suspension. Pause, Sleep and
// Await suspensions are delegated to a Yield, a Delay, or the awaited
// computation, which the Effect resumes in its own slot until it reports
// Done; then the body continues. Any other effect panics unless the
// Effect was built with error support.
type Effect[R any] struct {
	start   func() (R, *kont.Suspension[R])
	susp    *kont.Suspension[R]
	result  R
	wait    Computation
	errs    errorDispatcher[R]
	w       waits
	started bool
	done    bool
}

// FromExpr returns an Effect that evaluates m. Nothing in m runs before
// the first Resume.
func FromExpr[R any](m kont.Expr[R]) *Effect[R] {
	return &Effect[R]{start: func() (R, *kont.Suspension[R]) {
		return kont.StepExpr(m)
	}}
}

// FromEff returns an Effect that evaluates the Cont-world body m.
// The body is reified on the first Resume.
func FromEff[R any](m kont.Eff[R]) *Effect[R] {
	return &Effect[R]{start: func() (R, *kont.Suspension[R]) {
		return kont.StepExpr(kont.Reify(m))
	}}
}

// Resume implements Computation.
func (e *Effect[R]) Resume(cx *Context) Poll {
	if e.done {
		return Done
	}
	if !e.started {
		e.started = true
		e.result, e.susp = e.start()
		e.start = nil
	}
	for e.susp != nil {
		if e.wait == nil && !e.dispatch() {
			continue
		}
		if e.wait.Resume(cx) == Pending {
			return Pending
		}
		e.wait.Release()
		e.wait = nil
		e.result, e.susp = e.susp.Resume(resumedUnit)
	}
	e.done = true
	return Done
}

// dispatch binds the wait computation for the current suspension.
// Returns false when the suspension was settled without waiting.
func (e *Effect[R]) dispatch() bool {
	op := e.susp.Op()
	if aw, ok := op.(awaiter); ok {
		e.wait = aw.await(&e.w)
		return true
	}
	if e.errs != nil {
		if v, final, thrown, ok := e.errs.dispatchError(op); ok {
			if thrown {
				e.susp.Discard()
				e.susp = nil
				e.result = final
				return false
			}
			e.result, e.susp = e.susp.Resume(v)
			return false
		}
	}
	panic("coop: unhandled effect in Effect")
}

// Release implements Computation. A body still suspended is discarded
// together with whatever it was waiting on.
func (e *Effect[R]) Release() {
	if e.wait != nil {
		e.wait.Release()
		e.wait = nil
	}
	if e.susp != nil {
		e.susp.Discard()
		e.susp = nil
	}
	e.start = nil
}

// Result returns the body's result once it completed.
func (e *Effect[R]) Result() (R, bool) {
	return e.result, e.done
}

