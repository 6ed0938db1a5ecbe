// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// Block resumes c on the calling goroutine until it reports Done, then
// releases it. Returns the number of resumes.
func Block(c Computation) int {
	if c == nil {
		panic("coop: nil computation")
	}
	var cx Context
	n := 0
	for {
		n++
		if c.Resume(&cx) == Done {
			c.Release()
			return n
		}
	}
}

// blockingHandler implements kont.Handler for the suspension effects.
// Every wait runs to completion inline, so a body handled by it never
// interleaves with anything else.
// Value type: passed to evalFrames on the stack.
type blockingHandler[R any] struct {
	w *waits
}

// Dispatch implements kont.Handler via structural interface assertion.
func (h blockingHandler[R]) Dispatch(op kont.Operation) (kont.Resumed, bool) {
	a, ok := op.(awaiter)
	if !ok {
		panic("coop: unhandled effect in Exec")
	}
	Block(a.await(h.w))
	return resumedUnit, true
}

// Exec runs a Cont-world body to completion outside any Scheduler.
func Exec[R any](body kont.Eff[R]) R {
	var w waits
	return kont.Handle(body, blockingHandler[R]{w: &w})
}

// ExecExpr runs an Expr-world body to completion outside any Scheduler.
func ExecExpr[R any](body kont.Expr[R]) R {
	var w waits
	return kont.HandleExpr(body, blockingHandler[R]{w: &w})
}
