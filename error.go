// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// errorDispatcher handles error-family effects for an Effect whose result
// is an Either. ok is false when op is not an error effect.
type errorDispatcher[R any] interface {
	dispatchError(op kont.Operation) (v kont.Resumed, final R, thrown, ok bool)
}

// errorHandler dispatches kont error effects with error type E.
// Throw is eager: the suspension is discarded and the result is Left.
type errorHandler[E, A any] struct{}

func (errorHandler[E, A]) dispatchError(op kont.Operation) (kont.Resumed, kont.Either[E, A], bool, bool) {
	var zero kont.Either[E, A]
	eop, ok := op.(interface {
		DispatchError(ctx *kont.ErrorContext[E]) (kont.Resumed, bool)
	})
	if !ok {
		return nil, zero, false, false
	}
	var ctx kont.ErrorContext[E]
	v, _ := eop.DispatchError(&ctx)
	if ctx.HasErr {
		return nil, kont.Left[E, A](ctx.Err), true, true
	}
	return v, zero, false, true
}

// FromExprError returns an Effect that evaluates m with error support.
// The result is Right on success; a Throw ends the computation with Left,
// discarding the rest of the body.
func FromExprError[E, A any](m kont.Expr[A]) *Effect[kont.Either[E, A]] {
	wrapped := kont.ExprMap(m, func(a A) kont.Either[E, A] {
		return kont.Right[E, A](a)
	})
	e := FromExpr(wrapped)
	e.errs = errorHandler[E, A]{}
	return e
}

// FromEffError is FromExprError for a Cont-world body.
func FromEffError[E, A any](m kont.Eff[A]) *Effect[kont.Either[E, A]] {
	wrapped := kont.Map[kont.Resumed, A, kont.Either[E, A]](m, func(a A) kont.Either[E, A] {
		return kont.Right[E, A](a)
	})
	e := FromEff(wrapped)
	e.errs = errorHandler[E, A]{}
	return e
}
