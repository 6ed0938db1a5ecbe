// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// Loop runs a recursive body (Cont-world).
// step returns Left(nextState) to continue or Right(result) to finish.
// step is first called when the body runs, not when Loop is called.
func Loop[S, A any](initial S, step func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(kont.Pure(initial), func(s S) kont.Eff[A] {
		return kont.Bind(step(s), func(e kont.Either[S, A]) kont.Eff[A] {
			if next, ok := e.GetLeft(); ok {
				return Loop(next, step)
			}
			result, _ := e.GetRight()
			return kont.Pure(result)
		})
	})
}

// Cycle is the shape of every long-running computation: check stop, do
// one unit of work, sleep units, pause, repeat. It returns the last state
// once stop reports true. When units is at most DelayChunk, an Effect
// running the cycle does one unit of work per turn.
func Cycle[S any](initial S, stop Stopper, units int, work func(S) S) kont.Eff[S] {
	return Loop(initial, func(s S) kont.Eff[kont.Either[S, S]] {
		if stop.Stopped() {
			return kont.Pure(kont.Right[S, S](s))
		}
		next := work(s)
		return SleepThen(units, PauseThen(kont.Pure(kont.Left[S, S](next))))
	})
}
