// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import (
	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/kont"
)

// Env is what a launched program may touch.
type Env struct {
	Display hal.Display
	Rand    *Rand
	// Stop reports that the program was asked to finish.
	Stop coop.Stopper
	fail func(error)
}

// Fail reports a fatal program error. The Host halts and returns err
// from Poll. Only the first failure is kept.
func (e *Env) Fail(err error) {
	if e.fail != nil && err != nil {
		e.fail(err)
	}
}

// guarded turns a thrown error into a fault on completion.
type guarded[A any] struct {
	env *Env
	e   *coop.Effect[kont.Either[error, A]]
}

// Guard wraps an error-aware Effect so that a body ending in
// kont.ThrowError fails env when it completes.
func Guard[A any](env *Env, e *coop.Effect[kont.Either[error, A]]) coop.Computation {
	return &guarded[A]{env: env, e: e}
}

func (g *guarded[A]) Resume(cx *coop.Context) coop.Poll {
	if g.e.Resume(cx) == coop.Pending {
		return coop.Pending
	}
	if r, ok := g.e.Result(); ok {
		if err, thrown := r.GetLeft(); thrown {
			g.env.Fail(err)
		}
	}
	return coop.Done
}

func (g *guarded[A]) Release() {
	g.e.Release()
}
