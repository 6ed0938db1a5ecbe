// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Stopper is the stop capability injected into a long-running computation.
// The computation checks it on every turn and returns Done once it
// reports true; the Scheduler never stops a computation on its own.
type Stopper interface {
	Stopped() bool
}

// StopFunc adapts a function to Stopper.
type StopFunc func() bool

// Stopped implements Stopper.
func (f StopFunc) Stopped() bool { return f() }

// Never is a Stopper that never stops, for background computations.
var Never Stopper = StopFunc(func() bool { return false })
