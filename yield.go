// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Yield suspends exactly once: the first Resume reports Pending, every
// later one reports Done. The zero value is ready to use.
type Yield struct {
	yielded bool
}

// Resume implements Computation.
func (y *Yield) Resume(*Context) Poll {
	if y.yielded {
		return Done
	}
	y.yielded = true
	return Pending
}

// Release implements Computation.
func (*Yield) Release() {}
