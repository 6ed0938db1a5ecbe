// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package hal

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
)

const pendingBit = 1 << 8

// Register is a single-latch input port.
//
// A device goroutine calls Latch; the stepping goroutine polls TryRead.
// There is no queue: a code latched before the previous one was read
// replaces it.
type Register struct {
	v atomix.Uint32
}

// Latch makes k the pending code, overwriting any unread one.
func (r *Register) Latch(k Key) {
	r.v.Store(pendingBit | uint32(k))
}

// TryRead takes the pending code.
// Non-blocking: returns iox.ErrWouldBlock when nothing is pending.
func (r *Register) TryRead() (Key, error) {
	v := r.v.Swap(0)
	if v&pendingBit == 0 {
		return 0, iox.ErrWouldBlock
	}
	return Key(v), nil
}

// Pending reports whether a code is waiting without taking it.
func (r *Register) Pending() bool {
	return r.v.Load()&pendingBit != 0
}
