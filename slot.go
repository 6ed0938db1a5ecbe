// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// SlotCapacity is the largest computation footprint, in bytes, a Slot
// accepts.
const SlotCapacity = 512

// Slot stores at most one suspended computation.
//
// A Slot is either empty or occupied by exactly one live computation whose
// footprint was at most SlotCapacity when it was installed. The interface
// value is the bound resume/release pair for the concrete type.
type Slot struct {
	c      Computation
	serial Serial
	size   uintptr
}

// Install moves the task's computation into s.
// Returns false, leaving both s and t untouched, if s is occupied or the
// footprint exceeds SlotCapacity. Panics if t was already consumed.
func (s *Slot) Install(t *Task) bool {
	if t.consumed {
		panic("coop: task already consumed")
	}
	if s.c != nil || t.size > SlotCapacity {
		return false
	}
	s.serial = t.serial
	s.size = t.size
	s.c = t.take()
	return true
}

// Resume advances the installed computation by one step.
// Panics if s is empty.
func (s *Slot) Resume(cx *Context) Poll {
	if s.c == nil {
		panic("coop: resume of empty slot")
	}
	return s.c.Resume(cx)
}

// Release finalizes the installed computation and empties s.
// The slot is cleared before the computation's Release runs, so it is
// never released twice. Release on an empty slot is a no-op.
func (s *Slot) Release() {
	c := s.c
	if c == nil {
		return
	}
	*s = Slot{}
	c.Release()
}

// Occupied reports whether s holds a computation.
func (s *Slot) Occupied() bool {
	return s.c != nil
}

// Serial returns the serial of the installed task, or zero.
func (s *Slot) Serial() Serial {
	return s.serial
}

// Footprint returns the footprint of the installed computation, or zero.
func (s *Slot) Footprint() uintptr {
	return s.size
}
