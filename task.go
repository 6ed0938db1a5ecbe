// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import "reflect"

// Computation is a resumable unit of work.
//
// Resume advances the computation by one step and reports Pending or Done.
// Release finalizes it and is called exactly once, by the Slot that owns
// it, right after Resume reports Done. A computation must never call
// Spawn or Step on the Scheduler that is resuming it.
type Computation interface {
	Resume(cx *Context) Poll
	Release()
}

// Sizer is implemented by computations that report their own state size.
// Computations whose state lives behind references (closures, frames)
// should implement it so the slot capacity check sees the real footprint.
type Sizer interface {
	Footprint() uintptr
}

// Footprint returns the state size of c in bytes: Sizer.Footprint if c
// implements it, otherwise the size of the concrete type (the element
// type for pointers).
func Footprint(c Computation) uintptr {
	if s, ok := c.(Sizer); ok {
		return s.Footprint()
	}
	t := reflect.TypeOf(c)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Size()
}

// Task is the one-shot handle that moves a Computation into a Slot.
//
// Affine semantics: a Task is consumed by a successful Install (or Spawn)
// or by Discard, and every later use panics. A rejected Task stays
// unconsumed; the caller decides whether to retry or Discard it.
type Task struct {
	c        Computation
	size     uintptr
	serial   Serial
	consumed bool
}

// NewTask wraps c in a fresh Task and assigns it the next serial.
// Panics if c is nil.
func NewTask(c Computation) *Task {
	if c == nil {
		panic("coop: nil computation")
	}
	return &Task{c: c, size: Footprint(c), serial: nextSerial()}
}

// Serial returns the serial number assigned to t.
func (t *Task) Serial() Serial {
	return t.serial
}

// Footprint returns the state size recorded when t was created.
func (t *Task) Footprint() uintptr {
	return t.size
}

// Consumed reports whether t has been installed or discarded.
func (t *Task) Consumed() bool {
	return t.consumed
}

// Discard releases the computation without running it and consumes t.
func (t *Task) Discard() {
	t.take().Release()
}

// take hands out the computation exactly once.
func (t *Task) take() Computation {
	if t.consumed {
		panic("coop: task already consumed")
	}
	c := t.c
	t.c = nil
	t.consumed = true
	return c
}
