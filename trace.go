// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/lfq"
)

// EventKind identifies a slot lifecycle transition.
type EventKind uint8

const (
	// EventSpawn reports a task installed into a slot.
	EventSpawn EventKind = iota + 1
	// EventReject reports a Spawn that found no slot for the task.
	EventReject
	// EventRelease reports a slot released after its computation was Done.
	EventRelease
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventReject:
		return "reject"
	case EventRelease:
		return "release"
	default:
		return "unknown"
	}
}

// Event is one slot lifecycle record. Slot is -1 for EventReject.
type Event struct {
	Kind   EventKind
	Slot   int
	Serial Serial
}

// DefaultTraceCapacity is the ring size used by NewTrace for capacity <= 0.
const DefaultTraceCapacity = 64

// Trace is a bounded ring of lifecycle events.
//
// The Scheduler is the single producer; one consumer goroutine drains
// it with Next. Transport is a lock-free SPSC queue, so emitting never
// blocks the stepping goroutine: when the ring is full the event is
// dropped and counted.
type Trace struct {
	q       lfq.SPSC[Event]
	dropped atomix.Uint32
}

// NewTrace creates a Trace holding up to capacity undrained events.
func NewTrace(capacity int) *Trace {
	if capacity <= 0 {
		capacity = DefaultTraceCapacity
	}
	tr := &Trace{}
	tr.q.Init(capacity)
	return tr
}

func (tr *Trace) emit(ev Event) {
	if err := tr.q.Enqueue(&ev); err != nil {
		tr.dropped.Add(1)
	}
}

// Next dequeues the oldest event.
// Non-blocking: returns iox.ErrWouldBlock when the ring is empty.
func (tr *Trace) Next() (Event, error) {
	return tr.q.Dequeue()
}

// Dropped returns how many events were lost to a full ring.
func (tr *Trace) Dropped() uint32 {
	return tr.dropped.Load()
}
