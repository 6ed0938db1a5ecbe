// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

const (
	// SlotCount is the fixed number of slots in a Scheduler.
	SlotCount = 8

	// Background is the slot reserved by convention for the persistent
	// background computation. Spawn fills slots in index order, so the
	// first computation spawned into an empty Scheduler lands here.
	Background = 0
)

// Stats counts Scheduler activity since creation.
type Stats struct {
	Spawned  uint64
	Rejected uint64
	Steps    uint64
	Resumes  uint64
	Released uint64
}

// Scheduler is a fixed array of slots plus a rotation cursor.
// The zero value is ready to use.
//
// A Scheduler is driven from a single goroutine. Spawn and Step must not
// be called from inside a computation's Resume on the same Scheduler;
// doing so panics.
type Scheduler struct {
	slots  [SlotCount]Slot
	cursor int
	busy   bool
	stats  Stats
	trace  *Trace
}

// Observe attaches tr to receive lifecycle events. A nil tr detaches.
func (s *Scheduler) Observe(tr *Trace) {
	s.trace = tr
}

// Spawn installs the task into the first empty slot in index order.
// Returns false if no slot is free or the footprint exceeds SlotCapacity;
// no slot changes and t stays unconsumed.
func (s *Scheduler) Spawn(t *Task) bool {
	if s.busy {
		panic("coop: reentrant Spawn")
	}
	if t.consumed {
		panic("coop: task already consumed")
	}
	for i := range s.slots {
		if s.slots[i].Occupied() {
			continue
		}
		if !s.slots[i].Install(t) {
			break
		}
		s.stats.Spawned++
		s.emit(EventSpawn, i, t.serial)
		return true
	}
	s.stats.Rejected++
	s.emit(EventReject, -1, t.serial)
	return false
}

// Step resumes exactly the slot under the cursor, releases it in the
// same call if it reports Done, and advances the cursor by one position.
// Empty slots still consume a Step.
func (s *Scheduler) Step() {
	if s.busy {
		panic("coop: reentrant Step")
	}
	i := s.cursor
	sl := &s.slots[i]
	if sl.Occupied() {
		s.resume(i, sl)
	}
	s.cursor = (i + 1) % SlotCount
	s.stats.Steps++
}

func (s *Scheduler) resume(i int, sl *Slot) {
	s.busy = true
	defer func() { s.busy = false }()
	cx := Context{slot: i}
	s.stats.Resumes++
	if sl.Resume(&cx) == Done {
		serial := sl.Serial()
		sl.Release()
		s.stats.Released++
		s.emit(EventRelease, i, serial)
	}
}

// Drain steps until no slot in [lo, hi) is occupied or limit steps have
// been taken. A limit of zero or less means no limit.
// Reports whether the range drained.
func (s *Scheduler) Drain(lo, hi, limit int) bool {
	for n := 0; limit <= 0 || n < limit; n++ {
		if !s.HasOccupied(lo, hi) {
			return true
		}
		s.Step()
	}
	return !s.HasOccupied(lo, hi)
}

// Cursor returns the index of the slot the next Step will touch.
func (s *Scheduler) Cursor() int {
	return s.cursor
}

// Occupied reports whether slot i holds a computation.
func (s *Scheduler) Occupied(i int) bool {
	return s.slots[i].Occupied()
}

// Slot returns slot i for inspection.
func (s *Scheduler) Slot(i int) *Slot {
	return &s.slots[i]
}

// HasOccupied reports whether any slot in [lo, hi) is occupied.
// Bounds are clamped to [0, SlotCount].
func (s *Scheduler) HasOccupied(lo, hi int) bool {
	lo = max(lo, 0)
	hi = min(hi, SlotCount)
	for i := lo; i < hi; i++ {
		if s.slots[i].Occupied() {
			return true
		}
	}
	return false
}

// Foreground reports whether any transient slot is occupied.
func (s *Scheduler) Foreground() bool {
	return s.HasOccupied(Background+1, SlotCount)
}

// Len returns the number of occupied slots.
func (s *Scheduler) Len() int {
	n := 0
	for i := range s.slots {
		if s.slots[i].Occupied() {
			n++
		}
	}
	return n
}

// Stats returns a copy of the activity counters.
func (s *Scheduler) Stats() Stats {
	return s.stats
}

func (s *Scheduler) emit(kind EventKind, slot int, serial Serial) {
	if s.trace != nil {
		s.trace.emit(Event{Kind: kind, Slot: slot, Serial: serial})
	}
}
