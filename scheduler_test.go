// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"testing"

	"code.hybscloud.com/coop"
)

func TestSchedulerSpawnIndexOrder(t *testing.T) {
	var s coop.Scheduler
	for i := range coop.SlotCount {
		if !s.Spawn(coop.NewTask(&probe{})) {
			t.Fatalf("spawn %d rejected", i)
		}
		if !s.Occupied(i) {
			t.Fatalf("spawn %d did not land in slot %d", i, i)
		}
	}
	if s.Len() != coop.SlotCount {
		t.Fatalf("Len got %d, want %d", s.Len(), coop.SlotCount)
	}
}

func TestSchedulerSpawnFullRejected(t *testing.T) {
	var s coop.Scheduler
	ps := fill(&s)

	extra := coop.NewTask(&probe{})
	if s.Spawn(extra) {
		t.Fatal("spawn onto a full table succeeded")
	}
	if extra.Consumed() {
		t.Fatal("rejected spawn consumed the task")
	}
	for i, p := range ps {
		if p.resumes != 0 || p.released != 0 {
			t.Fatalf("resident %d changed: resumes %d released %d", i, p.resumes, p.released)
		}
	}
	st := s.Stats()
	if st.Spawned != coop.SlotCount || st.Rejected != 1 {
		t.Fatalf("stats got %+v", st)
	}
}

func TestSchedulerSpawnOversizedRejected(t *testing.T) {
	var s coop.Scheduler
	if s.Spawn(coop.NewTask(&oversized{})) {
		t.Fatal("spawn accepted an oversized computation")
	}
	if s.Len() != 0 {
		t.Fatalf("rejected spawn left %d slots occupied", s.Len())
	}
}

func TestSchedulerStepTouchesOneSlot(t *testing.T) {
	var s coop.Scheduler
	ps := fill(&s)

	s.Step()
	for i, p := range ps {
		want := 0
		if i == 0 {
			want = 1
		}
		if p.resumes != want {
			t.Fatalf("slot %d resumes got %d, want %d", i, p.resumes, want)
		}
	}
	if s.Cursor() != 1 {
		t.Fatalf("cursor got %d, want 1", s.Cursor())
	}
}

func TestSchedulerCursorWraps(t *testing.T) {
	cases := []struct {
		name  string
		spawn int
	}{
		{"empty", 0},
		{"one", 1},
		{"half", coop.SlotCount / 2},
		{"full", coop.SlotCount},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var s coop.Scheduler
			for range tc.spawn {
				s.Spawn(coop.NewTask(&probe{}))
			}
			s.Step()
			s.Step()
			s.Step()
			start := s.Cursor()
			for range coop.SlotCount {
				s.Step()
			}
			if s.Cursor() != start {
				t.Fatalf("cursor got %d, want %d", s.Cursor(), start)
			}
		})
	}
}

func TestSchedulerRoundRobinVisitsEachSlotOnce(t *testing.T) {
	var s coop.Scheduler
	ps := fill(&s)

	for range coop.SlotCount {
		s.Step()
	}
	for i, p := range ps {
		if p.resumes != 1 {
			t.Fatalf("slot %d resumes got %d, want 1", i, p.resumes)
		}
		if len(p.slots) != 1 || p.slots[0] != i {
			t.Fatalf("slot %d resumed with context slots %v", i, p.slots)
		}
	}
}

func TestSchedulerDoneReleasedInSameStep(t *testing.T) {
	var s coop.Scheduler
	p := &probe{limit: 1}
	s.Spawn(coop.NewTask(p))

	s.Step()
	if s.Occupied(0) {
		t.Fatal("slot still occupied after its computation reported Done")
	}
	if p.released != 1 {
		t.Fatalf("released got %d, want 1", p.released)
	}

	q := &probe{}
	if !s.Spawn(coop.NewTask(q)) || !s.Occupied(0) {
		t.Fatal("released slot was not reused")
	}
}

func TestSchedulerIsolation(t *testing.T) {
	var s coop.Scheduler
	a := &probe{id: 1}
	b := &probe{id: 2, limit: 3}
	s.Spawn(coop.NewTask(a))
	s.Spawn(coop.NewTask(b))

	for range 5 * coop.SlotCount {
		s.Step()
	}
	if a.id != 1 || b.id != 2 {
		t.Fatalf("ids changed: %d %d", a.id, b.id)
	}
	if a.resumes != 5 {
		t.Fatalf("a resumes got %d, want 5", a.resumes)
	}
	if b.resumes != 3 || b.released != 1 {
		t.Fatalf("b resumes %d released %d, want 3 and 1", b.resumes, b.released)
	}
	for _, i := range a.slots {
		if i != 0 {
			t.Fatalf("a resumed from slot %d", i)
		}
	}
	for _, i := range b.slots {
		if i != 1 {
			t.Fatalf("b resumed from slot %d", i)
		}
	}
}

// TestSchedulerScenarioFullTable walks the eight-slot scenario: a 64-byte
// computation in slot 0, seven more filling the table, a rejected ninth,
// slot 3 finishing and being reused.
func TestSchedulerScenarioFullTable(t *testing.T) {
	var s coop.Scheduler
	a := &payload{}
	for i := range a.buf {
		a.buf[i] = byte(i)
	}
	if coop.Footprint(a) != 64 {
		t.Fatalf("payload footprint got %d, want 64", coop.Footprint(a))
	}
	if !s.Spawn(coop.NewTask(a)) || !s.Occupied(0) {
		t.Fatal("A did not occupy slot 0")
	}

	ps := make([]*probe, coop.SlotCount)
	for i := 1; i < coop.SlotCount; i++ {
		ps[i] = &probe{}
		if i == 3 {
			ps[i].limit = 1
		}
		if !s.Spawn(coop.NewTask(ps[i])) {
			t.Fatalf("spawn into slot %d rejected", i)
		}
	}

	if s.Spawn(coop.NewTask(&probe{})) {
		t.Fatal("ninth spawn succeeded")
	}
	for i := range a.buf {
		if a.buf[i] != byte(i) {
			t.Fatal("slot 0 state changed by a rejected spawn")
		}
	}

	for range 4 {
		s.Step()
	}
	if s.Occupied(3) {
		t.Fatal("slot 3 still occupied after its computation reported Done")
	}

	next := &probe{}
	if !s.Spawn(coop.NewTask(next)) {
		t.Fatal("spawn after release rejected")
	}
	if !s.Occupied(3) || s.Slot(3).Footprint() != coop.Footprint(next) {
		t.Fatal("spawn did not reuse slot 3")
	}
}

func TestSchedulerForeground(t *testing.T) {
	var s coop.Scheduler
	s.Spawn(coop.NewTask(&probe{}))
	if s.Foreground() {
		t.Fatal("background alone reported as foreground")
	}

	s.Spawn(coop.NewTask(&probe{limit: 2}))
	if !s.Foreground() {
		t.Fatal("foreground slot not reported")
	}
	if !s.HasOccupied(0, 1) || !s.HasOccupied(-3, 99) {
		t.Fatal("HasOccupied missed occupied slots")
	}
	if s.HasOccupied(2, coop.SlotCount) {
		t.Fatal("HasOccupied reported empty slots")
	}

	if !s.Drain(1, coop.SlotCount, 0) {
		t.Fatal("Drain did not drain the foreground")
	}
	if s.Foreground() {
		t.Fatal("foreground still running after Drain")
	}
	if !s.Occupied(coop.Background) {
		t.Fatal("Drain released the background")
	}
}

func TestSchedulerDrainLimit(t *testing.T) {
	var s coop.Scheduler
	s.Spawn(coop.NewTask(&probe{}))
	s.Spawn(coop.NewTask(&probe{}))
	if s.Drain(1, coop.SlotCount, 3*coop.SlotCount) {
		t.Fatal("Drain reported success for a computation that never finishes")
	}
	if got := s.Stats().Steps; got != 3*coop.SlotCount {
		t.Fatalf("steps got %d, want %d", got, 3*coop.SlotCount)
	}
}

// spawner calls back into its own Scheduler, which is forbidden.
type spawner struct {
	s    *coop.Scheduler
	step bool
}

func (sp *spawner) Resume(*coop.Context) coop.Poll {
	if sp.step {
		sp.s.Step()
	} else {
		sp.s.Spawn(coop.NewTask(&probe{}))
	}
	return coop.Done
}

func (*spawner) Release() {}

func TestSchedulerReentrancyPanics(t *testing.T) {
	for _, step := range []bool{false, true} {
		want := "coop: reentrant Spawn"
		if step {
			want = "coop: reentrant Step"
		}
		t.Run(want, func(t *testing.T) {
			var s coop.Scheduler
			s.Spawn(coop.NewTask(&spawner{s: &s, step: step}))
			func() {
				defer func() {
					r := recover()
					msg, ok := r.(string)
					if !ok || msg != want {
						t.Fatalf("unexpected panic: %v", r)
					}
				}()
				s.Step()
			}()
			// The guard is cleared after the panic; the table is usable again.
			if !s.Spawn(coop.NewTask(&probe{})) {
				t.Fatal("spawn after recovered panic rejected")
			}
		})
	}
}

func TestSchedulerStats(t *testing.T) {
	var s coop.Scheduler
	s.Spawn(coop.NewTask(&probe{limit: 2}))
	for range 2 * coop.SlotCount {
		s.Step()
	}
	st := s.Stats()
	if st.Spawned != 1 || st.Resumes != 2 || st.Released != 1 || st.Steps != 2*coop.SlotCount {
		t.Fatalf("stats got %+v", st)
	}
}
