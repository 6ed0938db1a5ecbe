// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop_test

import (
	"code.hybscloud.com/coop"
)

// probe reports Done after limit resumes; limit <= 0 never finishes.
// Every field is private state another slot must never see change.
type probe struct {
	id       int
	limit    int
	resumes  int
	released int
	slots    []int
}

func (p *probe) Resume(cx *coop.Context) coop.Poll {
	p.resumes++
	p.slots = append(p.slots, cx.Slot())
	if p.limit > 0 && p.resumes >= p.limit {
		return coop.Done
	}
	return coop.Pending
}

func (p *probe) Release() { p.released++ }

// payload is a computation with a fixed 64-byte footprint.
type payload struct {
	buf [64]byte
}

func (*payload) Resume(*coop.Context) coop.Poll { return coop.Pending }
func (*payload) Release()                       {}

// oversized exceeds SlotCapacity.
type oversized struct {
	buf [coop.SlotCapacity + 1]byte
}

func (*oversized) Resume(*coop.Context) coop.Poll { return coop.Done }
func (*oversized) Release()                       {}

// reported declares its footprint through Sizer.
type reported struct {
	size     uintptr
	released bool
}

func (r *reported) Resume(*coop.Context) coop.Poll { return coop.Done }
func (r *reported) Release()                       { r.released = true }
func (r *reported) Footprint() uintptr             { return r.size }

// drive resumes c outside any Scheduler until Done and returns the poll
// sequence. Gives up after limit resumes.
func drive(c coop.Computation, limit int) []coop.Poll {
	var cx coop.Context
	var polls []coop.Poll
	for range limit {
		p := c.Resume(&cx)
		polls = append(polls, p)
		if p == coop.Done {
			break
		}
	}
	return polls
}

// fill spawns SlotCount probes that never finish.
func fill(s *coop.Scheduler) []*probe {
	ps := make([]*probe, coop.SlotCount)
	for i := range ps {
		ps[i] = &probe{id: i}
		if !s.Spawn(coop.NewTask(ps[i])) {
			panic("fill: spawn rejected")
		}
	}
	return ps
}
