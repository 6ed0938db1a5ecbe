// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package host runs the selection loop around a coop.Scheduler.
//
// The Host spawns an optional persistent background computation first,
// so it lands in slot coop.Background, and launches one foreground
// program at a time into the first free slot, chosen by key from a menu.
// Each Poll reads the input once and steps the scheduler once; when the
// program's slot is released the menu is drawn again.
package host

import (
	"context"
	"fmt"

	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/iox"
)

// Host is the selection loop. Not safe for concurrent use: a single
// goroutine calls Poll or Run.
type Host struct {
	cfg     Config
	sched   coop.Scheduler
	trace   *coop.Trace
	display hal.Display
	input   hal.Input
	rand    *Rand

	// fwd carries keys read while a program runs to that program's
	// StopOnKey.
	fwd     hal.Register
	running *Program
	slot    int
	serial  coop.Serial
	fault   error
	polls   int
	dropped uint32
}

// New creates a Host, spawns the background computation and draws the
// menu.
func New(cfg Config, display hal.Display, input hal.Input) (*Host, error) {
	if len(cfg.Programs) == 0 {
		return nil, ErrNoProgram
	}
	seen := make(map[hal.Key]bool, len(cfg.Programs))
	for _, p := range cfg.Programs {
		if seen[p.Key] {
			return nil, fmt.Errorf("%w: %#x", ErrDuplicateKey, p.Key)
		}
		seen[p.Key] = true
	}
	cfg.defaults()
	h := &Host{
		cfg:     cfg,
		trace:   coop.NewTrace(cfg.TraceCapacity),
		display: display,
		input:   input,
		rand:    NewRand(cfg.Seed),
	}
	h.sched.Observe(h.trace)

	if cfg.Background != nil {
		env := h.env("background", coop.Never)
		t := coop.NewTask(cfg.Background(env))
		if !h.sched.Spawn(t) {
			t.Discard()
			return nil, fmt.Errorf("%w: footprint %d", ErrBackgroundRejected, t.Footprint())
		}
	}
	h.drainTrace()
	h.cfg.Menu(h.display, h.cfg.Programs)
	return h, nil
}

func (h *Host) env(title string, stop coop.Stopper) *Env {
	return &Env{
		Display: h.display,
		Rand:    h.rand,
		Stop:    stop,
		fail: func(err error) {
			if h.fault == nil {
				h.fault = fmt.Errorf("host: %s: %w", title, err)
			}
		},
	}
}

// Poll reads at most one key, steps the scheduler once and returns the
// fault of a failed program. After a fault every Poll returns it again
// without stepping.
func (h *Host) Poll() error {
	if h.fault != nil {
		return h.fault
	}
	h.polls++
	if k, err := h.input.TryRead(); err == nil {
		h.key(k)
	} else if !iox.IsWouldBlock(err) {
		h.logf("input: %v", err)
	}

	h.sched.Step()
	h.drainTrace()
	if h.fault != nil {
		h.logf("%v", h.fault)
		return h.fault
	}

	if h.running != nil && !h.alive() {
		h.logf("%s: finished", h.running.Title)
		h.running = nil
		h.cfg.Menu(h.display, h.cfg.Programs)
	}
	return nil
}

func (h *Host) key(k hal.Key) {
	if h.running != nil {
		h.fwd.Latch(k)
		return
	}
	for i := range h.cfg.Programs {
		if h.cfg.Programs[i].Key == k {
			h.launch(&h.cfg.Programs[i])
			return
		}
	}
}

func (h *Host) launch(p *Program) {
	h.fwd.TryRead()
	env := h.env(p.Title, StopOnKey(&h.fwd, h.cfg.StopKey))
	t := coop.NewTask(p.New(env))
	if !h.sched.Spawn(t) {
		t.Discard()
		h.drainTrace()
		h.logf("%s: rejected, footprint %d", p.Title, t.Footprint())
		return
	}
	h.running = p
	h.serial = t.Serial()
	for i := range coop.SlotCount {
		if sl := h.sched.Slot(i); sl.Occupied() && sl.Serial() == h.serial {
			h.slot = i
			break
		}
	}
	h.logf("%s: launched in slot %d", p.Title, h.slot)
}

// alive reports whether the running program still holds its slot.
func (h *Host) alive() bool {
	sl := h.sched.Slot(h.slot)
	return sl.Occupied() && sl.Serial() == h.serial
}

// Run polls until ctx is done, a program faults, or Config.MaxPolls
// polls were made. Returns nil unless a program faulted.
// Backs off with iox.Backoff while the scheduler has nothing to step.
func (h *Host) Run(ctx context.Context) error {
	var bo iox.Backoff
	for n := 0; h.cfg.MaxPolls <= 0 || n < h.cfg.MaxPolls; n++ {
		if ctx.Err() != nil {
			return nil
		}
		if err := h.Poll(); err != nil {
			return err
		}
		if h.cfg.AfterPoll != nil {
			h.cfg.AfterPoll()
		}
		if h.sched.Len() == 0 {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
	return nil
}

// Running returns the foreground program, if any.
func (h *Host) Running() (Program, bool) {
	if h.running == nil {
		return Program{}, false
	}
	return *h.running, true
}

// Fault returns the error that halted the Host, or nil.
func (h *Host) Fault() error {
	return h.fault
}

// Polls returns how many times Poll stepped the scheduler.
func (h *Host) Polls() int {
	return h.polls
}

// Stats returns the scheduler counters.
func (h *Host) Stats() coop.Stats {
	return h.sched.Stats()
}

// Rand returns the generator shared with every program.
func (h *Host) Rand() *Rand {
	return h.rand
}

// Scheduler exposes the slot table for inspection.
func (h *Host) Scheduler() *coop.Scheduler {
	return &h.sched
}

func (h *Host) drainTrace() {
	for {
		ev, err := h.trace.Next()
		if err != nil {
			break
		}
		h.logf("%s slot=%d serial=%d", ev.Kind, ev.Slot, ev.Serial)
	}
	if n := h.trace.Dropped(); n != h.dropped {
		h.logf("trace: %d events dropped", n-h.dropped)
		h.dropped = n
	}
}

func (h *Host) logf(format string, args ...any) {
	h.cfg.Logger.WriteLineString(fmt.Sprintf(format, args...))
}
