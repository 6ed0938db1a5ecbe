// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
	"golang.org/x/time/rate"
)

// runTerminal drives the host on the calling goroutine and mirrors the
// grid to out. Keys typed on in are latched into the input register.
func runTerminal(ctx context.Context, cfg host.Config, opt options, in io.Reader, out io.Writer) error {
	grid := hal.NewGrid()
	var reg hal.Register
	go feedKeys(in, &reg)

	scr := newScreen(out, opt.fps)
	var pace *rate.Limiter
	if opt.hz > 0 {
		pace = rate.NewLimiter(rate.Limit(opt.hz), 1)
	}
	cfg.AfterPoll = func() {
		scr.draw(grid, false)
		if pace != nil {
			_ = pace.Wait(ctx)
		}
	}

	h, err := host.New(cfg, grid, &reg)
	if err != nil {
		return err
	}
	scr.begin()
	defer scr.end()
	err = h.Run(ctx)
	scr.draw(grid, true)
	return err
}

// feedKeys latches every recognised byte of r until r ends.
func feedKeys(r io.Reader, reg *hal.Register) {
	br := bufio.NewReader(r)
	for {
		b, err := br.ReadByte()
		if err != nil {
			return
		}
		if b == 'q' {
			reg.Latch(hal.KeyEsc)
			continue
		}
		if k, err := hal.KeyFromRune(rune(b)); err == nil {
			reg.Latch(k)
		}
	}
}

// screen paints a Grid with ANSI escapes, at most fps times a second.
type screen struct {
	w     *bufio.Writer
	lim   *rate.Limiter
	gen   uint64
	drawn bool
}

func newScreen(out io.Writer, fps int) *screen {
	lim := rate.NewLimiter(rate.Inf, 0)
	if fps > 0 {
		lim = rate.NewLimiter(rate.Limit(fps), 1)
	}
	return &screen{w: bufio.NewWriter(out), lim: lim}
}

func (s *screen) begin() {
	s.w.WriteString("\x1b[?25l\x1b[2J")
	s.w.Flush()
}

func (s *screen) end() {
	s.w.WriteString("\x1b[0m\x1b[?25h\r\n")
	s.w.Flush()
}

// draw repaints the whole grid if it changed since the last paint.
// Unless force is set, the frame limiter may skip the paint.
func (s *screen) draw(g *hal.Grid, force bool) {
	if s.drawn && g.Generation() == s.gen {
		return
	}
	if !force && !s.lim.Allow() {
		return
	}
	s.gen = g.Generation()
	s.drawn = true

	s.w.WriteString("\x1b[H")
	for row := range hal.Height {
		cur := -1
		for _, c := range g.Row(row) {
			if int(c.Color) != cur {
				fmt.Fprintf(s.w, "\x1b[%sm", ansiSGR(c.Color))
				cur = int(c.Color)
			}
			ch := c.Ch
			if ch < 0x20 || ch > 0x7e {
				ch = ' '
			}
			s.w.WriteByte(ch)
		}
		s.w.WriteString("\x1b[0m")
		if row < hal.Height-1 {
			s.w.WriteString("\r\n")
		}
	}
	s.w.Flush()
}
