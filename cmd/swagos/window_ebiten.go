// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build cgo && window

package main

import (
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Debug font cell size in pixels.
const (
	cellW = 6
	cellH = 16
)

var windowKeys = [...]struct {
	ek ebiten.Key
	k  hal.Key
}{
	{ebiten.KeyEscape, hal.KeyEsc},
	{ebiten.KeyDigit1, hal.Key1},
	{ebiten.KeyDigit2, hal.Key2},
	{ebiten.KeyDigit3, hal.Key3},
	{ebiten.KeyNumpad1, hal.Key1},
	{ebiten.KeyNumpad2, hal.Key2},
	{ebiten.KeyNumpad3, hal.Key3},
}

// runWindow opens a window showing the grid. It blocks until the window
// closes or the step limit is reached, and returns the program fault if
// one halted the host. A halted host keeps its last screen on display.
func runWindow(cfg host.Config, opt options) error {
	grid := hal.NewGrid()
	g := &game{grid: grid, limit: opt.ticks, stepsPerFrame: 1}
	if opt.hz > 0 {
		g.stepsPerFrame = max(opt.hz/ebiten.DefaultTPS, 1)
	} else {
		g.stepsPerFrame = 4096
	}
	cfg.MaxPolls = 0
	h, err := host.New(cfg, grid, &g.in)
	if err != nil {
		return err
	}
	g.h = h

	ebiten.SetWindowTitle("SwagOS")
	ebiten.SetWindowSize(hal.Width*cellW*2, hal.Height*cellH*2)
	if opt.fps > 0 {
		ebiten.SetTPS(opt.fps)
	}
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.h.Fault()
}

type game struct {
	h             *host.Host
	grid          *hal.Grid
	in            hal.Register
	glyphs        [128]*ebiten.Image
	limit         int
	stepsPerFrame int
}

func (g *game) Update() error {
	for _, wk := range windowKeys {
		if inpututil.IsKeyJustPressed(wk.ek) {
			g.in.Latch(wk.k)
		}
	}
	for range g.stepsPerFrame {
		if g.h.Fault() != nil {
			return nil
		}
		if g.limit > 0 && g.h.Polls() >= g.limit {
			return ebiten.Termination
		}
		if err := g.h.Poll(); err != nil {
			return nil
		}
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(vgaRGB[hal.Black])
	op := &ebiten.DrawImageOptions{}
	for row := range hal.Height {
		for col, c := range g.grid.Row(row) {
			x, y := col*cellW, row*cellH
			if bg := (c.Color >> 4) & 0x07; bg != 0 {
				vector.DrawFilledRect(screen, float32(x), float32(y), cellW, cellH, vgaRGB[bg], false)
			}
			glyph := g.glyph(c.Ch)
			if glyph == nil {
				continue
			}
			op.GeoM.Reset()
			op.GeoM.Translate(float64(x), float64(y))
			op.ColorScale.Reset()
			op.ColorScale.ScaleWithColor(vgaRGB[c.Color.Foreground()])
			screen.DrawImage(glyph, op)
		}
	}
}

// glyph returns a white rendering of ch, cached. Blank and
// unprintable bytes have none.
func (g *game) glyph(ch byte) *ebiten.Image {
	if ch <= 0x20 || ch > 0x7e {
		return nil
	}
	if g.glyphs[ch] == nil {
		img := ebiten.NewImage(cellW, cellH)
		ebitenutil.DebugPrintAt(img, string(rune(ch)), 0, 0)
		g.glyphs[ch] = img
	}
	return g.glyphs[ch]
}

func (g *game) Layout(int, int) (int, int) {
	return hal.Width * cellW, hal.Height * cellH
}
