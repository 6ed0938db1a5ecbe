// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo

import (
	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
)

const matrixChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!@#$%^&*()SWAG"

var swagColors = [...]hal.Color{
	hal.LightGreen, hal.LightCyan, hal.LightRed, hal.Pink, hal.Yellow,
	hal.White, hal.Green, hal.Cyan, hal.Magenta, hal.Brown,
}

const (
	matrixTrail = 5
	matrixDrop  = 8
)

// Matrix is digital rain: every column falls at its own speed with a
// bright head and a fading green tail.
//
// Matrix is a hand-written state machine. Its whole state, the delay
// between frames included, lives in the struct and fits a slot.
type Matrix struct {
	d       hal.Display
	rand    *host.Rand
	stop    coop.Stopper
	units   int
	delay   coop.Delay
	rows    [hal.Width]uint8
	speeds  [hal.Width]uint8
	started bool
}

// NewMatrix returns a Matrix drawing one frame every units of busy-work.
func NewMatrix(env *host.Env, units int) *Matrix {
	return &Matrix{d: env.Display, rand: env.Rand, stop: env.Stop, units: units}
}

// Resume implements coop.Computation.
func (m *Matrix) Resume(cx *coop.Context) coop.Poll {
	if m.stop.Stopped() {
		return coop.Done
	}
	if !m.started {
		m.started = true
		m.d.Clear()
		for col := range hal.Width {
			m.speeds[col] = uint8(m.rand.Intn(3) + 1)
			m.rows[col] = uint8(m.rand.Intn(hal.Height))
		}
	}
	if m.delay.Remaining() > 0 {
		m.delay.Resume(cx)
		return coop.Pending
	}
	m.frame()
	m.delay.Reset(m.units)
	return coop.Pending
}

// Release implements coop.Computation.
func (*Matrix) Release() {}

func (m *Matrix) frame() {
	for col := range hal.Width {
		m.rows[col] = (m.rows[col] + m.speeds[col]) % hal.Height
		head := int(m.rows[col])
		for i := range matrixTrail {
			m.d.WriteChar(wrapRow(head-i), col, ' ', hal.Black)
		}
		for i := range matrixDrop {
			color := hal.Green
			switch {
			case i == 0:
				color = hal.White
			case i < 3:
				color = hal.LightGreen
			}
			ch := m.rand.Pick(matrixChars)
			if m.rand.Intn(20) == 0 {
				color = swagColors[m.rand.Intn(len(swagColors))]
			}
			m.d.WriteChar(wrapRow(head-i), col, ch, color)
		}
		if m.rand.Intn(100) == 0 {
			m.rows[col] = 0
			m.speeds[col] = uint8(m.rand.Intn(3) + 1)
		}
	}
}

func wrapRow(r int) int {
	return (r + hal.Height) % hal.Height
}
