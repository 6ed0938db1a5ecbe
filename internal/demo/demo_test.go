// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo_test

import (
	"context"
	"strings"
	"testing"

	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
	"code.hybscloud.com/coop/internal/demo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastTiming() demo.Timing {
	return demo.Timing{PanicFrames: 3, Panic: coop.DelayChunk}
}

func newEnv(stop coop.Stopper) (*host.Env, *hal.Grid) {
	g := hal.NewGrid()
	return &host.Env{Display: g, Rand: host.NewRand(host.DefaultSeed), Stop: stop}, g
}

func resume(c coop.Computation, n int) coop.Poll {
	var cx coop.Context
	p := coop.Pending
	for range n {
		p = c.Resume(&cx)
	}
	return p
}

func TestMenuLayout(t *testing.T) {
	g := hal.NewGrid()
	demo.Menu(g, demo.Programs(demo.DefaultTiming()))

	assert.Contains(t, g.Text(5), "SwagOS v0.0.1")
	assert.Contains(t, g.Text(12), "Choose your destiny:")
	assert.Equal(t, "1) SWAG Generator", strings.TrimSpace(g.Text(14)))
	assert.Equal(t, "2) Panic!!! (now with $wag)", strings.TrimSpace(g.Text(15)))
	assert.Equal(t, "3) SWAG Matrix", strings.TrimSpace(g.Text(16)))
	assert.Equal(t, hal.LightRed, g.Cell(15, 32).Color)
}

func TestGeneratorFillsAndClears(t *testing.T) {
	env, g := newEnv(coop.Never)
	gen := demo.Generator(env, 0)

	require.Equal(t, coop.Pending, resume(gen, 1))
	assert.Equal(t, "SWAG", g.Text(0)[38:42])
	assert.Equal(t, hal.LightRed, g.Cell(0, 38).Color)
	assert.Equal(t, ' ', rune(g.Cell(1, 38).Ch))

	resume(gen, hal.Height-1)
	for row := range hal.Height {
		require.Equal(t, "SWAG", g.Text(row)[38:42], "row %d", row)
	}
	assert.Equal(t, hal.LightGreen, g.Cell(1, 38).Color)

	resume(gen, 1)
	assert.Equal(t, ' ', rune(g.Cell(0, 38).Ch), "screen not cleared after wrap")
}

func TestGeneratorStops(t *testing.T) {
	stopped := false
	env, _ := newEnv(coop.StopFunc(func() bool { return stopped }))
	gen := demo.Generator(env, coop.DelayChunk*3)

	require.Equal(t, coop.Pending, resume(gen, 5))
	stopped = true
	n := coop.Block(gen)
	assert.LessOrEqual(t, n, 4)
}

func TestMatrixFitsSlot(t *testing.T) {
	env, _ := newEnv(coop.Never)
	m := demo.NewMatrix(env, 0)
	assert.LessOrEqual(t, coop.Footprint(m), uintptr(coop.SlotCapacity))

	var s coop.Scheduler
	require.True(t, s.Spawn(coop.NewTask(m)))
}

func TestMatrixDrawsEveryColumn(t *testing.T) {
	env, g := newEnv(coop.Never)
	m := demo.NewMatrix(env, 0)
	require.Equal(t, coop.Pending, resume(m, 1))

	for col := range hal.Width {
		drawn := false
		for row := range hal.Height {
			if g.Cell(row, col).Ch != ' ' {
				drawn = true
				break
			}
		}
		require.True(t, drawn, "column %d empty", col)
	}
}

func TestMatrixDeterministic(t *testing.T) {
	envA, a := newEnv(coop.Never)
	envB, b := newEnv(coop.Never)
	ma, mb := demo.NewMatrix(envA, coop.DelayChunk), demo.NewMatrix(envB, coop.DelayChunk)
	resume(ma, 10)
	resume(mb, 10)
	for row := range hal.Height {
		require.Equal(t, a.Text(row), b.Text(row))
	}
}

func TestMatrixStops(t *testing.T) {
	var in hal.Register
	env, _ := newEnv(host.StopOnKey(&in, hal.KeyEsc))
	m := demo.NewMatrix(env, coop.DelayChunk*2)
	require.Equal(t, coop.Pending, resume(m, 3))
	in.Latch(hal.KeyEsc)
	assert.Equal(t, coop.Done, resume(m, 1))
}

func TestHeartbeatSpins(t *testing.T) {
	env, g := newEnv(coop.Never)
	hb := demo.Heartbeat(env, 0)
	for _, want := range `|/-\|` {
		resume(hb, 1)
		require.Equal(t, want, rune(g.Cell(hal.Height-1, hal.Width-1).Ch))
	}
	_, done := hb.Result()
	assert.False(t, done)
}

func TestPanicAnimatesThenFails(t *testing.T) {
	env, g := newEnv(coop.Never)
	p := demo.Panic(env, 3, 2*coop.DelayChunk)

	require.Equal(t, coop.Pending, resume(p, 1))
	assert.Contains(t, g.Text(2), "OH NO! MAXIMUM SWAG OVERLOAD!!!")
	assert.Contains(t, g.Text(10), "KERNEL PANIC")

	require.Equal(t, coop.Pending, resume(p, 1))
	assert.Contains(t, g.Text(2), "SYSTEM TOO SWAG TO HANDLE")
	assert.Equal(t, coop.Done, resume(p, 2))
	assert.Contains(t, g.Text(14), "RIP SwagOS")
}

func TestHostMatrixThenEscape(t *testing.T) {
	g := hal.NewGrid()
	var in hal.Register
	h, err := host.New(demo.Config(fastTiming()), g, &in)
	require.NoError(t, err)
	require.True(t, h.Scheduler().Occupied(coop.Background))

	in.Latch(hal.Key3)
	for range 10 * coop.SlotCount {
		require.NoError(t, h.Poll())
	}
	p, ok := h.Running()
	require.True(t, ok)
	assert.Equal(t, "SWAG Matrix", p.Title)

	in.Latch(hal.KeyEsc)
	for range 2 * coop.SlotCount {
		require.NoError(t, h.Poll())
	}
	_, ok = h.Running()
	require.False(t, ok)
	assert.Contains(t, g.Text(12), "Choose your destiny:")
	assert.True(t, h.Scheduler().Occupied(coop.Background))
}

func TestHostPanicFaults(t *testing.T) {
	g := hal.NewGrid()
	var in hal.Register
	cfg := demo.Config(fastTiming())
	cfg.MaxPolls = 1000
	h, err := host.New(cfg, g, &in)
	require.NoError(t, err)

	in.Latch(hal.Key2)
	err = h.Run(context.Background())
	require.ErrorIs(t, err, demo.ErrSwagOverload)
	assert.Contains(t, err.Error(), "Panic!!!")
	assert.Contains(t, g.Text(12), "SYSTEM SWAG OVERLOAD COMPLETE")
}
