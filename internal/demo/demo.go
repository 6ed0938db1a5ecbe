// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package demo holds the SwagOS screens as computations for the host
// selection loop.
package demo

import (
	"fmt"

	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
)

// Timing holds busy-work units per animation step.
type Timing struct {
	Generator   int
	Matrix      int
	Panic       int
	PanicFrames int
	Heartbeat   int
}

// DefaultTiming returns the pacing used by the swagos binary.
func DefaultTiming() Timing {
	return Timing{
		Generator:   200_000,
		Matrix:      20_000,
		Panic:       500_000,
		PanicFrames: 20,
		Heartbeat:   50_000,
	}
}

// Programs returns the three menu entries.
func Programs(t Timing) []host.Program {
	return []host.Program{
		{Key: hal.Key1, Title: "SWAG Generator", Color: hal.LightGreen,
			New: func(env *host.Env) coop.Computation { return Generator(env, t.Generator) }},
		{Key: hal.Key2, Title: "Panic!!! (now with $wag)", Color: hal.LightRed,
			New: func(env *host.Env) coop.Computation { return Panic(env, t.PanicFrames, t.Panic) }},
		{Key: hal.Key3, Title: "SWAG Matrix", Color: hal.LightCyan,
			New: func(env *host.Env) coop.Computation { return NewMatrix(env, t.Matrix) }},
	}
}

// Config returns a host configuration running the SwagOS menu with the
// heartbeat in the background.
func Config(t Timing) host.Config {
	return host.Config{
		Programs: Programs(t),
		Background: func(env *host.Env) coop.Computation {
			return Heartbeat(env, t.Heartbeat)
		},
		Menu: Menu,
	}
}

// Menu draws the SwagOS title screen.
func Menu(d hal.Display, programs []host.Program) {
	d.Clear()
	d.WriteText(5, 22, "========== SwagOS v0.0.1 ==========", hal.Yellow)
	d.WriteText(7, 23, "The Most Swag Operating System Ever", hal.LightGray)
	d.WriteText(12, 30, "Choose your destiny:", hal.White)
	for i, p := range programs {
		d.WriteText(14+i, 32, fmt.Sprintf("%d) %s", p.Key-hal.Key1+1, p.Title), p.Color)
	}
	d.WriteText(20, 20, "Press the number key to select... (ESC to return)", hal.DarkGray)
}
