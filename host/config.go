// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import (
	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
)

// DefaultSeed seeds Rand when Config.Seed is zero.
const DefaultSeed = 12345

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
}

type nopLogger struct{}

func (nopLogger) WriteLineString(string) {}

// Program is one entry of the selection menu.
type Program struct {
	Key   hal.Key
	Title string
	Color hal.Color
	// New builds a fresh computation each time the program is launched.
	New func(env *Env) coop.Computation
}

// Config configures a Host. The zero value of every field is usable.
type Config struct {
	// Programs are the foreground choices, selected by Key.
	Programs []Program
	// Background, if set, is spawned into slot coop.Background and runs
	// for the lifetime of the Host.
	Background func(env *Env) coop.Computation
	// Menu draws the selection screen. Defaults to DrawMenu.
	Menu func(d hal.Display, programs []Program)
	// Seed for the shared Rand. Zero means DefaultSeed.
	Seed uint32
	// StopKey asks the running program to stop. Zero means hal.KeyEsc.
	StopKey hal.Key
	// TraceCapacity sizes the lifecycle trace ring.
	TraceCapacity int
	// Logger receives lifecycle lines. Nil discards them.
	Logger Logger
	// MaxPolls bounds Run. Zero or negative runs until cancelled.
	MaxPolls int
	// AfterPoll, if set, runs after every Poll made by Run.
	AfterPoll func()
}

func (c *Config) defaults() {
	if c.Menu == nil {
		c.Menu = DrawMenu
	}
	if c.Seed == 0 {
		c.Seed = DefaultSeed
	}
	if c.StopKey == 0 {
		c.StopKey = hal.KeyEsc
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
}
