// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo

import (
	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
)

const spinner = `|/-\`

// Heartbeat turns a spinner in the bottom-right corner every units of
// busy-work. It runs in the background slot for as long as env.Stop
// allows.
func Heartbeat(env *host.Env, units int) *coop.Effect[int] {
	d := env.Display
	return coop.FromEff(coop.Cycle(0, env.Stop, units, func(n int) int {
		d.WriteChar(hal.Height-1, hal.Width-1, spinner[n%len(spinner)], hal.DarkGray)
		return (n + 1) % len(spinner)
	}))
}
