// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo

import (
	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
)

var generatorColors = [...]hal.Color{hal.LightRed, hal.LightGreen, hal.Yellow, hal.LightCyan, hal.Pink, hal.LightBlue}

type generator struct {
	line  int
	color int
	clear bool
}

// Generator writes SWAG down the middle column, one line per step in a
// rotating color. After the bottom line it waits one more step and
// clears the screen.
func Generator(env *host.Env, units int) coop.Computation {
	d := env.Display
	return coop.FromEff(coop.Do(d.Clear, coop.Cycle(generator{}, env.Stop, units, func(s generator) generator {
		if s.clear {
			d.Clear()
			s.clear = false
			return s
		}
		d.WriteText(s.line, 38, "SWAG", generatorColors[s.color%len(generatorColors)])
		s.line = (s.line + 1) % hal.Height
		s.color++
		s.clear = s.line == 0
		return s
	})))
}
