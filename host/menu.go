// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import (
	"code.hybscloud.com/coop/hal"
)

// DrawMenu is the default selection screen: one line per program,
// prefixed by its digit, centred on the screen.
func DrawMenu(d hal.Display, programs []Program) {
	d.Clear()
	top := (hal.Height - len(programs)) / 2
	for i, p := range programs {
		line := string(rune('1'+int(p.Key-hal.Key1))) + ") " + p.Title
		d.WriteText(top+i, (hal.Width-len(line))/2, line, p.Color)
	}
}
