// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package demo

import (
	"errors"

	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
	"code.hybscloud.com/coop/host"
	"code.hybscloud.com/kont"
)

// ErrSwagOverload is the fault raised by the Panic program.
var ErrSwagOverload = errors.New("maximum SWAG achieved - system cannot handle this level of style")

var panicMessages = [...]string{
	"OH NO! MAXIMUM SWAG OVERLOAD!!!",
	"SYSTEM TOO SWAG TO HANDLE!!!!!!",
	"SWAG LEVELS: OVER 9000!!!!!!!!!",
	"ERROR: NOT ENOUGH SWAG DETECTED",
	"PANIC: SWAG BUFFER OVERFLOW!!!!",
	"CRITICAL: SWAG CORE MELTDOWN!!!",
}

var panicColors = [...]hal.Color{hal.LightRed, hal.Yellow, hal.LightGreen, hal.LightCyan, hal.Pink, hal.LightBlue}

var panicArt = [...]struct {
	row, col int
	text     string
}{
	{16, 20, ` $$$$$$\  $$\      $$\  $$$$$$\   $$$$$$\`},
	{17, 19, `$$  __$$\ $$ | $\  $$ |$$  __$$\ $$  __$$\`},
	{18, 19, `\$$$$$$\  $$ $$ $$\$$ |$$$$$$$$ |$$ |$$$$\`},
	{19, 19, ` \______/ \__/     \__|\__|  \__| \______/`},
}

// Panic plays frames of the overload animation, units of busy-work
// apart, shows the final screen and fails with ErrSwagOverload.
// It does not honor the stop key.
func Panic(env *host.Env, frames, units int) coop.Computation {
	d := env.Display
	animation := coop.Loop(0, func(i int) kont.Eff[kont.Either[int, struct{}]] {
		if i >= frames {
			return kont.Pure(kont.Right[int, struct{}](struct{}{}))
		}
		return coop.Do(func() { drawPanicFrame(d, i) },
			coop.SleepThen(units, kont.Pure(kont.Left[int, struct{}](i+1))))
	})
	body := kont.Bind(animation, func(struct{}) kont.Eff[struct{}] {
		d.Clear()
		d.WriteText(12, 25, "SYSTEM SWAG OVERLOAD COMPLETE", hal.LightRed)
		d.WriteText(14, 22, "RIP SwagOS - Too Swag 4 This World", hal.DarkGray)
		return kont.ThrowError[error, struct{}](ErrSwagOverload)
	})
	return host.Guard(env, coop.FromEffError[error](body))
}

func drawPanicFrame(d hal.Display, frame int) {
	d.Clear()
	d.WriteText(2, 24, panicMessages[frame%len(panicMessages)], panicColors[frame%len(panicColors)])
	d.WriteText(10, 20, "KERNEL PANIC at swag_generator():line_42", hal.White)
	d.WriteText(12, 16, "Stack trace: SWAG -> MORE_SWAG -> MAXIMUM_SWAG", hal.LightGray)
	d.WriteText(14, 18, "Error code: 0xSWAG (too much style detected)", hal.LightRed)
	for i, a := range panicArt {
		d.WriteText(a.row, a.col, a.text, panicColors[(frame+i)%len(panicColors)])
	}
	d.WriteText(22, 24, "System halted with MAXIMUM SWAG!", hal.DarkGray)
}
