// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import (
	"code.hybscloud.com/kont"
)

// PauseThen yields once and then continues with next.
// Fuses Perform(Pause{}) + Then.
func PauseThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Pause{}), next)
}

// SleepThen waits for units of busy-work and then continues with next.
// Fuses Perform(Sleep{Units: units}) + Then.
func SleepThen[B any](units int, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Sleep{Units: units}), next)
}

// AwaitThen runs c to completion and then continues with next.
// Fuses Perform(Await{C: c}) + Then.
func AwaitThen[B any](c Computation, next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Await{C: c}), next)
}

// Do runs f and continues with next, both on the current turn.
func Do[B any](f func(), next kont.Eff[B]) kont.Eff[B] {
	return kont.Bind(kont.Pure(struct{}{}), func(struct{}) kont.Eff[B] {
		f()
		return next
	})
}
