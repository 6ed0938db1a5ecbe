// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

import "code.hybscloud.com/atomix"

// Serial is a monotonically increasing task identifier.
// Each call to NewTask assigns the next serial value; zero means none.
type Serial = uint32

// counter is the global monotonic counter for task serials.
// Tasks may be created on any goroutine before being handed to the
// goroutine that drives the Scheduler.
var counter atomix.Uint32

// nextSerial returns the next monotonically increasing serial.
func nextSerial() Serial {
	return counter.Add(1)
}
