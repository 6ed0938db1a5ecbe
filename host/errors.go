// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import "errors"

var (
	// ErrNoProgram is returned by New when Config.Programs is empty.
	ErrNoProgram = errors.New("host: no program configured")
	// ErrBackgroundRejected is returned by New when the background
	// computation does not fit its slot.
	ErrBackgroundRejected = errors.New("host: background rejected")
	// ErrDuplicateKey is returned by New when two programs share a key.
	ErrDuplicateKey = errors.New("host: duplicate program key")
)
