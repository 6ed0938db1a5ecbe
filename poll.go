// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coop

// Poll is the outcome of resuming a computation.
type Poll uint8

const (
	// Pending means the computation wants to be resumed again later.
	Pending Poll = iota
	// Done means the computation finished and its slot must be released.
	Done
)

func (p Poll) String() string {
	switch p {
	case Pending:
		return "pending"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}
