// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package hal is the contact point between programs and the outside
// world: a character/color display and a single-latch key input.
//
// Both devices are deliberately small. Display writes take effect
// immediately and never block; Input is polled, never waited on.
package hal

import "errors"

// Screen geometry in character cells.
const (
	Width  = 80
	Height = 25
)

// Color is a text-mode attribute: low nibble foreground, high nibble
// background.
type Color uint8

const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	Pink
	Yellow
	White
)

// Foreground returns the foreground nibble.
func (c Color) Foreground() Color { return c & 0x0f }

// Key is a keyboard scan code.
type Key uint8

// Scan codes the programs react to.
const (
	KeyEsc Key = 0x01
	Key1   Key = 0x02
	Key2   Key = 0x03
	Key3   Key = 0x04
)

// ErrKeyRange reports a rune that has no scan code.
var ErrKeyRange = errors.New("hal: no scan code for key")

// KeyFromRune maps a typed character to its scan code.
// ESC (0x1b) maps to KeyEsc and the digits 1..9 to their row positions.
func KeyFromRune(r rune) (Key, error) {
	switch {
	case r == 0x1b:
		return KeyEsc, nil
	case r >= '1' && r <= '9':
		return Key1 + Key(r-'1'), nil
	}
	return 0, ErrKeyRange
}

// Display is a fixed Width x Height grid of character cells.
// Writes outside the grid are ignored.
type Display interface {
	Clear()
	WriteText(row, col int, text string, color Color)
	WriteChar(row, col int, ch byte, color Color)
}

// Input is a non-blocking key source.
// TryRead returns iox.ErrWouldBlock when nothing is pending.
type Input interface {
	TryRead() (Key, error)
}
