// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image/color"

	"code.hybscloud.com/coop/hal"
)

// vgaRGB is the text-mode palette.
var vgaRGB = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff}, {0x00, 0x00, 0xaa, 0xff}, {0x00, 0xaa, 0x00, 0xff}, {0x00, 0xaa, 0xaa, 0xff},
	{0xaa, 0x00, 0x00, 0xff}, {0xaa, 0x00, 0xaa, 0xff}, {0xaa, 0x55, 0x00, 0xff}, {0xaa, 0xaa, 0xaa, 0xff},
	{0x55, 0x55, 0x55, 0xff}, {0x55, 0x55, 0xff, 0xff}, {0x55, 0xff, 0x55, 0xff}, {0x55, 0xff, 0xff, 0xff},
	{0xff, 0x55, 0x55, 0xff}, {0xff, 0x55, 0xff, 0xff}, {0xff, 0xff, 0x55, 0xff}, {0xff, 0xff, 0xff, 0xff},
}

// vgaToANSI maps the low three color bits to ANSI color order.
var vgaToANSI = [8]int{0, 4, 2, 6, 1, 5, 3, 7}

// ansiSGR returns the select-graphic-rendition parameters for c.
func ansiSGR(c hal.Color) string {
	fg := c & 0x0f
	bg := (c >> 4) & 0x07
	base := 30
	if fg >= 8 {
		base = 90
	}
	return fmt.Sprintf("%d;%d", base+vgaToANSI[fg&0x07], 40+vgaToANSI[bg])
}
