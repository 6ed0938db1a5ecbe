// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !cgo || !window

package main

import (
	"errors"

	"code.hybscloud.com/coop/host"
)

func runWindow(host.Config, options) error {
	return errors.New("swagos: -window requires a cgo build with -tags window")
}
