// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

import (
	"code.hybscloud.com/coop"
	"code.hybscloud.com/coop/hal"
)

type keyStop struct {
	in   hal.Input
	key  hal.Key
	seen bool
}

// StopOnKey returns a Stopper that polls in once per query and stays
// stopped after it has read key. Other codes are consumed and ignored.
func StopOnKey(in hal.Input, key hal.Key) coop.Stopper {
	return &keyStop{in: in, key: key}
}

func (s *keyStop) Stopped() bool {
	if s.seen {
		return true
	}
	if k, err := s.in.TryRead(); err == nil && k == s.key {
		s.seen = true
	}
	return s.seen
}
