// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package host

// Rand is a linear congruential generator.
// Sequences are fully determined by the seed. Not safe for concurrent use.
type Rand struct {
	state uint32
}

// NewRand returns a generator seeded with seed.
func NewRand(seed uint32) *Rand {
	return &Rand{state: seed}
}

// Uint32 advances the generator and returns the new state.
func (r *Rand) Uint32() uint32 {
	r.state = r.state*1103515245 + 12345
	return r.state
}

// Intn returns a value in [0, n). Panics if n <= 0.
func (r *Rand) Intn(n int) int {
	if n <= 0 {
		panic("host: Intn argument must be positive")
	}
	return int(r.Uint32() % uint32(n))
}

// Pick returns a pseudo-random byte of s.
func (r *Rand) Pick(s string) byte {
	return s[r.Intn(len(s))]
}
