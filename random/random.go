// This file is part of tickos.
//
// tickos is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// tickos is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with tickos.  If not, see <https://www.gnu.org/licenses/>.

// Package random fills the parts of the simulation that the real hardware
// leaves undefined: general purpose register slots in a freshly initialised
// stack frame, padding bytes, scratch memory. Task code must never depend on
// the value found there, and this package exists to make sure it can't get
// away with it by accident, while still letting a test harness reproduce a
// failure exactly.
//
// Two access patterns are supported. NoRewind draws from a single advancing
// stream and is appropriate when the value is consumed once and discarded.
// Rewindable recomputes the value for tick index n from scratch each time,
// so a debugger or test that steps backward and forward through the
// simulation sees the same sequence of "undefined" values on every pass.
package random

import "math/rand"

// TickCoords identifies a point in the simulation's execution at which a
// random value is requested. It plays the same role for tickos that a
// frame/scanline/clock triple plays for a video signal: a coordinate that
// advances monotonically and can be used to seed a reproducible sequence.
type TickCoords struct {
	Ticks uint64 // scheduler ticks elapsed since boot
	Task  int    // handle of the task currently executing, if any
	Cycle int    // core cycles elapsed within the current tick
}

// TickSource supplies the current TickCoords. The kernel does not implement
// it directly; cmd/tickosim's clockSource adapts the kernel's clock to it.
type TickSource interface {
	GetTick() TickCoords
}

// Random produces values for memory the simulation leaves undefined. The
// zero value is not usable; construct with NewRandom.
type Random struct {
	// ZeroSeed forces every seed to be derived from the requested index
	// alone, ignoring the TickSource entirely. Two Random instances with
	// ZeroSeed set produce identical Rewindable sequences regardless of
	// what their sources report, which is what regression tests want.
	ZeroSeed bool

	source TickSource
	stream *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom(source TickSource) *Random {
	r := &Random{source: source}
	r.stream = rand.New(rand.NewSource(r.seed(0)))
	return r
}

func (r *Random) seed(n int) int64 {
	if r.ZeroSeed || r.source == nil {
		return int64(n)
	}
	c := r.source.GetTick()
	return int64(c.Ticks)*997 + int64(c.Task)*31 + int64(c.Cycle) + int64(n)
}

// NoRewind returns the next value in the continuously advancing stream. The
// value returned for a given n depends on every call that preceded it, so
// it cannot be reproduced by asking for n again later.
func (r *Random) NoRewind(n int) int {
	return r.stream.Int() ^ n
}

// Rewindable returns the value associated with index n. Unlike NoRewind,
// calling Rewindable(n) again, at any point, returns the same value.
func (r *Random) Rewindable(n int) int {
	rng := rand.New(rand.NewSource(r.seed(n)))
	return rng.Int()
}
