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

// Package clocks defines named presets for the period of the simulated
// tick interrupt. A real Cortex-M part derives this from SysTick and a
// core clock frequency; the simulation only needs a wall-clock interval
// between successive Kernel.Tick calls, so the presets are expressed directly
// as a time.Duration.
package clocks

import "time"

const (
	// Default is the tick period used when a kernel is constructed
	// without an explicit override: 100 ticks per second, a common
	// choice for cooperative-feeling preemptive kernels on small parts.
	Default = 10 * time.Millisecond

	// Fast ticks ten times more often than Default, useful for
	// exercising wait-queue promotion and priority inversion scenarios
	// without waiting around for them in real time.
	Fast = 1 * time.Millisecond

	// Slow ticks ten times less often than Default, useful for stepping
	// through a run by eye under the cmd/tickosim single-step mode.
	Slow = 100 * time.Millisecond
)
