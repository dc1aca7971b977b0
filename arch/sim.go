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

package arch

import (
	"time"

	"github.com/arantos/tickos/logger"
)

// Sim is a host-runnable model of an ARMv7-M core: a register file and a
// stack made of plain Go values instead of silicon. The kernel drives it
// exactly as it would drive real hardware hooks; nothing about kernel
// logic changes when Sim is swapped for a real port.
//
// A real tail-chained exception runs the moment the CPU priority drops
// low enough, asynchronously with respect to whoever pended it. Sim has
// no interrupts to tail-chain against, so PendSwitch does not itself
// perform the swap: the kernel calls LoadSP immediately afterward in the
// same call stack, which is observationally identical on a single core
// where nothing else can run in between.
type Sim struct {
	Filler RegisterFiller

	tickPeriod time.Duration
	pending    bool
	activeSP   int
}

// NewSim returns a Sim with no filler (undefined register slots read as
// zero) and no tick period configured.
func NewSim() *Sim {
	return &Sim{}
}

// InitStack writes the synthetic exception frame at the top of stack and
// returns the index of its first word.
func (s *Sim) InitStack(stack []uint32, entry uintptr) int {
	frame := InitialFrame(entry, s.Filler)
	base := len(stack) - FrameWords
	copy(stack[base:], frame[:])
	return base
}

// SaveCurrentSP derives the saved stack pointer from the frame-pointer
// snapshot and the origin of the switch request. FROM_TASK unwinds the
// caller-saved registers the compiler spilled walking down into delay,
// suspend_task or activate_task; FROM_ISR unwinds the frame the tick
// interrupt's own prologue pushed before the dispatcher ran. Both paths
// are measured against FrameWords rather than hard-coded, so porting to a
// toolchain with different spill conventions only changes this function.
func (s *Sim) SaveCurrentSP(origin SwitchOrigin, framePointer int) int {
	switch origin {
	case FromTask:
		return framePointer - (FrameWords + 1)
	case FromISR:
		return framePointer - (FrameWords - 1) - 2
	default:
		return framePointer
	}
}

// LoadSP records sp as the processor's active stack pointer.
func (s *Sim) LoadSP(sp int) {
	s.pending = false
	s.activeSP = sp
	logger.Logf("ARCH", "loaded sp=%d", sp)
}

// ActiveSP returns the stack pointer most recently installed by LoadSP.
// Not part of the Core hooks the kernel calls through; exposed for tests
// and for cmd/tickosim's diagnostic dump.
func (s *Sim) ActiveSP() int {
	return s.activeSP
}

// PendSwitch marks a tail-chained switch as pending.
func (s *Sim) PendSwitch() {
	s.pending = true
	logger.Log("ARCH", "switch pended")
}

// Pending reports whether PendSwitch has been called without a matching
// LoadSP yet. Used by tests asserting the split-phase protocol.
func (s *Sim) Pending() bool {
	return s.pending
}

// EnableTick records the configured tick period. Sim never fires its own
// timer: the host (cmd/tickosim or a test) drives ticks explicitly by
// calling Kernel.Tick, which is what makes the simulation deterministic
// and single-step-able.
func (s *Sim) EnableTick(period time.Duration) {
	s.tickPeriod = period
	logger.Logf("ARCH", "tick enabled, period=%s", period)
}

// TickPeriod returns the period most recently passed to EnableTick.
func (s *Sim) TickPeriod() time.Duration {
	return s.tickPeriod
}
