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

package kernel

// State is one of the four states a task may occupy. Exactly one TCB has
// state Running at any time once the scheduler has started; before that,
// none does.
type State int

const (
	// Ready marks a task eligible to run.
	Ready State = iota

	// Running marks the task currently executing.
	Running

	// Waiting marks a task sleeping until its local tick counter reaches
	// zero.
	Waiting

	// Suspended marks a task inert until explicitly activated.
	Suspended
)

func (s State) String() string {
	switch s {
	case Ready:
		return "READY"
	case Running:
		return "RUNNING"
	case Waiting:
		return "WAITING"
	case Suspended:
		return "SUSPENDED"
	default:
		return "UNKNOWN"
	}
}

// Handle is the opaque, stable index a task is known by outside the
// kernel. It is returned by CreateTask and is the only way application
// code refers to a task.
type Handle int

// InvalidHandle is returned by CreateTask when the task table is full. It
// is distinct from any handle a successful CreateTask can return.
const InvalidHandle Handle = -1

// Body is a task's entry point: no arguments, and by convention it never
// returns. The kernel never calls it directly — running task code is
// explicitly outside the kernel's responsibility — but it keeps the
// entry address around for diagnostics and for architecture ports where
// InitStack needs a real function pointer rather than an opaque token.
type Body func()

// canary is written to every word of a task's stack below the initial
// frame, so StackHighWaterMark can detect how much of the stack a task
// has actually touched by scanning for the first word that no longer
// matches it.
const canary uint32 = 0xdeadc0de

// tcb is one Task Control Block. It is owned exclusively by the task
// table for the lifetime of the system; nothing outside this package
// holds a reference to one.
type tcb struct {
	priority int
	state    State

	// savedSP is the field named in the data model: valid only while
	// state != Running, it is what LoadSP is handed on dispatch.
	savedSP int

	// frameBase is the canonical resume point InitStack established:
	// the index of the task's synthetic frame. SaveCurrentSP computes
	// each new savedSP as an offset from this fixed point rather than
	// from the previous savedSP, because the real protocol's offsets
	// are measured against where execution resumes, which returning
	// through the exception-return path restores symmetrically — it is
	// not a cumulative drift across repeated switches.
	frameBase int

	entry     Body
	entryAddr uintptr
	localTick int
	stack     []uint32
}
