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

import (
	"github.com/arantos/tickos/arch"
	"github.com/arantos/tickos/logger"
)

// switchContext is the pending phase of the split context switch. It is
// called with table.next already set to the chosen task.
//
// On a real Cortex-M part the tail phase runs asynchronously once the CPU
// priority drops below the tail exception's: the caller here returns
// immediately after PendSwitch and the stack-pointer swap happens later,
// on its own. Sim has nothing to tail-chain against, so the tail phase is
// invoked synchronously, right here, after PendSwitch — indistinguishable
// from the real protocol on a single core, since nothing of higher
// priority can run between the two calls in either case.
func (k *Kernel) switchContext(origin arch.SwitchOrigin) {
	if k.table.current != InvalidHandle {
		current := k.table.get(k.table.current)
		current.savedSP = k.core.SaveCurrentSP(origin, current.frameBase)
	}

	k.table.current = k.table.next
	next := k.table.get(k.table.current)
	next.state = Running

	logger.Logf("SWITCH", "%s -> task %d (%s)", origin, k.table.current, next.state)

	k.core.PendSwitch()
	k.tailSwitch()
}

// tailSwitch is the tail phase: clear the pending bit and load the new
// task's saved stack pointer, the step that on real hardware causes
// exception return to land at the new task's saved program counter.
func (k *Kernel) tailSwitch() {
	next := k.table.get(k.table.current)
	k.core.LoadSP(next.savedSP)
}
