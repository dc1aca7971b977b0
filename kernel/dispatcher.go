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

import "github.com/arantos/tickos/arch"

// dispatch scans the task table for the highest-priority task in Ready or
// Running state and, if it differs from current, hands off to the
// context switcher with origin recorded for the save-offset math.
//
// The idle task's priority is strictly below any non-negative user
// priority, so it is only ever selected when no such user task is Ready
// or Running: the scan is total and never fails to choose something.
func (k *Kernel) dispatch(origin arch.SwitchOrigin) {
	chosen := k.table.idle
	best := idlePriority - 1

	for i := range k.table.tasks {
		t := &k.table.tasks[i]
		if t.state != Ready && t.state != Running {
			continue
		}
		if t.priority > best {
			best = t.priority
			chosen = Handle(i)
		}
	}

	if chosen == k.table.current {
		// No switch needed: the chosen task is already executing. It
		// may have been marked Ready by the caller as part of a
		// same-task transition (e.g. a zero-length delay yielding);
		// since no context switch will restore it, that bookkeeping
		// is corrected here instead.
		if k.table.current != InvalidHandle {
			k.table.get(k.table.current).state = Running
		}
		return
	}

	// A still-Running current task is being involuntarily preempted (an
	// ISR wake of a higher-priority waiter, or ActivateTask of a
	// different, higher-priority handle): it is still eligible (Ready)
	// but no longer executing, and nothing else demotes it. A caller
	// that already transitioned current away from Running (Waiting,
	// Suspended) on its own behalf is left alone.
	if k.table.current != InvalidHandle {
		outgoing := k.table.get(k.table.current)
		if outgoing.state == Running {
			outgoing.state = Ready
		}
	}

	k.table.next = chosen
	k.switchContext(origin)
}
