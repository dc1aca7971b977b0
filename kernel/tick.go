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

// waitQueueTick decrements every Waiting task's local tick counter by one
// and promotes it to Ready the instant the counter reaches zero. It runs
// before the dispatcher within Tick, so a task whose delay expires on
// tick T is eligible to run during T, not T+1.
func (k *Kernel) waitQueueTick() {
	for i := range k.table.tasks {
		t := &k.table.tasks[i]
		if t.state != Waiting {
			continue
		}
		t.localTick--
		if t.localTick <= 0 {
			t.state = Ready
		}
	}
}

// Tick is the periodic timer interrupt. A real port wires this as the
// handler EnableTick arms; the simulation is driven by calling it
// explicitly, which is what makes single-stepping the whole kernel
// possible from cmd/tickosim.
//
// Order matters: global_tick increments first so a task waking on this
// tick observes GetClock() >= its wake tick, then the wait queue runs
// before the dispatcher so newly-ready tasks can preempt on the same
// tick they wake, per spec.
func (k *Kernel) Tick() {
	k.mu.Lock()
	defer k.mu.Unlock()

	k.table.globalTick++
	if k.heartbeat != nil {
		k.heartbeat()
	}
	k.waitQueueTick()
	k.core.EnableTick(k.tickPeriod)
	k.dispatch(arch.FromISR)
}
