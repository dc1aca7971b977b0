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

import "reflect"

// entryAddress recovers the code address of a task body, the same way a
// linker would resolve the symbol for a plain C function pointer. Go
// gives no other portable way to ask a func value for its entry point.
func entryAddress(entry Body) uintptr {
	if entry == nil {
		return 0
	}
	return reflect.ValueOf(entry).Pointer()
}

// initStack prepares a freshly allocated stack for first dispatch. Below
// the synthetic frame every word is pre-filled with canary so
// StackHighWaterMark can later find the lowest word a task has ever
// written to.
func (k *Kernel) initStack(t *tcb, entry Body, stackWords int) {
	t.stack = make([]uint32, stackWords)
	for i := range t.stack {
		t.stack[i] = canary
	}

	t.entry = entry
	t.entryAddr = entryAddress(entry)
	t.savedSP = k.core.InitStack(t.stack, t.entryAddr)
	t.frameBase = t.savedSP
}

// StackHighWaterMark returns the fewest free words ever observed below
// the synthetic frame for the task named by h: the lowest index, scanning
// up from the base of the stack, whose canary has been overwritten. A
// task that never touched its stack below the initial frame reports a
// high-water mark equal to the frame's own base.
//
// This is a diagnostic, not part of the scheduling state machine; it
// exists because every real deployment of a kernel like this one needs a
// way to size STACK_WORDS down from comfortable to tight.
func (k *Kernel) StackHighWaterMark(h Handle) (int, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.table.valid(h) {
		return 0, errTaskLookup("StackHighWaterMark", h)
	}

	t := k.table.get(h)
	for i, w := range t.stack {
		if w != canary {
			return i, nil
		}
	}
	return len(t.stack), nil
}
