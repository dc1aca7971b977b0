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
	"testing"

	"github.com/arantos/tickos/arch"
)

// I4 / P6: saved_sp always lies within the task's own stack array, below
// the top by at least one frame.
func TestSavedSPWithinStack(t *testing.T) {
	k := newTestKernel(t, 4, 64)

	handles := make([]Handle, 0, 4)
	for i := 0; i < 4; i++ {
		h, _ := k.CreateTask(noop, i+1, Auto)
		handles = append(handles, h)
	}
	k.StartScheduler()

	for i := 0; i < 30; i++ {
		k.Tick()
	}

	for _, h := range handles {
		tk := k.table.get(h)
		if tk.savedSP < 0 || tk.savedSP > len(tk.stack)-arch.FrameWords {
			t.Fatalf("task %d: saved_sp %d out of bounds for stack of %d words", h, tk.savedSP, len(tk.stack))
		}
	}
}

// the initial frame's PC and xPSR slots carry the task's entry address
// and the Thumb bit; all of this happens before first dispatch, matching
// "a brand-new task indistinguishable from one that was previously
// preempted".
func TestInitStackFrame(t *testing.T) {
	k := newTestKernel(t, 2, 32)
	h, _ := k.CreateTask(noop, 1, Manual)

	tk := k.table.get(h)
	if tk.savedSP != tk.frameBase {
		t.Fatalf("expected savedSP == frameBase before any switch, got %d != %d", tk.savedSP, tk.frameBase)
	}

	frame := tk.stack[tk.frameBase:]
	if len(frame) < 8 {
		t.Fatalf("frame too small: %d words", len(frame))
	}
	if frame[6] != uint32(tk.entryAddr) {
		t.Fatalf("expected entry address %#x in PC slot, got %#x", uint32(tk.entryAddr), frame[6])
	}
	if frame[7]&0x01000000 == 0 {
		t.Fatalf("expected Thumb bit set in xPSR slot, got %#x", frame[7])
	}
}

// StackHighWaterMark reports the frame base when a task has never been
// written to below its initial frame.
func TestStackHighWaterMarkUntouched(t *testing.T) {
	k := newTestKernel(t, 2, 32)
	h, _ := k.CreateTask(noop, 1, Manual)

	hwm, err := k.StackHighWaterMark(h)
	if err != nil {
		t.Fatalf("StackHighWaterMark: %v", err)
	}
	tk := k.table.get(h)
	if hwm != tk.frameBase {
		t.Fatalf("expected untouched high-water mark == frameBase %d, got %d", tk.frameBase, hwm)
	}
}

func TestStackHighWaterMarkInvalidHandle(t *testing.T) {
	k := newTestKernel(t, 2, 32)
	if _, err := k.StackHighWaterMark(Handle(42)); err == nil {
		t.Fatalf("expected error for invalid handle")
	}
}
