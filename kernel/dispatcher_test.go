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

import "testing"

// scenario 6: first-switch safety. The first RUNNING task is the
// highest-priority READY user task, never idle, and nothing attempts to
// save a non-existent previous task.
func TestFirstSwitchSafety(t *testing.T) {
	k := newTestKernel(t, 4, 64)

	low, _ := k.CreateTask(noop, 1, Auto)
	high, _ := k.CreateTask(noop, 5, Auto)
	_, _ = k.CreateTask(noop, 3, Auto)

	k.StartScheduler()

	if got := k.Current(); got != high {
		t.Fatalf("expected highest-priority task %d running, got %d", high, got)
	}

	st, err := k.State(low)
	if err != nil || st != Ready {
		t.Fatalf("expected task %d still Ready, got %v err=%v", low, st, err)
	}
}

// scenario 5 / R2-adjacent: equal priority ties are broken by lowest
// index; the higher-indexed task only runs once the lower one leaves the
// runnable set.
func TestTieBreakingByIndex(t *testing.T) {
	k := newTestKernel(t, 4, 64)

	first, _ := k.CreateTask(noop, 2, Auto)
	second, _ := k.CreateTask(noop, 2, Auto)

	k.StartScheduler()

	if got := k.Current(); got != first {
		t.Fatalf("expected lower-indexed task %d to run first, got %d", first, got)
	}

	k.SuspendTask()

	if got := k.Current(); got != second {
		t.Fatalf("expected %d to run once %d left the runnable set, got %d", second, first, got)
	}
}

// I1 / P1: an involuntary preemption (here, ActivateTask of a
// higher-priority handle while the current task has done nothing to give
// up Running on its own behalf) must demote the outgoing task back to
// Ready. Without this, both tasks would report Running simultaneously.
func TestPreemptionDemotesOutgoingToReady(t *testing.T) {
	k := newTestKernel(t, 2, 64)
	a, _ := k.CreateTask(noop, 1, Auto)
	b, _ := k.CreateTask(noop, 2, Manual)

	k.StartScheduler()
	if got := k.Current(); got != a {
		t.Fatalf("expected %d running before b is activated, got %d", a, got)
	}

	if err := k.ActivateTask(b); err != nil {
		t.Fatalf("ActivateTask: %v", err)
	}

	if got := k.Current(); got != b {
		t.Fatalf("expected higher-priority %d to preempt %d, got %d", b, a, got)
	}
	if st, _ := k.State(b); st != Running {
		t.Fatalf("expected %d Running after preempting, got %v", b, st)
	}
	if st, _ := k.State(a); st != Ready {
		t.Fatalf("expected preempted %d demoted to Ready, got %v", a, st)
	}

	running := 0
	for h := 0; h < len(k.table.tasks); h++ {
		if st, _ := k.State(Handle(h)); st == Running {
			running++
		}
	}
	if running != 1 {
		t.Fatalf("expected exactly one Running task after preemption, got %d", running)
	}
}

// scenario 4 / P2: idle runs when nothing else is runnable, and is never
// chosen while a user task is Ready.
func TestIdleFallback(t *testing.T) {
	k := newTestKernel(t, 4, 64)

	solo, _ := k.CreateTask(noop, 1, Auto)

	k.StartScheduler()
	if got := k.Current(); got != solo {
		t.Fatalf("expected %d running, got %d", solo, got)
	}

	k.SuspendTask()
	if got := k.Current(); got != k.table.idle {
		t.Fatalf("expected idle task running with nothing else Ready, got %d", got)
	}

	// global_tick keeps advancing with idle running.
	before := k.GetClock()
	k.Tick()
	if k.GetClock() != before+1 {
		t.Fatalf("global_tick did not advance while idle")
	}

	if err := k.ActivateTask(solo); err != nil {
		t.Fatalf("ActivateTask: %v", err)
	}
	if got := k.Current(); got != solo {
		t.Fatalf("expected %d resumed within one tick, got %d", solo, got)
	}
}

// P1: at most one task has state Running after any sequence of calls.
func TestAtMostOneRunning(t *testing.T) {
	k := newTestKernel(t, 4, 64)

	k.CreateTask(noop, 1, Auto)
	k.CreateTask(noop, 2, Auto)
	k.CreateTask(noop, 3, Auto)
	k.StartScheduler()

	for i := 0; i < 10; i++ {
		k.Tick()
		running := 0
		for h := 0; h < len(k.table.tasks); h++ {
			st, _ := k.State(Handle(h))
			if st == Running {
				running++
			}
		}
		if running != 1 {
			t.Fatalf("expected exactly one Running task, got %d on iteration %d", running, i)
		}
	}
}
