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

// Package kernel implements a fixed-priority preemptive scheduler: a
// task table, a dispatcher that picks the highest-priority runnable task,
// a tick-driven wait queue, and the split-phase context-switch protocol
// that makes a brand-new task's first dispatch indistinguishable from a
// resume.
//
// The kernel never executes a task's Body itself; running task code is
// the application's responsibility and happens outside the kernel, the
// same way it would on real hardware once the context switcher has
// loaded a stack pointer and returned from exception. What is exercised
// here, and tested, is the scheduling state machine: which task is
// Running, when a delayed task becomes Ready, and that the saved stack
// pointer protocol never corrupts a task's own stack.
package kernel

import (
	"sync"
	"time"

	"github.com/arantos/tickos/arch"
	"github.com/arantos/tickos/config"
)

// AutoStart selects a newly created task's initial state.
type AutoStart bool

const (
	// Auto starts the task Ready immediately.
	Auto AutoStart = true

	// Manual starts the task Suspended until ActivateTask is called.
	Manual AutoStart = false
)

// Kernel owns the task table and drives it through a Core. The zero
// value is not usable; construct with New.
type Kernel struct {
	mu   sync.Mutex
	core arch.Core

	table      table
	stackWords int
	tickPeriod time.Duration

	// heartbeat is the optional observer hook the tick ISR refreshes
	// before running the wait queue. spec.md explicitly places the
	// heartbeat GPIO blinker out of scope; this is the seam a board
	// support package hangs one from.
	heartbeat func()

	// idleHook is called by the idle task's body, idleBody. Defaults to
	// nil (a tight spin, matching the original source); a real port can
	// install a WFI instruction here without touching scheduling logic.
	// The kernel itself never runs idleBody (see the package doc), so the
	// simulation never calls the hook.
	idleHook func()
}

// New constructs a Kernel from cfg, ready for CreateTask calls. It does
// not create the idle task or start ticking; StartScheduler does both.
func New(cfg *config.Config, core arch.Core) *Kernel {
	return &Kernel{
		core:       core,
		table:      *newTable(cfg.MaxTasks),
		stackWords: cfg.StackWords,
		tickPeriod: cfg.TickPeriod,
	}
}

// SetHeartbeat installs an observer invoked at the start of every Tick,
// before the wait queue runs. Pass nil to remove it.
func (k *Kernel) SetHeartbeat(fn func()) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.heartbeat = fn
}

// SetIdleHook installs the function the idle task's body calls. The
// kernel never executes task bodies, so the hook is not called by Tick
// or by the dispatcher.
func (k *Kernel) SetIdleHook(fn func()) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.idleHook = fn
}

// CreateTask allocates a new TCB for entry at the given priority and
// returns its stable handle. It fails with an error satisfying
// errors.Is(err, kernel.ErrCapacityExceeded) once MAX_TASKS user tasks
// already exist; InvalidHandle is returned alongside that error.
//
// Calling CreateTask after StartScheduler is a programmer error per
// spec.md's non-goals (no dynamic task creation once the scheduler is
// running) and panics rather than returning an error, the same way the
// design treats other precondition violations.
func (k *Kernel) CreateTask(entry Body, priority int, autostart AutoStart) (Handle, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	if k.table.started {
		panic("kernel: CreateTask called after StartScheduler")
	}

	if k.table.capacityExceeded() {
		return InvalidHandle, errCapacityExceeded(k.table.nTasks)
	}

	state := Suspended
	if autostart == Auto {
		state = Ready
	}

	t := tcb{priority: priority, state: state}
	k.initStack(&t, entry, k.stackWords)

	return k.table.addTask(t), nil
}

// StartScheduler creates the idle task, resets the clock, arms the tick
// period, and performs the first dispatch.
//
// On real hardware start_scheduler never returns: the first dispatch's
// exception return lands execution inside the chosen task and the
// function that called start_scheduler is never resumed. The simulation
// has no such handoff to perform — task bodies are not executed by this
// package — so StartScheduler returns once the first dispatch has run,
// leaving the caller free to drive ticks and API calls as the "current"
// task would have.
func (k *Kernel) StartScheduler() {
	k.mu.Lock()
	defer k.mu.Unlock()

	idle := tcb{priority: idlePriority, state: Ready}
	k.initStack(&idle, k.idleBody, k.stackWords)
	k.table.addIdle(idle)

	k.table.globalTick = 0
	k.table.current = InvalidHandle
	k.table.started = true

	k.core.EnableTick(k.tickPeriod)
	k.dispatch(arch.FromTask)
}

// idleBody is the idle task's entry address for InitStack's purposes. It
// is never invoked by the kernel; see the package doc.
func (k *Kernel) idleBody() {
	if k.idleHook != nil {
		k.idleHook()
	}
}

// GetClock returns the number of ticks since StartScheduler.
func (k *Kernel) GetClock() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.table.globalTick
}

// Delay transitions the currently running task to Waiting for ticks
// ticks and reschedules. ticks == 0 is treated as an immediate yield
// (Ready, not Waiting, so local_tick is never armed with a zero count
// that the wait queue would decrement into underflow) rather than the
// undefined behaviour spec.md's open questions warn against inheriting.
func (k *Kernel) Delay(ticks int) {
	k.mu.Lock()
	defer k.mu.Unlock()

	current := k.table.get(k.table.current)

	if ticks == 0 {
		current.state = Ready
		k.dispatch(arch.FromTask)
		return
	}

	current.localTick = ticks
	current.state = Waiting
	k.dispatch(arch.FromTask)
}

// SuspendTask transitions the currently running task to Suspended and
// reschedules. The task remains inert until a later ActivateTask.
func (k *Kernel) SuspendTask() {
	k.mu.Lock()
	defer k.mu.Unlock()

	current := k.table.get(k.table.current)
	current.state = Suspended
	k.dispatch(arch.FromTask)
}

// ActivateTask marks h Ready and reschedules. It operates on h, never on
// the caller's own task — the argument is always the target, resolving
// spec.md's open question about which task's state is manipulated.
//
// An invalid handle is ignored defensively: the call has no effect and
// returns an error the caller may choose to disregard.
//
// Calling ActivateTask on a task that is already Ready is idempotent. A
// Running task is never demoted by ActivateTask; the dispatcher still
// runs and may pick a different task if priorities now warrant it.
func (k *Kernel) ActivateTask(h Handle) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	if !k.table.valid(h) {
		return errInvalidHandle(h)
	}

	t := k.table.get(h)
	if t.state != Running {
		t.state = Ready
	}
	k.dispatch(arch.FromTask)
	return nil
}

// Current returns the handle of the task presently Running.
func (k *Kernel) Current() Handle {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.table.current
}

// State returns the state of the task named by h.
func (k *Kernel) State(h Handle) (State, error) {
	k.mu.Lock()
	defer k.mu.Unlock()
	if !k.table.valid(h) {
		return 0, errTaskLookup("State", h)
	}
	return k.table.get(h).state, nil
}
