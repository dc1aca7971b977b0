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

// idlePriority is strictly lower than any non-negative user priority so
// the dispatcher never prefers idle while such a user task is Ready.
// CreateTask does not reject negative priorities; a task created with one
// below idlePriority is never chosen over idle.
const idlePriority = -1

// table is a kernel's task table; each Kernel owns one. CreateTask is the only
// mutator before the scheduler starts; the tick ISR and the state-change
// API methods are the only mutators afterward, and only one task runs at
// a time, so the table needs no external synchronization beyond what
// Kernel.mu already provides against concurrent API misuse.
//
// The idle task is appended last, by StartScheduler, after every user
// task CreateTask has already placed — spec.md's component table allows
// either "index 0 or last" for the reserved idle slot; tickos uses last,
// since user handles must already be stable by the time StartScheduler
// runs.
type table struct {
	tasks      []tcb
	maxTasks   int
	nTasks     int
	current    Handle
	next       Handle
	idle       Handle
	globalTick uint64
	started    bool
}

func newTable(maxTasks int) *table {
	return &table{
		tasks:    make([]tcb, 0, maxTasks+1),
		maxTasks: maxTasks,
		current:  InvalidHandle,
		next:     InvalidHandle,
		idle:     InvalidHandle,
	}
}

// capacityExceeded reports whether the user-task capacity is used up, so
// that no further user task can be created. n_tasks counts user tasks only; the idle task occupies the
// reserved extra slot and never counts against it.
func (t *table) capacityExceeded() bool {
	return t.nTasks >= t.maxTasks
}

// addTask appends a user task's tcb and returns its handle, counting it
// against capacity.
func (t *table) addTask(task tcb) Handle {
	h := Handle(len(t.tasks))
	t.tasks = append(t.tasks, task)
	t.nTasks++
	return h
}

// addIdle appends the idle task's tcb, which never counts against
// capacity, and records its handle.
func (t *table) addIdle(task tcb) Handle {
	h := Handle(len(t.tasks))
	t.tasks = append(t.tasks, task)
	t.idle = h
	return h
}

func (t *table) valid(h Handle) bool {
	return h >= 0 && int(h) < len(t.tasks)
}

func (t *table) get(h Handle) *tcb {
	return &t.tasks[h]
}
