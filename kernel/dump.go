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
	"io"

	"github.com/bradleyjkemp/memviz"
)

// DumpTaskTable writes a Graphviz dot representation of the task table
// to w, reachable from the TCB slice down through every task's own
// stack. Useful for an interactive stepper to show what the dispatcher
// is actually choosing between, the same way parser_test.go dumps a
// command tree for visual inspection.
func (k *Kernel) DumpTaskTable(w io.Writer) {
	k.mu.Lock()
	defer k.mu.Unlock()
	memviz.Map(w, &k.table)
}
