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

// Package rawterm is a small wrapper for "github.com/pkg/term/termios",
// giving cmd/tickosim's interactive stepper single-keystroke input
// without waiting for Enter.
package rawterm

import (
	"fmt"
	"os"
	"sync"
	"syscall"

	"github.com/pkg/term/termios"
)

// Term is the main container for posix terminal mode switching, usually
// held for the lifetime of an interactive session.
type Term struct {
	input  *os.File
	output *os.File

	canAttr    syscall.Termios
	cbreakAttr syscall.Termios

	mu sync.Mutex
}

// Initialise records input and output and captures the terminal's
// current (canonical) attributes so CleanUp can restore them.
func (rt *Term) Initialise(input, output *os.File) error {
	if input == nil {
		return fmt.Errorf("rawterm: requires an input file")
	}
	if output == nil {
		return fmt.Errorf("rawterm: requires an output file")
	}

	rt.input = input
	rt.output = output

	termios.Tcgetattr(rt.input.Fd(), &rt.canAttr)
	rt.cbreakAttr = rt.canAttr
	termios.Cfmakecbreak(&rt.cbreakAttr)

	return nil
}

// CBreakMode puts the terminal into cbreak mode: input is available
// character-by-character, without waiting for a newline.
func (rt *Term) CBreakMode() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	termios.Tcsetattr(rt.input.Fd(), termios.TCIFLUSH, &rt.cbreakAttr)
}

// CanonicalMode restores the terminal's normal line-buffered mode.
func (rt *Term) CanonicalMode() {
	rt.mu.Lock()
	defer rt.mu.Unlock()
	termios.Tcsetattr(rt.input.Fd(), termios.TCIFLUSH, &rt.canAttr)
}

// ReadByte blocks for a single byte of input.
func (rt *Term) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := rt.input.Read(buf)
	return buf[0], err
}

// CleanUp restores canonical mode. Safe to call even if Initialise never
// succeeded.
func (rt *Term) CleanUp() {
	if rt.input == nil {
		return
	}
	rt.CanonicalMode()
}
