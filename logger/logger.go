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

// Package logger implements a small ring-buffered log used throughout the
// kernel and simulator for diagnostic output. Entries are never lost to a
// blocking writer and never grow without bound: once the buffer is full, the
// oldest entry is dropped to make room for the newest.
//
// Logging is gated by a Permission so that hot paths (every dispatch
// decision, every tick) can be logged only when a caller has opted in,
// without littering the call site with an if statement.
package logger

import (
	"fmt"
	"io"
	"strings"
	"sync"
)

// Permission decides whether a call to Log or Logf actually records an
// entry. Allow always permits logging; callers that want conditional
// verbosity (e.g. only while a particular task is being traced) implement
// their own Permission.
type Permission interface {
	AllowLogging() bool
}

type allowPermission struct{}

func (allowPermission) AllowLogging() bool { return true }

// Allow is the Permission that always allows logging.
var Allow Permission = allowPermission{}

// Logger is a bounded ring buffer of log entries. The zero value is not
// usable; construct with NewLogger.
type Logger struct {
	mu      sync.Mutex
	entries []string
	cap     int
}

// NewLogger creates a Logger that retains at most capacity entries.
func NewLogger(capacity int) *Logger {
	return &Logger{
		entries: make([]string, 0, capacity),
		cap:     capacity,
	}
}

// format turns detail into a string the way Log/Logf present it: errors use
// Error(), fmt.Stringer implementations use String(), everything else is
// formatted with %v.
func format(detail interface{}) string {
	switch v := detail.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func (l *Logger) append(tag, message string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.entries) == l.cap {
		if l.cap == 0 {
			return
		}
		copy(l.entries, l.entries[1:])
		l.entries = l.entries[:len(l.entries)-1]
	}
	l.entries = append(l.entries, fmt.Sprintf("%s: %s", tag, message))
}

// Log records detail under tag, provided permission allows it.
func (l *Logger) Log(permission Permission, tag string, detail interface{}) {
	if permission == nil || !permission.AllowLogging() {
		return
	}
	l.append(tag, format(detail))
}

// Logf records a formatted message under tag, provided permission allows it.
func (l *Logger) Logf(permission Permission, tag string, pattern string, args ...interface{}) {
	if permission == nil || !permission.AllowLogging() {
		return
	}
	l.append(tag, fmt.Sprintf(pattern, args...))
}

// Clear empties the log.
func (l *Logger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = l.entries[:0]
}

// Write dumps every retained entry to w, one per line.
func (l *Logger) Write(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, e := range l.entries {
		io.WriteString(w, e)
		io.WriteString(w, "\n")
	}
}

// Tail dumps at most the last n entries to w, one per line. Asking for more
// entries than are retained is not an error; it simply dumps everything.
func (l *Logger) Tail(w io.Writer, n int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n > len(l.entries) {
		n = len(l.entries)
	}
	start := len(l.entries) - n

	var b strings.Builder
	for _, e := range l.entries[start:] {
		b.WriteString(e)
		b.WriteString("\n")
	}
	io.WriteString(w, b.String())
}

// central is the default logger used by the package-level convenience
// functions below.
var central = NewLogger(1000)

// Log records detail under tag in the central logger. Equivalent to
// central.Log(Allow, tag, detail).
func Log(tag string, detail interface{}) {
	central.Log(Allow, tag, detail)
}

// Logf records a formatted message under tag in the central logger.
// Equivalent to central.Logf(Allow, tag, pattern, args...).
func Logf(tag string, pattern string, args ...interface{}) {
	central.Logf(Allow, tag, pattern, args...)
}

// Write dumps the central logger's entries to w.
func Write(w io.Writer) {
	central.Write(w)
}

// Tail dumps at most the last n entries of the central logger to w.
func Tail(w io.Writer, n int) {
	central.Tail(w, n)
}

// Clear empties the central logger.
func Clear() {
	central.Clear()
}
