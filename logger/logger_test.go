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

package logger_test

import (
	"strings"
	"testing"

	"github.com/arantos/tickos/logger"
)

func TestLogger(t *testing.T) {
	logger.Clear()

	w := &strings.Builder{}

	logger.Write(w)
	if w.String() != "" {
		t.Fatalf("expected empty log, got %q", w.String())
	}

	logger.Log("test", "this is a test")
	w.Reset()
	logger.Write(w)
	if got, want := w.String(), "test: this is a test\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	logger.Log("test2", "this is another test")
	w.Reset()
	logger.Write(w)
	if got, want := w.String(), "test: this is a test\ntest2: this is another test\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	if got, want := w.String(), "test: this is a test\ntest2: this is another test\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(w, 2)
	if got, want := w.String(), "test: this is a test\ntest2: this is another test\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	if got, want := w.String(), "test2: this is another test\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	if w.String() != "" {
		t.Fatalf("expected empty tail, got %q", w.String())
	}
}
