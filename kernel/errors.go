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

import "github.com/arantos/tickos/errors"

// Curated error patterns. Compare against these with errors.Is rather
// than matching a formatted string. A wrapped error (see errTaskLookup)
// needs errors.Has instead, since Is only matches the outermost pattern.
const (
	ErrCapacityExceeded = "capacity exceeded: %d tasks"
	ErrInvalidHandle    = "invalid task handle: %d"
)

func errCapacityExceeded(n int) error {
	return errors.Errorf(ErrCapacityExceeded, n)
}

func errInvalidHandle(h Handle) error {
	return errors.Errorf(ErrInvalidHandle, int(h))
}

const errTaskLookupPattern = "%s failed: %s"

// errTaskLookup wraps errInvalidHandle with the name of the failing
// accessor, a curated error nested as a value of another curated error.
// errors.Has(err, ErrInvalidHandle) still finds the
// wrapped pattern; errors.Is(err, ErrInvalidHandle) does not, since it
// only ever matches the outermost pattern.
func errTaskLookup(op string, h Handle) error {
	return errors.Errorf(errTaskLookupPattern, op, errInvalidHandle(h))
}
