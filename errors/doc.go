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

// Package errors is a helper package for the plain Go language error type. We
// think of these errors as curated errors. External to this package, curated
// errors are referenced as plain errors (ie. they implement the error
// interface).
//
// Curated errors are created with Errorf(). This is similar to fmt.Errorf()
// but the first argument is a fixed message pattern, used later by Is() and
// Has() to identify the error without resorting to string comparison of a
// fully formatted message.
//
//	err := errors.Errorf("capacity exceeded: %d tasks", n)
//	if errors.Is(err, "capacity exceeded: %d tasks") {
//		// handle the specific condition
//	}
//
// The Error() function implementation for curated errors normalises the
// resulting chain: when its first two parts are identical only one is kept,
// which alleviates the problem of when and how to wrap an error as
// it is returned up a call stack.
//
// The kernel package builds a small catalog of these patterns (see
// kernel/errors.go) so callers can compare against a named constant instead
// of a literal string.
package errors
