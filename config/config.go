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

// Package config bundles the settings a kernel instance is constructed
// with. Unlike a desktop application's user preferences, this
// configuration has no GUI and is not persisted to disk: it is fixed once
// at kernel construction and never mutated afterwards, in keeping with a
// kernel meant to run unattended on a microcontroller.
package config

import (
	"time"

	"github.com/arantos/tickos/clocks"
	"github.com/arantos/tickos/random"
)

// Config carries the compile-time-fixed settings a kernel is built from.
// The zero value is not usable; construct with NewConfig.
type Config struct {
	// MaxTasks bounds the size of the task table. Creating a task beyond
	// this count fails with ErrCapacityExceeded.
	MaxTasks int

	// StackWords sets the size, in 32-bit words, of the stack region the
	// kernel carves out for each task it creates.
	StackWords int

	// TickPeriod is the interval between successive calls to Kernel.Tick.
	// See package clocks for named presets.
	TickPeriod time.Duration

	// Random fills the non-normative register slots of a freshly
	// initialised stack frame with reproducible "undefined" values. Set
	// Random.ZeroSeed for deterministic regression runs.
	Random *random.Random
}

// NewConfig returns a Config with reasonable defaults for an interactive
// simulation: a modest task table, a generous per-task stack, the
// clocks.Default tick period, and a Random seeded from source.
func NewConfig(source random.TickSource) *Config {
	return &Config{
		MaxTasks:   32,
		StackWords: 64,
		TickPeriod: clocks.Default,
		Random:     random.NewRandom(source),
	}
}

// Normalise puts cfg into a known default state, useful for regression
// tests where the initial configuration must be identical on every run.
func (cfg *Config) Normalise() {
	cfg.Random.ZeroSeed = true
}
