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
	"testing"

	"github.com/arantos/tickos/arch"
	"github.com/arantos/tickos/config"
	"github.com/arantos/tickos/random"
)

type fixedSource struct{}

func (fixedSource) GetTick() random.TickCoords { return random.TickCoords{} }

func newTestKernel(t *testing.T, maxTasks, stackWords int) *Kernel {
	t.Helper()
	cfg := config.NewConfig(fixedSource{})
	cfg.MaxTasks = maxTasks
	cfg.StackWords = stackWords
	cfg.Normalise()
	return New(cfg, arch.NewSim())
}

func noop() {}
