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

// Command tickosim is a host-side harness for the tickos kernel: it
// builds a small demo task table and drives it through ticks either a
// fixed number of times (RUN) or one keystroke at a time (STEP), the
// same split a hardware port gets between a free-running build and one
// halted at a breakpoint.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/arantos/tickos/arch"
	"github.com/arantos/tickos/clocks"
	"github.com/arantos/tickos/config"
	"github.com/arantos/tickos/internal/rawterm"
	"github.com/arantos/tickos/kernel"
	"github.com/arantos/tickos/logger"
	"github.com/arantos/tickos/random"
)

// clockSource feeds the kernel's own clock and current task back into
// the Random instance it was built with, so register filler values
// recorded by a RUN can be reproduced by re-running STEP to the same
// tick with -seed.
type clockSource struct {
	k *kernel.Kernel
}

func (c *clockSource) GetTick() random.TickCoords {
	if c.k == nil {
		return random.TickCoords{}
	}
	return random.TickCoords{Ticks: c.k.GetClock(), Task: int(c.k.Current())}
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "* error: %s\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var mode string
	if len(args) > 0 {
		mode = strings.ToUpper(args[0])
		args = args[1:]
	}

	switch mode {
	case "STEP":
		return step(args)
	case "RUN":
		fallthrough
	default:
		mode = "RUN"
		return runFixed(args)
	}
}

// buildDemoKernel wires a config, a Sim core and a handful of demo tasks
// at descending priorities, the minimum needed to see the dispatcher make
// an interesting choice.
func buildDemoKernel(tasks int, period time.Duration, zeroSeed bool) (*kernel.Kernel, *arch.Sim) {
	src := &clockSource{}
	cfg := config.NewConfig(src)
	cfg.TickPeriod = period
	if zeroSeed {
		cfg.Normalise()
	}

	sim := arch.NewSim()
	sim.Filler = cfg.Random
	k := kernel.New(cfg, sim)
	src.k = k

	// the heartbeat runs inside Tick with the kernel's lock held, so it
	// counts ticks itself rather than calling back into k.GetClock.
	var beats uint64
	k.SetHeartbeat(func() {
		beats++
		logger.Log("HEARTBEAT", fmt.Sprintf("tick %d", beats))
	})

	for i := 0; i < tasks; i++ {
		priority := tasks - i
		if _, err := k.CreateTask(func() {}, priority, kernel.Auto); err != nil {
			break
		}
	}

	k.StartScheduler()
	return k, sim
}

func runFixed(args []string) error {
	flgs := flag.NewFlagSet("RUN", flag.ExitOnError)
	tasks := flgs.Int("tasks", 3, "number of demo tasks to create")
	ticks := flgs.Int("ticks", 100, "number of ticks to run")
	period := flgs.String("period", "default", "tick period: default, fast, slow")
	seed := flgs.Bool("seed", true, "use a deterministic zero seed for undefined register values")
	dot := flgs.String("dot", "", "write a Graphviz dot dump of the final task table to this path")
	if err := flgs.Parse(args); err != nil {
		return err
	}

	k, _ := buildDemoKernel(*tasks, periodFromName(*period), *seed)
	for i := 0; i < *ticks; i++ {
		k.Tick()
	}

	fmt.Printf("ran %d ticks, clock now %d, current task %d\n", *ticks, k.GetClock(), k.Current())
	return dumpIfRequested(k, *dot)
}

// step runs an interactive single-step session: space advances one tick,
// d dumps the task table, q quits.
func step(args []string) error {
	flgs := flag.NewFlagSet("STEP", flag.ExitOnError)
	tasks := flgs.Int("tasks", 3, "number of demo tasks to create")
	period := flgs.String("period", "slow", "tick period: default, fast, slow")
	seed := flgs.Bool("seed", true, "use a deterministic zero seed for undefined register values")
	dot := flgs.String("dot", "", "path the d key writes a Graphviz dot dump of the task table to (default tickosim.dot)")
	if err := flgs.Parse(args); err != nil {
		return err
	}

	k, _ := buildDemoKernel(*tasks, periodFromName(*period), *seed)

	var term rawterm.Term
	if err := term.Initialise(os.Stdin, os.Stdout); err != nil {
		return err
	}
	defer term.CleanUp()
	term.CBreakMode()

	fmt.Println("tickosim: space=tick, d=dump, q=quit")
	for {
		b, err := term.ReadByte()
		if err != nil {
			return err
		}

		switch b {
		case ' ':
			k.Tick()
			fmt.Printf("\rtick %d, current task %d   ", k.GetClock(), k.Current())
		case 'd':
			term.CanonicalMode()
			if err := dumpIfRequested(k, orDefault(*dot, "tickosim.dot")); err != nil {
				fmt.Fprintf(os.Stderr, "* dump failed: %s\n", err)
			}
			term.CBreakMode()
		case 'q':
			fmt.Println()
			return nil
		}
	}
}

func periodFromName(name string) time.Duration {
	switch strings.ToLower(name) {
	case "fast":
		return clocks.Fast
	case "slow":
		return clocks.Slow
	default:
		return clocks.Default
	}
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func dumpIfRequested(k *kernel.Kernel, path string) error {
	if path == "" {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	k.DumpTaskTable(f)
	fmt.Printf("wrote task table to %s\n", path)
	return nil
}
