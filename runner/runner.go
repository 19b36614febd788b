// This file is part of Famiemu.
//
// Famiemu is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Famiemu is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Famiemu.  If not, see <https://www.gnu.org/licenses/>.

package runner

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/famiemu/famiemu/config"
	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/cpu"
	"github.com/famiemu/famiemu/hardware/cpu/instructions"
	"github.com/famiemu/famiemu/hardware/cpu/registers"
	"github.com/famiemu/famiemu/hardware/memory/cpubus"
	"github.com/famiemu/famiemu/hardware/memory/ram"
	"github.com/famiemu/famiemu/logger"
	"github.com/famiemu/famiemu/scripting"
)

// Error patterns returned by the runner.
const (
	LoadError = "runner: %v"
	StepError = "runner: step %d: %v"
)

// Stop is the reason Run() returned.
type Stop int

// List of valid Stop values.
const (
	StopMaxSteps Stop = iota
	StopTrap
	StopFault
)

func (s Stop) String() string {
	switch s {
	case StopMaxSteps:
		return "maximum steps reached"
	case StopTrap:
		return "trapped"
	case StopFault:
		return "fault"
	}
	return "unknown"
}

// Runner owns the RAM and the CPU that executes the program loaded into it.
type Runner struct {
	cfg *config.Config

	mem *ram.RAM
	mc  *cpu.CPU

	// optional script. can be nil
	script *scripting.Script

	// trace output is written before every step. can be nil
	trace io.Writer

	// cycle count at which the next NMI will be requested
	nextNMI int

	// number of instructions executed since the program was loaded
	steps int
}

// NewRunner is the preferred method of initialisation for the Runner type.
func NewRunner(cfg *config.Config) *Runner {
	r := &Runner{
		cfg: cfg,
		mem: ram.NewRAM(),
	}
	r.mc = cpu.NewCPU(r.mem)
	r.mc.DecimalArithmetic = cfg.CPU.DecimalArithmetic()
	return r
}

// CPU returns the CPU instance.
func (r *Runner) CPU() *cpu.CPU {
	return r.mc
}

// RAM returns the RAM instance.
func (r *Runner) RAM() *ram.RAM {
	return r.mem
}

// Steps returns the number of instructions executed since the program was
// loaded.
func (r *Runner) Steps() int {
	return r.steps
}

// SetTrace sets the destination for trace output. A nil writer turns off
// tracing.
func (r *Runner) SetTrace(w io.Writer) {
	r.trace = w
}

// LoadFile reads the program image in filename and loads it.
func (r *Runner) LoadFile(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	return r.Load(data)
}

// Load the program image into RAM, point the vectors at the entry address if
// required and reset the CPU. The script named in the configuration is loaded
// after the CPU has been reset.
func (r *Runner) Load(data []uint8) error {
	r.mem.Clear()

	origin := r.cfg.Program.LoadAddress
	if err := r.mem.Load(origin, data); err != nil {
		return curated.Errorf(LoadError, err)
	}
	logger.Logf(logger.Allow, "runner", "loaded %d bytes at %#04x", len(data), origin)

	if r.cfg.Program.Vectors {
		entry := r.cfg.Program.EntryAddress()
		r.mem.Write16(cpubus.Reset, entry)
		r.mem.Write16(cpubus.NMI, entry)
		r.mem.Write16(cpubus.IRQ, entry)
	}

	if err := r.mc.Reset(); err != nil {
		return curated.Errorf(LoadError, err)
	}
	r.steps = 0
	r.nextNMI = r.cfg.Run.NMIInterval

	if r.cfg.Run.Script != "" {
		scr, err := scripting.Load(r, r.cfg.Run.Script)
		if err != nil {
			return curated.Errorf(LoadError, err)
		}
		r.setScript(scr)
	}

	return nil
}

// LoadScript runs the Lua source and uses it to drive interrupts, replacing
// any script loaded previously. The name is used for logging only.
func (r *Runner) LoadScript(name string, source string) error {
	scr, err := scripting.LoadString(r, name, source)
	if err != nil {
		return curated.Errorf(LoadError, err)
	}
	r.setScript(scr)
	return nil
}

func (r *Runner) setScript(scr *scripting.Script) {
	if r.script != nil {
		r.script.Close()
	}
	r.script = scr
}

// Close releases any resources held by the runner.
func (r *Runner) Close() {
	if r.script != nil {
		r.script.Close()
		r.script = nil
	}
}

// interruptible returns true if something other than the program can change
// the flow of execution.
func (r *Runner) interruptible() bool {
	return r.cfg.Run.NMIInterval > 0 || (r.script != nil && r.script.HasOnStep())
}

// writeTrace writes the instruction about to be executed and the current
// state of the CPU.
func (r *Runner) writeTrace() {
	pc := r.mc.PC.Address()
	d, err := instructions.Decode(r.mem, pc)
	if err != nil {
		fmt.Fprintf(r.trace, "%04X  %-14s %s\n", pc, "???", r.mc.FormatState())
		return
	}
	fmt.Fprintf(r.trace, "%04X  %-14s %s\n", pc, d, r.mc.FormatState())
}

// Step executes a single instruction and then services any requested
// interrupts. Returns true if the program has trapped itself.
func (r *Runner) Step() (bool, error) {
	if r.trace != nil {
		r.writeTrace()
	}

	pc := r.mc.PC.Address()

	_, err := r.mc.Step()
	if err != nil {
		return false, curated.Errorf(StepError, r.steps, err)
	}
	r.steps++

	trapped := r.mc.PC.Address() == pc

	if r.cfg.Run.NMIInterval > 0 && r.mc.Cycles() >= r.nextNMI {
		for r.nextNMI <= r.mc.Cycles() {
			r.nextNMI += r.cfg.Run.NMIInterval
		}
		if _, err := r.mc.ServiceInterrupt(cpu.NMI); err != nil {
			return false, curated.Errorf(StepError, r.steps, err)
		}
	}

	if r.script != nil {
		req, err := r.script.OnStep()
		if err != nil {
			return false, curated.Errorf(StepError, r.steps, err)
		}

		switch req {
		case scripting.RequestNMI:
			_, err = r.mc.ServiceInterrupt(cpu.NMI)
		case scripting.RequestIRQ:
			_, err = r.mc.ServiceInterrupt(cpu.IRQ)
		}
		if err != nil {
			return false, curated.Errorf(StepError, r.steps, err)
		}
	}

	return trapped && !r.interruptible(), nil
}

// Run the program until it traps, faults or the maximum number of steps
// have been executed.
func (r *Runner) Run() (Stop, error) {
	for r.steps < r.cfg.Run.MaxSteps {
		trapped, err := r.Step()
		if err != nil {
			logger.Log(logger.Allow, "runner", err)
			return StopFault, err
		}
		if trapped {
			logger.Logf(logger.Allow, "runner", "trapped at %#04x after %d steps", r.mc.PC.Address(), r.steps)
			return StopTrap, nil
		}
	}
	logger.Logf(logger.Allow, "runner", "stopped after %d steps", r.steps)
	return StopMaxSteps, nil
}

// Peek implements the scripting.Machine interface.
func (r *Runner) Peek(address uint16) uint8 {
	return r.mem.Peek(address)
}

// Poke implements the scripting.Machine interface.
func (r *Runner) Poke(address uint16, value uint8) {
	r.mem.Poke(address, value)
}

// Register implements the scripting.Machine interface.
func (r *Runner) Register(name string) (int, bool) {
	switch strings.ToLower(name) {
	case "a":
		return int(r.mc.A.Value()), true
	case "x":
		return int(r.mc.X.Value()), true
	case "y":
		return int(r.mc.Y.Value()), true
	case "sp":
		return int(r.mc.SP.Value()), true
	case "pc":
		return int(r.mc.PC.Address()), true
	case "p":
		return int(r.mc.Status.Value()), true
	}
	return 0, false
}

// Flag implements the scripting.Machine interface.
func (r *Runner) Flag(name string) (bool, bool) {
	f, ok := registers.ParseFlag(name)
	if !ok {
		return false, false
	}
	return r.mc.Flag(f), true
}

// Cycles implements the scripting.Machine interface.
func (r *Runner) Cycles() int {
	return r.mc.Cycles()
}
