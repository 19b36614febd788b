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

package cpu

import (
	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/memory/cpubus"
	"github.com/famiemu/famiemu/logger"
)

// Interrupt identifies a hardware interrupt line.
type Interrupt int

// List of valid Interrupt values.
const (
	NMI Interrupt = iota
	IRQ
)

func (i Interrupt) String() string {
	switch i {
	case NMI:
		return "NMI"
	case IRQ:
		return "IRQ"
	}
	return "unknown interrupt"
}

// Vector returns the address of the interrupt vector for the interrupt.
func (i Interrupt) Vector() uint16 {
	switch i {
	case NMI:
		return cpubus.NMI
	case IRQ:
		return cpubus.IRQ
	}
	return cpubus.IRQ
}

// the number of cycles taken to service an interrupt.
const interruptCycles = 7

// ServiceInterrupt pushes the PC and status register to the stack and loads
// the PC from the vector for the interrupt. It should only be called between
// instructions, ie. between calls to Step().
//
// An IRQ is ignored if the interrupt disable flag is set. In that case the
// number of cycles returned is zero.
func (mc *CPU) ServiceInterrupt(kind Interrupt) (int, error) {
	if mc.Killed {
		return 0, curated.Errorf(KilledCPU, mc.LastResult.Address)
	}

	switch kind {
	case NMI:
	case IRQ:
		if mc.Status.InterruptDisable {
			return 0, nil
		}
	default:
		return 0, curated.Errorf(UnknownInterrupt, int(kind))
	}

	err := mc.push16(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	// the break flag is not set for hardware interrupts
	sr := mc.Status
	sr.Break = false
	err = mc.push8(sr.Value())
	if err != nil {
		return 0, err
	}

	mc.Status.InterruptDisable = true

	pc, err := cpubus.Read16(mc.mem, kind.Vector())
	if err != nil {
		return 0, err
	}
	mc.PC.Load(pc)

	mc.cycles += interruptCycles

	logger.Logf(logger.Allow, "cpu", "%s serviced. jumping to %#04x", kind, pc)

	return interruptCycles, nil
}
