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

package disassembly

import (
	"sort"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/cpu/instructions"
	"github.com/famiemu/famiemu/hardware/memory/cpubus"
	"github.com/famiemu/famiemu/logger"
)

// Error patterns.
const (
	InvalidRegion = "disassembly: invalid region (%#04x, %d bytes)"
	MemoryError   = "disassembly: %v"
)

// Entry is a single disassembled instruction.
type Entry struct {
	instructions.Decoded

	// the bytes of the instruction, including the opcode
	Bytes []uint8
}

// Disassembly of a region of memory.
type Disassembly struct {
	mem    cpubus.Memory
	origin uint16
	memtop uint16

	// instructions reached by following the flow of the program. indexed by
	// address
	flow map[uint16]Entry

	// entry points that were inside the region
	entryPoints []uint16
}

// FromMemory disassembles size bytes of memory starting at origin. Flow is
// followed from each entry point. Entry points outside the region are
// ignored.
func FromMemory(mem cpubus.Memory, origin uint16, size int, entryPoints ...uint16) (*Disassembly, error) {
	if size <= 0 || int(origin)+size > 0x10000 {
		return nil, curated.Errorf(InvalidRegion, origin, size)
	}

	dsm := &Disassembly{
		mem:    mem,
		origin: origin,
		memtop: uint16(int(origin) + size - 1),
		flow:   make(map[uint16]Entry),
	}

	for _, e := range entryPoints {
		if dsm.inRegion(e) {
			dsm.entryPoints = append(dsm.entryPoints, e)
		}
	}

	if err := dsm.flowDisassembly(); err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, "disassembly", "%d instructions reached from %d entry points", len(dsm.flow), len(dsm.entryPoints))

	return dsm, nil
}

func (dsm *Disassembly) inRegion(address uint16) bool {
	return address >= dsm.origin && address <= dsm.memtop
}

// decode the instruction at address. the instruction must lie entirely within
// the region.
func (dsm *Disassembly) decode(address uint16) (Entry, bool, error) {
	d, err := instructions.Decode(dsm.mem, address)
	if err != nil {
		if curated.Is(err, instructions.UndecodableOpcode) {
			return Entry{}, false, nil
		}
		return Entry{}, false, curated.Errorf(MemoryError, err)
	}

	if int(address)+d.Defn.Bytes()-1 > int(dsm.memtop) {
		return Entry{}, false, nil
	}

	e := Entry{Decoded: d, Bytes: make([]uint8, d.Defn.Bytes())}
	for i := range e.Bytes {
		v, err := dsm.mem.Read(address + uint16(i))
		if err != nil {
			return Entry{}, false, curated.Errorf(MemoryError, err)
		}
		e.Bytes[i] = v
	}

	return e, true, nil
}

func (dsm *Disassembly) flowDisassembly() error {
	pending := append([]uint16{}, dsm.entryPoints...)

	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		if !dsm.inRegion(address) {
			continue
		}
		if _, ok := dsm.flow[address]; ok {
			continue
		}

		e, ok, err := dsm.decode(address)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		dsm.flow[address] = e

		defn := e.Defn
		switch {
		case defn.IsBranch():
			pending = append(pending, e.Next(), e.Target())

		case defn.Operator == instructions.Jsr:
			pending = append(pending, e.Next(), e.Operand)

		case defn.Operator == instructions.Jmp:
			// the target of an indirect jump can change as the program
			// runs. flow ends here
			if defn.AddressingMode == instructions.Absolute {
				pending = append(pending, e.Operand)
			}

		case defn.Operator == instructions.Rts, defn.Operator == instructions.Rti:
			// flow ends

		case defn.Effect == instructions.Interrupt:
			// flow ends. the vector is an entry point in its own right

		default:
			pending = append(pending, e.Next())
		}
	}

	return nil
}

// EntryPoints returns the entry points used for the flow disassembly.
func (dsm *Disassembly) EntryPoints() []uint16 {
	return dsm.entryPoints
}

// Linear returns true if the disassembly had no entry points and will be
// written as a linear disassembly.
func (dsm *Disassembly) Linear() bool {
	return len(dsm.entryPoints) == 0
}

// Get returns the instruction at address if it was reached by following the
// flow of the program.
func (dsm *Disassembly) Get(address uint16) (Entry, bool) {
	e, ok := dsm.flow[address]
	return e, ok
}

// Addresses returns the address of every instruction reached by following
// the flow of the program, in order.
func (dsm *Disassembly) Addresses() []uint16 {
	a := make([]uint16, 0, len(dsm.flow))
	for k := range dsm.flow {
		a = append(a, k)
	}
	sort.Slice(a, func(i, j int) bool { return a[i] < a[j] })
	return a
}
