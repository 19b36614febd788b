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
	"github.com/famiemu/famiemu/hardware/cpu/execution"
	"github.com/famiemu/famiemu/hardware/cpu/instructions"
)

// operand is the result of resolving the addressing mode of an instruction.
type operand struct {
	// the effective address. not valid for Implied and Accumulator modes
	address    uint16
	hasAddress bool

	// the index register moved the effective address into a different page
	// to the base address
	pageCross bool
}

// resolve reads the operand bytes of the instruction through the PC and
// returns the effective address. the PC will point to the next instruction
// once resolve() has returned.
//
// the order of memory accesses is: operand bytes (low before high) and then
// any pointer bytes (low before high).
func (mc *CPU) resolve(defn instructions.Definition) (operand, error) {
	var op operand

	switch defn.AddressingMode {
	case instructions.Implied, instructions.Accumulator:
		// no operand

	case instructions.Immediate:
		// the value is the next byte in the program. the address is the
		// location of that byte
		op.address = mc.PC.Address()
		op.hasAddress = true
		if _, err := mc.read8BitPC(); err != nil {
			return op, err
		}

	case instructions.Relative:
		offset, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}

		// offset is signed and relative to the PC after the operand byte
		op.address = mc.PC.Address() + uint16(int8(offset))
		op.hasAddress = true

	case instructions.ZeroPage:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		op.address = uint16(v)
		op.hasAddress = true

	case instructions.ZeroPageX:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		op.address = mc.zeroPageIndex(v, mc.X.Value())
		op.hasAddress = true

	case instructions.ZeroPageY:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}
		op.address = mc.zeroPageIndex(v, mc.Y.Value())
		op.hasAddress = true

	case instructions.Absolute:
		v, err := mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.address = v
		op.hasAddress = true

	case instructions.AbsoluteX:
		v, err := mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.address = v + mc.X.Address()
		op.pageCross = v&0xff00 != op.address&0xff00
		op.hasAddress = true

	case instructions.AbsoluteY:
		v, err := mc.read16BitPC()
		if err != nil {
			return op, err
		}
		op.address = v + mc.Y.Address()
		op.pageCross = v&0xff00 != op.address&0xff00
		op.hasAddress = true

	case instructions.Indirect:
		// indirect addressing (without indexing) is only used for the JMP command
		ptr, err := mc.read16BitPC()
		if err != nil {
			return op, err
		}

		lo, err := mc.read8Bit(ptr)
		if err != nil {
			return op, err
		}

		// the high byte of the target never comes from the next page
		hiPtr := (ptr & 0xff00) | ((ptr + 1) & 0x00ff)
		if hiPtr != ptr+1 {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		hi, err := mc.read8Bit(hiPtr)
		if err != nil {
			return op, err
		}

		op.address = (uint16(hi) << 8) | uint16(lo)
		op.hasAddress = true

	case instructions.IndirectX:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}

		// the index is applied to the pointer before it is dereferenced
		// and the result stays in the zero page
		t := v + mc.X.Value()
		op.address, err = mc.read16BitZeroPage(t)
		if err != nil {
			return op, err
		}
		op.hasAddress = true

	case instructions.IndirectY:
		v, err := mc.read8BitPC()
		if err != nil {
			return op, err
		}

		base, err := mc.read16BitZeroPage(v)
		if err != nil {
			return op, err
		}

		// the index is applied after the pointer has been dereferenced
		op.address = base + mc.Y.Address()
		op.pageCross = base&0xff00 != op.address&0xff00
		op.hasAddress = true

	default:
		return op, curated.Errorf(UnhandledAddressingMode, defn.AddressingMode, defn.Operator)
	}

	return op, nil
}

// zeroPageIndex adds the index to the zero page base address. the result
// wraps around the zero page.
func (mc *CPU) zeroPageIndex(base uint8, index uint8) uint16 {
	if uint16(base)+uint16(index) > 0xff {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}
	return uint16(base + index)
}
