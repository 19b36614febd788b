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

package instructions

import (
	"fmt"

	"github.com/famiemu/famiemu/curated"
	"github.com/famiemu/famiemu/hardware/memory/cpubus"
)

// Sentinal error patterns.
const (
	UndecodableOpcode = "instructions: unknown opcode (%#02x) at (%#04x)"
)

// Decoded is an instruction as it appears in memory, before it is executed.
type Decoded struct {
	Address uint16
	Defn    Definition

	// the operand bytes following the opcode. for instructions with one
	// operand byte only the low byte is used
	Operand uint16
}

// Decode the instruction at the address without executing it. Reading the
// instruction is done with the Read() function of the memory so care should be
// taken with memory that has side effects.
func Decode(mem cpubus.Memory, address uint16) (Decoded, error) {
	code, err := mem.Read(address)
	if err != nil {
		return Decoded{}, err
	}

	defn, ok := Lookup(code)
	if !ok {
		return Decoded{}, curated.Errorf(UndecodableOpcode, code, address)
	}

	d := Decoded{
		Address: address,
		Defn:    defn,
	}

	switch defn.AddressingMode.OperandBytes() {
	case 1:
		v, err := mem.Read(address + 1)
		if err != nil {
			return Decoded{}, err
		}
		d.Operand = uint16(v)
	case 2:
		v, err := cpubus.Read16(mem, address+1)
		if err != nil {
			return Decoded{}, err
		}
		d.Operand = v
	}

	return d, nil
}

// Next returns the address of the instruction following the decoded
// instruction.
func (d Decoded) Next() uint16 {
	return d.Address + uint16(d.Defn.Bytes())
}

// Target returns the address a branch instruction would jump to if the branch
// is taken. The result for other instructions is the same as Next().
func (d Decoded) Target() uint16 {
	if d.Defn.AddressingMode != Relative {
		return d.Next()
	}
	return d.Next() + uint16(int8(d.Operand))
}

// String returns the instruction in standard assembler notation.
func (d Decoded) String() string {
	op := d.Defn.Operator.String()
	switch d.Defn.AddressingMode {
	case Implied:
		return op
	case Accumulator:
		return fmt.Sprintf("%s A", op)
	case Immediate:
		return fmt.Sprintf("%s #$%02X", op, d.Operand)
	case Relative:
		return fmt.Sprintf("%s $%04X", op, d.Target())
	case Absolute:
		return fmt.Sprintf("%s $%04X", op, d.Operand)
	case ZeroPage:
		return fmt.Sprintf("%s $%02X", op, d.Operand)
	case Indirect:
		return fmt.Sprintf("%s ($%04X)", op, d.Operand)
	case IndirectX:
		return fmt.Sprintf("%s ($%02X,X)", op, d.Operand)
	case IndirectY:
		return fmt.Sprintf("%s ($%02X),Y", op, d.Operand)
	case AbsoluteX:
		return fmt.Sprintf("%s $%04X,X", op, d.Operand)
	case AbsoluteY:
		return fmt.Sprintf("%s $%04X,Y", op, d.Operand)
	case ZeroPageX:
		return fmt.Sprintf("%s $%02X,X", op, d.Operand)
	case ZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", op, d.Operand)
	}
	return op
}
