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

import "fmt"

// Definition defines each instruction in the instruction set; one per opcode.
type Definition struct {
	OpCode         uint8
	Operator       Operator
	AddressingMode AddressingMode
	Cycles         int
	Effect         Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s +%dbytes (%d cycles) [mode=%s pagesens=%t effect=%s]",
		defn.OpCode, defn.Operator, defn.Bytes(), defn.Cycles, defn.AddressingMode,
		defn.PageSensitive(), defn.Effect)
}

// Bytes returns the total number of bytes of the instruction, including the
// opcode.
func (defn Definition) Bytes() int {
	return 1 + defn.AddressingMode.OperandBytes()
}

// PageSensitive returns true if the instruction takes an additional cycle
// when indexing crosses a page boundary. Only instructions that read memory
// pay the penalty.
func (defn Definition) PageSensitive() bool {
	return defn.Effect == Read && defn.AddressingMode.Indexed()
}

// IsBranch returns true if instruction is a branch instruction.
func (defn Definition) IsBranch() bool {
	return defn.AddressingMode == Relative && defn.Effect == Flow
}
