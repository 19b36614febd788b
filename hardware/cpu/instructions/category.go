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

// Category describes the effect an instruction has on memory or on the flow
// of the program.
type Category int

// List of valid Category values.
const (
	// the instruction reads a value from memory (or from the instruction
	// stream in the case of immediate addressing). instructions with implied
	// addressing are also in this category
	Read Category = iota

	// the instruction writes a register to memory
	Write

	// the instruction reads a value, changes it and writes it back to where it
	// came from. with accumulator addressing the value is the A register
	Modify

	// branch instructions and JMP
	Flow

	// JSR and RTS
	Subroutine

	// BRK and RTI
	Interrupt
)

func (e Category) String() string {
	switch e {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case Modify:
		return "Modify"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	}
	return "unknown effect"
}
