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

package execution

import (
	"fmt"

	"github.com/famiemu/famiemu/hardware/cpu/instructions"
)

// Result records the state/result of the most recent instruction executed by
// the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the definition of the opcode found at Address. the zero value is not a
	// valid definition so care should be taken before Final is true
	Defn instructions.Definition

	// the number of bytes read during instruction decode. if this value is
	// less than Defn.Bytes() then the instruction has not yet been fully
	// decoded
	ByteCount int

	// the operand bytes of the instruction. for instructions with a single
	// operand byte only the low byte is used
	InstructionData uint16

	// the actual number of cycles taken by the instruction - usually the same
	// as Defn.Cycles but in the case of PageFaults and branches, this value
	// may be different
	Cycles int

	// whether an extra cycle was required because of 8 bit adder overflow
	PageFault bool

	// whether a known buggy code path (in the emulated CPU) was triggered
	CPUBug Bug

	// whether branching instruction test succeeded and a branch was taken
	BranchSuccess bool

	// whether this data has been finalised - some of the fields in this
	// struct will be undefined if Final is false
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}

// Decoded returns the instruction part of the result as an
// instructions.Decoded value.
func (r Result) Decoded() instructions.Decoded {
	return instructions.Decoded{
		Address: r.Address,
		Defn:    r.Defn,
		Operand: r.InstructionData,
	}
}

func (r Result) String() string {
	if r.ByteCount == 0 {
		return fmt.Sprintf("%04X ???", r.Address)
	}

	s := fmt.Sprintf("%04X %s", r.Address, r.Decoded())
	if !r.Final {
		return s
	}

	s = fmt.Sprintf("%s [%d]", s, r.Cycles)
	if r.PageFault {
		s = fmt.Sprintf("%s page-fault", s)
	}
	if r.CPUBug != NoBug {
		s = fmt.Sprintf("%s *%s*", s, r.CPUBug)
	}

	return s
}
