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
	"github.com/famiemu/famiemu/curated"
)

// Error patterns returned by IsValid().
const (
	NotFinal        = "execution: not finalised (bad opcode?)"
	UnexpectedFault = "execution: unexpected page fault for opcode %#02x [%s]"
	UnexpectedBytes = "execution: unexpected number of bytes read during decode (%d instead of %d)"
	UnexpectedCycle = "execution: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)"
	UnexpectedTaken = "execution: branch taken by non-branching opcode %#02x [%s]"
)

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf(NotFinal)
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive() && !r.Defn.IsBranch() && r.PageFault {
		return curated.Errorf(UnexpectedFault, r.Defn.OpCode, r.Defn.Operator)
	}

	// byte count
	if r.ByteCount != r.Defn.Bytes() {
		return curated.Errorf(UnexpectedBytes, r.ByteCount, r.Defn.Bytes())
	}

	if r.Defn.IsBranch() {
		expected := r.Defn.Cycles
		if r.BranchSuccess {
			expected++
			if r.PageFault {
				expected++
			}
		}
		if r.Cycles != expected {
			return curated.Errorf(UnexpectedCycle, r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
		}
		return nil
	}

	if r.BranchSuccess {
		return curated.Errorf(UnexpectedTaken, r.Defn.OpCode, r.Defn.Operator)
	}

	expected := r.Defn.Cycles
	if r.PageFault {
		expected++
	}
	if r.Cycles != expected {
		return curated.Errorf(UnexpectedCycle, r.Defn.OpCode, r.Defn.Operator, r.Cycles, expected)
	}

	return nil
}
