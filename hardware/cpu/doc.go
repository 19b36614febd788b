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

// Package cpu emulates the 6502 microprocessor. Like all 8-bit processors of
// the era, the 6502 executes instructions according to the single byte value
// read from an address pointed to by the program counter. This single byte is
// the opcode and is looked up in the instruction table. The instruction
// definition for that opcode is then used to move execution of the program
// forward.
//
// The instance of the CPU type requires an implementation of the
// cpubus.Memory interface as the sole argument. The Memory interface defines
// the memory operations required by the CPU. See the cpubus package for
// details.
//
// The bread-and-butter of the CPU type is the Step() function. Each call
// executes exactly one instruction and returns the number of cycles the
// instruction took.
//
// Let's assume mem is an instance of the Memory interface loaded with 6502
// instructions and a reset vector.
//
//	mc := cpu.NewCPU(mem)
//	if err := mc.Reset(); err != nil {
//		panic(err)
//	}
//
//	numCycles := 0
//	numInstructions := 0
//
//	for {
//		cycles, err := mc.Step()
//		if err != nil {
//			break
//		}
//		numCycles += cycles
//		numInstructions++
//	}
//
// Hardware interrupts are requested between instructions with
// ServiceInterrupt(). The 6502 only responds to interrupts at instruction
// boundaries so there is no need to interrupt a Step() that is in progress.
//
// The LastResult field of the CPU records detailed information about the most
// recently executed instruction. See the execution package.
package cpu
