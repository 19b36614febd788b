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

// Package disassembly creates a listing of a program image in memory.
//
// The disassembly follows the flow of the program from one or more entry
// points. Branches are followed in both directions, JSR is followed into the
// subroutine and on to the next instruction, and absolute JMP instructions are
// followed to their target. Flow ends at RTS, RTI, BRK and indirect JMP
// instructions, and at any byte that is not a valid opcode.
//
// Bytes not reached by following the flow are written as data. If no entry
// point lies within the disassembled region the listing falls back to a linear
// disassembly, where each instruction is assumed to follow on from the
// previous one. Linear disassembly is no good for programs that mix code and
// data but is better than nothing.
//
// For quick disassemblies the FromMemory() function can be used.
package disassembly
