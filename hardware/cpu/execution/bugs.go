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

// Bug is a description of a quirk in the 6502 that was triggered during
// instruction execution. The CPU emulation reproduces these quirks; the
// Result records that it happened.
type Bug string

// List of valid Bug values.
const (
	NoBug Bug = ""

	// the high byte of the JMP (indirect) target is read from the start of
	// the same page when the pointer is at the end of a page.
	JmpIndirectAddressingBug Bug = "indirect addressing bug"

	// the pointer for (zp,X) and (zp),Y addressing wraps around the zero
	// page rather than reading the high byte from 0x0100.
	IndexedIndirectAddressingBug Bug = "indexed indirect addressing bug"

	// indexed zero page addressing wraps around the zero page.
	ZeroPageIndexBug Bug = "zero page index bug"
)
