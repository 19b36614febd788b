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

package cpubus

// Interrupt vectors. Each is the address of a little-endian pointer in the top
// page of the address space.
const (
	// NMI is the address where the non-maskable interrupt address is stored.
	NMI = uint16(0xfffa)

	// Reset is the address where the reset address is stored.
	Reset = uint16(0xfffc)

	// IRQ is the address where the interrupt address is stored. Also used by
	// the BRK instruction.
	IRQ = uint16(0xfffe)
	BRK = IRQ
)

// StackPage is the base address of the 256 byte page used by the stack.
const StackPage = uint16(0x0100)
