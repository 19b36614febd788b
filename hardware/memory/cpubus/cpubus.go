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

// Package cpubus defines the memory interface used by the CPU. The CPU does
// not own anything behind the interface. Reads may have side effects on the
// hardware mapped to an address and so the order in which the CPU calls Read()
// and Write() is significant.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Every address in the 16bit address space must answer a Read(). An error
// from either function is a bus error and is not the CPU's responsibility.
// The CPU propagates the error to its caller without retrying.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// Read16 reads a little-endian 16bit value. The low byte is read from address
// before the high byte is read from address+1. The address wraps at 0xffff.
func Read16(mem Memory, address uint16) (uint16, error) {
	lo, err := mem.Read(address)
	if err != nil {
		return 0, err
	}
	hi, err := mem.Read(address + 1)
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}
