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

// Package ram implements a flat 64KB memory that satisfies the cpubus.Memory
// interface. There are no mirrors or memory mapped devices. Useful for running
// programs that only need RAM and for testing.
package ram

import (
	"fmt"
	"strings"

	"github.com/famiemu/famiemu/curated"
)

// Size of the address space covered by RAM.
const Size = 0x10000

// Error patterns.
const (
	ProgramTooLarge = "ram: program too large (%d bytes at %#04x)"
)

// RAM is a flat 64KB memory.
type RAM struct {
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type.
func NewRAM() *RAM {
	return &RAM{
		memory: make([]uint8, Size),
	}
}

// Page returns a string showing the contents of the 256 byte page that the
// address is in.
func (r *RAM) Page(address uint16) string {
	origin := address & 0xff00

	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	s.WriteString("     ---- -- -- -- -- -- -- -- -- -- -- -- -- -- -- --\n")
	for y := 0; y < 16; y++ {
		s.WriteString(fmt.Sprintf("%03X- | ", (origin>>4)+uint16(y)))
		for x := 0; x < 16; x++ {
			s.WriteString(fmt.Sprintf(" %02x", r.memory[origin+uint16(y*16+x)]))
		}
		s.WriteString("\n")
	}
	return strings.Trim(s.String(), "\n")
}

// Peek returns the value at address without any side effects.
func (r *RAM) Peek(address uint16) uint8 {
	return r.memory[address]
}

// Poke sets the value at address.
func (r *RAM) Poke(address uint16, value uint8) {
	r.memory[address] = value
}

// Read implements the cpubus.Memory interface. RAM never returns an error.
func (r *RAM) Read(address uint16) (uint8, error) {
	return r.memory[address], nil
}

// Write implements the cpubus.Memory interface. RAM never returns an error.
func (r *RAM) Write(address uint16, data uint8) error {
	r.memory[address] = data
	return nil
}

// Load copies data into memory starting at origin. The data must fit between
// origin and the top of the address space.
func (r *RAM) Load(origin uint16, data []uint8) error {
	if int(origin)+len(data) > Size {
		return curated.Errorf(ProgramTooLarge, len(data), origin)
	}
	copy(r.memory[origin:], data)
	return nil
}

// Write16 stores a 16bit value in little-endian order. Useful for setting
// interrupt vectors.
func (r *RAM) Write16(address uint16, value uint16) {
	r.memory[address] = uint8(value)
	r.memory[address+1] = uint8(value >> 8)
}

// Clear sets all bytes in memory to zero.
func (r *RAM) Clear() {
	for i := range r.memory {
		r.memory[i] = 0
	}
}
