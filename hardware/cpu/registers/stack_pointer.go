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

package registers

import (
	"fmt"

	"github.com/famiemu/famiemu/hardware/memory/cpubus"
)

// StackPointer is the 8 bit register indexing the stack page. The stack grows
// downwards.
type StackPointer struct {
	value uint8
}

// NewStackPointer is the preferred method of initialisation for the stack
// pointer.
func NewStackPointer(val uint8) StackPointer {
	return StackPointer{value: val}
}

// Label returns the canonical name for the stack pointer.
func (sp StackPointer) Label() string {
	return "SP"
}

func (sp StackPointer) String() string {
	return fmt.Sprintf("%02X", sp.value)
}

// Value returns the 8 bit value of the stack pointer.
func (sp StackPointer) Value() uint8 {
	return sp.value
}

// Address returns the address in the stack page pointed to by the stack
// pointer.
func (sp StackPointer) Address() uint16 {
	return cpubus.StackPage | uint16(sp.value)
}

// Load value into the stack pointer.
func (sp *StackPointer) Load(val uint8) {
	sp.value = val
}

// Decrement the stack pointer. Wraps from 0x00 to 0xff.
func (sp *StackPointer) Decrement() {
	sp.value--
}

// Increment the stack pointer. Wraps from 0xff to 0x00.
func (sp *StackPointer) Increment() {
	sp.value++
}
