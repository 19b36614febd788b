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

import (
	"fmt"
	"sort"
)

// table maps an opcode byte to its definition. a nil entry means the opcode is
// not part of the instruction set.
type table [256]*Definition

// newTable builds a table from the list of opcodes. registering the same
// opcode twice is a programming error and causes a panic.
func newTable(list []opcode) *table {
	var t table
	for _, o := range list {
		if t[o.code] != nil {
			panic(fmt.Sprintf("instructions: opcode %#02x registered twice (%s and %s)", o.code, t[o.code].Operator, o.op))
		}
		t[o.code] = &Definition{
			OpCode:         o.code,
			Operator:       o.op,
			AddressingMode: o.mode,
			Cycles:         o.cycles,
			Effect:         o.op.Effect(),
		}
	}
	return &t
}

// the table is built once and never changed
var definitions = newTable(opcodes)

// lookup returns a copy of the definition so that callers can never change
// the contents of the table.
func (t *table) lookup(opcode uint8) (Definition, bool) {
	d := t[opcode]
	if d == nil {
		return Definition{}, false
	}
	return *d, true
}

// Lookup returns the definition for the opcode. The second return value is
// false if the opcode is not part of the instruction set, in which case the
// Definition should not be used.
func Lookup(opcode uint8) (Definition, bool) {
	return definitions.lookup(opcode)
}

// Definitions returns a copy of every definition in the instruction set,
// ordered by opcode.
func Definitions() []Definition {
	defs := make([]Definition, 0, len(opcodes))
	for _, d := range definitions {
		if d != nil {
			defs = append(defs, *d)
		}
	}
	return defs
}

// LegalModes returns the addressing modes that can be used with the operator.
// The modes are sorted in the order they are declared.
func LegalModes(op Operator) []AddressingMode {
	var modes []AddressingMode
	for _, d := range definitions {
		if d != nil && d.Operator == op {
			modes = append(modes, d.AddressingMode)
		}
	}
	sort.Slice(modes, func(i, j int) bool {
		return modes[i] < modes[j]
	})
	return modes
}

// Find returns the definition for the combination of operator and addressing
// mode. The second return value is false if the combination is not legal.
func Find(op Operator, mode AddressingMode) (Definition, bool) {
	for _, d := range definitions {
		if d != nil && d.Operator == op && d.AddressingMode == mode {
			return *d, true
		}
	}
	return Definition{}, false
}
