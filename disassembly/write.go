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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
	Cycles   bool
}

// Write the entire disassembly to io.Writer.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	address := int(dsm.origin)
	for address <= int(dsm.memtop) {
		a := uint16(address)

		e, ok := dsm.flow[a]
		if !ok && dsm.Linear() {
			var err error
			e, ok, err = dsm.decode(a)
			if err != nil {
				return err
			}
		}

		if ok {
			dsm.WriteLine(output, attr, e)
			address += len(e.Bytes)
			continue
		}

		v, err := dsm.mem.Read(a)
		if err != nil {
			return err
		}
		dsm.writeData(output, attr, a, v)
		address++
	}

	return nil
}

// WriteLine writes a single instruction to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e Entry) {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("%04X  ", e.Address))

	if attr.ByteCode {
		b := make([]string, len(e.Bytes))
		for i := range e.Bytes {
			b[i] = fmt.Sprintf("%02X", e.Bytes[i])
		}
		s.WriteString(fmt.Sprintf("%-9s ", strings.Join(b, " ")))
	}

	if attr.Cycles {
		s.WriteString(fmt.Sprintf("%-14s ", e.Decoded))
		s.WriteString(fmt.Sprintf("%d", e.Defn.Cycles))
		if e.Defn.PageSensitive() || e.Defn.IsBranch() {
			s.WriteString("*")
		}
	} else {
		s.WriteString(e.Decoded.String())
	}

	s.WriteString("\n")
	output.Write([]byte(s.String()))
}

func (dsm *Disassembly) writeData(output io.Writer, attr WriteAttr, address uint16, v uint8) {
	if attr.ByteCode {
		output.Write([]byte(fmt.Sprintf("%04X  %-9s .byte $%02X\n", address, fmt.Sprintf("%02X", v), v)))
		return
	}
	output.Write([]byte(fmt.Sprintf("%04X  .byte $%02X\n", address, v)))
}
