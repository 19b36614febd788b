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

// Package instructions defines the instruction set of the 6502. Each opcode
// byte is described by a Definition: the operator (mnemonic), the addressing
// mode, the number of cycles the instruction takes before any penalties and
// the category of effect the instruction has.
//
// The table of definitions is built once when the package is initialised and
// is never changed afterwards. Lookup() returns the definition for an opcode.
// Opcodes that are not part of the documented instruction set have no
// definition.
//
// LegalModes() answers which addressing modes an operator can be used with.
// The answer is derived from the table so there is only one place where the
// information is recorded.
package instructions
