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

// Package commands is the command line interface to the interpreter. The
// command tree is built with cobra:
//
//	famiemu run <image>       run the image and print the final CPU state
//	famiemu trace <image>     as run but print the CPU state before every step
//	famiemu step <image>      step through the image one key press at a time
//	famiemu disasm <image>    disassemble the image
//	famiemu perform <image>   measure the effective clock rate
//	famiemu opcodes           print the instruction set
//	famiemu config            print the effective configuration
//
// The persistent --config flag names a YAML configuration file. Values in the
// file and in FAMIEMU_ environment variables override the defaults.
package commands
