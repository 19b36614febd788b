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

// Package runner runs a program image on the CPU. The image is loaded into a
// flat 64KB RAM at the configured load address and the CPU is reset. Each
// call to Step() executes one instruction and then services any interrupt
// that has been requested, either by the NMI timer or by the Lua script.
//
// Run() repeats Step() until the maximum number of steps has been reached, the
// CPU faults, or the program traps itself in a jump-to-self loop. A
// jump-to-self is only a trap if nothing can interrupt it; when an NMI
// interval or an on_step script is configured the loop is assumed to be
// waiting for an interrupt.
package runner
