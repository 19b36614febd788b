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

// Package scripting allows a Lua script to watch the emulation and to request
// hardware interrupts. The script is run once when it is loaded. If the script
// defines a global function called on_step then that function is called
// between every instruction. The return value of on_step is either nil or one
// of the strings "nmi" or "irq".
//
// The following functions are available to the script:
//
//	peek(address)         returns the byte at address
//	poke(address, value)  writes value to address
//	reg(name)             returns the value of register a, x, y, sp, pc or p
//	flag(name)            returns the state of flag c, z, i, d, b, v or n
//	cycles()              returns the number of cycles since reset
//	log(message)          adds message to the emulator log
//
// For example, the following script requests an NMI every time the byte at
// address 0x0200 changes:
//
//	local last = peek(0x0200)
//	function on_step()
//		local v = peek(0x0200)
//		if v ~= last then
//			last = v
//			return "nmi"
//		end
//	end
package scripting
