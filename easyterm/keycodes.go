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

package easyterm

// Key codes recognised by the step monitor.
const (
	KeyInterrupt      = 3  // end-of-text character
	KeyEOT            = 4  // end-of-transmission character
	KeyCarriageReturn = 13
	KeyLineFeed       = 10
	KeySuspend        = 26 // substitute character
	KeyEsc            = 27
	KeySpace          = 32
)
