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

package performance

// CalcMHz takes the number of cycles and duration (in seconds) and returns
// the effective clock rate in MHz and the accuracy of that value as a
// percentage of the clock rate of the CPU.
func CalcMHz(cycles int, duration float64, clock float64) (mhz float64, accuracy float64) {
	if duration <= 0 {
		return 0, 0
	}
	mhz = float64(cycles) / duration / 1000000
	if clock > 0 {
		accuracy = 100 * mhz / clock
	}
	return mhz, accuracy
}
