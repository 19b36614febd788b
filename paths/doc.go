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

// Package paths contains functions to prepare paths for famiemu resources.
//
// The ResourcePath() function returns the path to a resource. Resources are
// kept in the ".famiemu" directory if it exists in the current working
// directory. Otherwise they are kept in the "famiemu" directory of the user's
// configuration directory.
package paths
