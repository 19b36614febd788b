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

// Package config loads the settings for the emulator. Settings come from
// three places, each overriding the last: the built-in defaults, an optional
// YAML configuration file and environment variables.
//
// Environment variables are named after the configuration key with the
// FAMIEMU prefix. For example, the run.max_steps key can be set with:
//
//	FAMIEMU_RUN_MAX_STEPS=5000
//
// Numeric values can be given in hexadecimal with the 0x prefix.
package config
