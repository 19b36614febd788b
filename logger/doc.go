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

// Package logger is the central log for the emulator. Log entries are made
// with the Log() and Logf() functions. Entries have a tag, usually naming the
// package or area of the emulation making the entry, and a detail string.
//
//	logger.Logf(logger.Allow, "runner", "loaded %d bytes at %#04x", n, origin)
//
// The first argument to the logging functions is a Permission. Permission
// implementations decide whether a log entry can be made at that time.
//
// Identical entries logged one after the other are collapsed into a single
// entry with a repeat count. The central log is bounded and the oldest
// entries are dropped when the limit is reached.
//
// The contents of the log can be written to any io.Writer with Write() or
// Tail(). SetEcho() causes new entries to be written as they are made.
package logger
