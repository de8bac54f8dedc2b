// This file is part of psprg2crt.
//
// psprg2crt is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// psprg2crt is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with psprg2crt.  If not, see <https://www.gnu.org/licenses/>.

// Package logger is the central logging package for psprg2crt. Log entries
// are kept in memory and can be written out on request or echoed as they are
// created.
//
// Each entry has a tag and a detail string. The tag is usually the name of the
// package that created the entry:
//
//	logger.Logf(logger.Allow, "crt", "%d banks", n)
//
// An entry that is the same as the previous entry is not added again. Instead
// the previous entry is marked as being repeated.
//
// Logging can be gated with the Permission interface. The logger.Allow value
// always permits logging.
//
// Echoing to a terminal will colour the tag part of each entry. Whether the
// output is a terminal is decided by the easyterm package.
package logger
