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

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It is used
// to decide whether an output file is an interactive terminal, in which case
// output can be decorated with the ANSI sequences in the ansi sub-package.
package easyterm

import (
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// IsTerminal returns true if the file is connected to a terminal. Files that
// are redirected to disk or to a pipe do not have terminal attributes and
// return false.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	var attr unix.Termios
	return termios.Tcgetattr(f.Fd(), &attr) == nil
}
