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

package logger

import (
	"io"
	"strings"

	"github.com/tonnyrh/psprg2crt/easyterm/ansi"
)

// Colorizer wraps an io.Writer and colours the tag of every entry written to
// it. It expects entries in the format produced by Entry.String().
type Colorizer struct {
	out io.Writer
}

// NewColorizer is the preferred method of initialisation for the Colorizer
// type.
func NewColorizer(out io.Writer) Colorizer {
	return Colorizer{out: out}
}

// Write implements the io.Writer interface.
func (c Colorizer) Write(p []byte) (int, error) {
	s := string(p)

	tag, detail, ok := strings.Cut(s, ": ")
	if !ok {
		return c.out.Write(p)
	}

	var b strings.Builder
	b.WriteString(ansi.Pens["cyan"])
	b.WriteString(tag)
	b.WriteString(ansi.NormalPen)
	b.WriteString(": ")
	b.WriteString(detail)

	_, err := io.WriteString(c.out, b.String())
	if err != nil {
		return 0, err
	}

	// report the number of bytes from p, not the number of bytes including
	// the ANSI sequences
	return len(p), nil
}
