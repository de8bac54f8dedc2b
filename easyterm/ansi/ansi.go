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

// Package ansi defines ANSI control codes for styles and colours.
package ansi

import (
	"fmt"
	"strings"
)

// ansi colour.
const (
	colBlack   = 0
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
	colDefault = 9
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold      = 1
	attrUnderline = 4
)

var colours = map[string]int{
	"BLACK":   colBlack,
	"RED":     colRed,
	"GREEN":   colGreen,
	"YELLOW":  colYellow,
	"BLUE":    colBlue,
	"MAGENTA": colMagenta,
	"CYAN":    colCyan,
	"WHITE":   colWhite,
	"NORMAL":  colDefault,
}

var attributes = map[string]int{
	"BOLD":      attrBold,
	"UNDERLINE": attrUnderline,
}

// Pens is the table of bright colours to be used for text.
var Pens map[string]string

// DimPens is the table of regular colours to be used for text.
var DimPens map[string]string

// NormalPen is the CSI sequence for regular text.
var NormalPen string

func init() {
	Pens = make(map[string]string)
	DimPens = make(map[string]string)

	NormalPen, _ = ColorBuild("", "", false)

	for _, c := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		Pens[c], _ = ColorBuild(c, "", true)
		DimPens[c], _ = ColorBuild(c, "", false)
	}
}

// ColorBuild creates the ANSI sequence for the pen colour and attribute. An
// empty pen and attribute creates the sequence that resets the terminal to
// normal text.
func ColorBuild(pen, attribute string, brightPen bool) (string, error) {
	var codes []string

	if pen != "" {
		c, ok := colours[strings.ToUpper(pen)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI pen (%s)", pen)
		}
		target := targetPen
		if brightPen {
			target = targetBrightPen
		}
		codes = append(codes, fmt.Sprintf("%d%d", target, c))
	}

	if attribute != "" {
		a, ok := attributes[strings.ToUpper(attribute)]
		if !ok {
			return "", fmt.Errorf("unknown ANSI attribute (%s)", attribute)
		}
		codes = append(codes, fmt.Sprintf("%d", a))
	}

	if len(codes) == 0 {
		codes = append(codes, "0")
	}

	return fmt.Sprintf("\033[%sm", strings.Join(codes, ";")), nil
}
