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

package ansi_test

import (
	"testing"

	"github.com/tonnyrh/psprg2crt/easyterm/ansi"
	"github.com/tonnyrh/psprg2crt/test"
)

func TestColorBuild(t *testing.T) {
	s, err := ansi.ColorBuild("", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[0m")
	test.ExpectEquality(t, ansi.NormalPen, s)

	s, err = ansi.ColorBuild("red", "", false)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[31m")

	s, err = ansi.ColorBuild("Cyan", "bold", true)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "\033[96;1m")
	test.ExpectEquality(t, ansi.Pens["cyan"], "\033[96m")

	_, err = ansi.ColorBuild("mauve", "", false)
	test.ExpectFailure(t, err)

	_, err = ansi.ColorBuild("", "blink", false)
	test.ExpectFailure(t, err)
}
