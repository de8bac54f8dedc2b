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

package easyterm_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tonnyrh/psprg2crt/easyterm"
	"github.com/tonnyrh/psprg2crt/test"
)

func TestRegularFileIsNotTerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out"))
	test.DemandSuccess(t, err)
	defer f.Close()

	test.ExpectFailure(t, easyterm.IsTerminal(f))
	test.ExpectFailure(t, easyterm.IsTerminal(nil))
}
