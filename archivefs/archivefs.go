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

// Package archivefs allows files inside zip archives to be referred to with
// ordinary looking paths. For example, the path:
//
//	demos/collection.zip/intro/intro.prg
//
// refers to the file intro/intro.prg inside the archive demos/collection.zip.
// Paths that do not pass through an archive refer to regular files.
package archivefs

import (
	"io"
)

// ReadFile returns the contents of the file. The filename can point to a
// file inside an archive.
func ReadFile(filename string) ([]byte, error) {
	var afs Path
	defer afs.Close()

	if err := afs.Set(filename); err != nil {
		return nil, err
	}

	r, err := afs.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
