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

// Package prgloader reads PRG files from disk. A PRG file can be a regular
// file or a file inside a zip archive (see the archivefs package).
//
// The simplest use of the Loader type:
//
//	ld := prgloader.NewLoader("demos/intro.prg")
//	if err := ld.Load(); err != nil {
//		return err
//	}
//
// After a successful Load() the Data field contains the complete PRG file,
// including the two byte load address. The Hash field contains the SHA1 of the
// data. If the Hash field is set before Load() then the loaded data must
// match it.
//
// The package does not check that the data is long enough to be a PRG file.
// The LoadAddress() function returns false if it is not.
package prgloader
