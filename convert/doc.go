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

// Package convert turns PRG files into CRT files. It joins together the
// loader, the ROM builder and the CRT writer found in the crt package and its
// sub-packages.
//
// Convert() works on data that is already in memory. ConvertFile() reads the
// PRG from a file and writes the CRT to a file. The output file is only
// created once the complete CRT is ready and is never left partially
// written.
package convert
