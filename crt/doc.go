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

// Package crt creates Commodore 64 cartridge images in the CRT format.
//
// A CRT file is a 64 byte header followed by a number of CHIP packets. Every
// CHIP packet created by this package holds one 8k bank of ROM, loaded at
// $8000. The banks are numbered from zero and are written in ascending order.
//
// Creating a cartridge is a two step process. First the ROM content is padded
// to a whole number of banks with BuildROM(). The padded ROM is then written
// with Write() or Marshal(), along with the type of cartridge hardware that
// the image is intended for.
//
//	rom := crt.BuildROM(payload)
//	data, err := crt.Marshal(rom, crt.EasyFlash)
//
// Existing CRT files can be read with Parse(). The ROM() function of the
// returned File reassembles the banks so that the result can be compared with
// the ROM that was written.
package crt
