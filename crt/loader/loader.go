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

// Package loader holds the machine code that is placed at the start of every
// cartridge. At power on the loader copies the PRG image from cartridge ROM
// to its load address and starts it: BASIC programs loaded at $0801 are RUN,
// anything else is jumped to.
//
// The loader is pre-assembled. The source is in loader.asm and is kept for
// reference only; the bytes in loader.bin are the ones that are used.
package loader

import (
	_ "embed"
	"encoding/binary"

	"github.com/tonnyrh/psprg2crt/curated"
)

//go:embed loader.bin
var stub []byte

// StubLen is the size of the loader machine code. The loader expects the
// size field to start at $8000 + StubLen.
const StubLen = 172

// SizeFieldLen is the number of bytes used to store the size of the PRG body.
const SizeFieldLen = 2

// MaxBodyLen is the largest PRG body that can be described by the size field.
const MaxBodyLen = 0xffff

// Sentinal error patterns.
const (
	InputTooShort = "loader: prg is too short (%d bytes)"
	InputTooLong  = "loader: prg body is too long for the size field (%d bytes)"
)

// Stub returns a copy of the loader machine code.
func Stub() []byte {
	s := make([]byte, len(stub))
	copy(s, stub)
	return s
}

// Payload returns the loader followed by the size of the PRG body and then
// the PRG image itself, including the two load address bytes. The PRG must be
// at least two bytes long and the body must fit in the 16bit size field.
func Payload(prg []byte) ([]byte, error) {
	if len(prg) < 2 {
		return nil, curated.Errorf(InputTooShort, len(prg))
	}

	bodyLen := len(prg) - 2
	if bodyLen > MaxBodyLen {
		return nil, curated.Errorf(InputTooLong, bodyLen)
	}

	p := make([]byte, 0, len(stub)+SizeFieldLen+len(prg))
	p = append(p, stub...)
	p = binary.LittleEndian.AppendUint16(p, uint16(bodyLen))
	p = append(p, prg...)

	return p, nil
}
