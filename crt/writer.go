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

package crt

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/tonnyrh/psprg2crt/curated"
	"github.com/tonnyrh/psprg2crt/logger"
)

// CRT header values. Multi-byte values in a CRT file are big-endian.
const (
	Signature       = "C64 CARTRIDGE   "
	HeaderLen       = 0x40
	Version         = 0x0100
	nameLen         = 32
	ChipSignature   = "CHIP"
	ChipHeaderLen   = 0x10
	ChipPacketLen   = ChipHeaderLen + BankSize
	ChipTypeROM     = 0x0000
	ChipLoadAddress = 0x8000
)

// MaxBanks is the largest number of banks that can be written. The bank
// number is stored in a single byte.
const MaxBanks = 256

// Sentinal error patterns.
const (
	RomNotAligned = "crt: rom length is not a multiple of %#04x (%d bytes)"
	TooManyBanks  = "crt: rom requires %d banks (maximum is %d)"
	WriteFailed   = "crt: %v"
)

// FileLen returns the length of the CRT file for a ROM of romLen bytes.
func FileLen(romLen int) int {
	return HeaderLen + NumBanks(romLen)*ChipPacketLen
}

// header returns the 64 byte global header.
func header(ct CartridgeType) []byte {
	h := make([]byte, HeaderLen)
	copy(h[0x00:], Signature)
	binary.BigEndian.PutUint32(h[0x10:], HeaderLen)
	binary.BigEndian.PutUint16(h[0x14:], Version)

	code := ct.HardwareType()
	copy(h[0x16:], code[:])

	// EXROM and GAME lines are both active (zero). the six reserved bytes
	// and the 32 byte name are left as zero
	h[0x18] = 0x00
	h[0x19] = 0x00

	return h
}

// chipHeader returns the 16 byte header for the CHIP packet of a bank.
func chipHeader(bank int) []byte {
	h := make([]byte, ChipHeaderLen)
	copy(h[0x00:], ChipSignature)
	binary.BigEndian.PutUint32(h[0x04:], ChipPacketLen)
	binary.BigEndian.PutUint16(h[0x08:], ChipTypeROM)
	h[0x0a] = 0x00
	h[0x0b] = uint8(bank)
	binary.BigEndian.PutUint16(h[0x0c:], ChipLoadAddress)
	binary.BigEndian.PutUint16(h[0x0e:], BankSize)
	return h
}

// check that the arguments to Write() are suitable.
func check(rom []byte, ct CartridgeType) error {
	if !ct.Valid() {
		return curated.Errorf(InvalidCartridgeType, ct)
	}
	if len(rom)%BankSize != 0 {
		return curated.Errorf(RomNotAligned, BankSize, len(rom))
	}
	if n := len(rom) / BankSize; n > MaxBanks {
		return curated.Errorf(TooManyBanks, n, MaxBanks)
	}
	return nil
}

// Write the CRT file for the ROM to the io.Writer. The ROM must be a whole
// number of banks, as prepared by BuildROM().
//
// Nothing is written if the ROM or the cartridge type is unsuitable. If the
// io.Writer fails the output will be incomplete and should be discarded.
func Write(w io.Writer, rom []byte, ct CartridgeType) error {
	if err := check(rom, ct); err != nil {
		return err
	}

	if _, err := w.Write(header(ct)); err != nil {
		return curated.Errorf(WriteFailed, err)
	}

	banks := len(rom) / BankSize
	for b := 0; b < banks; b++ {
		if _, err := w.Write(chipHeader(b)); err != nil {
			return curated.Errorf(WriteFailed, err)
		}
		if _, err := w.Write(rom[b*BankSize : (b+1)*BankSize]); err != nil {
			return curated.Errorf(WriteFailed, err)
		}
	}

	code := ct.HardwareType()
	logger.Logf(logger.Allow, "crt", "%s cartridge (hardware type %02x%02x) with %d banks", ct, code[0], code[1], banks)

	return nil
}

// Marshal returns the CRT file for the ROM. See Write() for details.
func Marshal(rom []byte, ct CartridgeType) ([]byte, error) {
	if err := check(rom, ct); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.Grow(FileLen(len(rom)))
	if err := Write(&b, rom, ct); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}
