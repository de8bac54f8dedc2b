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

package crt_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/tonnyrh/psprg2crt/crt"
	"github.com/tonnyrh/psprg2crt/curated"
	"github.com/tonnyrh/psprg2crt/test"
)

// rom of the specified number of banks. every byte of a bank is the bank
// number plus one.
func numberedROM(banks int) []byte {
	rom := make([]byte, banks*crt.BankSize)
	for b := 0; b < banks; b++ {
		for i := 0; i < crt.BankSize; i++ {
			rom[b*crt.BankSize+i] = uint8(b + 1)
		}
	}
	return rom
}

func TestHeader(t *testing.T) {
	data, err := crt.Marshal(numberedROM(1), crt.EasyFlash)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), 64+8208)

	test.ExpectEquality(t, string(data[0:16]), "C64 CARTRIDGE   ")
	test.ExpectSuccess(t, bytes.Equal(data[16:20], []byte{0x00, 0x00, 0x00, 0x40}))
	test.ExpectSuccess(t, bytes.Equal(data[20:22], []byte{0x01, 0x00}))
	test.ExpectSuccess(t, bytes.Equal(data[22:24], []byte{0x00, 0x20}))

	// EXROM, GAME, reserved and name are all zero
	test.ExpectSuccess(t, bytes.Equal(data[24:64], make([]byte, 40)))
}

func TestHeaderHardwareTypes(t *testing.T) {
	for _, ct := range crt.CartridgeTypes() {
		data, err := crt.Marshal(numberedROM(1), ct)
		test.DemandSuccess(t, err)
		code := ct.HardwareType()
		test.ExpectSuccess(t, bytes.Equal(data[22:24], code[:]), ct)
	}
}

func TestChipPackets(t *testing.T) {
	const banks = 5

	data, err := crt.Marshal(numberedROM(banks), crt.OceanType1)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(data), crt.FileLen(banks*crt.BankSize))
	test.DemandEquality(t, len(data), 64+banks*8208)

	for b := 0; b < banks; b++ {
		p := data[64+b*8208 : 64+(b+1)*8208]
		test.ExpectEquality(t, string(p[0:4]), "CHIP", b)
		test.ExpectSuccess(t, bytes.Equal(p[4:8], []byte{0x00, 0x00, 0x20, 0x10}), b)
		test.ExpectSuccess(t, bytes.Equal(p[8:10], []byte{0x00, 0x00}), b)
		test.ExpectEquality(t, p[10], uint8(0x00), b)
		test.ExpectEquality(t, p[11], uint8(b), b)
		test.ExpectSuccess(t, bytes.Equal(p[12:14], []byte{0x80, 0x00}), b)
		test.ExpectSuccess(t, bytes.Equal(p[14:16], []byte{0x20, 0x00}), b)

		// banks are written in ascending order
		test.ExpectEquality(t, p[16], uint8(b+1), b)
		test.ExpectEquality(t, p[len(p)-1], uint8(b+1), b)
	}
}

func TestWriteMatchesMarshal(t *testing.T) {
	rom := numberedROM(3)

	var b bytes.Buffer
	err := crt.Write(&b, rom, crt.Normal16k)
	test.DemandSuccess(t, err)

	data, err := crt.Marshal(rom, crt.Normal16k)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, bytes.Equal(b.Bytes(), data))
}

func TestEmptyROM(t *testing.T) {
	data, err := crt.Marshal(nil, crt.Normal8k)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(data), crt.HeaderLen)
}

func TestRomNotAligned(t *testing.T) {
	var b bytes.Buffer
	err := crt.Write(&b, make([]byte, crt.BankSize+1), crt.EasyFlash)
	test.ExpectSuccess(t, curated.Is(err, crt.RomNotAligned))

	// nothing should have been written
	test.ExpectEquality(t, b.Len(), 0)
}

func TestMaxBanks(t *testing.T) {
	data, err := crt.Marshal(numberedROM(crt.MaxBanks), crt.EasyFlash)
	test.DemandSuccess(t, err)

	// the last bank number fits in the single byte
	last := data[len(data)-crt.ChipPacketLen:]
	test.ExpectEquality(t, last[11], uint8(0xff))

	_, err = crt.Marshal(make([]byte, (crt.MaxBanks+1)*crt.BankSize), crt.EasyFlash)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, crt.TooManyBanks))
}

func TestInvalidCartridgeTypeWrite(t *testing.T) {
	_, err := crt.Marshal(numberedROM(1), crt.CartridgeType(99))
	test.ExpectSuccess(t, curated.Is(err, crt.InvalidCartridgeType))
}

type failingWriter struct {
	remaining int
}

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.remaining <= 0 {
		return 0, errors.New("disk full")
	}
	w.remaining--
	return len(p), nil
}

func TestWriteFailure(t *testing.T) {
	// fail on the header and then on each of the chip writes
	for i := 0; i < 5; i++ {
		err := crt.Write(&failingWriter{remaining: i}, numberedROM(2), crt.EasyFlash)
		test.ExpectSuccess(t, curated.Is(err, crt.WriteFailed), i)
		test.ExpectEquality(t, err.Error(), "crt: disk full", i)
	}

	err := crt.Write(&failingWriter{remaining: 5}, numberedROM(2), crt.EasyFlash)
	test.ExpectSuccess(t, err)
}
