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
	"testing"

	"github.com/tonnyrh/psprg2crt/crt"
	"github.com/tonnyrh/psprg2crt/test"
)

func TestBuildROMPadding(t *testing.T) {
	cases := []struct {
		payloadLen int
		romLen     int
	}{
		{0, 0},
		{1, 0x2000},
		{176, 0x2000},
		{0x1fff, 0x2000},
		{0x2000, 0x2000},
		{0x2001, 0x4000},
		{0x6000, 0x6000},
	}

	for _, c := range cases {
		rom := crt.BuildROM(make([]byte, c.payloadLen))
		test.ExpectEquality(t, len(rom), c.romLen, c.payloadLen)
		test.ExpectEquality(t, crt.NumBanks(c.payloadLen), c.romLen/crt.BankSize, c.payloadLen)
	}
}

func TestBuildROMContent(t *testing.T) {
	payload := []byte{1, 2, 3, 4, 5}

	rom := crt.BuildROM(payload)
	test.DemandEquality(t, len(rom), crt.BankSize)
	test.ExpectSuccess(t, bytes.Equal(rom[:len(payload)], payload))

	// padding is zero
	test.ExpectSuccess(t, bytes.Equal(rom[len(payload):], make([]byte, crt.BankSize-len(payload))))

	// the payload is not modified and is not shared with the rom
	rom[0] = 0xff
	test.ExpectEquality(t, payload[0], uint8(1))
}
