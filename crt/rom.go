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

// BankSize is the size of a single bank of cartridge ROM.
const BankSize = 0x2000

// BuildROM returns a copy of the payload, padded with zero bytes so that the
// length is a multiple of BankSize. A payload that is already a multiple of
// BankSize is copied without padding.
func BuildROM(payload []byte) []byte {
	n := len(payload)
	if r := n % BankSize; r != 0 {
		n += BankSize - r
	}

	rom := make([]byte, n)
	copy(rom, payload)
	return rom
}

// NumBanks returns the number of banks required for a ROM of the specified
// length.
func NumBanks(romLen int) int {
	return (romLen + BankSize - 1) / BankSize
}
