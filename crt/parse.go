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
	"fmt"
	"sort"
	"strings"

	"github.com/tonnyrh/psprg2crt/curated"
)

// Sentinal error patterns.
const (
	InvalidCRT = "crt: invalid file: %v"
)

// Header is the global header of a CRT file.
type Header struct {
	Signature    string
	HeaderLen    uint32
	Version      uint16
	HardwareType [2]byte
	EXROM        uint8
	GAME         uint8
	Name         string
}

// Chip is a single CHIP packet from a CRT file.
type Chip struct {
	PacketLen   uint32
	Type        uint16
	Bank        uint16
	LoadAddress uint16
	Data        []byte
}

func (c Chip) String() string {
	return fmt.Sprintf("bank %d: type %#04x, load %#04x, size %#04x", c.Bank, c.Type, c.LoadAddress, len(c.Data))
}

// File is a parsed CRT file.
type File struct {
	Header Header
	Chips  []Chip
}

// Parse the data as a CRT file. The data in each Chip refers to the data
// passed to Parse().
func Parse(data []byte) (*File, error) {
	if len(data) < HeaderLen {
		return nil, curated.Errorf(InvalidCRT, fmt.Sprintf("file is too short for header (%d bytes)", len(data)))
	}

	f := &File{}
	h := &f.Header

	h.Signature = string(data[0x00:0x10])
	if h.Signature != Signature {
		return nil, curated.Errorf(InvalidCRT, fmt.Sprintf("unexpected signature (%q)", h.Signature))
	}

	h.HeaderLen = binary.BigEndian.Uint32(data[0x10:])
	if h.HeaderLen < HeaderLen || int64(h.HeaderLen) > int64(len(data)) {
		return nil, curated.Errorf(InvalidCRT, fmt.Sprintf("unexpected header length (%#x)", h.HeaderLen))
	}

	h.Version = binary.BigEndian.Uint16(data[0x14:])
	copy(h.HardwareType[:], data[0x16:0x18])
	h.EXROM = data[0x18]
	h.GAME = data[0x19]
	h.Name = strings.TrimRight(string(data[0x20:0x40]), "\x00")

	offset := int(h.HeaderLen)
	for offset < len(data) {
		if len(data)-offset < ChipHeaderLen {
			return nil, curated.Errorf(InvalidCRT, fmt.Sprintf("truncated chip header at %#x", offset))
		}

		p := data[offset:]
		if !bytes.Equal(p[:4], []byte(ChipSignature)) {
			return nil, curated.Errorf(InvalidCRT, fmt.Sprintf("missing chip signature at %#x", offset))
		}

		c := Chip{
			PacketLen:   binary.BigEndian.Uint32(p[0x04:]),
			Type:        binary.BigEndian.Uint16(p[0x08:]),
			Bank:        binary.BigEndian.Uint16(p[0x0a:]),
			LoadAddress: binary.BigEndian.Uint16(p[0x0c:]),
		}
		size := int(binary.BigEndian.Uint16(p[0x0e:]))

		if c.PacketLen < ChipHeaderLen || int64(c.PacketLen) > int64(len(p)) {
			return nil, curated.Errorf(InvalidCRT, fmt.Sprintf("bad packet length (%#x) at %#x", c.PacketLen, offset))
		}
		if ChipHeaderLen+size > int(c.PacketLen) {
			return nil, curated.Errorf(InvalidCRT, fmt.Sprintf("rom size (%#x) larger than packet at %#x", size, offset))
		}

		c.Data = p[ChipHeaderLen : ChipHeaderLen+size]
		f.Chips = append(f.Chips, c)

		offset += int(c.PacketLen)
	}

	return f, nil
}

// CartridgeType returns the type of the cartridge as indicated by the
// header. Returns false if the hardware type is not supported by this
// package.
func (f *File) CartridgeType() (CartridgeType, bool) {
	return cartridgeTypeFromCode(f.Header.HardwareType)
}

// ROM returns the data of every chip joined together in order of bank
// number.
func (f *File) ROM() []byte {
	chips := make([]Chip, len(f.Chips))
	copy(chips, f.Chips)
	sort.SliceStable(chips, func(i, j int) bool {
		return chips[i].Bank < chips[j].Bank
	})

	var rom []byte
	for _, c := range chips {
		rom = append(rom, c.Data...)
	}
	return rom
}

func (f *File) String() string {
	var s strings.Builder

	ct, ok := f.CartridgeType()
	if ok {
		s.WriteString(fmt.Sprintf("%s (%02x%02x)\n", ct.Description(), f.Header.HardwareType[0], f.Header.HardwareType[1]))
	} else {
		s.WriteString(fmt.Sprintf("unsupported hardware type (%02x%02x)\n", f.Header.HardwareType[0], f.Header.HardwareType[1]))
	}

	s.WriteString(fmt.Sprintf("version %d.%d, EXROM %d, GAME %d\n", f.Header.Version>>8, f.Header.Version&0xff, f.Header.EXROM, f.Header.GAME))
	if f.Header.Name != "" {
		s.WriteString(fmt.Sprintf("name: %s\n", f.Header.Name))
	}

	for _, c := range f.Chips {
		s.WriteString(c.String())
		s.WriteString("\n")
	}

	return s.String()
}
