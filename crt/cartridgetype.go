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
	"fmt"
	"strings"

	"github.com/tonnyrh/psprg2crt/curated"
)

// CartridgeType identifies the cartridge hardware that a CRT file is intended
// for.
type CartridgeType int

// List of supported cartridge types.
const (
	Normal8k CartridgeType = iota
	Normal16k
	Ultimax
	OceanType1
	EasyFlash
	EasyFlashXbank
)

// DefaultCartridgeType is used when no type has been specified.
const DefaultCartridgeType = EasyFlash

// Sentinal error patterns.
const (
	InvalidCartridgeType = "crt: unrecognised cartridge type (%v)"
)

type cartridgeInfo struct {
	name        string
	description string
	code        [2]byte

	// alternative names accepted by ParseCartridgeType()
	aliases []string
}

// indexed by CartridgeType.
var registry = [...]cartridgeInfo{
	Normal8k:       {name: "8K", description: "Normal 8k cartridge", code: [2]byte{0x00, 0x00}, aliases: []string{"NORMAL8K", "NORMAL"}},
	Normal16k:      {name: "16K", description: "Normal 16k cartridge", code: [2]byte{0x00, 0x01}, aliases: []string{"NORMAL16K"}},
	Ultimax:        {name: "ULTIMAX", description: "Ultimax cartridge", code: [2]byte{0x00, 0x02}},
	OceanType1:     {name: "OCEAN", description: "Ocean type 1", code: [2]byte{0x00, 0x12}, aliases: []string{"OCEANTYPE1", "OCEAN1"}},
	EasyFlash:      {name: "EASYFLASH", description: "EasyFlash", code: [2]byte{0x00, 0x20}, aliases: []string{"EF"}},
	EasyFlashXbank: {name: "EASYFLASHXBANK", description: "EasyFlash Xbank", code: [2]byte{0x00, 0x21}, aliases: []string{"XBANK", "EFXBANK"}},
}

// CartridgeTypes returns all supported cartridge types in order of their
// hardware code.
func CartridgeTypes() []CartridgeType {
	t := make([]CartridgeType, len(registry))
	for i := range registry {
		t[i] = CartridgeType(i)
	}
	return t
}

// Valid returns false if the value is not one of the listed cartridge types.
func (ct CartridgeType) Valid() bool {
	return ct >= 0 && int(ct) < len(registry)
}

func (ct CartridgeType) String() string {
	if !ct.Valid() {
		return fmt.Sprintf("unknown (%d)", int(ct))
	}
	return registry[ct].name
}

// Description returns a human readable name for the cartridge type.
func (ct CartridgeType) Description() string {
	if !ct.Valid() {
		return ct.String()
	}
	return registry[ct].description
}

// HardwareType returns the two byte code that is stored in the CRT header.
// The value is in the byte order it appears in the file.
//
// Calling HardwareType() on an invalid value will panic. Use Valid() if the
// value has not come from the list of constants or from ParseCartridgeType().
func (ct CartridgeType) HardwareType() [2]byte {
	if !ct.Valid() {
		panic(fmt.Sprintf("crt: no hardware type for %s", ct))
	}
	return registry[ct].code
}

// ParseCartridgeType returns the CartridgeType with the specified name. The
// comparison ignores case, spaces, dashes and underscores. An empty string
// returns DefaultCartridgeType.
func ParseCartridgeType(s string) (CartridgeType, error) {
	n := strings.ToUpper(strings.TrimSpace(s))
	n = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(n)

	if n == "" || n == "AUTO" {
		return DefaultCartridgeType, nil
	}

	for i, c := range registry {
		if n == c.name {
			return CartridgeType(i), nil
		}
		for _, a := range c.aliases {
			if n == a {
				return CartridgeType(i), nil
			}
		}
	}

	return 0, curated.Errorf(InvalidCartridgeType, s)
}

// cartridgeTypeFromCode returns the CartridgeType for a hardware code as it
// appears in a CRT header.
func cartridgeTypeFromCode(code [2]byte) (CartridgeType, bool) {
	for i, c := range registry {
		if c.code == code {
			return CartridgeType(i), true
		}
	}
	return 0, false
}
