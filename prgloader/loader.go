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

package prgloader

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tonnyrh/psprg2crt/archivefs"
	"github.com/tonnyrh/psprg2crt/curated"
	"github.com/tonnyrh/psprg2crt/logger"
)

// Sentinal error patterns.
const (
	InputNotFound   = "prgloader: file not found (%s)"
	InputUnreadable = "prgloader: %v"
	UnexpectedHash  = "prgloader: unexpected hash value (%s)"
)

// FileExtensions is the list of file extensions that are usually used for
// PRG files. Files with other extensions are still loaded.
var FileExtensions = [...]string{".PRG", ".P00", ".BIN"}

// Loader is used to specify the PRG file to load.
type Loader struct {
	// filename of the PRG file. can point to a file inside a zip archive
	Filename string

	// expected SHA1 hash of the PRG data. empty string indicates that the
	// hash is unknown and need not be validated. after a load operation the
	// value will be the hash of the loaded data
	Hash string

	// copy of the loaded data
	Data []byte
}

// NewLoader is the preferred method of initialisation for the Loader type.
func NewLoader(filename string) Loader {
	return Loader{
		Filename: strings.TrimSpace(filename),
	}
}

// ShortName returns the filename without the path or the file extension.
// The name of a file inside an archive does not include the archive name.
func (ld Loader) ShortName() string {
	s := filepath.Base(archivefs.TrimArchiveExt(ld.Filename))
	return strings.TrimSuffix(s, filepath.Ext(s))
}

// HasLoaded returns true if Load() has been successfully called.
func (ld Loader) HasLoaded() bool {
	return ld.Data != nil
}

// LoadAddress returns the address the PRG data expects to be loaded at.
// Returns false if there is not enough data for a load address.
func (ld Loader) LoadAddress() (uint16, bool) {
	if len(ld.Data) < 2 {
		return 0, false
	}
	return binary.LittleEndian.Uint16(ld.Data), true
}

// Load the PRG data from the file. Calling Load() again after a successful
// load does nothing.
func (ld *Loader) Load() error {
	if ld.HasLoaded() {
		return nil
	}

	data, err := archivefs.ReadFile(ld.Filename)
	if err != nil {
		if archivefs.IsNotExist(err) {
			return curated.Errorf(InputNotFound, ld.Filename)
		}
		return curated.Errorf(InputUnreadable, err)
	}

	hash := fmt.Sprintf("%x", sha1.Sum(data))
	if ld.Hash != "" && ld.Hash != hash {
		return curated.Errorf(UnexpectedHash, hash)
	}

	ld.Hash = hash
	ld.Data = data

	if addr, ok := ld.LoadAddress(); ok {
		logger.Logf(logger.Allow, "prgloader", "%s: %d bytes, load address %#04x", ld.ShortName(), len(data), addr)
	} else {
		logger.Logf(logger.Allow, "prgloader", "%s: %d bytes, no load address", ld.ShortName(), len(data))
	}

	return nil
}
