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

package archivefs

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Path represents a single destination in the file system. The zero value is
// ready to use with Set().
type Path struct {
	current string
	isDir   bool

	zf *zip.ReadCloser

	// if the path is inside a zip file, the in-zip path is split into the
	// directory and the file. zip files always use forward slashes
	inZipPath string
	inZipFile string
}

// String returns the current path.
func (afs Path) String() string {
	return afs.current
}

// Base returns the last element of the current path.
func (afs Path) Base() string {
	return filepath.Base(afs.current)
}

// IsDir returns true if Path is currently set to a directory. The root of an
// archive is treated as a directory.
func (afs Path) IsDir() bool {
	return afs.isDir
}

// InArchive returns true if path is currently inside an archive.
func (afs Path) InArchive() bool {
	return afs.zf != nil
}

// Open the file previously set by the Set() function. The returned
// io.ReadCloser must be closed by the caller.
func (afs Path) Open() (io.ReadCloser, error) {
	if afs.isDir {
		return nil, fmt.Errorf("archivefs: open: %s is a directory", afs.current)
	}

	if afs.zf != nil {
		f, err := afs.zf.Open(path.Join(afs.inZipPath, afs.inZipFile))
		if err != nil {
			return nil, fmt.Errorf("archivefs: open: %w", err)
		}
		return f, nil
	}

	f, err := os.Open(afs.current)
	if err != nil {
		return nil, fmt.Errorf("archivefs: open: %w", err)
	}
	return f, nil
}

// Close any open zip files and reset path.
func (afs *Path) Close() {
	afs.current = ""
	afs.isDir = false
	afs.inZipPath = ""
	afs.inZipFile = ""
	if afs.zf != nil {
		afs.zf.Close()
		afs.zf = nil
	}
}

// Set the path. Each element of the path is checked in turn. When an element
// is a zip archive the remaining elements are looked for inside the archive.
func (afs *Path) Set(pth string) error {
	afs.Close()

	pth = filepath.Clean(pth)
	lst := strings.Split(pth, string(filepath.Separator))

	// strings.Split() removes a leading separator. we need to add one back so
	// that filepath.Join() works as expected
	if lst[0] == "" {
		lst[0] = string(filepath.Separator)
	}

	var current string

	for _, l := range lst {
		current = filepath.Join(current, l)

		if afs.zf != nil {
			p := path.Join(afs.inZipPath, l)

			zf, err := afs.zf.Open(p)
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			zfi, err := zf.Stat()
			zf.Close()
			if err != nil {
				afs.Close()
				return fmt.Errorf("archivefs: set: %w", err)
			}

			afs.isDir = zfi.IsDir()
			if afs.isDir {
				afs.inZipPath = p
				afs.inZipFile = ""
			} else {
				afs.inZipFile = l
			}

			continue
		}

		fi, err := os.Stat(current)
		if err != nil {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}

		afs.isDir = fi.IsDir()
		if afs.isDir {
			continue
		}

		afs.zf, err = zip.OpenReader(current)
		if err == nil {
			// the root of an archive file is considered to be a directory
			afs.isDir = true
			continue
		}

		if !errors.Is(err, zip.ErrFormat) {
			afs.Close()
			return fmt.Errorf("archivefs: set: %w", err)
		}

		// a regular file must be the last element of the path
		afs.zf = nil
	}

	afs.current = current

	return nil
}

// IsNotExist returns true if the error indicates that a path could not be
// found, either on disk or inside an archive.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
