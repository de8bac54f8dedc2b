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

package convert

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tonnyrh/psprg2crt/crt"
	"github.com/tonnyrh/psprg2crt/crt/loader"
	"github.com/tonnyrh/psprg2crt/curated"
	"github.com/tonnyrh/psprg2crt/logger"
	"github.com/tonnyrh/psprg2crt/prgloader"
)

// Sentinal error patterns.
const (
	OutputWriteFailure = "convert: cannot write output: %v"
	ConversionFailed   = "convert: %v"
)

// Result describes a successful ConvertFile().
type Result struct {
	Input  string
	Output string

	// SHA1 hash of the input
	Hash string

	LoadAddress uint16
	BodyLen     int
	Banks       int

	// length of the CRT file
	Len int
}

func (r Result) String() string {
	return fmt.Sprintf("%s -> %s: load address %#04x, %d bytes, %d banks, %d bytes written",
		r.Input, r.Output, r.LoadAddress, r.BodyLen, r.Banks, r.Len)
}

// Convert the PRG data to a CRT image for the cartridge type.
func Convert(prg []byte, ct crt.CartridgeType) ([]byte, error) {
	payload, err := loader.Payload(prg)
	if err != nil {
		return nil, curated.Errorf(ConversionFailed, err)
	}

	rom := crt.BuildROM(payload)
	logger.Logf(logger.Allow, "convert", "payload of %d bytes padded to %d bytes", len(payload), len(rom))

	data, err := crt.Marshal(rom, ct)
	if err != nil {
		return nil, curated.Errorf(ConversionFailed, err)
	}

	return data, nil
}

// ConvertFile reads the PRG file and writes the CRT file for the cartridge
// type. The input filename can point to a file inside a zip archive.
//
// If the conversion fails for any reason the output file is not created. An
// existing output file is only replaced by a successful conversion.
func ConvertFile(input string, output string, ct crt.CartridgeType) (Result, error) {
	ld := prgloader.NewLoader(input)
	if err := ld.Load(); err != nil {
		return Result{}, curated.Errorf(ConversionFailed, err)
	}

	data, err := Convert(ld.Data, ct)
	if err != nil {
		return Result{}, err
	}

	if err := writeFile(output, data); err != nil {
		return Result{}, curated.Errorf(OutputWriteFailure, err)
	}

	// Convert() has succeeded so the load address must be present
	addr, _ := ld.LoadAddress()

	r := Result{
		Input:       input,
		Output:      output,
		Hash:        ld.Hash,
		LoadAddress: addr,
		BodyLen:     len(ld.Data) - 2,
		Banks:       (len(data) - crt.HeaderLen) / crt.ChipPacketLen,
		Len:         len(data),
	}

	logger.Log(logger.Allow, "convert", r)

	return r, nil
}

// writeFile writes the data to a temporary file in the same directory as the
// output file and then renames the temporary file. The temporary file is
// removed on failure.
func writeFile(output string, data []byte) (rerr error) {
	f, err := os.CreateTemp(filepath.Dir(output), fmt.Sprintf(".%s.*", filepath.Base(output)))
	if err != nil {
		return err
	}

	defer func() {
		if rerr != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), output)
}
