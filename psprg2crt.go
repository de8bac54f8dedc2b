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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/tonnyrh/psprg2crt/archivefs"
	"github.com/tonnyrh/psprg2crt/convert"
	"github.com/tonnyrh/psprg2crt/crt"
	"github.com/tonnyrh/psprg2crt/logger"
	"github.com/tonnyrh/psprg2crt/modalflag"
	"github.com/tonnyrh/psprg2crt/prgloader"
	"github.com/tonnyrh/psprg2crt/version"
)

// exit values.
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. returns the value
// to use with os.Exit().
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("CONVERT", "INFO", "TYPES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "CONVERT":
		err = convertMode(md, output)

	case "INFO":
		err = infoMode(md, output)

	case "TYPES":
		err = typesMode(md, output)

	case "VERSION":
		err = versionMode(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return exitOK
}

// typesHelp lists the cartridge types for the help message of CONVERT mode.
func typesHelp() string {
	var s strings.Builder
	s.WriteString("cartridge types:")
	for _, ct := range crt.CartridgeTypes() {
		s.WriteString(" ")
		s.WriteString(ct.String())
	}
	return s.String()
}

func convertMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	md.AdditionalHelp(typesHelp())

	cartType := md.AddString("type", crt.DefaultCartridgeType.String(), "cartridge type")
	log := md.AddBool("log", false, "echo log to stdout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		if f, ok := output.(*os.File); ok {
			logger.SetEchoFile(f, false)
		} else {
			logger.SetEcho(output, false)
		}
		defer logger.SetEcho(nil, false)
	}

	ct, err := crt.ParseCartridgeType(*cartType)
	if err != nil {
		return err
	}

	var input, out string

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("prg file required for %s mode", md)
	case 1:
		input = md.GetArg(0)
		out = fmt.Sprintf("%s.crt", prgloader.NewLoader(input).ShortName())
	case 2:
		input = md.GetArg(0)
		out = md.GetArg(1)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if !hasPRGExtension(input) {
		logger.Logf(logger.Allow, "convert", "%s does not have a recognised prg extension", filepath.Base(input))
	}

	r, err := convert.ConvertFile(input, out, ct)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s cartridge written to %s (%d banks)\n", ct.Description(), r.Output, r.Banks)

	return nil
}

func hasPRGExtension(filename string) bool {
	ext := strings.ToUpper(filepath.Ext(filename))
	for _, e := range prgloader.FileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// the information given to memviz. the ROM data is left out because memviz
// would draw a node for every byte.
type chipSummary struct {
	Bank        uint16
	Type        uint16
	LoadAddress uint16
	Size        int
}

type crtSummary struct {
	Header crt.Header
	Chips  []chipSummary
}

func infoMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	memvizFile := md.AddString("memviz", "", "write graphviz description of the file structure")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("crt file required for %s mode", md)
	case 1:
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	data, err := archivefs.ReadFile(md.GetArg(0))
	if err != nil {
		return err
	}

	f, err := crt.Parse(data)
	if err != nil {
		return err
	}

	io.WriteString(output, f.String())

	if *memvizFile != "" {
		s := crtSummary{Header: f.Header}
		for _, c := range f.Chips {
			s.Chips = append(s.Chips, chipSummary{
				Bank:        c.Bank,
				Type:        c.Type,
				LoadAddress: c.LoadAddress,
				Size:        len(c.Data),
			})
		}

		mv, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer mv.Close()

		memviz.Map(mv, &s)
	}

	return nil
}

func typesMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	for _, ct := range crt.CartridgeTypes() {
		code := ct.HardwareType()
		fmt.Fprintf(output, "%-15s %02x%02x  %s\n", ct, code[0], code[1], ct.Description())
	}

	return nil
}

func versionMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.String())
	if *revision {
		_, r, _ := version.Version()
		fmt.Fprintf(output, "revision: %s\n", r)
	}

	return nil
}
