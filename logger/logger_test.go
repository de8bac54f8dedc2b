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

package logger_test

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/tonnyrh/psprg2crt/logger"
	"github.com/tonnyrh/psprg2crt/test"
)

func TestLogger(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Write(w)
	test.ExpectEquality(t, w.String(), "")

	log.Log(logger.Allow, "test", "this is a test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the buffer before continuing, makes comparisons easier to manage
	w.Reset()

	log.Log(logger.Allow, "test2", "this is another test")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	log.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	log.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	log.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	log.Log(logger.Allow, "crt", "bank 0")
	log.Log(logger.Allow, "crt", "bank 0")
	log.Log(logger.Allow, "crt", "bank 0")
	log.Write(w)
	test.ExpectEquality(t, w.String(), "crt: bank 0 (repeat x3)\n")
}

func TestMaxEntries(t *testing.T) {
	log := logger.NewLogger(2)
	w := &strings.Builder{}

	log.Log(logger.Allow, "a", 1)
	log.Log(logger.Allow, "b", 2)
	log.Log(logger.Allow, "c", 3)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "b: 2\nc: 3\n")
}

type prohibitLogging struct {
	allow int
}

func (p prohibitLogging) AllowLogging() bool {
	return p.allow > 50
}

func TestPermissions(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	var p prohibitLogging

	for i := 0; i < 100; i++ {
		p.allow = rand.Intn(100)
		log.Clear()
		w.Reset()
		log.Log(p, "tag", "detail")
		log.Write(w)
		if p.AllowLogging() {
			test.ExpectEquality(t, w.String(), "tag: detail\n")
		} else {
			test.ExpectEquality(t, w.String(), "")
		}
	}
}

func TestErrorLogging(t *testing.T) {
	log := logger.NewLogger(100)
	w := &strings.Builder{}

	err := errors.New("test error")

	log.Log(logger.Allow, "tag", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: test error\n")

	log.Clear()
	w.Reset()

	log.Logf(logger.Allow, "tag", "wrapped: %v", err)
	log.Write(w)
	test.ExpectEquality(t, w.String(), "tag: wrapped: test error\n")
}

func TestEcho(t *testing.T) {
	log := logger.NewLogger(100)
	cw := &test.CompareWriter{}

	log.Log(logger.Allow, "before", "echo")

	log.SetEcho(cw, false)
	test.ExpectSuccess(t, cw.Compare(""))

	log.Log(logger.Allow, "during", "echo")
	test.ExpectSuccess(t, cw.Compare("during: echo\n"))

	cw.Clear()
	log.SetEcho(cw, true)
	test.ExpectSuccess(t, cw.Compare("before: echo\nduring: echo\n"))

	cw.Clear()
	log.SetEcho(nil, false)
	log.Log(logger.Allow, "after", "echo")
	test.ExpectSuccess(t, cw.Compare(""))
}

func TestColorizer(t *testing.T) {
	cw := &test.CompareWriter{}
	c := logger.NewColorizer(cw)

	n, err := c.Write([]byte("crt: 2 banks\n"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, len("crt: 2 banks\n"))
	test.ExpectSuccess(t, strings.HasSuffix(cw.String(), ": 2 banks\n"))
	test.ExpectSuccess(t, strings.Contains(cw.String(), "crt"))
	test.ExpectSuccess(t, strings.HasPrefix(cw.String(), "\033["))

	// lines without a tag are passed through untouched
	cw.Clear()
	_, err = c.Write([]byte("no tag\n"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, cw.Compare("no tag\n"))
}
