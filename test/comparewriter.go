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

package test

// CompareWriter is an implementation of io.Writer that buffers everything
// written to it. It should be used to capture output for comparison with an
// expected string.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (cw *CompareWriter) Write(p []byte) (n int, err error) {
	cw.buffer = append(cw.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (cw *CompareWriter) Clear() {
	cw.buffer = cw.buffer[:0]
}

// Compare buffered output with the expected string.
func (cw *CompareWriter) Compare(s string) bool {
	return s == string(cw.buffer)
}

func (cw *CompareWriter) String() string {
	return string(cw.buffer)
}
