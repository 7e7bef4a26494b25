// This file is part of Spherefill.
//
// Spherefill is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Spherefill is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Spherefill.  If not, see <https://www.gnu.org/licenses/>.

package logger_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/spherefill/logger"
	"github.com/jetsetilly/spherefill/test"
)

// test central logger and the use of the Tail() function
func TestCentralLogger(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Write(w)
	test.ExpectEquality(t, w.String(), "")

	logger.Log("test", "this is a test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\n")

	// clear the strings.Builder buffer before continuing, makes comparisons
	// easier to manage
	w.Reset()

	logger.Log("test2", "this is another test")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for too many entries in a Tail() should be okay
	w.Reset()
	logger.Tail(w, 100)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for exactly the correct number of entries is okay
	w.Reset()
	logger.Tail(w, 2)
	test.ExpectEquality(t, w.String(), "test: this is a test\ntest2: this is another test\n")

	// asking for fewer entries is okay too
	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: this is another test\n")

	// and no entries
	w.Reset()
	logger.Tail(w, 0)
	test.ExpectEquality(t, w.String(), "")
}

// repeated entries are not added again, the previous entry is annotated
// instead
func TestRepeatedEntries(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Log("test", "same detail")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: same detail (repeat x3)\n")

	// a different tag with the same detail is a new entry
	w.Reset()
	logger.Log("test2", "same detail")
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "test2: same detail\n")
}

// newlines are removed from tag and detail strings
func TestNewlineRemoval(t *testing.T) {
	logger.Clear()
	w := &strings.Builder{}

	logger.Logf("test", "multi\nline\ndetail")
	logger.Write(w)
	test.ExpectEquality(t, w.String(), "test: multilinedetail\n")
}

func TestEcho(t *testing.T) {
	logger.Clear()
	w := &test.CompareWriter{}

	logger.SetEcho(w)
	defer logger.SetEcho(nil)

	logger.Log("echo", "echoed entry")
	test.ExpectSuccess(t, w.Compare("echo: echoed entry\n"))
}
