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

package random_test

import (
	"testing"

	"github.com/jetsetilly/spherefill/random"
	"github.com/jetsetilly/spherefill/test"
)

func TestRandom(t *testing.T) {
	a := random.NewRandomWithSeed(0)
	b := random.NewRandomWithSeed(0)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i), b.Intn(i))
	}
}

func TestRange(t *testing.T) {
	rnd := random.NewRandom()

	for i := 0; i < 1000; i++ {
		v := rnd.Intn(720)
		test.ExpectSuccess(t, v >= 0 && v < 720)
	}
}
