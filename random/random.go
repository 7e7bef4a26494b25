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

// Package random wraps the standard library rand package. Randomness
// obtained through this package can be made predictable, which is useful for
// testing purposes.
package random

import (
	"math/rand"
	"time"
)

// the base seed for all random numbers
var baseSeed int64

// initialise base seed
func init() {
	baseSeed = int64(time.Now().Nanosecond())
}

// Random is a random number generator seeded either from the package base
// seed or, for predictable sequences, from zero.
type Random struct {
	rand *rand.Rand
}

// NewRandom is the preferred method of initialisation for the Random type.
func NewRandom() *Random {
	return &Random{
		rand: rand.New(rand.NewSource(baseSeed)),
	}
}

// NewRandomWithSeed creates a Random instance with an explicit seed. Use a
// zero seed where random numbers must be predictable.
func NewRandomWithSeed(seed int64) *Random {
	return &Random{
		rand: rand.New(rand.NewSource(seed)),
	}
}

// Intn returns a random integer in the range [0, n)
func (rnd *Random) Intn(n int) int {
	return rnd.rand.Intn(n)
}
