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

package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Choice is one of the selectable fill target colors.
type Choice int

// List of valid Choice values. Red is the neutral choice, selected when no
// paint direction is held.
const (
	Red Choice = iota
	Green
	Blue
)

// Color returns the RGB value for the choice.
func (c Choice) Color() mgl32.Vec3 {
	switch c {
	case Green:
		return mgl32.Vec3{0.0, 1.0, 0.0}
	case Blue:
		return mgl32.Vec3{0.0, 0.0, 1.0}
	}
	return mgl32.Vec3{1.0, 0.0, 0.0}
}

func (c Choice) String() string {
	switch c {
	case Green:
		return "green"
	case Blue:
		return "blue"
	}
	return "red"
}
