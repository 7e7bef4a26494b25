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

package userinput

// Action is one of the demo inputs that can be held or released.
type Action int

// List of valid Action values. The nudge actions rotate/translate the sphere
// while held. The paint actions choose the fill target color while held; with
// neither held the neutral color is selected.
const (
	NudgeLeft Action = iota
	NudgeRight
	PaintUp
	PaintDown
	ResetView
)

// HandleInput conceptualises input actions being sent to the demo scene.
type HandleInput interface {
	// HandleAction marks an action as active or inactive. For momentary
	// actions such as ResetView only the active state is ever sent.
	HandleAction(act Action, active bool) error
}
