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

// Event represents the possible type of user input events.
type Event interface{}

// EventQuit is sent when the GUI window is closed.
type EventQuit struct{}

// EventKeyboard is the data for a keyboard event.
type EventKeyboard struct {
	Key    string
	Down   bool
	Repeat bool
}

// DPadDirection is the direction of the gamepad d-pad.
type DPadDirection int

// List of valid DPadDirection values.
const (
	DPadNone DPadDirection = iota
	DPadCentre
	DPadUp
	DPadDown
	DPadLeft
	DPadRight
	DPadLeftUp
	DPadLeftDown
	DPadRightUp
	DPadRightDown
)

// EventGamepadDPad is the data for a gamepad d-pad event.
type EventGamepadDPad struct {
	Direction DPadDirection
}

// GamepadButton is the identity of a gamepad button.
type GamepadButton int

// List of valid GamepadButton values.
const (
	GamepadButtonNone GamepadButton = iota
	GamepadButtonStart
	GamepadButtonBack
)

// EventGamepadButton is the data for a gamepad button event.
type EventGamepadButton struct {
	Button GamepadButton
	Down   bool
}

// StickDeadzone is the sensitivity of the thumbstick before it is
// acknowledged as an input.
const StickDeadzone = 10000

// EventGamepadThumbstick is the data for a gamepad thumbstick event.
type EventGamepadThumbstick struct {
	Horiz int16
	Vert  int16
}
