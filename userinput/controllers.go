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

// Controllers keeps track of userinput options and state.
type Controllers struct {
	// thumbstick state from the previous event. required so that an action
	// can be released when the stick returns inside the deadzone
	stickLeft  bool
	stickRight bool
	stickUp    bool
	stickDown  bool

	// is true if last event was a quit event
	Quit bool
}

func (c *Controllers) keyboard(ev EventKeyboard, handle HandleInput) error {
	if ev.Repeat {
		return nil
	}

	switch ev.Key {
	case "Left":
		return handle.HandleAction(NudgeLeft, ev.Down)
	case "Right":
		return handle.HandleAction(NudgeRight, ev.Down)
	case "Up":
		return handle.HandleAction(PaintUp, ev.Down)
	case "Down":
		return handle.HandleAction(PaintDown, ev.Down)
	case "Backspace":
		if ev.Down {
			return handle.HandleAction(ResetView, true)
		}
	case "Escape":
		if ev.Down {
			c.Quit = true
		}
	}

	return nil
}

func (c *Controllers) gamepadDPad(ev EventGamepadDPad, handle HandleInput) error {
	// the d-pad reports a single direction so every action is resolved from
	// each event. diagonals activate two actions at once
	var left, right, up, down bool

	switch ev.Direction {
	case DPadUp:
		up = true
	case DPadDown:
		down = true
	case DPadLeft:
		left = true
	case DPadRight:
		right = true
	case DPadLeftUp:
		left = true
		up = true
	case DPadLeftDown:
		left = true
		down = true
	case DPadRightUp:
		right = true
		up = true
	case DPadRightDown:
		right = true
		down = true
	case DPadCentre:
		// all actions released
	}

	for _, h := range []struct {
		act    Action
		active bool
	}{
		{NudgeLeft, left},
		{NudgeRight, right},
		{PaintUp, up},
		{PaintDown, down},
	} {
		if err := handle.HandleAction(h.act, h.active); err != nil {
			return err
		}
	}

	return nil
}

func (c *Controllers) gamepadButton(ev EventGamepadButton, handle HandleInput) error {
	switch ev.Button {
	case GamepadButtonStart:
		if ev.Down {
			c.Quit = true
		}
	case GamepadButtonBack:
		if ev.Down {
			return handle.HandleAction(ResetView, true)
		}
	}
	return nil
}

func (c *Controllers) gamepadThumbstick(ev EventGamepadThumbstick, handle HandleInput) error {
	left := ev.Horiz < -StickDeadzone
	right := ev.Horiz > StickDeadzone
	up := ev.Vert < -StickDeadzone
	down := ev.Vert > StickDeadzone

	// only forward changes of state. without this the stream of thumbstick
	// motion events would spam the handler
	for _, h := range []struct {
		act    Action
		active bool
		prev   *bool
	}{
		{NudgeLeft, left, &c.stickLeft},
		{NudgeRight, right, &c.stickRight},
		{PaintUp, up, &c.stickUp},
		{PaintDown, down, &c.stickDown},
	} {
		if h.active != *h.prev {
			*h.prev = h.active
			if err := handle.HandleAction(h.act, h.active); err != nil {
				return err
			}
		}
	}

	return nil
}

// HandleUserInput deciphers an Event and forwards the input to the HandleInput
// implementation. Returns true if the event was handled and false if not.
func (c *Controllers) HandleUserInput(ev Event, handle HandleInput) (bool, error) {
	switch ev := ev.(type) {
	case EventQuit:
		c.Quit = true
	case EventKeyboard:
		return true, c.keyboard(ev, handle)
	case EventGamepadDPad:
		return true, c.gamepadDPad(ev, handle)
	case EventGamepadButton:
		return true, c.gamepadButton(ev, handle)
	case EventGamepadThumbstick:
		return true, c.gamepadThumbstick(ev, handle)
	default:
		return false, nil
	}

	return true, nil
}
