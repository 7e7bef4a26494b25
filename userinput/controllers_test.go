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

package userinput_test

import (
	"testing"

	"github.com/jetsetilly/spherefill/test"
	"github.com/jetsetilly/spherefill/userinput"
)

// records the active state of every action it is sent
type actionRecorder struct {
	active map[userinput.Action]bool
}

func newActionRecorder() *actionRecorder {
	return &actionRecorder{active: make(map[userinput.Action]bool)}
}

func (a *actionRecorder) HandleAction(act userinput.Action, active bool) error {
	a.active[act] = active
	return nil
}

func TestKeyboard(t *testing.T) {
	var c userinput.Controllers
	rec := newActionRecorder()

	handled, err := c.HandleUserInput(userinput.EventKeyboard{Key: "Left", Down: true}, rec)
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, rec.active[userinput.NudgeLeft])

	handled, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Left", Down: false}, rec)
	test.ExpectSuccess(t, handled)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !rec.active[userinput.NudgeLeft])

	// key repeats are ignored. the action state does not churn
	rec.active[userinput.NudgeLeft] = true
	_, err = c.HandleUserInput(userinput.EventKeyboard{Key: "Left", Down: false, Repeat: true}, rec)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, rec.active[userinput.NudgeLeft])
}

func TestDPadDiagonals(t *testing.T) {
	var c userinput.Controllers
	rec := newActionRecorder()

	_, err := c.HandleUserInput(userinput.EventGamepadDPad{Direction: userinput.DPadLeftUp}, rec)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, rec.active[userinput.NudgeLeft])
	test.ExpectSuccess(t, rec.active[userinput.PaintUp])
	test.ExpectSuccess(t, !rec.active[userinput.NudgeRight])
	test.ExpectSuccess(t, !rec.active[userinput.PaintDown])

	// returning the d-pad to centre releases everything
	_, err = c.HandleUserInput(userinput.EventGamepadDPad{Direction: userinput.DPadCentre}, rec)
	test.ExpectSuccess(t, err)
	for _, act := range []userinput.Action{
		userinput.NudgeLeft, userinput.NudgeRight,
		userinput.PaintUp, userinput.PaintDown,
	} {
		test.ExpectSuccess(t, !rec.active[act], act)
	}
}

func TestThumbstickDeadzone(t *testing.T) {
	var c userinput.Controllers
	rec := newActionRecorder()

	// inside the deadzone nothing happens
	_, err := c.HandleUserInput(userinput.EventGamepadThumbstick{Horiz: userinput.StickDeadzone - 1}, rec)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !rec.active[userinput.NudgeRight])

	// beyond the deadzone the action activates
	_, err = c.HandleUserInput(userinput.EventGamepadThumbstick{Horiz: userinput.StickDeadzone + 1}, rec)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, rec.active[userinput.NudgeRight])

	// and releases when the stick returns to centre
	_, err = c.HandleUserInput(userinput.EventGamepadThumbstick{}, rec)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, !rec.active[userinput.NudgeRight])
}

func TestQuitEvents(t *testing.T) {
	var c userinput.Controllers
	rec := newActionRecorder()

	test.ExpectSuccess(t, !c.Quit)

	_, err := c.HandleUserInput(userinput.EventGamepadButton{Button: userinput.GamepadButtonStart, Down: true}, rec)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Quit)

	c.Quit = false
	_, err = c.HandleUserInput(userinput.EventQuit{}, rec)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, c.Quit)
}
