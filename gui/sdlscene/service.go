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

package sdlscene

import (
	"github.com/jetsetilly/spherefill/logger"
	"github.com/jetsetilly/spherefill/userinput"
	"github.com/veandco/go-sdl2/sdl"
)

// serviceEvents polls SDL for pending events and forwards them to the scene
// via the userinput translation layer.
func (sdlscn *SdlScene) serviceEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			sdlscn.forward(userinput.EventQuit{})

		case *sdl.KeyboardEvent:
			sdlscn.serviceKeyboard(ev)

		case *sdl.JoyHatEvent:
			sdlscn.forward(userinput.EventGamepadDPad{
				Direction: hatDirection(ev.Value),
			})

		case *sdl.JoyButtonEvent:
			button := userinput.GamepadButtonNone
			switch ev.Button {
			case 6:
				button = userinput.GamepadButtonBack
			case 7:
				button = userinput.GamepadButtonStart
			}
			if button != userinput.GamepadButtonNone {
				sdlscn.forward(userinput.EventGamepadButton{
					Button: button,
					Down:   ev.State == sdl.PRESSED,
				})
			}

		case *sdl.JoyAxisEvent:
			switch ev.Axis {
			case 0:
				sdlscn.stickHoriz = ev.Value
			case 1:
				sdlscn.stickVert = ev.Value
			default:
				continue
			}
			sdlscn.forward(userinput.EventGamepadThumbstick{
				Horiz: sdlscn.stickHoriz,
				Vert:  sdlscn.stickVert,
			})
		}
	}
}

func (sdlscn *SdlScene) serviceKeyboard(ev *sdl.KeyboardEvent) {
	sdlscn.forward(userinput.EventKeyboard{
		Key:    sdl.GetKeyName(ev.Keysym.Sym),
		Down:   ev.Type == sdl.KEYDOWN,
		Repeat: ev.Repeat != 0,
	})
}

// forward hands the event to the controllers translation layer. errors are
// logged rather than returned because nothing in the service loop can act on
// them.
func (sdlscn *SdlScene) forward(ev userinput.Event) {
	_, err := sdlscn.controllers.HandleUserInput(ev, sdlscn.scene)
	if err != nil {
		logger.Logf("sdl", "%s", err.Error())
	}
}

// hatDirection converts an SDL hat value to a DPadDirection.
func hatDirection(value uint8) userinput.DPadDirection {
	switch value {
	case sdl.HAT_CENTERED:
		return userinput.DPadCentre
	case sdl.HAT_UP:
		return userinput.DPadUp
	case sdl.HAT_DOWN:
		return userinput.DPadDown
	case sdl.HAT_LEFT:
		return userinput.DPadLeft
	case sdl.HAT_RIGHT:
		return userinput.DPadRight
	case sdl.HAT_LEFTUP:
		return userinput.DPadLeftUp
	case sdl.HAT_LEFTDOWN:
		return userinput.DPadLeftDown
	case sdl.HAT_RIGHTUP:
		return userinput.DPadRightUp
	case sdl.HAT_RIGHTDOWN:
		return userinput.DPadRightDown
	}
	return userinput.DPadNone
}
