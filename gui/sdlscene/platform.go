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
	"fmt"
	"runtime"

	"github.com/jetsetilly/spherefill/logger"
	"github.com/veandco/go-sdl2/sdl"
)

const windowTitle = "Spherefill"

// default window size. 16:9 to match the displays the demo is most likely
// to run on
const (
	windowWidth  = 1280
	windowHeight = 720
)

// the closeController interface is implemented by SDL joysticks and gamepads.
// from our point of view we only need to close the closeController when we
// are done with it
type closeController interface {
	Close()
}

type platform struct {
	window *sdl.Window
	mode   sdl.DisplayMode

	joysticks []closeController
}

// newPlatform is the preferred method of initialisation for the platform type.
func newPlatform() (*platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.Init(sdl.INIT_EVERYTHING)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 3)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 2)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = sdl.GLSetAttribute(sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf("sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	plt := &platform{}

	plt.mode, err = sdl.GetCurrentDisplayMode(0)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	logger.Logf("sdl", "refresh rate: %dHz", plt.mode.RefreshRate)

	plt.window, err = sdl.CreateWindow(windowTitle,
		sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		windowWidth, windowHeight,
		sdl.WINDOW_OPENGL|sdl.WINDOW_ALLOW_HIGHDPI|sdl.WINDOW_RESIZABLE)
	if err != nil {
		sdl.Quit()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	glContext, err := plt.window.GLCreateContext()
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}
	err = plt.window.GLMakeCurrent(glContext)
	if err != nil {
		_ = plt.destroy()
		return nil, fmt.Errorf("sdl: %w", err)
	}

	// add joysticks/gamepads
	for i := 0; i < sdl.NumJoysticks(); i++ {
		pad := sdl.GameControllerOpen(i)
		if pad.Attached() {
			logger.Logf("sdl", "gamepad: %s", pad.Joystick().Name())
			plt.joysticks = append(plt.joysticks, pad)
		} else {
			joy := sdl.JoystickOpen(i)
			if joy.Attached() {
				logger.Logf("sdl", "joystick: %s", joy.Name())
				plt.joysticks = append(plt.joysticks, joy)
			}
		}
	}

	if len(plt.joysticks) == 0 {
		logger.Log("sdl", "no joysticks/gamepads found (keyboard only)")
	}

	return plt, nil
}

// list of swap interval values defined and expected by the
// SDL.GLSetSwapInterval() function
const (
	syncImmediateUpdate     = 0
	syncWithVerticalRetrace = 1
)

func (plt *platform) setSwapInterval(i int) {
	err := sdl.GLSetSwapInterval(i)
	if err != nil {
		logger.Logf("sdl", "GLSetSwapInterval(%d): %s", i, err.Error())
	}
}

// destroy cleans up the resources.
func (plt *platform) destroy() error {
	for _, joy := range plt.joysticks {
		joy.Close()
	}

	if plt.window != nil {
		err := plt.window.Destroy()
		if err != nil {
			return err
		}
		plt.window = nil
	}
	sdl.Quit()

	return nil
}

// framebufferSize returns the dimension of the framebuffer.
func (plt *platform) framebufferSize() (int32, int32) {
	return plt.window.GLGetDrawableSize()
}

// setTitle annotates the window title. an empty annotation restores the
// plain title.
func (plt *platform) setTitle(annotation string) {
	if annotation == "" {
		plt.window.SetTitle(windowTitle)
		return
	}
	plt.window.SetTitle(fmt.Sprintf("%s (%s)", windowTitle, annotation))
}

// postRender performs a buffer swap.
func (plt *platform) postRender() {
	plt.window.GLSwap()
}

// setFullScreen toggles the full screen state.
func (plt *platform) setFullScreen(fullScreen bool) {
	if fullScreen {
		plt.window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP)
	} else {
		plt.window.SetFullscreen(0)
	}
}
