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

// Package sdlscene is the SDL2/OpenGL implementation of the demo GUI. The
// Service() function is called repeatedly from the main thread; each call is
// one frame: input events are polled and forwarded to the scene, the scene
// is advanced, the mesh is uploaded and drawn, and the buffers swapped.
package sdlscene

import (
	"fmt"
	"io"
	"time"

	"github.com/jetsetilly/spherefill/fill"
	"github.com/jetsetilly/spherefill/gui"
	"github.com/jetsetilly/spherefill/logger"
	"github.com/jetsetilly/spherefill/performance/limiter"
	"github.com/jetsetilly/spherefill/scene"
	"github.com/jetsetilly/spherefill/userinput"
)

// the default rate the demo runs at when the fps cap is enabled
const defaultFPS = 60

// SdlScene is the top level type of the SDL GUI.
type SdlScene struct {
	plt  *platform
	rend *renderer

	scene       *scene.Scene
	controllers userinput.Controllers

	// most recent thumbstick axis values. SDL reports each axis separately
	// but the scene wants to see the stick position as a whole
	stickHoriz int16
	stickVert  int16

	// how many vertices the fill animation paints per frame
	batch int

	// frame rate limiting. used when the fps cap is enabled in preference to
	// waiting on the vertical retrace
	lmtr      *limiter.FpsLimiter
	fpsCapped bool

	// notified when the user asks to quit
	quit     chan<- struct{}
	quitSent bool

	// frame counting for the window title annotation
	frameCount  int
	lastTitling time.Time

	// whether the fill animation had completed by the end of the previous
	// frame. used to log the completion event exactly once per pass
	wasComplete bool
}

// NewSdlScene is the preferred method of initialisation for the SdlScene
// type. A single value is sent on the quit channel when the user asks for
// the demo to end.
func NewSdlScene(scn *scene.Scene, batch int, quit chan<- struct{}) (*SdlScene, error) {
	if batch < 1 {
		batch = fill.DefaultBatchSize
	}

	sdlscn := &SdlScene{
		scene:       scn,
		batch:       batch,
		quit:        quit,
		lastTitling: time.Now(),
	}

	var err error

	sdlscn.plt, err = newPlatform()
	if err != nil {
		return nil, fmt.Errorf("sdlscene: %w", err)
	}

	sdlscn.rend = newRenderer(sdlscn)
	err = sdlscn.rend.start()
	if err != nil {
		_ = sdlscn.plt.destroy()
		return nil, fmt.Errorf("sdlscene: %w", err)
	}

	// synchronise with the monitor by default
	sdlscn.plt.setSwapInterval(syncWithVerticalRetrace)

	sdlscn.lmtr, err = limiter.NewFPSLimiter(defaultFPS)
	if err != nil {
		_ = sdlscn.plt.destroy()
		return nil, fmt.Errorf("sdlscene: %w", err)
	}

	return sdlscn, nil
}

// Destroy implements the GuiCreator interface.
func (sdlscn *SdlScene) Destroy(output io.Writer) {
	sdlscn.rend.destroy()
	err := sdlscn.plt.destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}
}

// SetFeature implements the gui.GUI interface.
func (sdlscn *SdlScene) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	switch request {
	case gui.ReqFullScreen:
		if len(args) != 1 {
			return fmt.Errorf("sdlscene: %s: wrong number of arguments", request)
		}
		sdlscn.plt.setFullScreen(args[0].(bool))

	case gui.ReqFPSCap:
		if len(args) != 1 {
			return fmt.Errorf("sdlscene: %s: wrong number of arguments", request)
		}
		sdlscn.fpsCapped = args[0].(bool)
		if sdlscn.fpsCapped {
			// the limiter is responsible for pacing so the buffer swap must
			// not block
			sdlscn.plt.setSwapInterval(syncImmediateUpdate)
		} else {
			sdlscn.plt.setSwapInterval(syncWithVerticalRetrace)
		}

	case gui.ReqFPS:
		if len(args) != 1 {
			return fmt.Errorf("sdlscene: %s: wrong number of arguments", request)
		}
		sdlscn.lmtr.SetLimit(args[0].(int))

	default:
		return fmt.Errorf("sdlscene: %w", gui.UnsupportedGuiFeature(request))
	}

	return nil
}

// Service implements the GuiCreator interface. It must only be called from
// the main thread.
func (sdlscn *SdlScene) Service() {
	sdlscn.serviceEvents()

	if sdlscn.controllers.Quit && !sdlscn.quitSent {
		sdlscn.quitSent = true
		select {
		case sdlscn.quit <- struct{}{}:
		default:
		}
		return
	}

	sdlscn.scene.Update(sdlscn.batch)
	sdlscn.logCompletion()

	sdlscn.rend.render()

	if sdlscn.fpsCapped {
		sdlscn.lmtr.Wait()
	}
	sdlscn.plt.postRender()

	sdlscn.titleFrameRate()
}

// log the completion of a fill pass, once per pass.
func (sdlscn *SdlScene) logCompletion() {
	complete := sdlscn.scene.Animator().Complete()
	if complete && !sdlscn.wasComplete {
		logger.Logf("scene", "fill complete: %s", sdlscn.scene.Selected())
	}
	sdlscn.wasComplete = complete
}

// annotate the window title with the measured frame rate. updated once per
// second.
func (sdlscn *SdlScene) titleFrameRate() {
	sdlscn.frameCount++

	elapsed := time.Since(sdlscn.lastTitling)
	if elapsed < time.Second {
		return
	}

	fps := float64(sdlscn.frameCount) / elapsed.Seconds()
	sdlscn.plt.setTitle(fmt.Sprintf("%.1f fps", fps))

	sdlscn.frameCount = 0
	sdlscn.lastTitling = time.Now()
}
