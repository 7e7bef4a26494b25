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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/jetsetilly/spherefill/fill"
	"github.com/jetsetilly/spherefill/gui"
	"github.com/jetsetilly/spherefill/gui/sdlscene"
	"github.com/jetsetilly/spherefill/logger"
	"github.com/jetsetilly/spherefill/performance"
	"github.com/jetsetilly/spherefill/random"
	"github.com/jetsetilly/spherefill/scene"
	"github.com/jetsetilly/spherefill/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// GuiCreator facilitates the creation, servicing and destruction of GUIs
// that need to be run in the main thread.
//
// Note that there is no Create() function because we need the freedom to
// create the GUI how we want. Instead the creator is a channel which accepts
// a function that returns an instance of GuiCreator.
type GuiCreator interface {
	// cleanup resources used by the gui
	Destroy(io.Writer)

	// Service() should not pause or loop longer than necessary (if at all). It
	// MUST ONLY be called as part of a larger loop from the main thread. It
	// should service all gui events that are not safe to do in sub-threads.
	Service()
}

// communication between the main() function and the launch() function. this is
// required because many gui solutions (notably SDL) require window event
// handling (including creation) to occur on the main thread.
type mainSync struct {
	state   chan stateRequest
	creator chan func() (GuiCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan GuiCreator
	creationError chan error
}

// #mainthread
func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (GuiCreator, error)),
		creation:      make(chan GuiCreator),
		creationError: make(chan error),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// #ctrlc handler
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through
	// the mainSync instance
	go launch(sync)

	// loop until done is true. every iteration of the loop we listen for:
	//
	//  1. interrupt signals
	//  2. new gui creation functions
	//  3. state requests
	//  4. anything in the Service() function of the most recently created GUI
	//
	done := false
	var gui GuiCreator
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// destroy existing gui
			if gui != nil {
				gui.Destroy(os.Stderr)
			}

			gui, err = creator()
			if err != nil {
				sync.creationError <- err

				// make sure the gui interface variable is truly nil after a
				// failed creation
				gui = nil
			} else {
				sync.creation <- gui
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if gui != nil {
					gui.Destroy(os.Stderr)
				}

				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}
			}

		default:
			if gui != nil {
				gui.Service()
			}
		}
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

// launch is called from main() as a goroutine. uses mainSync instance to
// indicate gui creation and to quit.
func launch(sync *mainSync) {
	flgs := flag.NewFlagSet(version.ApplicationName, flag.ContinueOnError)

	fullScreen := flgs.Bool("fullscreen", false, "run in fullscreen mode")
	fpsCap := flgs.Bool("fpscap", false, "cap the frame rate with a timer instead of the vertical retrace")
	fps := flgs.Int("fps", 60, "frame rate to cap to (only with -fpscap)")
	batch := flgs.Int("batch", fill.DefaultBatchSize, "number of vertices the fill animation paints per frame")
	seed := flgs.Int64("seed", 0, "seed for the fill animation. a value of zero seeds from the clock")
	logEcho := flgs.Bool("log", false, "echo log entries to stderr as they arrive")
	profile := flgs.String("profile", "", "write a profile on exit: cpu or mem")

	err := flgs.Parse(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			sync.state <- stateRequest{req: reqQuit}
			return
		}
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	if *logEcho {
		logger.SetEcho(os.Stderr)
	}

	vrsn, rev, _ := version.Version()
	logger.Logf("spherefill", "%s (%s)", vrsn, rev)

	run := func() error {
		return demo(sync, *fullScreen, *fpsCap, *fps, *batch, *seed)
	}

	switch *profile {
	case "cpu":
		err = performance.ProfileCPU("cpu.profile", run)
	case "mem":
		err = run()
		if err == nil {
			err = performance.ProfileMem("mem.profile")
		}
	case "":
		err = run()
	default:
		err = fmt.Errorf("unknown profile type: %s", *profile)
	}

	if err != nil {
		fmt.Printf("* error: %s\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// demo creates the scene and the GUI and then waits for the user to ask for
// the program to end.
func demo(sync *mainSync, fullScreen bool, fpsCap bool, fps int, batch int, seed int64) error {
	var rnd *random.Random
	if seed == 0 {
		rnd = random.NewRandom()
	} else {
		rnd = random.NewRandomWithSeed(seed)
	}

	scn := scene.NewScene(rnd)

	// the GUI tells us when the user has asked to quit
	quit := make(chan struct{}, 1)

	// the GUI must be created in the main thread
	sync.creator <- func() (GuiCreator, error) {
		return sdlscene.NewSdlScene(scn, batch, quit)
	}

	var sdlgui gui.GUI
	select {
	case g := <-sync.creation:
		sdlgui = g.(gui.GUI)
	case err := <-sync.creationError:
		return err
	}

	err := sdlgui.SetFeature(gui.ReqFullScreen, fullScreen)
	if err != nil {
		return err
	}

	if fpsCap {
		err = sdlgui.SetFeature(gui.ReqFPS, fps)
		if err != nil {
			return err
		}
		err = sdlgui.SetFeature(gui.ReqFPSCap, true)
		if err != nil {
			return err
		}
	}

	<-quit

	return nil
}
