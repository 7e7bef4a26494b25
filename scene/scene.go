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

// Package scene ties the sphere mesh, the fill animation and the view
// transforms into a single owned context. The GUI advances the scene once per
// frame and then uploads the mesh to the graphics device.
package scene

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/spherefill/fill"
	"github.com/jetsetilly/spherefill/mesh"
	"github.com/jetsetilly/spherefill/random"
	"github.com/jetsetilly/spherefill/userinput"
)

// per-frame view adjustments while a nudge action is held
const (
	nudgeTranslate = 0.01
	nudgeRotate    = 2.3 // degrees about the Y axis
)

// Scene owns all state for the demo: the mesh, the fill animation, the view
// transforms and the color selection. It is mutated only from the GUI
// service loop.
type Scene struct {
	mesh     *mesh.Mesh
	animator *fill.Animator

	transform   mgl32.Mat4
	translation mgl32.Mat4

	// color selection for the current and previous frame. the animator is
	// reset on the frame the selection changes
	selected Choice
	prev     Choice

	// actions currently held down
	nudgeLeft  bool
	nudgeRight bool
	paintUp    bool
	paintDown  bool
}

// NewScene is the preferred method of initialisation for the Scene type.
func NewScene(rnd *random.Random) *Scene {
	m := mesh.NewSphere()
	return &Scene{
		mesh:        m,
		animator:    fill.NewAnimator(m, rnd, Red.Color()),
		transform:   mgl32.Ident4(),
		translation: mgl32.Ident4(),
	}
}

// Mesh returns the sphere mesh. The GUI uploads this to the graphics device
// after every Update.
func (scn *Scene) Mesh() *mesh.Mesh {
	return scn.mesh
}

// Animator returns the fill animator. Useful for reporting fill progress.
func (scn *Scene) Animator() *fill.Animator {
	return scn.animator
}

// Transform returns the model rotation matrix.
func (scn *Scene) Transform() mgl32.Mat4 {
	return scn.transform
}

// Translation returns the model translation matrix.
func (scn *Scene) Translation() mgl32.Mat4 {
	return scn.translation
}

// Selected returns the color choice applied on the most recent Update.
func (scn *Scene) Selected() Choice {
	return scn.selected
}

// ResetView restores the transform and translation matrices to identity.
func (scn *Scene) ResetView() {
	scn.transform = mgl32.Ident4()
	scn.translation = mgl32.Ident4()
}

// HandleAction implements the userinput.HandleInput interface.
func (scn *Scene) HandleAction(act userinput.Action, active bool) error {
	switch act {
	case userinput.NudgeLeft:
		scn.nudgeLeft = active
	case userinput.NudgeRight:
		scn.nudgeRight = active
	case userinput.PaintUp:
		scn.paintUp = active
	case userinput.PaintDown:
		scn.paintDown = active
	case userinput.ResetView:
		scn.ResetView()
	}
	return nil
}

// Update advances the scene by one frame: the view is nudged if a nudge
// action is held, the color selection is resolved (resetting the fill
// animation if it has changed) and the animator paints up to batch vertices.
func (scn *Scene) Update(batch int) {
	if scn.nudgeLeft {
		scn.translation = scn.translation.Mul4(mgl32.Translate3D(-nudgeTranslate, 0.0, 0.0))
		scn.transform = scn.transform.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(-nudgeRotate)))
	} else if scn.nudgeRight {
		scn.translation = scn.translation.Mul4(mgl32.Translate3D(nudgeTranslate, 0.0, 0.0))
		scn.transform = scn.transform.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(nudgeRotate)))
	}

	// paint-up wins if both paint directions are held
	switch {
	case scn.paintUp:
		scn.selected = Blue
	case scn.paintDown:
		scn.selected = Green
	default:
		scn.selected = Red
	}

	if scn.selected != scn.prev {
		scn.animator.Reset(scn.selected.Color())
	}

	scn.animator.Tick(batch)
	scn.prev = scn.selected
}
