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

package scene_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/spherefill/fill"
	"github.com/jetsetilly/spherefill/random"
	"github.com/jetsetilly/spherefill/scene"
	"github.com/jetsetilly/spherefill/test"
	"github.com/jetsetilly/spherefill/userinput"
)

func newScene() *scene.Scene {
	return scene.NewScene(random.NewRandomWithSeed(0))
}

// with no input held the neutral color is selected and the fill makes
// progress every frame
func TestNeutralSelection(t *testing.T) {
	scn := newScene()

	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Selected(), scene.Red)
	test.ExpectEquality(t, scn.Animator().Count(), 4)

	// progress continues without a reset
	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Animator().Count(), 8)
}

// holding a paint direction changes the selection and restarts the fill.
// releasing it returns to neutral, restarting the fill again
func TestSelectionChangeRestartsFill(t *testing.T) {
	scn := newScene()

	for i := 0; i < 10; i++ {
		scn.Update(fill.DefaultBatchSize)
	}
	test.ExpectEquality(t, scn.Animator().Count(), 40)

	test.ExpectSuccess(t, scn.HandleAction(userinput.PaintUp, true))
	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Selected(), scene.Blue)

	// the reset happened on the same frame so only one batch is painted
	test.ExpectEquality(t, scn.Animator().Count(), 4)
	test.ExpectEquality(t, scn.Animator().Target(), scene.Blue.Color())

	// holding the same direction does not reset again
	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Animator().Count(), 8)

	// release. neutral selection is a change so the fill restarts once more
	test.ExpectSuccess(t, scn.HandleAction(userinput.PaintUp, false))
	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Selected(), scene.Red)
	test.ExpectEquality(t, scn.Animator().Count(), 4)
}

// paint-up wins when both paint directions are held
func TestPaintPriority(t *testing.T) {
	scn := newScene()

	test.ExpectSuccess(t, scn.HandleAction(userinput.PaintDown, true))
	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Selected(), scene.Green)

	test.ExpectSuccess(t, scn.HandleAction(userinput.PaintUp, true))
	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Selected(), scene.Blue)
}

// nudging adjusts both matrices. ResetView restores identity
func TestNudgeAndResetView(t *testing.T) {
	scn := newScene()

	ident := mgl32.Ident4()
	test.ExpectEquality(t, scn.Transform(), ident)
	test.ExpectEquality(t, scn.Translation(), ident)

	test.ExpectSuccess(t, scn.HandleAction(userinput.NudgeLeft, true))
	scn.Update(fill.DefaultBatchSize)
	test.ExpectSuccess(t, scn.Transform() != ident)
	test.ExpectSuccess(t, scn.Translation() != ident)

	// a left nudge then an equal right nudge does not return the view to the
	// origin because the translation is applied in rotated model space. so
	// the only check here is that ResetView restores identity exactly
	test.ExpectSuccess(t, scn.HandleAction(userinput.NudgeLeft, false))
	test.ExpectSuccess(t, scn.HandleAction(userinput.ResetView, true))
	test.ExpectEquality(t, scn.Transform(), ident)
	test.ExpectEquality(t, scn.Translation(), ident)
}

// releasing a nudge stops the per-frame view adjustment
func TestNudgeRelease(t *testing.T) {
	scn := newScene()

	test.ExpectSuccess(t, scn.HandleAction(userinput.NudgeRight, true))
	scn.Update(fill.DefaultBatchSize)
	after := scn.Transform()

	test.ExpectSuccess(t, scn.HandleAction(userinput.NudgeRight, false))
	scn.Update(fill.DefaultBatchSize)
	test.ExpectEquality(t, scn.Transform(), after)
}
