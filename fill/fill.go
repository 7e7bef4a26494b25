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

package fill

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/spherefill/mesh"
	"github.com/jetsetilly/spherefill/random"
)

// DefaultBatchSize is the number of vertices painted per tick unless the host
// asks for something else. Small compared to the vertex count so that the
// fill is visibly gradual
const DefaultBatchSize = 4

// Animator advances the color-fill animation. It owns the set of vertex
// indices that have been painted during the current pass. The mesh itself is
// shared with the host render loop but is only ever mutated between the
// host's advance and upload steps, so no locking is required
type Animator struct {
	mesh *mesh.Mesh
	rnd  *random.Random

	target mgl32.Vec3

	// indices painted during the current pass. set semantics: an index is
	// present at most once and only ever removed by Reset()
	painted map[int]bool
}

// NewAnimator is the preferred method of initialisation for the Animator
// type. The first pass begins immediately with the given target color
func NewAnimator(m *mesh.Mesh, rnd *random.Random, target mgl32.Vec3) *Animator {
	return &Animator{
		mesh:    m,
		rnd:     rnd,
		target:  target,
		painted: make(map[int]bool, m.Len()),
	}
}

// Reset abandons the current pass and begins a new one with a new target
// color. Vertices painted during the abandoned pass keep their color until
// the new pass reaches them
func (an *Animator) Reset(target mgl32.Vec3) {
	an.target = target
	an.painted = make(map[int]bool, an.mesh.Len())
}

// Tick paints up to batch unpainted vertices with the target color. If the
// pass completes during the tick the remainder of the batch is not consumed.
// Returns the number of vertices painted.
//
// Vertex selection is by rejection sampling: indices are drawn uniformly from
// the whole mesh and redrawn while they hit a vertex already painted this
// pass. Termination is certain because the set of unpainted indices only ever
// shrinks between resets
func (an *Animator) Tick(batch int) int {
	n := 0
	for i := 0; i < batch; i++ {
		if len(an.painted) >= an.mesh.Len() {
			break
		}

		idx := an.rnd.Intn(an.mesh.Len())
		for an.painted[idx] {
			idx = an.rnd.Intn(an.mesh.Len())
		}

		an.mesh.SetColor(idx, an.target)
		an.painted[idx] = true
		n++
	}
	return n
}

// Complete is true once every vertex has been painted this pass. Completion
// is observable on the same tick that paints the final vertex
func (an *Animator) Complete() bool {
	return len(an.painted) == an.mesh.Len()
}

// Count returns the number of vertices painted so far this pass
func (an *Animator) Count() int {
	return len(an.painted)
}

// Target returns the color being painted during the current pass
func (an *Animator) Target() mgl32.Vec3 {
	return an.target
}
