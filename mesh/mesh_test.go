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

package mesh_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/spherefill/mesh"
	"github.com/jetsetilly/spherefill/test"
)

func TestGeometry(t *testing.T) {
	m := mesh.NewSphere()

	test.DemandEquality(t, m.Len(), mesh.NumVertices)
	test.ExpectEquality(t, mesh.NumVertices, 720)
	test.ExpectEquality(t, mesh.NumTriangles, 240)

	// every position lies on the unit sphere
	for i := 0; i < m.Len(); i++ {
		p := m.Position(i)
		r := math.Sqrt(float64(p[0]*p[0] + p[1]*p[1] + p[2]*p[2]))
		test.ExpectSuccess(t, math.Abs(r-1.0) < 1e-6, "vertex", i)
	}

	// and every vertex starts with the base color
	for i := 0; i < m.Len(); i++ {
		test.ExpectEquality(t, m.Color(i), mesh.BaseColor, "vertex", i)
	}
}

func TestInterleave(t *testing.T) {
	m := mesh.NewSphere()

	flat := m.Interleave()
	test.DemandEquality(t, len(flat), mesh.NumVertices*mesh.FloatsPerVertex)

	for i := 0; i < m.Len(); i++ {
		o := i * mesh.FloatsPerVertex
		p := m.Position(i)
		c := m.Color(i)
		test.ExpectEquality(t, flat[o], p[0], "vertex", i)
		test.ExpectEquality(t, flat[o+1], p[1], "vertex", i)
		test.ExpectEquality(t, flat[o+2], p[2], "vertex", i)
		test.ExpectEquality(t, flat[o+3], c[0], "vertex", i)
		test.ExpectEquality(t, flat[o+4], c[1], "vertex", i)
		test.ExpectEquality(t, flat[o+5], c[2], "vertex", i)
	}
}

// color mutation is visible through a subsequent Interleave without the
// positions changing
func TestInterleaveAfterMutation(t *testing.T) {
	m := mesh.NewSphere()

	before := make([]float32, len(m.Interleave()))
	copy(before, m.Interleave())

	c := mgl32.Vec3{0.0, 0.0, 1.0}
	m.SetColor(100, c)
	test.ExpectEquality(t, m.Color(100), c)

	flat := m.Interleave()
	o := 100 * mesh.FloatsPerVertex

	// position untouched
	test.ExpectEquality(t, flat[o], before[o])
	test.ExpectEquality(t, flat[o+1], before[o+1])
	test.ExpectEquality(t, flat[o+2], before[o+2])

	// color updated
	test.ExpectEquality(t, flat[o+3], c[0])
	test.ExpectEquality(t, flat[o+4], c[1])
	test.ExpectEquality(t, flat[o+5], c[2])
}
