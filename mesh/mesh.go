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

package mesh

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// the sphere is built from quads, two triangles per quad. the poles produce
// degenerate triangles but they are kept so that the vertex count is constant
// and every index is a valid paint target
const (
	segments = 12
	rings    = 10
)

// NumTriangles is the fixed number of triangles in the sphere mesh
const NumTriangles = segments * rings * 2

// NumVertices is the fixed number of vertices in the sphere mesh. The mesh is
// not indexed so every triangle carries its own three vertices
const NumVertices = NumTriangles * 3

// FloatsPerVertex is the stride of the interleaved buffer in float32 units.
// The first three values of each vertex are the position, the remaining three
// the color
const FloatsPerVertex = 6

// Vertex is a single point of the mesh. Position never changes once the mesh
// has been built. Color is overwritten by the fill animation
type Vertex struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
}

// Mesh is a fixed-size ordered sequence of vertices
type Mesh struct {
	vertices []Vertex

	// reused by Interleave() on every call. allocating this once keeps the
	// per-frame upload path free of garbage
	interleaved []float32
}

// BaseColor is the color of every vertex in a newly created mesh
var BaseColor = mgl32.Vec3{1.0, 1.0, 1.0}

// NewSphere is the preferred method of initialisation for the Mesh type. The
// result is a unit UV sphere of NumTriangles triangles, every vertex colored
// with BaseColor
func NewSphere() *Mesh {
	m := &Mesh{
		vertices:    make([]Vertex, 0, NumVertices),
		interleaved: make([]float32, NumVertices*FloatsPerVertex),
	}

	// one position for each corner of the ring/segment grid
	grid := make([][]mgl32.Vec3, rings+1)
	for r := 0; r <= rings; r++ {
		grid[r] = make([]mgl32.Vec3, segments+1)
		theta := float64(r) * math.Pi / float64(rings)
		for s := 0; s <= segments; s++ {
			phi := float64(s) * 2 * math.Pi / float64(segments)
			grid[r][s] = mgl32.Vec3{
				float32(math.Cos(phi) * math.Sin(theta)),
				float32(math.Cos(theta)),
				float32(math.Sin(phi) * math.Sin(theta)),
			}
		}
	}

	// two triangles per quad, wound counter-clockwise so that face culling
	// keeps the outside of the sphere
	for r := 0; r < rings; r++ {
		for s := 0; s < segments; s++ {
			a := grid[r][s]
			b := grid[r+1][s]
			c := grid[r][s+1]
			d := grid[r+1][s+1]

			m.push(a, b, c)
			m.push(c, b, d)
		}
	}

	return m
}

func (m *Mesh) push(positions ...mgl32.Vec3) {
	for _, p := range positions {
		m.vertices = append(m.vertices, Vertex{Position: p, Color: BaseColor})
	}
}

// Len returns the number of vertices in the mesh. Always NumVertices
func (m *Mesh) Len() int {
	return len(m.vertices)
}

// Position of the vertex at index i
func (m *Mesh) Position(i int) mgl32.Vec3 {
	return m.vertices[i].Position
}

// Color of the vertex at index i
func (m *Mesh) Color(i int) mgl32.Vec3 {
	return m.vertices[i].Color
}

// SetColor overwrites the color of the vertex at index i
func (m *Mesh) SetColor(i int, c mgl32.Vec3) {
	m.vertices[i].Color = c
}

// Interleave packs the mesh into a flat float32 slice, position then color
// for each vertex in order. The returned slice is owned by the mesh and is
// only valid until the next call to Interleave
func (m *Mesh) Interleave() []float32 {
	for i, v := range m.vertices {
		o := i * FloatsPerVertex
		m.interleaved[o] = v.Position[0]
		m.interleaved[o+1] = v.Position[1]
		m.interleaved[o+2] = v.Position[2]
		m.interleaved[o+3] = v.Color[0]
		m.interleaved[o+4] = v.Color[1]
		m.interleaved[o+5] = v.Color[2]
	}
	return m.interleaved
}
