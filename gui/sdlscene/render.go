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

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/spherefill/logger"
	"github.com/jetsetilly/spherefill/mesh"
)

// uniform color values for the two draw passes. the filled pass leaves the
// vertex colors unmodulated, the overlay pass turns every fragment black so
// the triangle edges read as a wireframe
var (
	fillPassColor = mgl32.Vec3{1.0, 1.0, 1.0}
	linePassColor = mgl32.Vec3{0.0, 0.0, 0.0}
)

type renderer struct {
	scn *SdlScene

	sphere shader

	vaoHandle uint32
	vboHandle uint32
}

func newRenderer(scn *SdlScene) *renderer {
	return &renderer{scn: scn}
}

// start initialises OpenGL and prepares the shader program and vertex
// buffers. must be called after the GL context has been made current.
func (rnd *renderer) start() error {
	err := gl.Init()
	if err != nil {
		return fmt.Errorf("glsl: %w", err)
	}

	// log GPU vendor information
	logger.Logf("glsl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("glsl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("glsl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	err = rnd.sphere.createProgram()
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &rnd.vaoHandle)
	gl.GenBuffers(1, &rnd.vboHandle)

	// bind the vertex array object first, then bind and set the vertex
	// buffer, and then configure the vertex attributes
	gl.BindVertexArray(rnd.vaoHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vboHandle)

	stride := int32(mesh.FloatsPerVertex * 4)
	gl.EnableVertexAttribArray(uint32(rnd.sphere.position))
	gl.VertexAttribPointerWithOffset(uint32(rnd.sphere.position), 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(uint32(rnd.sphere.color))
	gl.VertexAttribPointerWithOffset(uint32(rnd.sphere.color), 3, gl.FLOAT, false, stride, uintptr(3*4))

	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)

	// the inside of the sphere is never seen
	gl.Enable(gl.CULL_FACE)

	return nil
}

// render clears the frame, re-uploads the mesh and draws it twice: once
// filled and once as a wireframe overlay.
func (rnd *renderer) render() {
	w, h := rnd.scn.plt.framebufferSize()
	gl.Viewport(0, 0, w, h)

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	// the fill animation mutates vertex colors every frame so the whole
	// buffer is re-uploaded every frame
	vertices := rnd.scn.scene.Mesh().Interleave()
	gl.BindBuffer(gl.ARRAY_BUFFER, rnd.vboHandle)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STREAM_DRAW)

	gl.UseProgram(rnd.sphere.handle)

	transform := rnd.scn.scene.Transform()
	translation := rnd.scn.scene.Translation()
	gl.UniformMatrix4fv(rnd.sphere.transform, 1, false, &transform[0])
	gl.UniformMatrix4fv(rnd.sphere.translation, 1, false, &translation[0])

	gl.BindVertexArray(rnd.vaoHandle)

	gl.Uniform3f(rnd.sphere.modColor, fillPassColor[0], fillPassColor[1], fillPassColor[2])
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(mesh.NumVertices))

	gl.Uniform3f(rnd.sphere.modColor, linePassColor[0], linePassColor[1], linePassColor[2])
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(mesh.NumVertices))

	// leave the polygon mode as other code would expect to find it
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (rnd *renderer) destroy() {
	if rnd.vboHandle != 0 {
		gl.DeleteBuffers(1, &rnd.vboHandle)
	}
	rnd.vboHandle = 0

	if rnd.vaoHandle != 0 {
		gl.DeleteVertexArrays(1, &rnd.vaoHandle)
	}
	rnd.vaoHandle = 0

	rnd.sphere.destroy()
}
