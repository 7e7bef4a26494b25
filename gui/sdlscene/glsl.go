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
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/spherefill/gui/sdlscene/shaders"
)

type shader struct {
	handle uint32

	// vertex
	transform   int32 // uniform
	translation int32 // uniform
	position    int32
	color       int32

	// fragment
	modColor int32 // uniform
}

func (sh *shader) destroy() {
	if sh.handle != 0 {
		gl.DeleteProgram(sh.handle)
		sh.handle = 0
	}
}

// compile and link the sphere shader program.
func (sh *shader) createProgram() error {
	sh.destroy()

	sh.handle = gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()

		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, string(shaders.SphereVertexShader))
	glShaderSource(fragHandle, string(shaders.SphereFragShader))

	gl.CompileShader(vertHandle)
	if log := getShaderCompileError(vertHandle); log != "" {
		return fmt.Errorf("glsl: vertex shader: %s", log)
	}

	gl.CompileShader(fragHandle)
	if log := getShaderCompileError(fragHandle); log != "" {
		return fmt.Errorf("glsl: fragment shader: %s", log)
	}

	gl.AttachShader(sh.handle, vertHandle)
	gl.AttachShader(sh.handle, fragHandle)
	gl.LinkProgram(sh.handle)

	var linked int32
	gl.GetProgramiv(sh.handle, gl.LINK_STATUS, &linked)
	if linked == 0 {
		return fmt.Errorf("glsl: program did not link")
	}

	// now that the program has linked we no longer need the individual
	// shaders
	gl.DeleteShader(fragHandle)
	gl.DeleteShader(vertHandle)

	// get references to shader attributes and uniform variables
	sh.transform = gl.GetUniformLocation(sh.handle, gl.Str("Transform"+"\x00"))
	sh.translation = gl.GetUniformLocation(sh.handle, gl.Str("Translation"+"\x00"))
	sh.modColor = gl.GetUniformLocation(sh.handle, gl.Str("ModColor"+"\x00"))
	sh.position = gl.GetAttribLocation(sh.handle, gl.Str("Position"+"\x00"))
	sh.color = gl.GetAttribLocation(sh.handle, gl.Str("Color"+"\x00"))

	return nil
}

// getShaderCompileError returns the most recent error generated by the shader
// compiler.
func getShaderCompileError(shader uint32) string {
	var isCompiled int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled == 0 {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		if logLength > 0 {
			// the maxLength includes the NULL character
			log := strings.Repeat("\x00", int(logLength+1))
			gl.GetShaderInfoLog(shader, logLength, &logLength, gl.Str(log))
			return log
		}
	}
	return ""
}
