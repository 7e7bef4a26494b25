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

// Package shaders contains the GLSL sources used by the sdlscene renderer.
package shaders

// SphereVertexShader transforms each vertex by the model rotation and
// translation matrices and passes the vertex color through to the fragment
// shader.
var SphereVertexShader = []byte(`
#version 150

uniform mat4 Transform;
uniform mat4 Translation;

in vec3 Position;
in vec3 Color;

out vec3 Frag_Color;

void main()
{
	Frag_Color = Color;
	gl_Position = Translation * Transform * vec4(Position, 1.0);
}
`)

// SphereFragShader modulates the interpolated vertex color with a uniform
// color. The uniform is white for the filled pass and black for the
// wireframe overlay pass.
var SphereFragShader = []byte(`
#version 150

uniform vec3 ModColor;

in vec3 Frag_Color;

out vec4 Out_Color;

void main()
{
	Out_Color = vec4(Frag_Color * ModColor, 1.0);
}
`)
