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

// Package mesh defines the vertex data for the sphere. The mesh is generated
// once at startup and never resized. Vertex positions are immutable for the
// lifetime of the mesh but colors can be changed at any time.
//
// The Interleave() function packs the vertex data into a flat float32 slice
// suitable for uploading to the graphics device.
package mesh
