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

// Package fill implements the color-fill animation. On every tick the
// animator picks a small number of previously unpainted vertices at random
// and paints them with the target color. Over many ticks the whole mesh
// gradually converges on the target.
//
// A pass is one complete cycle of painting every vertex to a single target
// color. Passes are bounded by calls to Reset(). Within a pass no vertex is
// ever painted twice.
package fill
