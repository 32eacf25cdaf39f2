// SPDX-License-Identifier: MIT

// Package mesh assembles the final triangle mesh and writes it out.
//
// A Mesh is built once from the atom structure and the triangle list: vertex
// i is atom i scaled by a fixed factor (DefaultScale = 0.1, Å → nm), faces are
// the triangles in pipeline order. It is never mutated afterwards.
//
// Writers:
//
//   - WriteOBJ: Wavefront OBJ text. One comment header, one "o name" line,
//     "v x y z" per vertex, then "f i j k" per face with 1-based indices.
//   - RenderPNG: an orthographic XY wireframe preview for quick inspection.
package mesh
