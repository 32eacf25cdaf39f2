// SPDX-License-Identifier: MIT

// Package atom holds the single authoritative list of atoms that every other
// stage of the mesh pipeline refers to by index.
//
// What:
//
//   - Atom: a 0-based Index (input order), a 3D position and an optional label.
//   - Structure: an immutable, ordered []Atom. Bonds, walks, rings and
//     triangles never copy atom data; they store indices into a Structure.
//
// Positions use gonum's r3.Vec so distance and scaling helpers come for free.
//
// Complexity:
//
//   - New:       O(n) time, O(n) memory (defensive copy).
//   - At/Len:    O(1).
//   - Positions: O(n) (copy).
package atom
