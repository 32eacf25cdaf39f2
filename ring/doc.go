// SPDX-License-Identifier: MIT

// Package ring recovers closed rings of 3 to 7 atoms from enumerated walks and
// deduplicates them by vertex set.
//
// Closures per ring size:
//
//	3: a size 4 walk whose first and last atoms coincide.
//	4: two size 3 walks with the same endpoints and different middles.
//	5: a size 4 walk and a size 3 walk sharing both endpoints.
//	6: two size 4 walks sharing both endpoints.
//	7: a size 5 walk and a size 4 walk sharing both endpoints.
//
// A candidate whose interior atoms coincide (or whose atoms are not all
// distinct) is a smaller ring hiding inside a longer walk and is rejected.
//
// Deduplication keys each ring by its ascending vertex tuple ("1,4,7,9"), so
// rotations, reflections and any other reordering of the same atoms collapse
// into the first ring seen. Two topologically different rings over the same
// atom set also collapse; in sparse sp2-like graphs that does not happen.
//
// Complexity: one pass per size over the relevant walk list, with partners
// taken from the list's endpoint index; O(1) average per Set.Add.
package ring
