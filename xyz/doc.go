// SPDX-License-Identifier: MIT

// Package xyz reads the plain XYZ structure format.
//
//	line 1      atom count N
//	line 2      comment (ignored)
//	N lines     label x y z [extra fields ignored]
//
// Atom records are tokenized by a participle grammar with a single
// whitespace-separated Field token; x, y and z are captured straight into
// float64 fields, so a malformed coordinate surfaces as a parse error.
// Every problem is reported as ErrInputFormat with the 1-based line number.
package xyz
