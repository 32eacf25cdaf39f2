// SPDX-License-Identifier: MIT

// Package config resolves the run configuration of atom2mesh.
//
// Precedence, lowest first: Default() < TOML file (Load) < command-line flags
// (BindFlags). Validate enforces 0 < MinBondLength < MaxBondLength and a
// positive Scale; the pipeline itself never re-checks these.
//
// Example file:
//
//	input  = "graphene.xyz"
//	output = "graphene.obj"
//
//	[bond]
//	min_length = 1.0
//	max_length = 1.7
//
//	[mesh]
//	scale     = 0.1
//	name      = "gmesh"
//	heptagons = false
//	preview   = "graphene.png"
package config
