// SPDX-License-Identifier: MIT

package xyz

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// record is one atom line.
type record struct {
	Label string   `parser:"@Field"`
	X     float64  `parser:"@Field"`
	Y     float64  `parser:"@Field"`
	Z     float64  `parser:"@Field"`
	Extra []string `parser:"@Field*"`
}

var sRecordLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Field", Pattern: `[^\s]+`},
	{Name: "whitespace", Pattern: `\s+`},
})

var sParseRecord = participle.MustBuild[record](
	participle.Lexer(sRecordLexer),
)
