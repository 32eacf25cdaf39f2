// SPDX-License-Identifier: MIT

package xyz

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	pkgerrors "github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/atommesh/atom"
)

// ErrInputFormat indicates a malformed structure file.
var ErrInputFormat = errors.New("xyz: malformed input")

func formatErrorf(line int, format string, args ...interface{}) error {
	return fmt.Errorf("xyz: line %d: %s: %w", line, fmt.Sprintf(format, args...), ErrInputFormat)
}

// Read parses one XYZ frame from r.
func Read(r io.Reader) (*atom.Structure, error) {
	sc := bufio.NewScanner(r)
	line := 0
	next := func() (string, bool) {
		if !sc.Scan() {
			return "", false
		}
		line++

		return sc.Text(), true
	}

	head, ok := next()
	if !ok {
		if err := sc.Err(); err != nil {
			return nil, pkgerrors.Wrap(err, "xyz: read")
		}
		return nil, formatErrorf(1, "missing atom count")
	}
	n, err := strconv.Atoi(strings.TrimSpace(head))
	if err != nil || n < 0 {
		return nil, formatErrorf(line, "bad atom count %q", strings.TrimSpace(head))
	}
	if _, ok = next(); !ok {
		return nil, formatErrorf(line+1, "missing comment line")
	}

	labels := make([]string, 0, n)
	positions := make([]r3.Vec, 0, n)
	for i := 0; i < n; i++ {
		text, ok := next()
		if !ok {
			if err := sc.Err(); err != nil {
				return nil, pkgerrors.Wrap(err, "xyz: read")
			}
			return nil, formatErrorf(line+1, "expected %d atoms, found %d", n, i)
		}
		rec, err := sParseRecord.ParseString("", text)
		if err != nil {
			return nil, formatErrorf(line, "atom %d: %s", i, recordProblem(text, err))
		}
		labels = append(labels, rec.Label)
		positions = append(positions, r3.Vec{X: rec.X, Y: rec.Y, Z: rec.Z})
	}

	return atom.NewLabeled(labels, positions)
}

var sAxes = [...]string{"x", "y", "z"}

// recordProblem names what is wrong with an atom line without the grammar's
// field paths. It falls back to the bare parser message.
func recordProblem(text string, err error) string {
	fields := strings.Fields(text)
	if len(fields) < 4 {
		return fmt.Sprintf("want label and 3 coordinates, got %d fields", len(fields))
	}
	for k, f := range fields[1:4] {
		if _, perr := strconv.ParseFloat(f, 64); perr != nil {
			return fmt.Sprintf("bad %s coordinate %q", sAxes[k], f)
		}
	}
	var perr participle.Error
	if errors.As(err, &perr) {
		return perr.Message()
	}

	return err.Error()
}

// ReadFile opens path and parses it with Read.
func ReadFile(path string) (*atom.Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "xyz: open %s", path)
	}
	defer f.Close()

	s, err := Read(f)
	if err != nil {
		return nil, pkgerrors.Wrap(err, path)
	}

	return s, nil
}
