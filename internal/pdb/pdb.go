// File: internal/pdb/pdb.go

// Package pdb extracts alpha-carbon coordinates from PDB structure files.
//
// Only ATOM records are inspected, and of those only the atoms whose name
// field trims to "CA" contribute a coordinate. Column offsets follow the
// PDB fixed-column convention: atom name in columns 13-16, and x, y, z in
// columns 31-38, 39-46 and 47-54 (1-based, inclusive).
package pdb

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pierrepo/principal-axes/internal/geom"
)

// ParseError describes a coordinate field that failed to decode. It carries
// enough position information for a caller processing many files to report
// exactly which record was bad.
type ParseError struct {
	Line  int    // 1-based line number in the input
	Field string // "x", "y" or "z"
	Text  string // raw column content that failed to parse
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("pdb: line %d: bad %s coordinate %q: %v", e.Line, e.Field, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Extract reads the alpha-carbon coordinates from the PDB file at path,
// in file order.
func Extract(path string) ([]geom.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("pdb: open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read extracts alpha-carbon coordinates from PDB-format text. A record
// contributes a point iff its record type is ATOM and its trimmed atom name
// is CA. A malformed coordinate field in a selected record aborts the whole
// read with a *ParseError.
func Read(r io.Reader) ([]geom.Point, error) {
	var points []geom.Point
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Text()
		if cols(line, 1, 6) != "ATOM" {
			continue
		}
		if cols(line, 13, 16) != "CA" {
			continue
		}
		var p geom.Point
		var err error
		if p.X, err = atof(line, 31, 38); err != nil {
			return nil, &ParseError{lineNum, "x", cols(line, 31, 38), err}
		}
		if p.Y, err = atof(line, 39, 46); err != nil {
			return nil, &ParseError{lineNum, "y", cols(line, 39, 46), err}
		}
		if p.Z, err = atof(line, 47, 54); err != nil {
			return nil, &ParseError{lineNum, "z", cols(line, 47, 54), err}
		}
		points = append(points, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("pdb: read: %w", err)
	}
	return points, nil
}

// cols returns the trimmed content of the 1-based inclusive column range
// [start, end]. Ranges beyond the end of a short line yield "".
func cols(line string, start, end int) string {
	rs, re := start-1, end
	if rs < 0 || rs >= len(line) {
		return ""
	}
	if re > len(line) {
		re = len(line)
	}
	return strings.TrimSpace(line[rs:re])
}

func atof(line string, start, end int) (float64, error) {
	return strconv.ParseFloat(cols(line, start, end), 64)
}
