// Package loader parses Korf-style 15-puzzle problem files: one problem per
// non-blank line, each an integer index followed by 16 integers in [0,15]
// giving tiles in row-major order (0 is the blank). See
// original_source/cpp/puzzle15/korf15/korf15.hpp for the reference reader
// this mirrors.
package loader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"slidesolve/puzzle"
)

const tilesPerLine = 16

// ParseError reports a malformed problem-file line, surfaced to the
// loader's own callers per spec.md §7 ("loaders surface ParseError to
// their own callers").
type ParseError struct {
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return "loader: line " + strconv.Itoa(e.Line) + ": " + e.Err.Error() + ": " + e.Text
}

func (e *ParseError) Unwrap() error { return e.Err }

// LoadKorfProblems reads path and returns the sequence of 15-puzzle boards
// in file order. Malformed lines produce a *ParseError.
func LoadKorfProblems(path string) ([]puzzle.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "loader: open problem file")
	}
	defer f.Close()

	var boards []puzzle.Board
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		b, err := parseLine(text)
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: text, Err: err}
		}
		boards = append(boards, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "loader: scan problem file")
	}
	return boards, nil
}

func parseLine(text string) (puzzle.Board, error) {
	fields := strings.Fields(text)
	if len(fields) != tilesPerLine+1 {
		return puzzle.Board{}, errors.Errorf("expected %d fields (index + %d tiles), got %d",
			tilesPerLine+1, tilesPerLine, len(fields))
	}
	// fields[0] is the problem index; the loader discards it and returns
	// boards in file order instead.
	tiles := make([]uint8, tilesPerLine)
	for i := 0; i < tilesPerLine; i++ {
		v, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return puzzle.Board{}, errors.Wrapf(err, "invalid tile value %q", fields[i+1])
		}
		if v < 0 || v >= tilesPerLine {
			return puzzle.Board{}, errors.Errorf("tile value %d out of range [0,%d]", v, tilesPerLine-1)
		}
		tiles[i] = uint8(v)
	}
	return puzzle.FromTiles(4, tiles)
}
