// Package puzzles reads back the text files the farm writes: one puzzle
// per line, two short-format board strings separated by a space, the
// puzzle first and its unique solution second.
package puzzles

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/sudoku/human"
)

// Entry is one puzzle line: a puzzle and the solution recorded for it.
type Entry struct {
	Puzzle   string
	Solution string
}

// Load reads one bucket file. Each line must hold exactly two fields that
// both parse as short-format boards; a malformed line is an error, not a
// skip, since the farm is the only writer of these files.
func Load(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzles: opening %s: %w", path, err)
	}
	defer f.Close()

	var entries []Entry
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("puzzles: %s:%d: expected \"puzzle solution\", got %d fields", path, lineNo, len(fields))
		}
		if _, err := human.FromShort(fields[0]); err != nil {
			return nil, fmt.Errorf("puzzles: %s:%d: bad puzzle: %w", path, lineNo, err)
		}
		solution, err := human.FromShort(fields[1])
		if err != nil {
			return nil, fmt.Errorf("puzzles: %s:%d: bad solution: %w", path, lineNo, err)
		}
		if !solution.IsSolved() {
			return nil, fmt.Errorf("puzzles: %s:%d: solution is not a completed valid grid", path, lineNo)
		}
		entries = append(entries, Entry{Puzzle: fields[0], Solution: fields[1]})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("puzzles: reading %s: %w", path, err)
	}
	return entries, nil
}

// LoadDir reads every difficulty bucket file the farm writes into dir,
// keyed by band. Every band file must exist; a completed farm run always
// writes all seven.
func LoadDir(dir string) (map[generator.Band][]Entry, error) {
	out := make(map[generator.Band][]Entry, len(generator.Bands))
	for _, band := range generator.Bands {
		path := filepath.Join(dir, string(band)+".txt")
		entries, err := Load(path)
		if err != nil {
			return nil, err
		}
		out[band] = entries
	}
	return out, nil
}

// Verify checks the entry end to end: the puzzle must brute-force to
// exactly one solution, and that solution must match the recorded one.
func (e Entry) Verify() error {
	board, err := human.FromShort(e.Puzzle)
	if err != nil {
		return fmt.Errorf("puzzles: bad puzzle: %w", err)
	}
	count, solution := board.BruteForce(2, false, nil)
	if count != 1 {
		return fmt.Errorf("puzzles: puzzle has %d solutions, want exactly 1", count)
	}
	var sb strings.Builder
	sb.Grow(len(solution))
	for _, d := range solution {
		sb.WriteByte(byte('0' + d))
	}
	if got := sb.String(); got != e.Solution {
		return fmt.Errorf("puzzles: recorded solution does not match the brute-force solution")
	}
	return nil
}
