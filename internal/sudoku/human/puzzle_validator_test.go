package human

import (
	"fmt"
	"testing"

	"sudoku-engine/pkg/constants"
)

// ValidatePuzzle checks if a puzzle is valid, unique, and uses the target technique
func ValidatePuzzle(puzzle string, technique string) (valid bool, unique bool, usesTechnique bool, usedTechniques map[string]int) {
	usedTechniques = make(map[string]int)

	if len(puzzle) != 81 {
		return false, false, false, usedTechniques
	}

	cells := make([]int, 81)
	for i, c := range puzzle {
		if c >= '0' && c <= '9' {
			cells[i] = int(c - '0')
		} else {
			return false, false, false, usedTechniques
		}
	}

	// Check solvability and uniqueness with the brute-force search
	count, _ := NewBoard(cells).BruteForce(2, false, nil)
	if count == 0 {
		return false, false, false, usedTechniques
	}
	valid = true

	unique = count == 1
	if !unique {
		return valid, false, false, usedTechniques
	}

	// Check with human solver
	humanSolver := NewSolver()
	board := NewBoard(cells)
	moves, _ := humanSolver.SolveWithSteps(board, constants.MaxSolverSteps)

	for _, move := range moves {
		usedTechniques[move.Technique]++
	}

	usesTechnique = usedTechniques[technique] > 0
	return valid, unique, usesTechnique, usedTechniques
}

// TestValidatePuzzleCandidates is a helper test to validate puzzles for specific techniques.
// Run with: go test -v -run "TestValidatePuzzleCandidates" ./internal/sudoku/human/
//
// This test takes puzzles and checks:
// 1. Valid format (81 characters, digits 0-9)
// 2. Has unique solution (brute-force search confirms it)
// 3. Actually uses the target technique during solve
//
// NOTE: This is a DIAGNOSTIC test. It reports puzzle issues but does NOT fail.
// Use this to find valid puzzles from external sources.
func TestValidatePuzzleCandidates(t *testing.T) {
	// Candidate puzzles to validate for missing techniques
	// Sources: SudokuWiki "Load Example" links, Hodoku, forums
	// NOTE: Many puzzles from websites are in "candidate" format or partially solved states
	// We need puzzles that are valid starting positions (only clues, no candidates)
	candidates := map[string][]struct {
		puzzle string
		source string
	}{
		// HIDDEN QUAD - need puzzles where 4 digits can only go in 4 cells
		// Hidden quads are VERY rare - most puzzles solve with simpler techniques first
		"hidden-quad": {
			// From SudokuWiki - Klaus Brenner example (confirmed valid on SudokuWiki Nov 2024)
			{puzzle: "650087024000649050040025000570438061000501000310902085000890010000213000130750098", source: "SudokuWiki Klaus Brenner"},
			// From SudokuWiki hidden quad dropdown example
			{puzzle: "000000012000035000000600070700000300080004002003000500020100060500006000010020000", source: "SudokuWiki hidden quad example"},
		},

		// AIC - Alternating Inference Chain
		"aic": {
			// SudokuWiki AIC - strong link from dropdown
			{puzzle: "000050200003010940000207001072000000001000700000000430400703000057040100008060000", source: "SudokuWiki AIC strong link dropdown"},
			// SudokuWiki AIC - weak link from dropdown
			{puzzle: "030500000078030005600000070300080207000040000107060004040000009500010640000009010", source: "SudokuWiki AIC weak link dropdown"},
			// SudokuWiki AIC - off chain from dropdown
			{puzzle: "001090040076500002200100007600000901509000806108000003300006005800005170040070600", source: "SudokuWiki AIC off chain dropdown"},
		},
	}

	humanSolver := NewSolver()

	for technique, puzzles := range candidates {
		for i, pz := range puzzles {
			name := fmt.Sprintf("%s_candidate_%d", technique, i+1)
			t.Run(name, func(t *testing.T) {
				valid, unique, usesTechnique, usedTechniques := ValidatePuzzle(pz.puzzle, technique)

				if !valid {
					t.Skipf("INVALID: Puzzle has no solution. Source: %s", pz.source)
					return
				}
				t.Logf("✓ Puzzle has a solution")

				if !unique {
					t.Skipf("NOT UNIQUE: Puzzle has multiple solutions. Source: %s", pz.source)
					return
				}
				t.Logf("✓ Puzzle has unique solution")

				// Check if human solver can complete it
				cells := make([]int, 81)
				for j, c := range pz.puzzle {
					cells[j] = int(c - '0')
				}
				board := NewBoard(cells)
				moves, status := humanSolver.SolveWithSteps(board, constants.MaxSolverSteps)

				if status != constants.StatusCompleted {
					t.Logf("⚠ Human solver status: %s after %d moves", status, len(moves))
				} else {
					t.Logf("✓ Human solver completed in %d moves", len(moves))
				}

				if usesTechnique {
					t.Logf("✓ SUCCESS: Technique '%s' was used %d times!", technique, usedTechniques[technique])
					t.Logf("  Puzzle: %s", pz.puzzle)
					t.Logf("  Source: %s", pz.source)
				} else {
					t.Skipf("✗ Technique '%s' was NOT used. Techniques used: %v", technique, usedTechniques)
				}
			})
		}
	}
}
