package solver_test

import (
	"math/rand"
	"testing"

	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/sudoku/human"
	"sudoku-engine/pkg/constants"
)

// minimalPuzzle carves a fresh minimal puzzle from the given seed.
func minimalPuzzle(seed int64) *human.Board {
	rng := rand.New(rand.NewSource(seed))
	solved := generator.RandomFilledBoard(rng)
	return generator.Thin(solved, generator.SymmetryCentral, rng)
}

// TestSolverSolvesGeneratedPuzzles verifies the step-discovery ladder over
// freshly generated minimal puzzles: every completed board must be fully
// filled and valid, and the ladder must finish at least some of them.
func TestSolverSolvesGeneratedPuzzles(t *testing.T) {
	seeds := []int64{12345, 23456, 34567, 45678, 56789}
	completed := 0

	for _, seed := range seeds {
		puzzle := minimalPuzzle(seed)

		solver := human.NewSolver()
		board := puzzle.Clone()
		moves, status := solver.SolveWithSteps(board, constants.MaxSolverSteps)

		if status == constants.StatusCompleted {
			completed++
			for i := 0; i < 81; i++ {
				if board.Cells[i] == 0 {
					t.Errorf("seed %d: cell %d is still empty after 'completed' status", seed, i)
				}
			}
			if !board.IsValid() {
				t.Errorf("seed %d: completed board is not valid", seed)
			}
		} else {
			t.Logf("seed %d: status=%s after %d moves", seed, status, len(moves))
		}
	}

	if completed == 0 {
		t.Error("expected the solver to complete at least one generated puzzle")
	}
}

// TestSolverUsesMultipleTechniques verifies that various techniques fire
// across a batch of generated puzzles.
func TestSolverUsesMultipleTechniques(t *testing.T) {
	techniqueUsage := make(map[string]int)

	for i := 0; i < 20; i++ {
		puzzle := minimalPuzzle(int64(i * 7919))

		solver := human.NewSolver()
		board := puzzle.Clone()
		moves, _ := solver.SolveWithSteps(board, constants.MaxSolverSteps)

		for _, move := range moves {
			techniqueUsage[move.Technique]++
		}
	}

	// We should at minimum see naked singles and hidden singles
	requiredTechniques := []string{"naked-single", "hidden-single"}
	for _, tech := range requiredTechniques {
		if techniqueUsage[tech] == 0 {
			t.Errorf("Expected technique %s to be used at least once", tech)
		}
	}

	// Log all technique usage for visibility
	t.Log("Technique usage across 20 puzzles:")
	for tech, count := range techniqueUsage {
		if count > 0 {
			t.Logf("  %s: %d", tech, count)
		}
	}
}

// BenchmarkSolver benchmarks the solver on generated minimal puzzles.
func BenchmarkSolver(b *testing.B) {
	// Pre-generate puzzles
	puzzles := make([]*human.Board, b.N)
	for i := 0; i < b.N; i++ {
		puzzles[i] = minimalPuzzle(int64(i))
	}

	solver := human.NewSolver()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		solver.SolveWithSteps(puzzles[i].Clone(), constants.MaxSolverSteps)
	}
}
