package strategy_test

import (
	"testing"

	"sudoku-engine/internal/sudoku/human"
	"sudoku-engine/internal/sudoku/human/strategy"
)

// After propagating singles on this board, NakedSubset(size=2) must find
// a pair and eliminate at least one candidate from a peer.
func TestNakedSubset_NakedPairConcreteScenario(t *testing.T) {
	b, err := human.FromShort("53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79")
	if err != nil {
		t.Fatalf("FromShort: %v", err)
	}
	if err := b.PropagateSingles(); err != nil {
		t.Fatalf("PropagateSingles: %v", err)
	}

	before := totalCandidates(b)
	step, ok := strategy.TryNakedSubset(b, 2)
	if !ok {
		t.Fatalf("TryNakedSubset(2) found nothing on a naked-pair board")
	}
	if len(step.Eliminations) == 0 {
		t.Fatalf("naked pair step has no eliminations")
	}
	solver := human.NewSolver()
	solver.ApplyMove(b, step)
	after := totalCandidates(b)
	if after >= before {
		t.Fatalf("naked pair step did not reduce candidate count: before=%d after=%d", before, after)
	}
}

// X-Wing: the finder must report an x-wing step with eliminations. It scans
// digits in ascending order and returns the first fish that eliminates
// something; on this board that is the X-Wing on 5, which removes 5 from r9c1.
func TestFish_XWingConcreteScenario(t *testing.T) {
	b, err := human.FromShort("1.....569492.561.8.561.924...964.8.1.64.1....218.356.4.4.5...169.1.64.85.6.9.1.2.")
	if err != nil {
		t.Fatalf("FromShort: %v", err)
	}

	step, ok := strategy.TryFish(b, 2)
	if !ok {
		t.Fatalf("TryFish(2) found no X-Wing on this board")
	}
	if step.Technique != "x-wing" {
		t.Fatalf("expected an x-wing step, got technique %q", step.Technique)
	}

	if len(step.Eliminations) < 1 {
		t.Fatalf("X-Wing step has no eliminations")
	}
}

// An XY-Wing pivot with two bivalue pincers eliminates the shared digit
// from any cell seeing both pincers: pivot r1c1={4,8} with pincers
// r1c5={4,7} and r3c1={7,8}, so r3c5={1,7} loses 7. The step must also
// satisfy the monotonicity and idempotence contract every finder must
// satisfy.
func TestXYWing_ConcreteScenario(t *testing.T) {
	b := fullBoard(t,
		"(48)999(47)9999",
		"999999999",
		"(78)999(17)9999",
		"999999999",
		"999999999",
		"999999999",
		"999999999",
		"999999999",
		"999999999",
	)

	solver := human.NewSolver()
	step, ok := strategy.TryXYWing(b)
	if !ok {
		t.Fatal("TryXYWing found nothing on a constructed pivot board")
	}
	if step.Technique != "xy-wing" {
		t.Fatalf("expected technique xy-wing, got %q", step.Technique)
	}
	if !hasElimination(step, 2, 4, 7) {
		t.Fatalf("expected elimination of 7 at r3c5, got %v", step.Eliminations)
	}
	assertMonotoneAndIdempotent(t, solver, b, step)
}

// Idempotence and monotonicity hold for every registered finder over
// three boards. PropagateSingles completes the first and third boards, so
// only the second one (28 cells still open) reaches the finders.
func TestRegistry_FindersAreMonotoneAndIdempotent(t *testing.T) {
	boards := []string{
		"53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
		"1.....569492.561.8.561.924...964.8.1.64.1....218.356.4.4.5...169.1.64.85.6.9.1.2.",
		"..3.2.6..9..3.5..1..18.64....81.29..7.......8..67.82....26.95..8..2.3..9..5.1.3..",
	}
	reg := strategy.NewRegistry()

	for _, s := range boards {
		b, err := human.FromShort(s)
		if err != nil {
			t.Fatalf("FromShort(%q): %v", s, err)
		}
		_ = b.PropagateSingles()

		solver := human.NewSolverWithRegistry(reg)
		for i := 0; i < 8; i++ {
			step, _, ok := reg.TryFind(b)
			if !ok {
				break
			}
			assertMonotoneAndIdempotent(t, solver, b, step)
			solver.ApplyMove(b, step)
		}
	}
}

func totalCandidates(b *human.Board) int {
	total := 0
	for i := 0; i < 81; i++ {
		total += b.Candidates[i].Count()
	}
	return total
}

func assertMonotoneAndIdempotent(t *testing.T, solver *human.Solver, b *human.Board, step *strategy.Step) {
	t.Helper()
	trial := b.Clone()
	before := totalCandidates(trial)
	solver.ApplyMove(trial, step)
	after := totalCandidates(trial)
	if after > before {
		t.Fatalf("%s: candidate count increased after applying a step (%d -> %d)", step.Technique, before, after)
	}
	if len(step.Eliminations) > 0 && after == before {
		t.Fatalf("%s: step carried eliminations but candidate count did not change", step.Technique)
	}

	twice := trial.Clone()
	solver.ApplyMove(twice, step)
	if totalCandidates(twice) != after {
		t.Fatalf("%s: applying step twice is not idempotent (%d vs %d)", step.Technique, after, totalCandidates(twice))
	}
}
