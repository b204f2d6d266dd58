package farm

import (
	"testing"

	"sudoku-engine/internal/generator"
	"sudoku-engine/internal/puzzles"
)

func TestCoordinator_MergeCapsAtTarget(t *testing.T) {
	coord := NewCoordinator(2)

	batch := map[generator.Band][]Record{
		generator.BandTrivial: {
			{ID: "1", Puzzle: "p1", Solution: "s1", Band: generator.BandTrivial},
			{ID: "2", Puzzle: "p2", Solution: "s2", Band: generator.BandTrivial},
			{ID: "3", Puzzle: "p3", Solution: "s3", Band: generator.BandTrivial},
		},
	}

	coord.merge(batch)

	got := coord.Counts()[generator.BandTrivial]
	if got != 2 {
		t.Fatalf("expected bucket capped at target 2, got %d", got)
	}
}

func TestCoordinator_DoneOnceEveryBucketIsFull(t *testing.T) {
	coord := NewCoordinator(1)

	for _, band := range generator.Bands {
		if coord.Done() {
			t.Fatal("coordinator reported done before every bucket was filled")
		}
		coord.merge(map[generator.Band][]Record{
			band: {{ID: "x", Puzzle: "p", Solution: "s", Band: band}},
		})
	}

	if !coord.Done() {
		t.Fatal("expected coordinator to be done once every bucket reached target")
	}
}

func TestCoordinator_MergeIgnoresAlreadyFullBucket(t *testing.T) {
	coord := NewCoordinator(1)
	coord.merge(map[generator.Band][]Record{
		generator.BandEasy: {{ID: "1", Puzzle: "p1", Solution: "s1", Band: generator.BandEasy}},
	})
	coord.merge(map[generator.Band][]Record{
		generator.BandEasy: {{ID: "2", Puzzle: "p2", Solution: "s2", Band: generator.BandEasy}},
	})

	if got := coord.Counts()[generator.BandEasy]; got != 1 {
		t.Fatalf("expected full bucket to reject further records, got %d", got)
	}
}

func TestWriteBuckets_RoundTripsThroughLoader(t *testing.T) {
	dir := t.TempDir()
	coord := NewCoordinator(1)
	coord.merge(map[generator.Band][]Record{
		generator.BandTrivial: {{
			ID:       "1",
			Puzzle:   "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79",
			Solution: "534678912672195348198342567859761423426853791713924856961537284287419635345286179",
			Band:     generator.BandTrivial,
		}},
	})

	if err := writeBuckets(dir, coord); err != nil {
		t.Fatalf("writeBuckets failed: %v", err)
	}

	byBand, err := puzzles.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir failed: %v", err)
	}
	if len(byBand) != len(generator.Bands) {
		t.Fatalf("expected %d bands, got %d", len(generator.Bands), len(byBand))
	}

	trivial := byBand[generator.BandTrivial]
	if len(trivial) != 1 {
		t.Fatalf("expected 1 trivial entry, got %d", len(trivial))
	}
	if err := trivial[0].Verify(); err != nil {
		t.Fatalf("written puzzle failed verification: %v", err)
	}
	for _, band := range generator.Bands[1:] {
		if len(byBand[band]) != 0 {
			t.Fatalf("expected empty %s bucket, got %d entries", band, len(byBand[band]))
		}
	}
}
