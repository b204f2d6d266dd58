package puzzles

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sudoku-engine/internal/generator"
)

const (
	knownPuzzle   = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"
	knownSolution = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func writeBucket(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
	return path
}

func TestLoad_ParsesPuzzleLines(t *testing.T) {
	dir := t.TempDir()
	path := writeBucket(t, dir, "easy.txt", knownPuzzle+" "+knownSolution+"\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].Puzzle != knownPuzzle || entries[0].Solution != knownSolution {
		t.Fatalf("entry fields do not match the written line")
	}
}

func TestLoad_SkipsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := writeBucket(t, dir, "easy.txt", "\n"+knownPuzzle+" "+knownSolution+"\n\n")

	entries, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"one field", knownPuzzle},
		{"three fields", knownPuzzle + " " + knownSolution + " extra"},
		{"short puzzle", "53..7 " + knownSolution},
		{"bad solution", knownPuzzle + " " + strings.Repeat("x", 81)},
		{"incomplete solution", knownPuzzle + " " + knownPuzzle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeBucket(t, dir, "easy.txt", tt.line+"\n")
			if _, err := Load(path); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestLoadDir_ReadsEveryBand(t *testing.T) {
	dir := t.TempDir()
	for _, band := range generator.Bands {
		content := ""
		if band == generator.BandTrivial {
			content = knownPuzzle + " " + knownSolution + "\n"
		}
		writeBucket(t, dir, string(band)+".txt", content)
	}

	byBand, err := LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(byBand) != len(generator.Bands) {
		t.Fatalf("expected %d bands, got %d", len(generator.Bands), len(byBand))
	}
	if len(byBand[generator.BandTrivial]) != 1 {
		t.Fatalf("expected 1 trivial entry, got %d", len(byBand[generator.BandTrivial]))
	}
}

func TestLoadDir_FailsOnMissingBandFile(t *testing.T) {
	dir := t.TempDir()
	writeBucket(t, dir, string(generator.BandTrivial)+".txt", "")

	if _, err := LoadDir(dir); err == nil {
		t.Fatal("expected an error when a band file is missing")
	}
}

func TestEntry_Verify(t *testing.T) {
	good := Entry{Puzzle: knownPuzzle, Solution: knownSolution}
	if err := good.Verify(); err != nil {
		t.Fatalf("expected known puzzle to verify, got %v", err)
	}

	wrongSolution := Entry{
		Puzzle:   knownPuzzle,
		Solution: knownSolution[:80] + "1",
	}
	if err := wrongSolution.Verify(); err == nil {
		t.Fatal("expected mismatched solution to fail verification")
	}

	ambiguous := Entry{
		Puzzle:   strings.Repeat(".", 81),
		Solution: knownSolution,
	}
	if err := ambiguous.Verify(); err == nil {
		t.Fatal("expected a many-solution puzzle to fail verification")
	}
}
