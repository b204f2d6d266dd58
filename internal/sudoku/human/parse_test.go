package human

import (
	"strings"
	"testing"
)

const easyShort = "53..7....6..195....98....6.8...6...34..8.3..17...2...6.6....28....419..5....8..79"

func TestFromShort_RoundTrip(t *testing.T) {
	b, err := FromShort(easyShort)
	if err != nil {
		t.Fatalf("FromShort: %v", err)
	}
	if got := b.ToShort(); got != easyShort {
		t.Fatalf("ToShort round trip mismatch:\n got %s\nwant %s", got, easyShort)
	}
}

func TestFromShort_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"too short", "53..7"},
		{"too long", easyShort + "."},
		{"bad character", strings.Replace(easyShort, ".", "x", 1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromShort(tt.input); err == nil {
				t.Fatal("expected a parse error")
			}
		})
	}
}

func TestFullRepresentation_RoundTrip(t *testing.T) {
	b, err := FromShort(easyShort)
	if err != nil {
		t.Fatalf("FromShort: %v", err)
	}

	s := b.ToFull()
	b2, err := FromFull(s)
	if err != nil {
		t.Fatalf("FromFull(ToFull(b)): %v", err)
	}
	if got := b2.ToFull(); got != s {
		t.Fatalf("full round trip mismatch:\n got %s\nwant %s", got, s)
	}
	for i := 0; i < 81; i++ {
		if b.Cells[i] != b2.Cells[i] {
			t.Fatalf("cell %d differs after round trip: %d vs %d", i, b.Cells[i], b2.Cells[i])
		}
		if b.Candidates[i] != b2.Candidates[i] {
			t.Fatalf("candidates of cell %d differ after round trip: %v vs %v", i, b.Candidates[i], b2.Candidates[i])
		}
	}
}

func TestFromFull_LiteralPrefixCells(t *testing.T) {
	// A full-format string starts with an unfilled {1,3} cell, filled 4, 9,
	// 6, an unfilled {3,7}, filled 2, unfilled {1,7}, filled 8 and 5.
	prefix := "(13)496(37)2(17)85"
	s := prefix + strings.Repeat("(123456789)", 72)
	b, err := FromFull(s)
	if err != nil {
		t.Fatalf("FromFull: %v", err)
	}
	if b.Cells[0] != 0 || b.Candidates[0] != NewCandidates([]int{1, 3}) {
		t.Fatalf("cell 1 parsed wrong: value=%d candidates=%v", b.Cells[0], b.Candidates[0])
	}
	for i, want := range []int{4, 9, 6} {
		if b.Cells[1+i] != want {
			t.Fatalf("cell %d = %d, want %d", 2+i, b.Cells[1+i], want)
		}
	}
	if b.Candidates[4] != NewCandidates([]int{3, 7}) {
		t.Fatalf("cell 5 candidates = %v, want {3,7}", b.Candidates[4])
	}
	if got := b.ToFull(); got != s {
		t.Fatal("literal full string did not round trip")
	}
}

func TestFromFull_Errors(t *testing.T) {
	valid := strings.Repeat("(123456789)", 81)
	tests := []struct {
		name  string
		input string
	}{
		{"truncated", valid[:len(valid)-11]},
		{"trailing characters", valid + "5"},
		{"unmatched paren", "(13" + strings.Repeat("9", 80)},
		{"empty candidate list", "()" + strings.Repeat("9", 80)},
		{"descending candidate list", "(31)" + strings.Repeat("9", 80)},
		{"duplicate candidate", "(33)" + strings.Repeat("9", 80)},
		{"bad candidate digit", "(1x)" + strings.Repeat("9", 80)},
		{"bad cell character", "x" + strings.Repeat("9", 80)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := FromFull(tt.input); err == nil {
				t.Fatal("expected a parse error")
			}
		})
	}
}

func TestPatternOfDigit_MatchesCandidates(t *testing.T) {
	b, err := FromShort(easyShort)
	if err != nil {
		t.Fatalf("FromShort: %v", err)
	}
	for d := 1; d <= 9; d++ {
		p := b.PatternOfDigit(d)
		for i := 0; i < 81; i++ {
			if p.Test(i) != b.Candidates[i].Has(d) {
				t.Fatalf("PatternOfDigit(%d) disagrees with candidate mask at cell %d", d, i)
			}
		}
	}
}
