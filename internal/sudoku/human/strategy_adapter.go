package human

import (
	"sudoku-engine/internal/bitset"
	"sudoku-engine/internal/sudoku/human/strategy"
)

// ============================================================================
// strategy.BoardInterface Adapter
// ============================================================================
//
// Adapts Board to the strategy package's read/write surface, alongside
// the older BoardInterface in board_interface.go. human.Candidates and
// bitset.Candidates are both uint16 with an identical bit layout (bit k =
// digit k), so the conversion is a plain cast.
//
// ============================================================================

func (b *Board) Cell(idx int) int { return b.Cells[idx] }

func (b *Board) Cands(idx int) bitset.Candidates {
	return bitset.Candidates(b.Candidates[idx])
}

func (b *Board) PeersOf(idx int) bitset.Pattern {
	return PeerPatterns[idx]
}

func (b *Board) HousePattern(h int) bitset.Pattern {
	return HousePatterns[h]
}

func (b *Board) HouseCells(h int) []int {
	return HouseCells(h)
}

func (b *Board) HousesOf(idx int) [3]int {
	return HousesOfCell[idx]
}

func (b *Board) Intersections() []strategy.Intersection {
	src := Intersections
	out := make([]strategy.Intersection, len(src))
	for i, it := range src {
		out[i] = strategy.Intersection{Cells: it.Cells, Line: it.Line, Box: it.Box}
	}
	return out
}

// Snapshot returns a deep copy satisfying strategy.BoardInterface.
func (b *Board) Snapshot() strategy.BoardInterface {
	return b.Clone()
}
