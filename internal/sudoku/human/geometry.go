package human

// ============================================================================
// Geometry Tables - Houses, Peer Patterns, Box/Line Intersections
// ============================================================================
//
// Builds on the cell-index tables in peers.go (RowIndices/ColIndices/
// BoxIndices/Peers) and adds the 81-bit Pattern view of the same geometry:
// one HousePattern per house (0-8 rows, 9-17 columns, 18-26 boxes), one
// PeerPattern per cell, and the 54 row/box and column/box intersections
// used by Intersection, Fish and Sue-de-Coq. Computed once in init(),
// the same way peers.go builds its own tables.
//
// ============================================================================

import "sudoku-engine/internal/bitset"

const (
	numRows   = 9
	numCols   = 9
	numBoxes  = 9
	numHouses = numRows + numCols + numBoxes
)

var (
	// HousePatterns[h] is the 9-cell pattern of house h (0-8 rows, 9-17 cols, 18-26 boxes).
	HousePatterns [numHouses]bitset.Pattern

	// PeerPatterns[c] is the 20-cell pattern of cells sharing a house with c.
	PeerPatterns [81]bitset.Pattern

	// HousesOfCell[c] lists the 3 house indices (row, col, box) cell c belongs to.
	HousesOfCell [81][3]int

	// Intersections lists the 54 line/box intersections: one per box-row
	// pair and one per box-column pair within each box.
	Intersections []Intersection
)

// Intersection describes one line/box intersection: the 3 cells, the line
// house index, and the box house index.
type Intersection struct {
	Cells [3]int
	Line  int // house index of the row or column
	Box   int // house index of the box
}

func init() {
	// This file's init runs before peers.go's; make sure the cell-index
	// tables it reads are already built.
	initializePeers()

	for r := 0; r < numRows; r++ {
		HousePatterns[r] = bitset.PatternOf(RowIndices[r]...)
	}
	for c := 0; c < numCols; c++ {
		HousePatterns[numRows+c] = bitset.PatternOf(ColIndices[c]...)
	}
	for bx := 0; bx < numBoxes; bx++ {
		HousePatterns[numRows+numCols+bx] = bitset.PatternOf(BoxIndices[bx]...)
	}

	for i := 0; i < 81; i++ {
		row, col := RowOf(i), ColOf(i)
		box := BoxOf(i)
		HousesOfCell[i] = [3]int{row, numRows + col, numRows + numCols + box}
		PeerPatterns[i] = bitset.PatternOf(Peers[i]...)
	}

	// Row/box and column/box intersections: for each box, the 3 rows and 3
	// columns that cross it.
	for bx := 0; bx < numBoxes; bx++ {
		boxRow, boxCol := (bx/3)*3, (bx%3)*3
		for r := boxRow; r < boxRow+3; r++ {
			cells := [3]int{}
			k := 0
			for c := boxCol; c < boxCol+3; c++ {
				cells[k] = IndexOf(r, c)
				k++
			}
			Intersections = append(Intersections, Intersection{Cells: cells, Line: r, Box: numRows + numCols + bx})
		}
		for c := boxCol; c < boxCol+3; c++ {
			cells := [3]int{}
			k := 0
			for r := boxRow; r < boxRow+3; r++ {
				cells[k] = IndexOf(r, c)
				k++
			}
			Intersections = append(Intersections, Intersection{Cells: cells, Line: numRows + c, Box: numRows + numCols + bx})
		}
	}
}

// HouseCells returns the 9 cell indices of house h. The slice is the shared
// RowIndices/ColIndices/BoxIndices entry, not a copy.
func HouseCells(h int) []int {
	switch {
	case h < numRows:
		return RowIndices[h]
	case h < numRows+numCols:
		return ColIndices[h-numRows]
	default:
		return BoxIndices[h-numRows-numCols]
	}
}

// AllHouseIndices returns 0..26.
func AllHouseIndices() []int {
	out := make([]int, numHouses)
	for i := range out {
		out[i] = i
	}
	return out
}
