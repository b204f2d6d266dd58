package strategy

import (
	"fmt"

	"sudoku-engine/internal/bitset"
	"sudoku-engine/internal/core"
)

// ALS (Almost Locked Set): N unfilled cells, all within one house, whose
// candidates union to exactly N+1 digits. Shared enumeration for ALS-XZ,
// ALS-XY-Wing and Sue-de-Coq, working over arbitrary cell sets via the
// BoardInterface.
type ALS struct {
	Cells  []int
	Digits bitset.Candidates
}

const maxALSSize = 4

// FindALSIn enumerates every ALS of size 1..maxALSSize within cells.
func FindALSIn(b BoardInterface, cells []int) []ALS {
	var out []ALS
	for size := 1; size <= maxALSSize && size <= len(cells); size++ {
		combinations(len(cells), size, func(pick []int) bool {
			group := make([]int, size)
			var union bitset.Candidates
			for i, p := range pick {
				group[i] = cells[p]
				union = union.Or(b.Cands(cells[p]))
			}
			if union.Count() == size+1 {
				out = append(out, ALS{Cells: append([]int(nil), group...), Digits: union})
			}
			return false
		})
	}
	return out
}

// findAllALS enumerates ALS across every house of the board.
func findAllALS(b BoardInterface) []ALS {
	var out []ALS
	for h := 0; h < 27; h++ {
		out = append(out, FindALSIn(b, unfilledIn(b, b.HouseCells(h)))...)
	}
	return out
}

func alsShareCells(a, c ALS) bool {
	for _, x := range a.Cells {
		for _, y := range c.Cells {
			if x == y {
				return true
			}
		}
	}
	return false
}

func restrictedCommon(b BoardInterface, a, c ALS, d int) bool {
	var aCells, cCells []int
	for _, cell := range a.Cells {
		if b.Cands(cell).Has(d) {
			aCells = append(aCells, cell)
		}
	}
	for _, cell := range c.Cells {
		if b.Cands(cell).Has(d) {
			cCells = append(cCells, cell)
		}
	}
	for _, x := range aCells {
		for _, y := range cCells {
			if !Sees(x, y) {
				return false
			}
		}
	}
	return true
}

// TryALSXZ finds two disjoint ALS sharing a restricted-common digit X (every
// X-cell in one sees every X-cell in the other) and a second common digit Z,
// eliminating Z from cells seeing every Z-cell in both ALS.
func TryALSXZ(b BoardInterface) (*Step, bool) {
	all := findAllALS(b)
	for i := 0; i < len(all); i++ {
		for j := i + 1; j < len(all); j++ {
			a, c := all[i], all[j]
			if alsShareCells(a, c) {
				continue
			}
			common := a.Digits.And(c.Digits)
			if common.Count() < 2 {
				continue
			}
			for _, x := range common.Digits() {
				if !restrictedCommon(b, a, c, x) {
					continue
				}
				for _, z := range common.Digits() {
					if z == x {
						continue
					}
					if step, ok := alsXZElimination(b, a, c, x, z); ok {
						return step, true
					}
				}
			}
		}
	}
	return nil, false
}

func alsXZElimination(b BoardInterface, a, c ALS, x, z int) (*Step, bool) {
	var zCellsA, zCellsB []int
	for _, cell := range a.Cells {
		if b.Cands(cell).Has(z) {
			zCellsA = append(zCellsA, cell)
		}
	}
	for _, cell := range c.Cells {
		if b.Cands(cell).Has(z) {
			zCellsB = append(zCellsB, cell)
		}
	}
	inALS := map[int]bool{}
	for _, cell := range a.Cells {
		inALS[cell] = true
	}
	for _, cell := range c.Cells {
		inALS[cell] = true
	}
	var eliminations []core.Candidate
	for idx := 0; idx < 81; idx++ {
		if inALS[idx] || b.Cell(idx) != 0 || !b.Cands(idx).Has(z) {
			continue
		}
		if seeAllOf(idx, zCellsA) && seeAllOf(idx, zCellsB) {
			eliminations = append(eliminations, elim(idx, z))
		}
	}
	highlight := append(append([]int{}, a.Cells...), c.Cells...)
	return eliminationStep("als-xz", highlight, eliminations,
		fmt.Sprintf("ALS-XZ: %s and %s share restricted common %d, eliminate %d", fmtCells(a.Cells), fmtCells(c.Cells), x, z))
}

func seeAllOf(idx int, group []int) bool {
	for _, g := range group {
		if !Sees(idx, g) {
			return false
		}
	}
	return true
}

// TryALSXYWing finds three ALS: A-C (hinge) share restricted common X, B-C
// share restricted common Y, and A, B share a common digit Z not equal to
// X or Y, eliminating Z from cells seeing every Z-cell in A and B.
func TryALSXYWing(b BoardInterface) (*Step, bool) {
	all := findAllALS(b)
	for hi := range all {
		hinge := all[hi]
		for ai := range all {
			if ai == hi || alsShareCells(all[ai], hinge) {
				continue
			}
			commonAX := all[ai].Digits.And(hinge.Digits)
			for _, x := range commonAX.Digits() {
				if !restrictedCommon(b, all[ai], hinge, x) {
					continue
				}
				for bi := range all {
					if bi == hi || bi == ai || alsShareCells(all[bi], hinge) || alsShareCells(all[bi], all[ai]) {
						continue
					}
					commonBY := all[bi].Digits.And(hinge.Digits)
					for _, y := range commonBY.Digits() {
						if y == x || !restrictedCommon(b, all[bi], hinge, y) {
							continue
						}
						commonZ := all[ai].Digits.And(all[bi].Digits).Without(x).Without(y)
						for _, z := range commonZ.Digits() {
							if step, ok := alsXYWingElimination(b, all[ai], all[bi], hinge, z); ok {
								return step, true
							}
						}
					}
				}
			}
		}
	}
	return nil, false
}

func alsXYWingElimination(b BoardInterface, a, c, hinge ALS, z int) (*Step, bool) {
	var zCellsA, zCellsB []int
	for _, cell := range a.Cells {
		if b.Cands(cell).Has(z) {
			zCellsA = append(zCellsA, cell)
		}
	}
	for _, cell := range c.Cells {
		if b.Cands(cell).Has(z) {
			zCellsB = append(zCellsB, cell)
		}
	}
	if len(zCellsA) == 0 || len(zCellsB) == 0 {
		return nil, false
	}
	inALS := map[int]bool{}
	for _, cell := range append(append(append([]int{}, a.Cells...), c.Cells...), hinge.Cells...) {
		inALS[cell] = true
	}
	var eliminations []core.Candidate
	for idx := 0; idx < 81; idx++ {
		if inALS[idx] || b.Cell(idx) != 0 || !b.Cands(idx).Has(z) {
			continue
		}
		if seeAllOf(idx, zCellsA) && seeAllOf(idx, zCellsB) {
			eliminations = append(eliminations, elim(idx, z))
		}
	}
	highlight := append(append(append([]int{}, a.Cells...), c.Cells...), hinge.Cells...)
	return eliminationStep("als-xy-wing", highlight, eliminations,
		fmt.Sprintf("ALS-XY-Wing: hinge %s with wings %s and %s, eliminate %d", fmtCells(hinge.Cells), fmtCells(a.Cells), fmtCells(c.Cells), z))
}
