package strategy

import (
	"fmt"

	"sudoku-engine/internal/bitset"
	"sudoku-engine/internal/core"
)

// Pointing and claiming run one pass over the pre-tabulated line/box
// Intersections instead of scanning box rows/columns by hand.

// TryPointing finds a digit confined, within one box, to a single row or
// column, eliminating it from the rest of that line.
func TryPointing(b BoardInterface) (*Step, bool) {
	for _, inter := range b.Intersections() {
		for d := 1; d <= 9; d++ {
			boxPat := b.HousePattern(inter.Box).And(b.PatternOfDigit(d))
			if boxPat.IsEmpty() || !boxPat.SubsetOf(patternOfCells(inter.Cells[:])) {
				continue
			}
			line := b.HousePattern(inter.Line).And(b.PatternOfDigit(d)).AndNot(patternOfCells(inter.Cells[:]))
			if line.IsEmpty() {
				continue
			}
			var eliminations []core.Candidate
			for _, c := range line.Cells() {
				eliminations = append(eliminations, elim(c, d))
			}
			step, ok := eliminationStep("pointing", inter.Cells[:], eliminations,
				fmt.Sprintf("Pointing %d: confined to %s in box, eliminate from rest of %s",
					d, fmtCells(inter.Cells[:]), houseLabel(inter.Line)))
			if ok {
				return step, true
			}
		}
	}
	return nil, false
}

// TryClaiming finds a digit confined, within one row or column, to a single
// box, eliminating it from the rest of that box (box-line reduction, read
// off the same intersection table).
func TryClaiming(b BoardInterface) (*Step, bool) {
	for _, inter := range b.Intersections() {
		for d := 1; d <= 9; d++ {
			linePat := b.HousePattern(inter.Line).And(b.PatternOfDigit(d))
			if linePat.IsEmpty() || !linePat.SubsetOf(patternOfCells(inter.Cells[:])) {
				continue
			}
			box := b.HousePattern(inter.Box).And(b.PatternOfDigit(d)).AndNot(patternOfCells(inter.Cells[:]))
			if box.IsEmpty() {
				continue
			}
			var eliminations []core.Candidate
			for _, c := range box.Cells() {
				eliminations = append(eliminations, elim(c, d))
			}
			step, ok := eliminationStep("claiming", inter.Cells[:], eliminations,
				fmt.Sprintf("Claiming %d: confined to %s in %s, eliminate from rest of box",
					d, fmtCells(inter.Cells[:]), houseLabel(inter.Line)))
			if ok {
				return step, true
			}
		}
	}
	return nil, false
}

func patternOfCells(cells []int) bitset.Pattern {
	return bitset.PatternOf(cells...)
}
