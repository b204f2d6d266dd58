package strategy

import (
	"fmt"

	"sudoku-engine/internal/bitset"
	"sudoku-engine/internal/core"
)

// Sue-de-Coq (Two-Sector Disjoint Subset): at a box/line intersection of
// 2-3 cells, split the combined candidates between an ALS in the box
// remainder and an ALS in the line remainder that together cover the
// intersection exactly. The basic form restricts both ALS to size 1-2;
// the extended form also allows size 3, matching maxALSSize.

// TrySueDeCoq finds a Sue-de-Coq pattern at any box/line intersection.
func TrySueDeCoq(b BoardInterface) (*Step, bool) {
	for _, inter := range b.Intersections() {
		if step, ok := sueDeCoqAt(b, inter); ok {
			return step, true
		}
	}
	return nil, false
}

func sueDeCoqAt(b BoardInterface, inter Intersection) (*Step, bool) {
	interCells := unfilledIn(b, inter.Cells[:])
	if len(interCells) < 2 || len(interCells) > 3 {
		return nil, false
	}
	var interCands bitset.Candidates
	for _, c := range interCells {
		interCands = interCands.Or(b.Cands(c))
	}
	if interCands.Count() < len(interCells)+2 {
		return nil, false
	}
	interSet := map[int]bool{}
	for _, c := range inter.Cells {
		interSet[c] = true
	}
	boxRemainder := remainderExcluding(b, b.HouseCells(inter.Box), interSet)
	lineRemainder := remainderExcluding(b, b.HouseCells(inter.Line), interSet)

	boxALS := alsOverlapping(FindALSIn(b, boxRemainder), interCands)
	lineALS := alsOverlapping(FindALSIn(b, lineRemainder), interCands)

	for _, ba := range boxALS {
		for _, la := range lineALS {
			if alsShareCells(ba, la) {
				continue
			}
			if ba.Digits.And(la.Digits) != 0 {
				continue
			}
			if ba.Digits.Or(la.Digits) != interCands {
				continue
			}
			if step, ok := sueDeCoqElimination(b, inter, interSet, ba, la); ok {
				return step, true
			}
		}
	}
	return nil, false
}

func remainderExcluding(b BoardInterface, cells []int, exclude map[int]bool) []int {
	var out []int
	for _, c := range cells {
		if !exclude[c] && b.Cell(c) == 0 {
			out = append(out, c)
		}
	}
	return out
}

func alsOverlapping(all []ALS, interCands bitset.Candidates) []ALS {
	var out []ALS
	for _, a := range all {
		if a.Digits.And(interCands) != 0 {
			out = append(out, a)
		}
	}
	return out
}

func sueDeCoqElimination(b BoardInterface, inter Intersection, interSet map[int]bool, boxALS, lineALS ALS) (*Step, bool) {
	excluded := map[int]bool{}
	for c := range interSet {
		excluded[c] = true
	}
	for _, c := range boxALS.Cells {
		excluded[c] = true
	}
	for _, c := range lineALS.Cells {
		excluded[c] = true
	}
	var eliminations []core.Candidate
	for _, c := range b.HouseCells(inter.Box) {
		if excluded[c] || b.Cell(c) != 0 {
			continue
		}
		for _, d := range boxALS.Digits.Digits() {
			if b.Cands(c).Has(d) {
				eliminations = append(eliminations, elim(c, d))
			}
		}
	}
	for _, c := range b.HouseCells(inter.Line) {
		if excluded[c] || b.Cell(c) != 0 {
			continue
		}
		for _, d := range lineALS.Digits.Digits() {
			if b.Cands(c).Has(d) {
				eliminations = append(eliminations, elim(c, d))
			}
		}
	}
	highlight := append(append(append([]int{}, inter.Cells[:]...), boxALS.Cells...), lineALS.Cells...)
	return eliminationStep("sue-de-coq", highlight, eliminations,
		fmt.Sprintf("Sue de Coq at %s: box ALS %s covers %s, line ALS %s covers %s",
			fmtCells(inter.Cells[:]), fmtCells(boxALS.Cells), boxALS.Digits.String(), fmtCells(lineALS.Cells), lineALS.Digits.String()))
}
