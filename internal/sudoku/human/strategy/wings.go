package strategy

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// XY-Wing and XYZ-Wing share the pivot/pincer scan over bivalue cells;
// W-Wing reuses the same shape with a connecting single-digit strong link
// in place of a pivot.

// TryXYWing finds a pivot with candidates {X,Y}, two wings {X,Z} and {Y,Z}
// each seeing the pivot, and eliminates Z from cells seeing both wings.
func TryXYWing(b BoardInterface) (*Step, bool) {
	bivalues := cellsWithCandidateCount(b, 2)
	for _, pivot := range bivalues {
		pc := b.Cands(pivot).Digits()
		x, y := pc[0], pc[1]
		var xWings, yWings []int
		for _, w := range bivalues {
			if w == pivot || !Sees(pivot, w) {
				continue
			}
			wc := b.Cands(w).Digits()
			if len(wc) != 2 {
				continue
			}
			switch {
			case wc[0] == x && wc[1] != y:
				xWings = append(xWings, w)
			case wc[1] == x && wc[0] != y:
				xWings = append(xWings, w)
			case wc[0] == y && wc[1] != x:
				yWings = append(yWings, w)
			case wc[1] == y && wc[0] != x:
				yWings = append(yWings, w)
			}
		}
		for _, xw := range xWings {
			xwDigits := b.Cands(xw).Digits()
			z := otherDigit(xwDigits, x)
			for _, yw := range yWings {
				if xw == yw {
					continue
				}
				ywDigits := b.Cands(yw).Digits()
				if otherDigit(ywDigits, y) != z {
					continue
				}
				var eliminations []core.Candidate
				for _, c := range CommonPeers(b, xw, yw).Cells() {
					if c == pivot {
						continue
					}
					if b.Cell(c) == 0 && b.Cands(c).Has(z) {
						eliminations = append(eliminations, elim(c, z))
					}
				}
				step, ok := eliminationStep("xy-wing", []int{pivot, xw, yw}, eliminations,
					fmt.Sprintf("XY-Wing: pivot %s {%d,%d}, wings %s {%d,%d} and %s {%d,%d}, eliminate %d",
						fmtCell(pivot), x, y, fmtCell(xw), x, z, fmtCell(yw), y, z, z))
				if ok {
					return step, true
				}
			}
		}
	}
	return nil, false
}

// TryXYZWing finds a pivot with candidates {X,Y,Z}, wing1 {X,Z} and wing2
// {Y,Z} each seeing the pivot, and eliminates Z from cells seeing all three.
func TryXYZWing(b BoardInterface) (*Step, bool) {
	trivalues := cellsWithCandidateCount(b, 3)
	bivalues := cellsWithCandidateCount(b, 2)
	for _, pivot := range trivalues {
		pc := b.Cands(pivot).Digits()
		for _, z := range pc {
			others := otherTwo(pc, z)
			xDigit, yDigit := others[0], others[1]
			var xzWings, yzWings []int
			for _, w := range bivalues {
				if w == pivot || !Sees(pivot, w) {
					continue
				}
				wc := b.Cands(w).Digits()
				if hasBoth(wc, xDigit, z) {
					xzWings = append(xzWings, w)
				}
				if hasBoth(wc, yDigit, z) {
					yzWings = append(yzWings, w)
				}
			}
			for _, xw := range xzWings {
				for _, yw := range yzWings {
					if xw == yw {
						continue
					}
					var eliminations []core.Candidate
					for c := 0; c < 81; c++ {
						if c == pivot || c == xw || c == yw {
							continue
						}
						if b.Cell(c) == 0 && b.Cands(c).Has(z) && Sees(c, pivot) && Sees(c, xw) && Sees(c, yw) {
							eliminations = append(eliminations, elim(c, z))
						}
					}
					step, ok := eliminationStep("xyz-wing", []int{pivot, xw, yw}, eliminations,
						fmt.Sprintf("XYZ-Wing: pivot %s {%d,%d,%d}, wings %s and %s, eliminate %d",
							fmtCell(pivot), xDigit, yDigit, z, fmtCell(xw), fmtCell(yw), z))
					if ok {
						return step, true
					}
				}
			}
		}
	}
	return nil, false
}

// TryWWing finds two bivalue cells sharing candidates {X,Y}, connected by a
// strong link on Y between a peer of each, and eliminates X from cells
// seeing both bivalue cells.
func TryWWing(b BoardInterface) (*Step, bool) {
	bivalues := cellsWithCandidateCount(b, 2)
	for i := 0; i < len(bivalues); i++ {
		for j := i + 1; j < len(bivalues); j++ {
			a, c := bivalues[i], bivalues[j]
			if Sees(a, c) {
				continue
			}
			ac := b.Cands(a).Digits()
			cc := b.Cands(c).Digits()
			if len(ac) != 2 || len(cc) != 2 || ac[0] != cc[0] || ac[1] != cc[1] {
				continue
			}
			x, y := ac[0], ac[1]
			if strongLinkExists(b, a, c, y) {
				if step, ok := wWingElimination(b, a, c, x); ok {
					return step, true
				}
			}
			if strongLinkExists(b, a, c, x) {
				if step, ok := wWingElimination(b, a, c, y); ok {
					return step, true
				}
			}
		}
	}
	return nil, false
}

// strongLinkExists reports whether there is a house containing exactly two
// occurrences of d, one peer of a and one peer of c (the W-Wing's
// connecting strong link).
func strongLinkExists(b BoardInterface, a, c, d int) bool {
	for h := 0; h < 27; h++ {
		var cells []int
		for _, cell := range b.HouseCells(h) {
			if b.Cell(cell) == 0 && b.Cands(cell).Has(d) {
				cells = append(cells, cell)
			}
		}
		if len(cells) != 2 {
			continue
		}
		p1, p2 := cells[0], cells[1]
		if (Sees(p1, a) && Sees(p2, c)) || (Sees(p1, c) && Sees(p2, a)) {
			return true
		}
	}
	return false
}

func wWingElimination(b BoardInterface, a, c, digit int) (*Step, bool) {
	var eliminations []core.Candidate
	for _, cell := range CommonPeers(b, a, c).Cells() {
		if b.Cands(cell).Has(digit) {
			eliminations = append(eliminations, elim(cell, digit))
		}
	}
	return eliminationStep("w-wing", []int{a, c}, eliminations,
		fmt.Sprintf("W-Wing: %s and %s share {%d,%d}, eliminate %d", fmtCell(a), fmtCell(c), digit, otherDigit(b.Cands(a).Digits(), digit), digit))
}

func cellsWithCandidateCount(b BoardInterface, n int) []int {
	var out []int
	for i := 0; i < 81; i++ {
		if b.Cell(i) == 0 && b.Cands(i).Count() == n {
			out = append(out, i)
		}
	}
	return out
}

func otherDigit(digits []int, exclude int) int {
	for _, d := range digits {
		if d != exclude {
			return d
		}
	}
	return 0
}

func otherTwo(digits []int, exclude int) [2]int {
	var out [2]int
	i := 0
	for _, d := range digits {
		if d != exclude {
			out[i] = d
			i++
		}
	}
	return out
}

func hasBoth(digits []int, a, c int) bool {
	return len(digits) == 2 && ((digits[0] == a && digits[1] == c) || (digits[0] == c && digits[1] == a))
}
