package strategy

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// Plain and finned fish of sizes 2-4 (X-Wing, Swordfish, Jellyfish)
// share one size-driven scan in either orientation instead of a separate
// search per size.

var fishNames = map[int]string{2: "X-Wing", 3: "Swordfish", 4: "Jellyfish"}

func fishName(size int) string {
	if n, ok := fishNames[size]; ok {
		return n
	}
	return fmt.Sprintf("Fish%d", size)
}

// lineInfo is one row (or column) with the cross positions a digit still
// occupies in it.
type lineInfo struct {
	line     int
	crossing []int // row indices if scanning columns, column indices if scanning rows
}

// TryFish finds a plain (non-finned) fish of the given size, in either
// orientation (rows-base or columns-base).
func TryFish(b BoardInterface, size int) (*Step, bool) {
	for d := 1; d <= 9; d++ {
		if step, ok := fishInOrientation(b, d, size, false /*byRow*/); ok {
			return step, true
		}
		if step, ok := fishInOrientation(b, d, size, true /*byCol*/); ok {
			return step, true
		}
	}
	return nil, false
}

// TryFinnedFish finds a finned fish: size-1 base lines have exactly `size`
// fewer-or-equal candidates, and one extra line carries the same base
// positions plus fin cells confined to a single box; eliminations apply
// only where a cell is in a target cross line and in the fin's box.
func TryFinnedFish(b BoardInterface, size int) (*Step, bool) {
	for d := 1; d <= 9; d++ {
		if step, ok := finnedFishInOrientation(b, d, size, false); ok {
			return step, true
		}
		if step, ok := finnedFishInOrientation(b, d, size, true); ok {
			return step, true
		}
	}
	return nil, false
}

func collectLines(b BoardInterface, d int, byCol bool, minCross, maxCross int) []lineInfo {
	var lines []lineInfo
	for l := 0; l < 9; l++ {
		var cross []int
		for k := 0; k < 9; k++ {
			idx := cellAt(l, k, byCol)
			if b.Cell(idx) == 0 && b.Cands(idx).Has(d) {
				cross = append(cross, k)
			}
		}
		if len(cross) >= minCross && len(cross) <= maxCross {
			lines = append(lines, lineInfo{line: l, crossing: cross})
		}
	}
	return lines
}

// cellAt returns the cell index for line l, cross position k: if byCol is
// false, l is the row and k the column; if true, l is the column and k the
// row.
func cellAt(l, k int, byCol bool) int {
	if byCol {
		return k*9 + l
	}
	return l*9 + k
}

func fishInOrientation(b BoardInterface, d, size int, byCol bool) (*Step, bool) {
	lines := collectLines(b, d, byCol, 2, size)
	if len(lines) < size {
		return nil, false
	}
	var found *Step
	combinations(len(lines), size, func(pick []int) bool {
		crossSet := map[int]bool{}
		for _, p := range pick {
			for _, k := range lines[p].crossing {
				crossSet[k] = true
			}
		}
		if len(crossSet) != size {
			return false
		}
		baseLines := map[int]bool{}
		for _, p := range pick {
			baseLines[lines[p].line] = true
		}
		var eliminations []core.Candidate
		var targets []int
		for _, p := range pick {
			for _, k := range lines[p].crossing {
				targets = append(targets, cellAt(lines[p].line, k, byCol))
			}
		}
		for k := range crossSet {
			for x := 0; x < 9; x++ {
				if baseLines[x] {
					continue
				}
				idx := cellAt(x, k, byCol)
				if b.Cell(idx) == 0 && b.Cands(idx).Has(d) {
					eliminations = append(eliminations, elim(idx, d))
				}
			}
		}
		orient := "rows"
		if byCol {
			orient = "columns"
		}
		step, ok := eliminationStep(fishSlug(size), targets, eliminations,
			fmt.Sprintf("%s: %d confined to %d %s", fishName(size), d, size, orient))
		if ok {
			found = step
			return true
		}
		return false
	})
	return found, found != nil
}

func finnedFishInOrientation(b BoardInterface, d, size int, byCol bool) (*Step, bool) {
	lines := collectLines(b, d, byCol, 2, size+2)
	if len(lines) < size {
		return nil, false
	}
	var found *Step
	combinations(len(lines), size, func(pick []int) bool {
		for finPos := range pick {
			finIdx := pick[finPos]
			baseIdx := make([]int, 0, size-1)
			for i, p := range pick {
				if i != finPos {
					baseIdx = append(baseIdx, p)
				}
			}
			oversize := false
			for _, bi := range baseIdx {
				if len(lines[bi].crossing) > size {
					oversize = true
				}
			}
			if oversize {
				continue
			}
			baseCrossSet := map[int]bool{}
			for _, bi := range baseIdx {
				for _, k := range lines[bi].crossing {
					baseCrossSet[k] = true
				}
			}
			if len(baseCrossSet) != size {
				continue
			}
			var mainCross, finCross []int
			for _, k := range lines[finIdx].crossing {
				if baseCrossSet[k] {
					mainCross = append(mainCross, k)
				} else {
					finCross = append(finCross, k)
				}
			}
			if len(mainCross) < size-1 || len(finCross) == 0 {
				continue
			}
			finBoxOf := func(k int) int {
				return boxOfLineCross(lines[finIdx].line, k, byCol)
			}
			fb := finBoxOf(finCross[0])
			sameBox := true
			for _, fc := range finCross[1:] {
				if finBoxOf(fc) != fb {
					sameBox = false
				}
			}
			if !sameBox {
				continue
			}
			var targetCross []int
			for _, mc := range mainCross {
				if boxOfLineCross(lines[finIdx].line, mc, byCol) == fb {
					targetCross = append(targetCross, mc)
				}
			}
			if len(targetCross) == 0 {
				continue
			}
			patternLines := map[int]bool{lines[finIdx].line: true}
			for _, bi := range baseIdx {
				patternLines[lines[bi].line] = true
			}
			var eliminations []core.Candidate
			boxLines := linesInSameBox(lines[finIdx].line, byCol)
			for _, tc := range targetCross {
				for _, bl := range boxLines {
					if patternLines[bl] {
						continue
					}
					idx := cellAt(bl, tc, byCol)
					if b.Cell(idx) == 0 && b.Cands(idx).Has(d) {
						finCellIdx := cellAt(lines[finIdx].line, finCross[0], byCol)
						if Sees(idx, finCellIdx) {
							eliminations = append(eliminations, elim(idx, d))
						}
					}
				}
			}
			var targets []int
			for _, bi := range baseIdx {
				for _, k := range lines[bi].crossing {
					targets = append(targets, cellAt(lines[bi].line, k, byCol))
				}
			}
			for _, k := range mainCross {
				targets = append(targets, cellAt(lines[finIdx].line, k, byCol))
			}
			orient := "rows"
			if byCol {
				orient = "columns"
			}
			step, ok := eliminationStep("finned-"+fishSlug(size), targets, eliminations,
				fmt.Sprintf("Finned %s: %d in %d %s with a fin", fishName(size), d, size, orient))
			if ok {
				found = step
				return true
			}
		}
		return false
	})
	return found, found != nil
}

func boxOfLineCross(line, cross int, byCol bool) int {
	r, c := line, cross
	if byCol {
		r, c = cross, line
	}
	return BoxOf(r*9 + c)
}

// linesInSameBox returns the 3 lines (rows if !byCol, cols if byCol) that
// share a box band with line.
func linesInSameBox(line int, byCol bool) []int {
	start := (line / 3) * 3
	return []int{start, start + 1, start + 2}
}

func fishSlug(size int) string {
	switch size {
	case 2:
		return "x-wing"
	case 3:
		return "swordfish"
	case 4:
		return "jellyfish"
	default:
		return fmt.Sprintf("fish-%d", size)
	}
}
