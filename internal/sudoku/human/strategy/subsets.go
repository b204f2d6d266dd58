package strategy

import (
	"fmt"
	"strings"

	"sudoku-engine/internal/bitset"
	"sudoku-engine/internal/core"
)

// Naked and hidden subsets of sizes 2-4 share one size-driven scan over
// every house instead of a hand-written variant per size.

var subsetNames = map[int]string{2: "Pair", 3: "Triple", 4: "Quad"}

// TryNakedSubset finds `size` unfilled cells in a house whose candidates'
// union has exactly `size` digits, eliminating those digits from the rest
// of the house.
func TryNakedSubset(b BoardInterface, size int) (*Step, bool) {
	for h := 0; h < 27; h++ {
		cells := unfilledIn(b, b.HouseCells(h))
		if step, ok := nakedSubsetInHouse(b, cells, h, size); ok {
			return step, true
		}
	}
	return nil, false
}

func nakedSubsetInHouse(b BoardInterface, cells []int, house, size int) (*Step, bool) {
	candidates := make([]int, 0, len(cells))
	for _, c := range cells {
		if b.Cands(c).Count() >= 2 && b.Cands(c).Count() <= size {
			candidates = append(candidates, c)
		}
	}
	var found *Step
	combinations(len(candidates), size, func(pick []int) bool {
		group := make([]int, size)
		var union bitset.Candidates
		for i, p := range pick {
			group[i] = candidates[p]
			union = union.Or(b.Cands(candidates[p]))
		}
		if union.Count() != size {
			return false
		}
		var eliminations []core.Candidate
		inGroup := map[int]bool{}
		for _, g := range group {
			inGroup[g] = true
		}
		for _, c := range cells {
			if inGroup[c] {
				continue
			}
			for _, d := range union.Digits() {
				if b.Cands(c).Has(d) {
					eliminations = append(eliminations, elim(c, d))
				}
			}
		}
		step, ok := eliminationStep(
			"naked-"+strings.ToLower(subsetName(size)),
			group,
			eliminations,
			fmt.Sprintf("Naked %s %s in %s: eliminate from %s",
				subsetName(size), union.String(), houseLabel(house), fmtCells(nonGroup(cells, inGroup))),
		)
		if ok {
			found = step
			return true
		}
		return false
	})
	return found, found != nil
}

// TryHiddenSubset finds `size` digits confined to the same `size` cells of
// a house, eliminating every other candidate from those cells.
func TryHiddenSubset(b BoardInterface, size int) (*Step, bool) {
	for h := 0; h < 27; h++ {
		cells := unfilledIn(b, b.HouseCells(h))
		if step, ok := hiddenSubsetInHouse(b, cells, h, size); ok {
			return step, true
		}
	}
	return nil, false
}

func hiddenSubsetInHouse(b BoardInterface, cells []int, house, size int) (*Step, bool) {
	positions := map[int][]int{}
	for d := 1; d <= 9; d++ {
		for _, c := range cells {
			if b.Cands(c).Has(d) {
				positions[d] = append(positions[d], c)
			}
		}
	}
	digits := make([]int, 0, 9)
	for d := 1; d <= 9; d++ {
		if n := len(positions[d]); n >= 1 && n <= size {
			digits = append(digits, d)
		}
	}
	var found *Step
	combinations(len(digits), size, func(pick []int) bool {
		group := make([]int, size)
		cellSet := map[int]bool{}
		for i, p := range pick {
			group[i] = digits[p]
			for _, c := range positions[digits[p]] {
				cellSet[c] = true
			}
		}
		if len(cellSet) != size {
			return false
		}
		groupCells := make([]int, 0, size)
		for c := range cellSet {
			groupCells = append(groupCells, c)
		}
		var eliminations []core.Candidate
		for _, c := range groupCells {
			for _, d := range b.Cands(c).Digits() {
				if !containsInt(group, d) {
					eliminations = append(eliminations, elim(c, d))
				}
			}
		}
		step, ok := eliminationStep(
			"hidden-"+strings.ToLower(subsetName(size)),
			groupCells,
			eliminations,
			fmt.Sprintf("Hidden %s %s in %s confined to %s",
				subsetName(size), fmtDigits(group), houseLabel(house), fmtCells(groupCells)),
		)
		if ok {
			found = step
			return true
		}
		return false
	})
	return found, found != nil
}

func subsetName(size int) string {
	if n, ok := subsetNames[size]; ok {
		return n
	}
	return fmt.Sprintf("Subset%d", size)
}

func houseLabel(h int) string {
	switch {
	case h < 9:
		return fmt.Sprintf("row %d", h+1)
	case h < 18:
		return fmt.Sprintf("column %d", h-9+1)
	default:
		return fmt.Sprintf("box %d", h-18+1)
	}
}

func unfilledIn(b BoardInterface, cells []int) []int {
	out := make([]int, 0, len(cells))
	for _, c := range cells {
		if b.Cell(c) == 0 {
			out = append(out, c)
		}
	}
	return out
}

func nonGroup(cells []int, inGroup map[int]bool) []int {
	out := make([]int, 0, len(cells))
	for _, c := range cells {
		if !inGroup[c] {
			out = append(out, c)
		}
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// combinations calls f with every size-length index combination drawn from
// [0,n), stopping early if f returns true.
func combinations(n, size int, f func(pick []int) bool) bool {
	if size > n {
		return false
	}
	pick := make([]int, size)
	var rec func(start, depth int) bool
	rec = func(start, depth int) bool {
		if depth == size {
			return f(pick)
		}
		for i := start; i <= n-(size-depth); i++ {
			pick[depth] = i
			if rec(i+1, depth+1) {
				return true
			}
		}
		return false
	}
	return rec(0, 0)
}
