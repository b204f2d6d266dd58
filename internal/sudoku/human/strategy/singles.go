package strategy

import "fmt"

// NakedSingleParams configures the naked-single finder.
type NakedSingleParams struct {
	// OnlyFullHouse restricts the search to singles whose containing
	// row/column/box has exactly one unfilled cell remaining.
	OnlyFullHouse bool
}

// TryNakedSingle picks any unfilled cell whose mask is a power of two.
func TryNakedSingle(b BoardInterface, p NakedSingleParams) (*Step, bool) {
	for idx := 0; idx < 81; idx++ {
		if b.Cell(idx) != 0 {
			continue
		}
		d, ok := b.Cands(idx).Only()
		if !ok {
			continue
		}
		if p.OnlyFullHouse && !isFullHouse(b, idx) {
			continue
		}
		return assignmentStep("naked-single", idx, d,
			fmt.Sprintf("Naked Single: %s can only be %d", fmtCell(idx), d)), true
	}
	return nil, false
}

func isFullHouse(b BoardInterface, idx int) bool {
	for _, h := range b.HousesOf(idx) {
		unfilled := 0
		for _, c := range b.HouseCells(h) {
			if b.Cell(c) == 0 {
				unfilled++
			}
		}
		if unfilled == 1 {
			return true
		}
	}
	return false
}

// HiddenSingleParams configures the hidden-single finder.
type HiddenSingleParams struct {
	// BoxesOnly restricts the search to box houses (18-26).
	BoxesOnly bool
}

// TryHiddenSingle finds a digit that appears in exactly one cell of some
// house and assigns it there.
func TryHiddenSingle(b BoardInterface, p HiddenSingleParams) (*Step, bool) {
	houses := []int{}
	if p.BoxesOnly {
		for h := 18; h < 27; h++ {
			houses = append(houses, h)
		}
	} else {
		for h := 0; h < 27; h++ {
			houses = append(houses, h)
		}
	}
	for _, h := range houses {
		cells := b.HouseCells(h)
		for d := 1; d <= 9; d++ {
			var only int = -1
			count := 0
			for _, c := range cells {
				if b.Cell(c) == 0 && b.Cands(c).Has(d) {
					count++
					only = c
				}
			}
			if count == 1 {
				return assignmentStep("hidden-single", only, d,
					fmt.Sprintf("Hidden Single: %d only fits at %s in this house", d, fmtCell(only))), true
			}
		}
	}
	return nil, false
}
