package strategy

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// Simple Colouring two-colours the whole strong-link graph for a digit
// and applies both classic colouring rules, which subsume skyscraper and
// turbot-fish as same-component special cases.

// TryColoring finds a two-colourable strong-link component for some digit
// and returns either a colour-trap (rule 2) or colour-wrap (rule 4)
// elimination.
func TryColoring(b BoardInterface) (*Step, bool) {
	for d := 1; d <= 9; d++ {
		links := strongLinksForDigit(b, d)
		if len(links) == 0 {
			continue
		}
		colors := colorComponents(links)
		if step, ok := colorTrap(b, d, colors); ok {
			return step, true
		}
		if step, ok := colorWrap(b, d, colors); ok {
			return step, true
		}
	}
	return nil, false
}

// strongLinksForDigit returns, for each house, the pair of cells that are
// the only two candidates for d in that house (a conjugate pair).
func strongLinksForDigit(b BoardInterface, d int) [][2]int {
	var links [][2]int
	for h := 0; h < 27; h++ {
		var cells []int
		for _, c := range b.HouseCells(h) {
			if b.Cell(c) == 0 && b.Cands(c).Has(d) {
				cells = append(cells, c)
			}
		}
		if len(cells) == 2 {
			links = append(links, [2]int{cells[0], cells[1]})
		}
	}
	return links
}

// colorComponents two-colours every connected component of the strong-link
// graph, returning cell -> color(0/1) for cells reached, grouped by a
// representative component id implicit in the map's connectivity.
func colorComponents(links [][2]int) map[int]int {
	adj := map[int][]int{}
	for _, l := range links {
		adj[l[0]] = append(adj[l[0]], l[1])
		adj[l[1]] = append(adj[l[1]], l[0])
	}
	colors := map[int]int{}
	for start := range adj {
		if _, seen := colors[start]; seen {
			continue
		}
		colors[start] = 0
		queue := []int{start}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, next := range adj[cur] {
				if _, seen := colors[next]; !seen {
					colors[next] = 1 - colors[cur]
					queue = append(queue, next)
				}
			}
		}
	}
	return colors
}

// colorTrap: if two same-colored cells see each other, that color is
// false everywhere (rule 2 / contradiction trap).
func colorTrap(b BoardInterface, d int, colors map[int]int) (*Step, bool) {
	cellsByColor := map[int][]int{}
	for c, col := range colors {
		cellsByColor[col] = append(cellsByColor[col], c)
	}
	for col, cells := range cellsByColor {
		for i := 0; i < len(cells); i++ {
			for j := i + 1; j < len(cells); j++ {
				if Sees(cells[i], cells[j]) {
					var eliminations []core.Candidate
					for c, cc := range colors {
						if cc == col {
							eliminations = append(eliminations, elim(c, d))
						}
					}
					highlight := cellsByColor[col]
					step, ok := eliminationStep("simple-coloring", highlight, eliminations,
						fmt.Sprintf("Simple Colouring: colour trap on %d, %s and %s share a house", d, fmtCell(cells[i]), fmtCell(cells[j])))
					if ok {
						return step, true
					}
				}
			}
		}
	}
	return nil, false
}

// colorWrap: an uncolored cell that sees a cell of each color cannot be d
// (rule 4).
func colorWrap(b BoardInterface, d int, colors map[int]int) (*Step, bool) {
	var eliminations []core.Candidate
	var highlight []int
	for c := range colors {
		highlight = append(highlight, c)
	}
	for idx := 0; idx < 81; idx++ {
		if _, colored := colors[idx]; colored {
			continue
		}
		if b.Cell(idx) != 0 || !b.Cands(idx).Has(d) {
			continue
		}
		seesColor0, seesColor1 := false, false
		for c, col := range colors {
			if !Sees(idx, c) {
				continue
			}
			if col == 0 {
				seesColor0 = true
			} else {
				seesColor1 = true
			}
		}
		if seesColor0 && seesColor1 {
			eliminations = append(eliminations, elim(idx, d))
		}
	}
	return eliminationStep("simple-coloring", highlight, eliminations,
		fmt.Sprintf("Simple Colouring: colour wrap eliminates %d from cells seeing both colours", d))
}
