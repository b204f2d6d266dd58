package strategy

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// X-Chain walks alternating strong/weak chains of arbitrary length for
// one digit. A 4-node S-W-S chain is the classic "Turbot Fish"; Skyscraper
// is the same pattern restricted to two rows or two columns, so it needs
// no separate finder here.
//
// Chain semantics: node 0 is assumed NOT d. A strong link (conjugate pair
// in some house) lets "not d" at one end force "d" at the other; a weak
// link (any shared house) lets "d" force "not d" at the other but not the
// reverse. A valid chain alternates strong, weak, strong, ... starting and
// ending on a strong link, so its last node is forced "d" regardless of
// node 0's actual value. Any cell seeing both ends (other than the chain
// itself) cannot be d.

const maxChainNodes = 9

// TryXChain searches, for each digit, for an alternating strong/weak chain
// of at least 4 nodes (one Turbot Fish or longer) yielding eliminations.
func TryXChain(b BoardInterface) (*Step, bool) {
	for d := 1; d <= 9; d++ {
		cells := candidateCellsForDigit(b, d)
		if len(cells) < 4 {
			continue
		}
		strong, weak := linkGraphsForDigit(b, d, cells)
		for _, start := range cells {
			if step, ok := xChainFrom(b, d, start, strong, weak); ok {
				return step, true
			}
		}
	}
	return nil, false
}

func candidateCellsForDigit(b BoardInterface, d int) []int {
	var out []int
	for i := 0; i < 81; i++ {
		if b.Cell(i) == 0 && b.Cands(i).Has(d) {
			out = append(out, i)
		}
	}
	return out
}

func linkGraphsForDigit(b BoardInterface, d int, cells []int) (strong, weak map[int][]int) {
	strong = map[int][]int{}
	weak = map[int][]int{}
	for i := 0; i < len(cells); i++ {
		for j := i + 1; j < len(cells); j++ {
			a, c := cells[i], cells[j]
			if !Sees(a, c) {
				continue
			}
			weak[a] = append(weak[a], c)
			weak[c] = append(weak[c], a)
		}
	}
	for h := 0; h < 27; h++ {
		var inHouse []int
		for _, c := range b.HouseCells(h) {
			if b.Cell(c) == 0 && b.Cands(c).Has(d) {
				inHouse = append(inHouse, c)
			}
		}
		if len(inHouse) == 2 {
			strong[inHouse[0]] = append(strong[inHouse[0]], inHouse[1])
			strong[inHouse[1]] = append(strong[inHouse[1]], inHouse[0])
		}
	}
	return strong, weak
}

func xChainFrom(b BoardInterface, d, start int, strong, weak map[int][]int) (*Step, bool) {
	visited := map[int]bool{start: true}
	path := []int{start}
	var found *Step
	var dfs func(cur int, onTurn bool) bool
	dfs = func(cur int, onTurn bool) bool {
		var next map[int][]int
		if onTurn {
			next = strong // off -> on requires a strong edge
		} else {
			// on -> off: either edge type works; try strong first, then weak
			next = strong
		}
		tryEdges := func(edges map[int][]int) bool {
			for _, n := range edges[cur] {
				if visited[n] {
					continue
				}
				path = append(path, n)
				visited[n] = true
				if onTurn && len(path) >= 4 && len(path)%2 == 0 {
					// this was an off->on (strong) move, so n is forced "on"
					if step, ok := xChainElimination(b, d, start, n, path); ok {
						found = step
						return true
					}
				}
				if len(path) < maxChainNodes {
					if dfs(n, !onTurn) {
						return true
					}
				}
				path = path[:len(path)-1]
				delete(visited, n)
			}
			return false
		}
		if tryEdges(next) {
			return true
		}
		if !onTurn {
			if tryEdges(weak) {
				return true
			}
		}
		return false
	}
	dfs(start, true)
	return found, found != nil
}

func xChainElimination(b BoardInterface, d, start, end int, path []int) (*Step, bool) {
	inPath := map[int]bool{}
	for _, p := range path {
		inPath[p] = true
	}
	var eliminations []core.Candidate
	for _, c := range CommonPeers(b, start, end).Cells() {
		if inPath[c] {
			continue
		}
		if b.Cands(c).Has(d) {
			eliminations = append(eliminations, elim(c, d))
		}
	}
	chainCopy := make([]int, len(path))
	copy(chainCopy, path)
	// A 4-node chain is the Turbot Fish special case; it stays under the
	// x-chain tag so the registry and difficulty labelling resolve it, with
	// the classic name kept in the explanation.
	name := "X-Chain"
	if len(path) == 4 {
		name = "Turbot Fish"
	}
	return eliminationStep("x-chain", chainCopy, eliminations,
		fmt.Sprintf("%s on %d: %s", name, d, fmtCells(chainCopy)))
}
