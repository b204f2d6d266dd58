package strategy

import (
	"fmt"

	"sudoku-engine/internal/bitset"
	"sudoku-engine/internal/core"
)

// Remote Pair is the special case of the XY-Chain (chains_xy.go) where
// every link cell shares the exact same two candidates: a chain of
// conjugate {A,B} cells where consecutive cells see each other. Any cell
// seeing two opposite-parity chain cells (one assigned A and the other B
// in the alternating hypothesis) can have both A and B eliminated.

const maxRemotePairLen = 10

// TryRemotePair finds a chain of bivalue cells all sharing candidates
// {A,B}, alternating which one each would hold, eliminating both digits
// from cells seeing an even-position and an odd-position cell of the chain.
func TryRemotePair(b BoardInterface) (*Step, bool) {
	bivalues := cellsWithCandidateCount(b, 2)
	for _, start := range bivalues {
		mask := b.Cands(start)
		visited := map[int]bool{start: true}
		path := []int{start}
		if step, ok := remotePairDFS(b, mask, visited, path); ok {
			return step, true
		}
	}
	return nil, false
}

func remotePairDFS(b BoardInterface, mask bitset.Candidates, visited map[int]bool, path []int) (*Step, bool) {
	if len(path) >= 4 && len(path)%2 == 0 {
		if step, ok := remotePairElimination(b, mask.Digits(), path); ok {
			return step, true
		}
	}
	if len(path) >= maxRemotePairLen {
		return nil, false
	}
	cur := path[len(path)-1]
	for next := 0; next < 81; next++ {
		if visited[next] || b.Cell(next) != 0 {
			continue
		}
		if !candsEqual(b, next, mask) || !Sees(cur, next) {
			continue
		}
		visited[next] = true
		path = append(path, next)
		if step, ok := remotePairDFS(b, mask, visited, path); ok {
			return step, true
		}
		path = path[:len(path)-1]
		delete(visited, next)
	}
	return nil, false
}

func candsEqual(b BoardInterface, idx int, mask bitset.Candidates) bool {
	return b.Cands(idx) == mask
}

func remotePairElimination(b BoardInterface, digits []int, path []int) (*Step, bool) {
	if len(digits) != 2 {
		return nil, false
	}
	inPath := map[int]bool{}
	evenCells, oddCells := []int{}, []int{}
	for i, p := range path {
		inPath[p] = true
		if i%2 == 0 {
			evenCells = append(evenCells, p)
		} else {
			oddCells = append(oddCells, p)
		}
	}
	var eliminations []core.Candidate
	for c := 0; c < 81; c++ {
		if inPath[c] || b.Cell(c) != 0 {
			continue
		}
		seesEven := seesAny(c, evenCells)
		seesOdd := seesAny(c, oddCells)
		if seesEven && seesOdd {
			for _, d := range digits {
				if b.Cands(c).Has(d) {
					eliminations = append(eliminations, elim(c, d))
				}
			}
		}
	}
	chainCopy := make([]int, len(path))
	copy(chainCopy, path)
	return eliminationStep("remote-pair", chainCopy, eliminations,
		fmt.Sprintf("Remote Pair on {%d,%d}: %s", digits[0], digits[1], fmtCells(chainCopy)))
}

func seesAny(c int, group []int) bool {
	for _, g := range group {
		if Sees(c, g) {
			return true
		}
	}
	return false
}
