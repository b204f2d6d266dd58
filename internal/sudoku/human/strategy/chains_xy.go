package strategy

import (
	"fmt"

	"sudoku-engine/internal/core"
)

// XY-Chain generalizes the XY-Wing (wings.go) from 2 links to an arbitrary
// chain of bivalue cells, each pair linked by a shared digit, such that the
// chain's first and last cell share a common digit Z. That digit can be
// eliminated from any cell seeing both ends. Remote Pair (remote.go) is
// the special case where every cell in the chain shares the same two
// candidates.

const maxXYChainLen = 8

// TryXYChain searches bivalue cells for a chain A=x-...-y=B where A and B
// both hold Z, eliminating Z from cells seeing both A and B.
func TryXYChain(b BoardInterface) (*Step, bool) {
	bivalues := cellsWithCandidateCount(b, 2)
	for _, start := range bivalues {
		// z is the start cell's reserved digit: if start is not z, the
		// chain propagates through its other digit. The chain is valid
		// when the end cell's forced digit equals z, so either the start
		// or the end holds z.
		for _, z := range b.Cands(start).Digits() {
			carry := otherDigit(b.Cands(start).Digits(), z)
			visited := map[int]bool{start: true}
			path := []int{start}
			if step, ok := xyChainDFS(b, start, z, carry, visited, path); ok {
				return step, true
			}
		}
	}
	return nil, false
}

// xyChainDFS extends the chain from the last cell in path. carry is the
// digit the last cell would be forced to hold if the start is not z; the
// next cell must see the last cell, contain carry, and its own other digit
// becomes the new carry.
func xyChainDFS(b BoardInterface, start, z, carry int, visited map[int]bool, path []int) (*Step, bool) {
	cur := path[len(path)-1]
	if len(path) >= 3 && carry == z {
		if step, ok := xyChainElimination(b, start, cur, z, path); ok {
			return step, true
		}
	}
	if len(path) >= maxXYChainLen {
		return nil, false
	}
	for next := 0; next < 81; next++ {
		if visited[next] || b.Cell(next) != 0 || b.Cands(next).Count() != 2 {
			continue
		}
		if !Sees(cur, next) || !b.Cands(next).Has(carry) {
			continue
		}
		visited[next] = true
		path = append(path, next)
		if step, ok := xyChainDFS(b, start, z, otherDigit(b.Cands(next).Digits(), carry), visited, path); ok {
			return step, true
		}
		path = path[:len(path)-1]
		delete(visited, next)
	}
	return nil, false
}

func xyChainElimination(b BoardInterface, start, end, z int, path []int) (*Step, bool) {
	if start == end || !b.Cands(start).Has(z) || !b.Cands(end).Has(z) {
		return nil, false
	}
	inPath := map[int]bool{}
	for _, p := range path {
		inPath[p] = true
	}
	var eliminations []core.Candidate
	for _, c := range CommonPeers(b, start, end).Cells() {
		if inPath[c] {
			continue
		}
		if b.Cands(c).Has(z) {
			eliminations = append(eliminations, elim(c, z))
		}
	}
	chainCopy := make([]int, len(path))
	copy(chainCopy, path)
	return eliminationStep("xy-chain", chainCopy, eliminations,
		fmt.Sprintf("XY-Chain on %d: %s", z, fmtCells(chainCopy)))
}
