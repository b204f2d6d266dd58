package human

import "fmt"

// ============================================================================
// Naked-Single Propagation and Brute-Force Search
// ============================================================================
//
// Backtracking search directly over the bitboard Board: candidate masks
// are maintained incrementally by SetCell, so the inner loop picks the
// unfilled cell with fewest candidates instead of re-scanning for
// conflicts at every node.
//
// ============================================================================

// ContradictionError reports that a board has an empty-candidate cell: no
// digit can legally go there. This is a normal, locally-recovered signal
// during brute-force search, and a terminal failure for PropagateSingles.
type ContradictionError struct {
	Cell int
}

func (e *ContradictionError) Error() string {
	return fmt.Sprintf("sudoku: contradiction at cell %d: no candidates remain", e.Cell)
}

// PropagateSingles repeatedly assigns any unfilled cell whose candidate mask
// has exactly one bit, removing that digit from every peer, until no naked
// single remains. It returns a *ContradictionError if some peer's mask
// becomes empty along the way.
func (b *Board) PropagateSingles() error {
	for {
		progressed := false
		for i := 0; i < 81; i++ {
			if b.Cells[i] != 0 {
				continue
			}
			if d, ok := b.Candidates[i].Only(); ok {
				b.SetCell(i, d)
				progressed = true
			} else if b.Candidates[i].IsEmpty() {
				return &ContradictionError{Cell: i}
			}
		}
		if !progressed {
			break
		}
	}
	for i := 0; i < 81; i++ {
		if b.Cells[i] == 0 && b.Candidates[i].IsEmpty() {
			return &ContradictionError{Cell: i}
		}
	}
	return nil
}

// RandSource is the minimal randomness a brute-force search or grid filler
// needs: a uniform integer in [0,n). *math/rand.Rand satisfies this.
type RandSource interface {
	Intn(n int) int
}

// BruteForce attempts to complete b, stopping after maxSolutions distinct
// solutions are found. It returns the solution count and the last solution
// cell values reached (nil if none). When randomised is true and rng is
// non-nil, candidate order at each branch is drawn uniformly from the
// remaining bits; otherwise candidates are tried lowest bit first.
func (b *Board) BruteForce(maxSolutions int, randomised bool, rng RandSource) (int, []int) {
	work := b.Clone()
	if err := work.PropagateSingles(); err != nil {
		return 0, nil
	}
	count := 0
	var last []int
	var search func() bool
	search = func() bool {
		idx, ok := work.pickMostConstrainedCell()
		if !ok {
			count++
			sol := make([]int, 81)
			copy(sol, work.Cells[:])
			last = sol
			return count >= maxSolutions
		}
		digits := work.Candidates[idx].ToSlice()
		if randomised && rng != nil {
			shuffleInts(digits, rng)
		}
		for _, d := range digits {
			snapshot := work.Clone()
			work.SetCell(idx, d)
			if err := work.PropagateSingles(); err == nil {
				if search() {
					return true
				}
			}
			*work = *snapshot
		}
		return false
	}
	search()
	return count, last
}

// pickMostConstrainedCell returns the unfilled cell with the fewest
// candidates (ties broken by lowest index), or ok=false if the board is
// completely filled.
func (b *Board) pickMostConstrainedCell() (int, bool) {
	best := -1
	bestCount := 10
	for i := 0; i < 81; i++ {
		if b.Cells[i] != 0 {
			continue
		}
		n := b.Candidates[i].Count()
		if n < bestCount {
			best = i
			bestCount = n
			if n <= 1 {
				break
			}
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

func shuffleInts(xs []int, rng RandSource) {
	for i := len(xs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		xs[i], xs[j] = xs[j], xs[i]
	}
}
