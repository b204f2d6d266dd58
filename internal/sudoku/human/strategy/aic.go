package strategy

import (
	"fmt"

	"sudoku-engine/internal/bitset"
	"sudoku-engine/internal/core"
)

// General grouped Alternating Inference Chain engine. Where chains_x.go
// walks a single-digit cell graph and chains_xy.go walks bivalue cells,
// this engine unifies both and adds grouped nodes: the cells of one
// line/box intersection that carry the same candidate, treated as a single
// chain node. A node's two polarities are the paired states 2i (unset) and
// 2i+1 (set) over a flat node table; adjacency is rebuilt per search.
//
// Link semantics: a weak link joins two non-overlapping same-digit nodes
// sharing a house (at most one of them is true), or two digits of the same
// cell. The link is additionally strong (exactly one of them is true) when
// it is the only such pairing in the shared house, or when the cell is
// bivalue. A chain alternates "unset forces a strong partner set" with
// "set forces a weak partner unset".

type chainNode struct {
	cells    bitset.Pattern
	cellList []int
	digit    int
	grouped  bool
	line     int // house index of the containing line, grouped nodes only
	box      int // house index of the containing box, grouped nodes only
}

type chainStep struct {
	node int
	on   bool
	// strongUsed records whether the link into this node was conjugate,
	// which the continuous-loop test needs for the on -> off transitions.
	strongUsed bool
}

type chainEngine struct {
	b      BoardInterface
	nodes  []chainNode
	weak   [][]int
	strong [][]int
	// strongWith[i][j] marks weak partners whose link is also strong.
	strongWith []map[int]bool
}

const maxAICNodes = 10

// TryAIC searches for an alternating inference chain over normal and
// grouped nodes, returning the first discontinuous-loop elimination,
// verity, or continuous-loop elimination found.
func TryAIC(b BoardInterface) (*Step, bool) {
	eng := newChainEngine(b)
	for i := range eng.nodes {
		if step, ok := eng.searchFrom(i, false); ok {
			return step, true
		}
	}
	for i := range eng.nodes {
		if step, ok := eng.searchFrom(i, true); ok {
			return step, true
		}
	}
	return nil, false
}

func newChainEngine(b BoardInterface) *chainEngine {
	eng := &chainEngine{b: b}

	normalIdx := map[[2]int]int{}
	for idx := 0; idx < 81; idx++ {
		if b.Cell(idx) != 0 {
			continue
		}
		for _, d := range b.Cands(idx).Digits() {
			normalIdx[[2]int{idx, d}] = len(eng.nodes)
			eng.nodes = append(eng.nodes, chainNode{
				cells:    bitset.Bit(idx),
				cellList: []int{idx},
				digit:    d,
				line:     -1,
				box:      -1,
			})
		}
	}
	for _, inter := range b.Intersections() {
		interPat := bitset.PatternOf(inter.Cells[:]...)
		for d := 1; d <= 9; d++ {
			pat := b.PatternOfDigit(d).And(interPat)
			if pat.Count() < 2 {
				// a one-cell group is already a normal node
				continue
			}
			eng.nodes = append(eng.nodes, chainNode{
				cells:    pat,
				cellList: pat.Cells(),
				digit:    d,
				grouped:  true,
				line:     inter.Line,
				box:      inter.Box,
			})
		}
	}

	n := len(eng.nodes)
	eng.weak = make([][]int, n)
	eng.strong = make([][]int, n)
	eng.strongWith = make([]map[int]bool, n)
	for i := range eng.strongWith {
		eng.strongWith[i] = map[int]bool{}
	}
	addWeak := func(i, j int) {
		eng.weak[i] = append(eng.weak[i], j)
		eng.weak[j] = append(eng.weak[j], i)
	}
	addStrong := func(i, j int) {
		eng.strong[i] = append(eng.strong[i], j)
		eng.strong[j] = append(eng.strong[j], i)
		eng.strongWith[i][j] = true
		eng.strongWith[j][i] = true
	}

	// Same-digit links: non-overlapping nodes confined to a common house.
	byDigit := map[int][]int{}
	for i, nd := range eng.nodes {
		byDigit[nd.digit] = append(byDigit[nd.digit], i)
	}
	for d := 1; d <= 9; d++ {
		digitPat := b.PatternOfDigit(d)
		idxs := byDigit[d]
		for x := 0; x < len(idxs); x++ {
			for y := x + 1; y < len(idxs); y++ {
				a, c := eng.nodes[idxs[x]], eng.nodes[idxs[y]]
				if a.cells.Intersects(c.cells) {
					continue
				}
				union := a.cells.Or(c.cells)
				linked, conjugate := false, false
				for h := 0; h < 27; h++ {
					hp := b.HousePattern(h)
					if !union.SubsetOf(hp) {
						continue
					}
					linked = true
					if digitPat.And(hp).Equal(union) {
						conjugate = true
						break
					}
				}
				if !linked {
					continue
				}
				addWeak(idxs[x], idxs[y])
				if conjugate {
					addStrong(idxs[x], idxs[y])
				}
			}
		}
	}

	// Cell-internal links between two digits of one cell.
	for idx := 0; idx < 81; idx++ {
		if b.Cell(idx) != 0 {
			continue
		}
		digits := b.Cands(idx).Digits()
		for x := 0; x < len(digits); x++ {
			for y := x + 1; y < len(digits); y++ {
				i := normalIdx[[2]int{idx, digits[x]}]
				j := normalIdx[[2]int{idx, digits[y]}]
				addWeak(i, j)
				if len(digits) == 2 {
					addStrong(i, j)
				}
			}
		}
	}
	return eng
}

// searchFrom runs a depth-first extension from one polarity of one node:
// startOn=false assumes the start candidate unset and hunts for standard
// eliminations, verities and continuous loops; startOn=true assumes it set
// and hunts for the chain that turns it back off, refuting the candidate.
func (e *chainEngine) searchFrom(start int, startOn bool) (*Step, bool) {
	visited := make([]bool, 2*len(e.nodes))
	visited[stateIndex(start, startOn)] = true
	path := []chainStep{{node: start, on: startOn}}
	return e.dfs(start, startOn, startOn, visited, path)
}

func stateIndex(node int, on bool) int {
	if on {
		return 2*node + 1
	}
	return 2 * node
}

func (e *chainEngine) dfs(cur int, on, startOn bool, visited []bool, path []chainStep) (*Step, bool) {
	start := path[0].node
	if on {
		for _, next := range e.weak[cur] {
			if next == start {
				if startOn && len(path) >= 3 {
					// set -> ... -> unset on the same identifier: the
					// start candidate refutes itself.
					if step, ok := e.refutationStep(start, path); ok {
						return step, true
					}
				}
				if !startOn && len(path) >= 4 && e.loopIsContinuous(cur, start, path) {
					if step, ok := e.continuousLoopStep(path); ok {
						return step, true
					}
				}
				continue
			}
			if visited[stateIndex(next, false)] {
				continue
			}
			visited[stateIndex(next, false)] = true
			path = append(path, chainStep{node: next, on: false, strongUsed: e.strongWith[cur][next]})
			if len(path) < maxAICNodes {
				if step, ok := e.dfs(next, false, startOn, visited, path); ok {
					return step, true
				}
			}
			path = path[:len(path)-1]
			visited[stateIndex(next, false)] = false
		}
		return nil, false
	}
	for _, next := range e.strong[cur] {
		if next == start {
			if !startOn && len(path) >= 3 {
				// unset -> ... -> set on the same identifier: verity.
				if step, ok := e.verityStep(start, path); ok {
					return step, true
				}
			}
			continue
		}
		if visited[stateIndex(next, true)] {
			continue
		}
		visited[stateIndex(next, true)] = true
		path = append(path, chainStep{node: next, on: true, strongUsed: true})
		if !startOn && len(path) >= 4 && len(path)%2 == 0 {
			if step, ok := e.standardElimination(start, next, path); ok {
				return step, true
			}
		}
		if len(path) < maxAICNodes {
			if step, ok := e.dfs(next, true, startOn, visited, path); ok {
				return step, true
			}
		}
		path = path[:len(path)-1]
		visited[stateIndex(next, true)] = false
	}
	return nil, false
}

// seesNode reports whether candidate (cell, digit) is weakly linked to nd:
// another digit of the node's own (single) cell, or the same digit in a
// cell that sees every cell of the node.
func (e *chainEngine) seesNode(cell, digit int, nd chainNode) bool {
	if !nd.grouped && nd.cellList[0] == cell {
		return nd.digit != digit
	}
	if nd.digit != digit || nd.cells.Test(cell) {
		return false
	}
	for _, c := range nd.cellList {
		if !Sees(cell, c) {
			return false
		}
	}
	return true
}

func (e *chainEngine) inPathNode(cell, digit int, path []chainStep) bool {
	for _, s := range path {
		nd := e.nodes[s.node]
		if nd.digit == digit && nd.cells.Test(cell) {
			return true
		}
	}
	return false
}

// standardElimination handles the discontinuous chain (A unset) => ... =>
// (B set): at least one of A and B is true, so any candidate weakly linked
// to both is false.
func (e *chainEngine) standardElimination(start, end int, path []chainStep) (*Step, bool) {
	a, c := e.nodes[start], e.nodes[end]
	var eliminations []core.Candidate
	for idx := 0; idx < 81; idx++ {
		if e.b.Cell(idx) != 0 {
			continue
		}
		for _, d := range e.b.Cands(idx).Digits() {
			if e.inPathNode(idx, d, path) {
				continue
			}
			if e.seesNode(idx, d, a) && e.seesNode(idx, d, c) {
				eliminations = append(eliminations, elim(idx, d))
			}
		}
	}
	return eliminationStep("aic", e.pathCells(path), dedupe(eliminations),
		fmt.Sprintf("Alternating chain: %s", e.pathString(path)))
}

// refutationStep handles (A set) => ... => (A unset): the start candidate
// cannot be true and falls from every cell of its node.
func (e *chainEngine) refutationStep(start int, path []chainStep) (*Step, bool) {
	nd := e.nodes[start]
	var eliminations []core.Candidate
	for _, c := range nd.cellList {
		eliminations = append(eliminations, elim(c, nd.digit))
	}
	return eliminationStep("aic", e.pathCells(path), eliminations,
		fmt.Sprintf("Alternating chain: assuming %d at %s turns it back off (%s)",
			nd.digit, fmtCells(nd.cellList), e.pathString(path)))
}

// verityStep handles (A unset) => ... => (A set): the start candidate must
// be true. For a single-cell node that assigns the digit; for a grouped
// node the digit is confined to the group, so it falls from the rest of
// the group's line and box.
func (e *chainEngine) verityStep(start int, path []chainStep) (*Step, bool) {
	nd := e.nodes[start]
	if !nd.grouped {
		return assignmentStep("aic", nd.cellList[0], nd.digit,
			fmt.Sprintf("Alternating chain verity: %s must be %d (%s)",
				fmtCell(nd.cellList[0]), nd.digit, e.pathString(path))), true
	}
	remove := e.b.HousePattern(nd.line).Or(e.b.HousePattern(nd.box)).
		And(e.b.PatternOfDigit(nd.digit)).AndNot(nd.cells)
	var eliminations []core.Candidate
	for _, c := range remove.Cells() {
		eliminations = append(eliminations, elim(c, nd.digit))
	}
	return eliminationStep("aic", nd.cellList, eliminations,
		fmt.Sprintf("Alternating chain verity: %d confined to %s (%s)",
			nd.digit, fmtCells(nd.cellList), e.pathString(path)))
}

// loopIsContinuous reports whether closing the weak link cur -> start turns
// the path into a nice loop: every weak (on -> off) transition, including
// the closing link, must also be strong.
func (e *chainEngine) loopIsContinuous(cur, start int, path []chainStep) bool {
	if !e.strongWith[cur][start] {
		return false
	}
	for i := 1; i < len(path); i++ {
		if !path[i].on && !path[i].strongUsed {
			return false
		}
	}
	return true
}

// continuousLoopStep derives the nice-loop eliminations: a cell whose two
// digits are consecutive loop nodes keeps only those digits, and a
// same-digit link between consecutive nodes clears that digit from every
// outside cell seeing both.
func (e *chainEngine) continuousLoopStep(path []chainStep) (*Step, bool) {
	n := len(path)
	var eliminations []core.Candidate
	for i := 0; i < n; i++ {
		a := e.nodes[path[i].node]
		c := e.nodes[path[(i+1)%n].node]
		if !a.grouped && !c.grouped && a.cellList[0] == c.cellList[0] {
			cell := a.cellList[0]
			for _, d := range e.b.Cands(cell).Digits() {
				if d != a.digit && d != c.digit {
					eliminations = append(eliminations, elim(cell, d))
				}
			}
			continue
		}
		if a.digit != c.digit {
			continue
		}
		d := a.digit
		for idx := 0; idx < 81; idx++ {
			if e.b.Cell(idx) != 0 || !e.b.Cands(idx).Has(d) {
				continue
			}
			if e.inPathNode(idx, d, path) {
				continue
			}
			if e.seesNode(idx, d, a) && e.seesNode(idx, d, c) {
				eliminations = append(eliminations, elim(idx, d))
			}
		}
	}
	return eliminationStep("aic", e.pathCells(path), dedupe(eliminations),
		fmt.Sprintf("Continuous loop: %s", e.pathString(path)))
}

func (e *chainEngine) pathCells(path []chainStep) []int {
	seen := map[int]bool{}
	var out []int
	for _, s := range path {
		for _, c := range e.nodes[s.node].cellList {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out
}

func (e *chainEngine) pathString(path []chainStep) string {
	s := ""
	for i, st := range path {
		if i > 0 {
			s += "-"
		}
		nd := e.nodes[st.node]
		if nd.grouped {
			s += fmt.Sprintf("[%s]/%d", fmtCells(nd.cellList), nd.digit)
		} else {
			s += fmt.Sprintf("%s/%d", fmtCell(nd.cellList[0]), nd.digit)
		}
	}
	return s
}
