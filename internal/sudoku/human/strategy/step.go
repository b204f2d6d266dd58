package strategy

import (
	"fmt"
	"sort"
	"strings"

	"sudoku-engine/internal/core"
)

// Step is the tagged-variant value every finder produces: a move in
// conventional Sudoku notation carrying its eliminations/assignment and a
// human-readable description. It is an alias of core.Move, which already
// has exactly this shape (Technique tag, Action, Targets, Eliminations,
// Explanation) — reusing it keeps one Step representation end to end
// instead of introducing a parallel type the solver would have to convert.
type Step = core.Move

// cellRef converts a 0-based cell index to a CellRef.
func cellRef(idx int) core.CellRef {
	return core.CellRef{Row: RowOf(idx), Col: ColOf(idx)}
}

func cellRefs(cells []int) []core.CellRef {
	out := make([]core.CellRef, len(cells))
	for i, c := range cells {
		out[i] = cellRef(c)
	}
	return out
}

// fmtCell renders a cell as "R1C1"-style notation (1-indexed).
func fmtCell(idx int) string {
	return fmt.Sprintf("r%dc%d", RowOf(idx)+1, ColOf(idx)+1)
}

func fmtCells(cells []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = fmtCell(c)
	}
	return strings.Join(parts, ",")
}

func fmtDigits(digits []int) string {
	parts := make([]string, len(digits))
	for i, d := range digits {
		parts[i] = fmt.Sprintf("%d", d)
	}
	return "{" + strings.Join(parts, ",") + "}"
}

// eliminationStep builds an eliminate-action Step. Returns false (no step)
// if the elimination set is empty — every finder treats "no eliminations"
// as "this pattern doesn't reduce anything here" (saturation, not a find).
func eliminationStep(technique string, highlight []int, eliminations []core.Candidate, explanation string) (*Step, bool) {
	if len(eliminations) == 0 {
		return nil, false
	}
	sortEliminations(eliminations)
	return &Step{
		Technique:    technique,
		Action:       "eliminate",
		Targets:      cellRefs(highlight),
		Eliminations: eliminations,
		Explanation:  explanation,
		Highlights:   core.Highlights{Primary: cellRefs(highlight)},
		Refs:         core.TechniqueRef{Title: technique, Slug: technique},
	}, true
}

// assignmentStep builds an assign-action Step for a single cell/digit.
func assignmentStep(technique string, cell, digit int, explanation string) *Step {
	return &Step{
		Technique:   technique,
		Action:      "assign",
		Digit:       digit,
		Targets:     []core.CellRef{cellRef(cell)},
		Explanation: explanation,
		Highlights:  core.Highlights{Primary: []core.CellRef{cellRef(cell)}},
		Refs:        core.TechniqueRef{Title: technique, Slug: technique},
	}
}

func elim(cell, digit int) core.Candidate {
	return core.Candidate{Row: RowOf(cell), Col: ColOf(cell), Digit: digit}
}

func sortEliminations(e []core.Candidate) {
	sort.Slice(e, func(i, j int) bool {
		if e[i].Row != e[j].Row {
			return e[i].Row < e[j].Row
		}
		if e[i].Col != e[j].Col {
			return e[i].Col < e[j].Col
		}
		return e[i].Digit < e[j].Digit
	})
}

// dedupe removes duplicate eliminations (same row/col/digit).
func dedupe(e []core.Candidate) []core.Candidate {
	if len(e) <= 1 {
		return e
	}
	seen := make(map[[3]int]bool, len(e))
	out := e[:0]
	for _, c := range e {
		k := [3]int{c.Row, c.Col, c.Digit}
		if !seen[k] {
			seen[k] = true
			out = append(out, c)
		}
	}
	return out
}
