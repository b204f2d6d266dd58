package constants

// Grid constants
const (
	GridSize   = 9
	BoxSize    = 3
	TotalCells = 81
)

// Solver limits
const (
	MaxSolverSteps = 500
)

// Move actions
const (
	ActionAssign    = "assign"
	ActionEliminate = "eliminate"
)

// Solver status
const (
	StatusCompleted       = "completed"
	StatusStalled         = "stalled"
	StatusMaxStepsReached = "max_steps_reached"
)
