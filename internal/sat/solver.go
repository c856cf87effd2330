package sat

// SATSolver solves a SAT instance. A nil solution along a nil error means the
// instance is unsatisfiable (both are valid outputs); a non-nil error means
// the solver itself malfunctioned.
type SATSolver interface {
	Solve(SAT) (SATSolution, error)
}
