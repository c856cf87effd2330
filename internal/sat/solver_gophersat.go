package sat

import (
	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process solver backed by the gophersat SAT
// engine; no external binary is required.
func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (s *gophersatSolver) Solve(satInstance SAT) (SATSolution, error) {
	clauses := make([][]int, len(satInstance.Clauses))
	for i, clause := range satInstance.Clauses {
		clauses[i] = make([]int, len(clause))
		for j, literal := range clause {
			clauses[i][j] = int(literal)
		}
	}

	problem := solver.ParseSlice(clauses)
	engine := solver.New(problem)
	if engine.Solve() != solver.Sat {
		return nil, nil
	}

	model := engine.Model() // Indexed by variable-1
	solution := make(SATSolution, 0, len(model))
	for i, value := range model {
		variable := int64(i + 1)
		if value {
			solution = append(solution, variable)
		} else {
			solution = append(solution, -variable)
		}
	}
	return solution, nil
}
