package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver backed by the gini SAT engine;
// no external binary is required. The returned solution assigns every
// variable of the instance.
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (solver *giniSolver) Solve(satInstance SAT) (SATSolution, error) {
	engine := gini.NewV(int(satInstance.Variables))
	for _, clause := range satInstance.Clauses {
		for _, literal := range clause {
			engine.Add(giniLit(literal))
		}
		engine.Add(0) // Terminate the clause
	}

	switch engine.Solve() {
	case 1:
		solution := make(SATSolution, 0, satInstance.Variables)
		for variable := int64(1); variable <= int64(satInstance.Variables); variable++ {
			if engine.Value(giniLit(variable)) {
				solution = append(solution, variable)
			} else {
				solution = append(solution, -variable)
			}
		}
		return solution, nil
	case -1:
		return nil, nil
	}
	return nil, fmt.Errorf("gini stopped before reaching a verdict")
}

func giniLit(literal int64) z.Lit {
	if literal < 0 {
		return z.Var(-literal).Neg()
	}
	return z.Var(literal).Pos()
}
