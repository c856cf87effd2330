package puzzle

import (
	"log"

	"github.com/limaJavier/numberlink/internal/sat"
)

// Instance owns the full CNF encoding of a single puzzle: the label table,
// every variable bank and the accumulated clause set. It is built once,
// constrained, solved once and then read through its Solution.
type Instance struct {
	labels []rune
	pairs  int
	width  int
	height int

	variables uint64
	clauses   [][]int64

	// Variable banks. eastWest holds one variable per vertical grid line and
	// row, northSouth one per horizontal grid line and column, so the edge
	// between two adjacent cells is a single shared variable.
	assignments []int64
	sinks       []int64
	eastWest    []int64
	northSouth  []int64
}

// NewInstance allocates every variable of a width x height grid over the
// given label table. Constraints are not set up yet.
func NewInstance(labels []rune, width, height int) *Instance {
	instance := &Instance{
		labels: labels,
		pairs:  len(labels),
		width:  width,
		height: height,
	}
	instance.assignments = instance.makeLiterals(instance.pairs * width * height)
	instance.sinks = instance.makeLiterals(width * height)
	instance.eastWest = instance.makeLiterals((width + 1) * height)
	instance.northSouth = instance.makeLiterals(width * (height + 1))
	return instance
}

// makeLiterals allocates s fresh variables and returns their positive
// literals.
func (instance *Instance) makeLiterals(s int) []int64 {
	literals := make([]int64, 0, s)
	for range s {
		instance.variables++
		literals = append(literals, int64(instance.variables))
	}
	return literals
}

// Assignment returns the literal that is true iff cell (i, j) carries
// label k.
func (instance *Instance) Assignment(i, j, k int) int64 {
	if i < 0 || i >= instance.height || j < 0 || j >= instance.width || k < 0 || k >= instance.pairs {
		log.Panicf("assignment out of range: i=%v, j=%v, k=%v", i, j, k)
	}
	return instance.assignments[(i*instance.width+j)*instance.pairs+k]
}

// Edge returns the literal of cell (i, j)'s edge in the given direction.
// Directional edges are shared with the adjacent cell: Edge(i, j, North) is
// the same literal as Edge(i-1, j, South), and Edge(i, j, East) the same as
// Edge(i, j+1, West).
func (instance *Instance) Edge(i, j int, direction Direction) int64 {
	if i < 0 || i >= instance.height || j < 0 || j >= instance.width {
		log.Panicf("edge out of range: i=%v, j=%v, direction=%v", i, j, direction)
	}
	switch direction {
	case Sink:
		return instance.sinks[i*instance.width+j]
	case East:
		return instance.eastWest[i*(instance.width+1)+j+1]
	case West:
		return instance.eastWest[i*(instance.width+1)+j]
	case North:
		return instance.northSouth[i*instance.width+j]
	case South:
		return instance.northSouth[(i+1)*instance.width+j]
	}
	log.Panicf("unknown direction: %v", direction)
	return 0
}

// SetUpBasicConstraints adds the constraints every drawn grid must satisfy:
// one label per cell, no path across the outer boundary, two active edges per
// cell, and active edges joining only equally labelled cells.
func (instance *Instance) SetUpBasicConstraints() {
	instance.clauses = append(instance.clauses, instance.assignmentConstraints()...)
	instance.clauses = append(instance.clauses, instance.wallConstraints()...)
	instance.clauses = append(instance.clauses, instance.degreeConstraints()...)
	instance.clauses = append(instance.clauses, instance.linkConstraints()...)
}

// SetUpSpanningUniqueConstraints adds the constraints that reject ambiguous
// drawings: edges become forced indicators of same-label adjacency, and
// corner propagation forbids locally swappable routings.
func (instance *Instance) SetUpSpanningUniqueConstraints() {
	instance.clauses = append(instance.clauses, instance.stickConstraints()...)
	instance.clauses = append(instance.clauses, instance.cornerPropagationConstraints()...)
}

func (instance *Instance) assignmentConstraints() [][]int64 {
	clauses := [][]int64{}
	for i := 0; i < instance.height; i++ {
		for j := 0; j < instance.width; j++ {
			xs := make([]int64, 0, instance.pairs)
			for k := 0; k < instance.pairs; k++ {
				xs = append(xs, instance.Assignment(i, j, k))
			}
			clauses = append(clauses, sat.Exact(1, xs)...)
		}
	}
	return clauses
}

func (instance *Instance) wallConstraints() [][]int64 {
	clauses := [][]int64{}
	for i := 0; i < instance.height; i++ {
		clauses = append(clauses, []int64{-instance.Edge(i, 0, West)})
		clauses = append(clauses, []int64{-instance.Edge(i, instance.width-1, East)})
	}
	for j := 0; j < instance.width; j++ {
		clauses = append(clauses, []int64{-instance.Edge(0, j, North)})
		clauses = append(clauses, []int64{-instance.Edge(instance.height-1, j, South)})
	}
	return clauses
}

func (instance *Instance) degreeConstraints() [][]int64 {
	clauses := [][]int64{}
	for i := 0; i < instance.height; i++ {
		for j := 0; j < instance.width; j++ {
			xs := make([]int64, 0, len(Directions))
			for _, direction := range Directions {
				xs = append(xs, instance.Edge(i, j, direction))
			}
			clauses = append(clauses, sat.Exact(2, xs)...)
		}
	}
	return clauses
}

func (instance *Instance) linkConstraints() [][]int64 {
	clauses := [][]int64{}
	for i := 1; i < instance.height; i++ {
		for j := 0; j < instance.width; j++ {
			e := instance.Edge(i, j, North)
			for k := 0; k < instance.pairs; k++ {
				clauses = append(clauses, sat.Glue(e, instance.Assignment(i, j, k), instance.Assignment(i-1, j, k))...)
			}
		}
	}

	for i := 0; i < instance.height; i++ {
		for j := 1; j < instance.width; j++ {
			e := instance.Edge(i, j, West)
			for k := 0; k < instance.pairs; k++ {
				clauses = append(clauses, sat.Glue(e, instance.Assignment(i, j, k), instance.Assignment(i, j-1, k))...)
			}
		}
	}
	return clauses
}

func (instance *Instance) stickConstraints() [][]int64 {
	clauses := [][]int64{}
	for i := 1; i < instance.height; i++ {
		for j := 0; j < instance.width; j++ {
			e := instance.Edge(i, j, North)
			for k := 0; k < instance.pairs; k++ {
				clauses = append(clauses, sat.Stick(e, instance.Assignment(i, j, k), instance.Assignment(i-1, j, k))...)
			}
		}
	}

	for i := 0; i < instance.height; i++ {
		for j := 1; j < instance.width; j++ {
			e := instance.Edge(i, j, West)
			for k := 0; k < instance.pairs; k++ {
				clauses = append(clauses, sat.Stick(e, instance.Assignment(i, j, k), instance.Assignment(i, j-1, k))...)
			}
		}
	}
	return clauses
}

func (instance *Instance) cornerPropagationConstraints() [][]int64 {
	clauses := [][]int64{}
	for i := 0; i < instance.height; i++ {
		for j := 0; j < instance.width; j++ {
			if i > 0 && j > 0 {
				clauses = append(clauses, instance.cornerPropagation(i, j, North, West)...)
			}
			if i > 0 && j < instance.width-1 {
				clauses = append(clauses, instance.cornerPropagation(i, j, North, East)...)
			}
			if i < instance.height-1 && j > 0 {
				clauses = append(clauses, instance.cornerPropagation(i, j, South, West)...)
			}
			if i < instance.height-1 && j < instance.width-1 {
				clauses = append(clauses, instance.cornerPropagation(i, j, South, East)...)
			}
		}
	}
	return clauses
}

// cornerPropagation forces a path turning through (i, j) to be continued by
// the diagonal neighbour reached via in then out, unless that neighbour is a
// sink. This rejects the routings that differ only by a swappable square
// loop.
func (instance *Instance) cornerPropagation(i, j int, in, out Direction) [][]int64 {
	ii := i + 1
	if in == North {
		ii = i - 1
	}
	jj := j + 1
	if out == West {
		jj = j - 1
	}

	e := instance.Edge(i, j, in)
	f := instance.Edge(i, j, out)
	s := instance.Edge(ii, jj, Sink)
	return [][]int64{
		{-e, -f, s, instance.Edge(ii, jj, in)},
		{-e, -f, s, instance.Edge(ii, jj, out)},
	}
}

// Fill pins cell (i, j) as a terminal of label k.
func (instance *Instance) Fill(i, j, k int) {
	instance.clauses = append(instance.clauses, []int64{instance.Assignment(i, j, k)})
	instance.clauses = append(instance.clauses, []int64{instance.Edge(i, j, Sink)})
}

// Empty pins cell (i, j) as a non-terminal.
func (instance *Instance) Empty(i, j int) {
	instance.clauses = append(instance.clauses, []int64{-instance.Edge(i, j, Sink)})
}

// SAT returns the accumulated CNF instance.
func (instance *Instance) SAT() sat.SAT {
	return sat.SAT{
		Variables: instance.variables,
		Clauses:   instance.clauses,
	}
}

// Solve hands the accumulated clause set to the solver exactly once. A nil
// Solution along a nil error means no unique spanning solution exists, which
// is a normal negative outcome and not an error.
func (instance *Instance) Solve(solver sat.SATSolver) (*Solution, error) {
	satSolution, err := solver.Solve(instance.SAT())
	if err != nil {
		return nil, err
	} else if satSolution == nil {
		return nil, nil
	}
	return newSolution(instance, satSolution), nil
}
