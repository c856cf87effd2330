package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSharedEdgeIdentity(t *testing.T) {
	// Arrange
	instance := NewInstance([]rune{'A', 'B'}, 4, 3)

	// Assert: the edge north of a cell is the edge south of its northern
	// neighbour, and the edge east of a cell is the edge west of its eastern
	// neighbour
	for i := 1; i < 3; i++ {
		for j := 0; j < 4; j++ {
			assert.Equal(t, instance.Edge(i-1, j, South), instance.Edge(i, j, North))
		}
	}
	for i := 0; i < 3; i++ {
		for j := 1; j < 4; j++ {
			assert.Equal(t, instance.Edge(i, j-1, East), instance.Edge(i, j, West))
		}
	}
}

func TestVariableBanksAreDisjoint(t *testing.T) {
	// Arrange
	instance := NewInstance([]rune{'A'}, 3, 2)

	// Act: collect every literal the instance hands out
	seen := map[int64]bool{}
	count := 0
	record := func(literal int64) {
		assert.False(t, seen[literal], "literal %v handed out twice", literal)
		seen[literal] = true
		count++
	}
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			record(instance.Assignment(i, j, 0))
			record(instance.Edge(i, j, Sink))
		}
	}
	// Shared edges counted once through their canonical bank positions
	for _, literal := range instance.eastWest {
		record(literal)
	}
	for _, literal := range instance.northSouth {
		record(literal)
	}

	// Assert
	expected := 1*3*2 + 3*2 + (3+1)*2 + 3*(2+1)
	assert.Equal(t, expected, count)
	assert.Equal(t, uint64(expected), instance.SAT().Variables)
}

func TestOutOfRangePanics(t *testing.T) {
	instance := NewInstance([]rune{'A'}, 2, 2)

	assert.Panics(t, func() { instance.Edge(-1, 0, North) })
	assert.Panics(t, func() { instance.Edge(0, 2, Sink) })
	assert.Panics(t, func() { instance.Edge(2, 0, South) })
	assert.Panics(t, func() { instance.Assignment(0, 0, 1) })
	assert.Panics(t, func() { instance.Assignment(0, -1, 0) })
}

func TestWallConstraints(t *testing.T) {
	// Arrange
	instance := NewInstance([]rune{'A'}, 3, 2)

	// Act
	clauses := instance.wallConstraints()

	// Assert: one unit negative clause per boundary-crossing edge
	expected := [][]int64{}
	for i := 0; i < 2; i++ {
		expected = append(expected, []int64{-instance.Edge(i, 0, West)})
		expected = append(expected, []int64{-instance.Edge(i, 2, East)})
	}
	for j := 0; j < 3; j++ {
		expected = append(expected, []int64{-instance.Edge(0, j, North)})
		expected = append(expected, []int64{-instance.Edge(1, j, South)})
	}
	assert.ElementsMatch(t, expected, clauses)
}

func TestDegreeConstraintCount(t *testing.T) {
	instance := NewInstance([]rune{'A'}, 3, 3)

	// Exact(2) over 5 edge variables: C(5,3) + C(5,4) clauses per cell
	assert.Len(t, instance.degreeConstraints(), 9*(10+5))
}

func TestCornerPropagationClauses(t *testing.T) {
	// Arrange
	instance := NewInstance([]rune{'A'}, 2, 2)

	// Act: a path entering (1, 1) from the north and leaving west points at
	// diagonal neighbour (0, 0)
	clauses := instance.cornerPropagation(1, 1, North, West)

	// Assert
	e := instance.Edge(1, 1, North)
	f := instance.Edge(1, 1, West)
	s := instance.Edge(0, 0, Sink)
	assert.Equal(t, [][]int64{
		{-e, -f, s, instance.Edge(0, 0, North)},
		{-e, -f, s, instance.Edge(0, 0, West)},
	}, clauses)
}

func TestCornerPropagationCoverage(t *testing.T) {
	instance := NewInstance([]rune{'A'}, 3, 3)

	// Interior corner pairs: 4 per cell center, 2 per edge cell, 1 per corner
	// cell on a 3x3 grid, two clauses each
	assert.Len(t, instance.cornerPropagationConstraints(), 2*(4*1+2*4+1*4))
}

func TestClauseGrowthIsMonotone(t *testing.T) {
	instance := NewInstance([]rune{'A', '.'}, 2, 2)

	instance.SetUpBasicConstraints()
	basic := len(instance.clauses)
	instance.SetUpSpanningUniqueConstraints()
	assert.Greater(t, len(instance.clauses), basic)

	instance.Fill(0, 0, 0)
	instance.Empty(0, 1)
	assert.Equal(t, basic+len(instance.stickConstraints())+len(instance.cornerPropagationConstraints())+3, len(instance.clauses))
}
