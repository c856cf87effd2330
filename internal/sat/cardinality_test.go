package sat

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

// satisfies evaluates clauses under the assignment given by a bitmask where
// bit v-1 holds variable v's value.
func satisfies(clauses [][]int64, assignment uint) bool {
	for _, clause := range clauses {
		satisfied := false
		for _, literal := range clause {
			variable := literal
			if variable < 0 {
				variable = -variable
			}
			value := assignment&(1<<(variable-1)) != 0
			if value == (literal > 0) {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}
	return true
}

func TestChoose(t *testing.T) {
	// Arrange
	literals := []int64{1, 2, 3, 4}

	// Act
	combinations := [][]int64{}
	Choose(2, literals, func(combination []int64) {
		copied := make([]int64, len(combination))
		copy(copied, combination)
		combinations = append(combinations, copied)
	})

	// Assert
	expected := [][]int64{
		{1, 2}, {1, 3}, {1, 4}, {2, 3}, {2, 4}, {3, 4},
	}
	assert.Equal(t, expected, combinations)
}

func TestChooseDegenerate(t *testing.T) {
	literals := []int64{1, 2, 3}

	count := 0
	Choose(0, literals, func(combination []int64) {
		assert.Empty(t, combination)
		count++
	})
	assert.Equal(t, 1, count)

	count = 0
	Choose(3, literals, func(combination []int64) {
		assert.Equal(t, literals, combination)
		count++
	})
	assert.Equal(t, 1, count)

	Choose(4, literals, func(combination []int64) {
		t.Errorf("no combination expected, got %v", combination)
	})
}

func TestLessThan(t *testing.T) {
	// Arrange
	literals := []int64{1, 2, 3, 4}

	// Act
	clauses := LessThan(2, literals)

	// Assert: one all-negated clause per 2-combination
	assert.Len(t, clauses, 6)
	assert.Contains(t, clauses, []int64{-1, -2})
	assert.Contains(t, clauses, []int64{-3, -4})
	for assignment := uint(0); assignment < 16; assignment++ {
		assert.Equal(t, bits.OnesCount(assignment) < 2, satisfies(clauses, assignment))
	}
}

func TestLessThanDegenerate(t *testing.T) {
	literals := []int64{1, 2, 3}

	// A bound beyond the literal count is vacuous
	assert.Empty(t, LessThan(4, literals))

	// A zero bound is the empty, unsatisfiable clause
	clauses := LessThan(0, literals)
	assert.Equal(t, [][]int64{{}}, clauses)
	assert.False(t, satisfies(clauses, 0))
}

func TestGreaterThan(t *testing.T) {
	// Arrange
	literals := []int64{1, 2, 3, 4}

	// Act
	clauses := GreaterThan(2, literals)

	// Assert: one as-given clause per (4-2)-combination
	assert.Len(t, clauses, 6)
	assert.Contains(t, clauses, []int64{1, 2})
	assert.Contains(t, clauses, []int64{3, 4})
	for assignment := uint(0); assignment < 16; assignment++ {
		assert.Equal(t, bits.OnesCount(assignment) > 2, satisfies(clauses, assignment))
	}
}

func TestGreaterThanDegenerate(t *testing.T) {
	literals := []int64{1, 2, 3}

	// More literals than exist cannot be true
	clauses := GreaterThan(3, literals)
	assert.Equal(t, [][]int64{{}}, clauses)

	// A negative bound is vacuous
	assert.Empty(t, GreaterThan(-1, literals))
}

func TestExact(t *testing.T) {
	literals := []int64{1, 2, 3, 4}

	for n := 0; n <= 4; n++ {
		clauses := Exact(n, literals)
		for assignment := uint(0); assignment < 16; assignment++ {
			assert.Equal(t, bits.OnesCount(assignment) == n, satisfies(clauses, assignment),
				"n=%v assignment=%b", n, assignment)
		}
	}
}

func TestExactClauseCount(t *testing.T) {
	literals := []int64{1, 2, 3, 4, 5}

	// Exact(2) over 5 literals: C(5,3) at-most clauses and C(5,4) at-least clauses
	assert.Len(t, Exact(2, literals), 10+5)
}
