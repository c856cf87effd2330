package puzzle

import (
	"log"
	"strings"

	"github.com/limaJavier/numberlink/internal/sat"
)

// Edge masks of a rendered cell.
const (
	maskNorth = 1 << iota
	maskSouth
	maskEast
	maskWest
)

var glyphs = map[int]rune{
	maskNorth | maskSouth: '│',
	maskNorth | maskEast:  '└',
	maskNorth | maskWest:  '┘',
	maskSouth | maskEast:  '┌',
	maskSouth | maskWest:  '┐',
	maskEast | maskWest:   '─',
}

// Solution is the read-only view of a solved instance.
type Solution struct {
	instance *Instance
	values   []int8 // Indexed by variable; 0 means the oracle left it unassigned
}

func newSolution(instance *Instance, satSolution sat.SATSolution) *Solution {
	values := make([]int8, instance.variables+1)
	for _, literal := range satSolution {
		variable := literal
		if variable < 0 {
			variable = -variable
		}
		if variable == 0 || variable > int64(instance.variables) {
			continue
		}
		if literal > 0 {
			values[variable] = 1
		} else {
			values[variable] = -1
		}
	}
	return &Solution{
		instance: instance,
		values:   values,
	}
}

// value reads the truth value of a positive literal. The model must assign
// every variable the decoder touches; an unassigned read is an internal
// consistency violation.
func (solution *Solution) value(literal int64) bool {
	value := solution.values[literal]
	if value == 0 {
		log.Panicf("variable %v is unassigned in the model", literal)
	}
	return value == 1
}

// Render draws the solved grid, one line per row: terminals show their label
// and path cells a glyph derived from their active edges.
func (solution *Solution) Render() string {
	var builder strings.Builder
	for i := 0; i < solution.instance.height; i++ {
		for j := 0; j < solution.instance.width; j++ {
			builder.WriteRune(solution.cell(i, j))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func (solution *Solution) cell(i, j int) rune {
	instance := solution.instance
	if solution.value(instance.Edge(i, j, Sink)) {
		for k := 0; k < instance.pairs; k++ {
			if solution.value(instance.Assignment(i, j, k)) {
				return instance.labels[k]
			}
		}
		log.Panicf("sink cell (%v, %v) carries no label", i, j)
	}

	mask := 0
	if solution.value(instance.Edge(i, j, North)) {
		mask |= maskNorth
	}
	if solution.value(instance.Edge(i, j, South)) {
		mask |= maskSouth
	}
	if solution.value(instance.Edge(i, j, East)) {
		mask |= maskEast
	}
	if solution.value(instance.Edge(i, j, West)) {
		mask |= maskWest
	}
	return glyph(mask)
}

func glyph(mask int) rune {
	if g, ok := glyphs[mask]; ok {
		return g
	}
	return ' '
}
