package sat

// Equiv builds the two clauses of x <=> y: (~x | y) & (x | ~y).
func Equiv(x, y int64) [][]int64 {
	return [][]int64{
		{-x, y},
		{x, -y},
	}
}

// Glue builds the two clauses of g => (x <=> y): the equivalence is enforced
// only when the guard g holds.
func Glue(g, x, y int64) [][]int64 {
	return [][]int64{
		{-g, -x, y},
		{-g, x, -y},
	}
}

// Stick builds the single clause of (x & y) => g: the guard g must hold
// whenever both x and y hold.
func Stick(g, x, y int64) [][]int64 {
	return [][]int64{
		{g, -x, -y},
	}
}
