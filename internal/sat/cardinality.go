package sat

// Choose invokes emit once for every k-combination of literals, following the
// classic include/exclude recursion: the first literal is either taken (and
// k-1 are chosen from the rest) or skipped (and k are chosen from the rest).
// If k exceeds len(literals) nothing is emitted; if k is 0 the empty
// combination is emitted once. The slice passed to emit is reused between
// invocations and must be copied if retained.
func Choose(k int, literals []int64, emit func(combination []int64)) {
	choose(k, literals, make([]int64, 0, max(k, 0)), emit)
}

func choose(k int, literals []int64, chosen []int64, emit func(combination []int64)) {
	n := len(literals)
	if k < 0 || k > n {
		return
	}

	if k == 0 {
		emit(chosen)
		return
	}

	if k == n {
		emit(append(chosen, literals...))
		return
	}

	choose(k-1, literals[1:], append(chosen, literals[0]), emit)
	choose(k, literals[1:], chosen, emit)
}

// LessThan builds clauses forcing fewer than n of the literals to be true: for
// every n-combination one clause of the negated combination, so no n of them
// can be simultaneously true. n = 0 yields the empty (unsatisfiable) clause
// and n beyond len(literals) yields no clauses at all.
func LessThan(n int, literals []int64) [][]int64 {
	clauses := [][]int64{}
	Choose(n, literals, func(combination []int64) {
		clause := make([]int64, 0, len(combination))
		for _, literal := range combination {
			clause = append(clause, -literal)
		}
		clauses = append(clauses, clause)
	})
	return clauses
}

// GreaterThan builds clauses forcing more than n of the literals to be true:
// every (len(literals)-n)-combination must contain at least one true literal,
// hence one as-given clause per combination.
func GreaterThan(n int, literals []int64) [][]int64 {
	clauses := [][]int64{}
	Choose(len(literals)-n, literals, func(combination []int64) {
		clause := make([]int64, len(combination))
		copy(clause, combination)
		clauses = append(clauses, clause)
	})
	return clauses
}

// Exact builds clauses forcing exactly n of the literals to be true. Clause
// count is binomial in len(literals), which is fine for the small n this
// module uses.
func Exact(n int, literals []int64) [][]int64 {
	clauses := LessThan(n+1, literals)
	clauses = append(clauses, GreaterThan(n-1, literals)...)
	return clauses
}
