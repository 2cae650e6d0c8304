package fdspace

// NQueens builds the n-queens model exactly as
// original_source/example/src/main.rs does: one variable per row
// ranging over columns 1..n, pairwise diagonal exclusions reformulated
// as Xi != Xj +/- (j-i), and a Distinct over the columns. It is
// exported so both the fdqueens command and this package's tests build
// the identical model rather than maintaining two copies.
func NQueens(n int) (*Space, []int) {
	sp := NewSpace()
	queens := make([]int, n)
	terms := make([]Term, n)
	for i := 0; i < n; i++ {
		queens[i] = sp.VStore.Alloc(NewInterval(1, n))
		terms[i] = Var(queens[i])
	}
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			q1, q2 := i+1, j+1
			sp.CStore.Alloc(NewNotEqual(terms[i], Add(terms[j], q2-q1)))
			sp.CStore.Alloc(NewNotEqual(terms[i], Add(terms[j], -q2+q1)))
		}
	}
	sp.CStore.Alloc(NewDistinct(terms))
	return sp, queens
}
