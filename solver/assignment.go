package solver

// An Assignment maps each variable to its current binding.
// A 0 value means the variable is free, 1 means it is bound to true,
// -1 means it is bound to false.
type Assignment []int8

func newAssignment(nbVars int) Assignment {
	return make(Assignment, nbVars)
}

// assign binds lit's variable so that lit becomes true.
// The variable must be free; this is the caller's contract.
func (a Assignment) assign(l Lit) {
	if l.IsPositive() {
		a[l.Var()] = 1
	} else {
		a[l.Var()] = -1
	}
}

// unassign frees lit's variable.
func (a Assignment) unassign(l Lit) {
	a[l.Var()] = 0
}

// satisfies is true iff l's variable is bound to the polarity l denotes.
func (a Assignment) satisfies(l Lit) bool {
	b := a[l.Var()]
	return b != 0 && (b > 0) == l.IsPositive()
}

// falsifies is true iff l's variable is bound to the opposite polarity.
func (a Assignment) falsifies(l Lit) bool {
	b := a[l.Var()]
	return b != 0 && (b > 0) != l.IsPositive()
}

// free is true iff v has no binding yet.
func (a Assignment) free(v Var) bool {
	return a[v] == 0
}
