package solver

// The DPLL search driver: recursive, one decision variable per level,
// positive polarity tried first. Decisions always pick the lowest free
// variable, so the cursor only ever needs to move forward within a branch.

// search returns true iff the formula can be satisfied from the current
// state. Every clause satisfied means success; a conflict means this
// branch is dead. Otherwise some variable is free: try it positive, then
// negative. On failure the state is restored to what it was on entry.
func (s *Solver) search() bool {
	if s.remaining == 0 {
		return true
	}
	if s.conflict {
		return false
	}
	lit := s.nextVar().Lit()
	s.assign(lit)
	if s.search() {
		return true
	}
	s.unassign(lit)
	s.assign(lit.Negation())
	if s.search() {
		return true
	}
	s.unassign(lit.Negation())
	return false
}

// nextVar returns the lowest free variable, starting from the cursor.
// The search being undecided guarantees one exists.
func (s *Solver) nextVar() Var {
	v := s.cursor
	for !s.assignment.free(v) {
		v++
	}
	return v
}

// CountModels explores the whole decision tree and returns the number of
// assignments satisfying the problem. When every clause is satisfied with
// k variables still free, both polarities of each of them extend the
// solution, so the leaf counts for 2^k models. Call it on a fresh solver,
// instead of Solve.
func (s *Solver) CountModels() int {
	if s.status == Unsat {
		return 0
	}
	nb := s.countSearch()
	if nb == 0 {
		s.status = Unsat
	}
	return nb
}

func (s *Solver) countSearch() int {
	if s.conflict {
		return 0
	}
	if s.remaining == 0 {
		nb := 1
		for v := Var(0); int(v) < s.nbVars; v++ {
			if s.assignment.free(v) {
				nb *= 2
			}
		}
		return nb
	}
	lit := s.nextVar().Lit()
	s.assign(lit)
	nb := s.countSearch()
	s.unassign(lit)
	s.assign(lit.Negation())
	nb += s.countSearch()
	s.unassign(lit.Negation())
	return nb
}
