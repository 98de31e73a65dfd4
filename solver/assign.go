package solver

// The assignment engine. Binding a literal cascades through unit
// propagation, and each top-level binding can be reversed in one step.
// The trail records every bound literal in order; trailLim records where
// each top-level assign started, so unassign can pop exactly the literals
// one assign produced.

// assign makes lit true, then binds every literal forced as a consequence.
// lit's variable must be free. The cursor moves past the decided variable:
// decisions always pick the lowest free variable, so everything below it is
// already bound, and propagation can only ever touch variables above it.
func (s *Solver) assign(lit Lit) {
	s.cursor = lit.Var() + 1
	s.trailLim = append(s.trailLim, len(s.trail))
	s.Stats.NbDecisions++
	s.propagate(lit)
}

// propagate binds the given literal and processes the consequences with a
// worklist:
// every newly bound literal is scanned once against the clauses mentioning
// its variable. Clauses where the variable now appears true are marked
// satisfied; clauses where it appears false are re-examined, and a clause
// down to a single non-falsified literal forces that literal, feeding the
// worklist. A clause with no literal left stops the whole call: the branch
// is dead and the caller will backtrack.
func (s *Solver) propagate(first Lit) {
	s.bind(first)
	for i := s.trailLim[len(s.trailLim)-1]; i < len(s.trail) && !s.conflict; i++ {
		lit := s.trail[i]
		for _, occ := range s.occurs[lit.Var()] {
			if occ.negated == lit.Negated() { // The clause's literal over this var is now true
				if !s.sat[occ.clause] {
					s.sat[occ.clause] = true
					s.remaining--
				}
				continue
			}
			// The clause's literal over this var is now false.
			if s.sat[occ.clause] {
				continue
			}
			unit, st := s.clauses[occ.clause].reduce(s.assignment)
			if st == Unsat {
				s.conflict = true
				s.Stats.NbConflicts++
				break
			}
			if st == Unit {
				s.bind(unit)
				s.Stats.NbPropagations++
			}
		}
	}
}

// bind applies lit to the assignment and appends it to the current trail
// group. The literal is scanned by the propagate loop afterwards.
func (s *Solver) bind(lit Lit) {
	s.assignment.assign(lit)
	s.trail = append(s.trail, lit)
}

// unassign reverses the most recent assign call: every literal it bound is
// freed, in reverse binding order, and every clause the literal alone
// satisfied is unmarked. The conflict flag is cleared: backtracking always
// undoes the binding that caused it, and a conflict from an older binding
// will be re-detected by the next propagation. The cursor moves back to the
// decided variable so the opposite polarity rescans from exactly there.
func (s *Solver) unassign(lit Lit) {
	base := s.trailLim[len(s.trailLim)-1]
	s.trailLim = s.trailLim[:len(s.trailLim)-1]
	for i := len(s.trail) - 1; i >= base; i-- {
		l := s.trail[i]
		s.assignment.unassign(l)
		for _, occ := range s.occurs[l.Var()] {
			if occ.negated != l.Negated() {
				continue // The clause's literal was false, nothing was marked
			}
			if s.sat[occ.clause] && !s.clauses[occ.clause].satisfiedBy(s.assignment) {
				s.sat[occ.clause] = false
				s.remaining++
			}
		}
	}
	s.trail = s.trail[:base]
	s.conflict = false
	s.cursor = lit.Var()
}
