package solver

import (
	"fmt"
	"strings"
)

// A Clause is a disjunction of literals. Its literals are fixed once the
// clause is built and never mutated: whether the clause is currently
// satisfied is tracked by the solver, so several solvers can share the
// same clauses.
type Clause struct {
	lits []Lit
}

// NewClause returns a clause whose lits are given as an argument.
func NewClause(lits []Lit) *Clause {
	return &Clause{lits: lits}
}

// Len returns the nb of lits in the clause.
func (c *Clause) Len() int {
	return len(c.lits)
}

// Get returns the ith literal from the clause.
func (c *Clause) Get(i int) Lit {
	return c.lits[i]
}

// reduce returns the clause's status under the given assignment:
// Sat if some literal is true, Unsat if every literal is false,
// Unit (plus the literal in question) if exactly one literal is
// neither true nor false, Many otherwise.
func (c *Clause) reduce(a Assignment) (unit Lit, st Status) {
	free := 0
	for _, l := range c.lits {
		switch {
		case a.satisfies(l):
			return unit, Sat
		case a.free(l.Var()):
			free++
			unit = l
		}
	}
	switch free {
	case 0:
		return unit, Unsat
	case 1:
		return unit, Unit
	default:
		return unit, Many
	}
}

// satisfiedBy is true iff at least one literal is true under a.
func (c *Clause) satisfiedBy(a Assignment) bool {
	for _, l := range c.lits {
		if a.satisfies(l) {
			return true
		}
	}
	return false
}

// CNF returns a DIMACS representation of the clause.
func (c *Clause) CNF() string {
	res := make([]string, len(c.lits)+1)
	for i, lit := range c.lits {
		res[i] = fmt.Sprintf("%d", lit.Int())
	}
	res[len(c.lits)] = "0"
	return strings.Join(res, " ")
}
