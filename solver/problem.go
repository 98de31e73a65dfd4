package solver

import (
	"fmt"

	"github.com/pkg/errors"
)

// A Problem is a list of clauses & a nb of vars.
// Tautological clauses (those containing both a literal and its negation)
// are removed when the problem is built: they constrain nothing.
type Problem struct {
	NbVars  int       // Total nb of vars
	Clauses []*Clause // Retained (non-tautological) clauses, in input order
	Status  Status    // Trivially known status: Unsat if an empty clause was met, Indet else.
}

// ParseSlice builds a Problem from a slice of slices of CNF literals.
// Variables are numbered from 1, negative values denote negation, as in
// the DIMACS convention. NbVars is inferred from the biggest variable.
func ParseSlice(cnf [][]int) (*Problem, error) {
	var pb Problem
	for _, line := range cnf {
		lits := make([]Lit, 0, len(line))
		tautology := false
		for _, val := range line {
			if val == 0 {
				return nil, errors.New("literal 0 found in clause")
			}
			lit := IntToLit(val)
			if v := int(lit.Var()); v >= pb.NbVars {
				pb.NbVars = v + 1
			}
			if containsLit(lits, lit.Negation()) {
				tautology = true
				break
			}
			lits = append(lits, lit)
		}
		if tautology {
			continue
		}
		if len(lits) == 0 {
			pb.Status = Unsat
		}
		pb.Clauses = append(pb.Clauses, NewClause(lits))
	}
	return &pb, nil
}

func containsLit(lits []Lit, lit Lit) bool {
	for _, l := range lits {
		if l == lit {
			return true
		}
	}
	return false
}

// CNF returns a DIMACS CNF representation of the problem.
func (pb *Problem) CNF() string {
	res := fmt.Sprintf("p cnf %d %d\n", pb.NbVars, len(pb.Clauses))
	for _, clause := range pb.Clauses {
		res += fmt.Sprintf("%s\n", clause.CNF())
	}
	return res
}
