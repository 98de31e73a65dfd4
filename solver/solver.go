package solver

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// Stats are statistics about the resolution of the problem.
// They are provided for information purpose only.
type Stats struct {
	NbDecisions    int // How many times a free variable was picked and bound
	NbPropagations int // How many literals were bound by unit propagation
	NbConflicts    int // How many times a clause had all its literals falsified
}

// An occurrence locates one literal of one clause, from the point of view of
// its variable: the clause's index and whether the variable appears negated
// there. Indices are used rather than clause pointers so that the occurrence
// lists never alias the clause storage.
type occurrence struct {
	clause  int32
	negated bool
}

// A Solver solves a given problem with the DPLL procedure: a depth-first
// search over variable assignments with unit propagation at every step.
// It is the main data structure.
type Solver struct {
	Verbose    bool               // Indicates whether the solver should log information during solving. False by default.
	Logger     logrus.FieldLogger // Where verbose information is written. Must be set if Verbose is true.
	Stats      Stats              // Statistics about the solving process.
	nbVars     int
	status     Status
	clauses    []*Clause
	assignment Assignment
	occurs     [][]occurrence // For each var, the clauses mentioning it. Built once, never mutated.
	sat        []bool         // For each clause, whether the current assignment makes it true.
	remaining  int            // Nb of clauses not yet satisfied. The search succeeds when it reaches 0.
	conflict   bool           // True iff some clause has all its literals falsified.
	cursor     Var            // Lowest var known to be free; decisions always pick the lowest free var.
	trail      []Lit          // All bound literals, in binding order.
	trailLim   []int          // Trail indices where each top-level assign started.
}

// New makes a solver from a problem. The occurrence lists, the satisfied
// flags kept per clause, the counters and the assignment table are all
// owned by the solver; the problem's clauses are shared, not copied, and
// never written to, so several solvers can be made from one problem.
func New(pb *Problem) *Solver {
	s := &Solver{
		nbVars:     pb.NbVars,
		status:     pb.Status,
		clauses:    pb.Clauses,
		assignment: newAssignment(pb.NbVars),
		occurs:     make([][]occurrence, pb.NbVars),
		sat:        make([]bool, len(pb.Clauses)),
		remaining:  len(pb.Clauses),
		trail:      make([]Lit, 0, pb.NbVars),
	}
	for i, c := range pb.Clauses {
		for _, lit := range c.lits {
			v := lit.Var()
			s.occurs[v] = append(s.occurs[v], occurrence{clause: int32(i), negated: lit.Negated()})
		}
	}
	return s
}

// Solve solves the problem associated with the solver and returns the
// appropriate status, Sat or Unsat. Calling it again returns the same
// status without searching again.
func (s *Solver) Solve() Status {
	if s.status != Indet {
		return s.status
	}
	if s.search() {
		s.status = Sat
	} else {
		s.status = Unsat
	}
	if s.Verbose {
		s.Logger.WithFields(logrus.Fields{
			"decisions":    s.Stats.NbDecisions,
			"propagations": s.Stats.NbPropagations,
			"conflicts":    s.Stats.NbConflicts,
		}).Infof("solved: %v", s.status)
	}
	return s.status
}

// Model returns a slice associating each variable with its binding.
// Variables the search left free are reported as true: any value works.
// The method will panic if the solver's status is not Sat.
func (s *Solver) Model() []bool {
	if s.status != Sat {
		panic("cannot call Model() on a non-Sat solver")
	}
	res := make([]bool, s.nbVars)
	for i, b := range s.assignment {
		res[i] = b >= 0
	}
	return res
}

// OutputModel writes the solver's conclusion on w using the DIMACS solution
// conventions: a status line, then for Sat problems a value line listing
// each variable as its 1-based index, negated ones prefixed with '-',
// terminated by 0.
func (s *Solver) OutputModel(w io.Writer) {
	switch s.status {
	case Sat:
		fmt.Fprintf(w, "s SATISFIABLE\nv ")
		for i, val := range s.assignment {
			if val < 0 {
				fmt.Fprintf(w, "%d ", -i-1)
			} else {
				fmt.Fprintf(w, "%d ", i+1)
			}
		}
		fmt.Fprintf(w, "0\n")
	case Unsat:
		fmt.Fprintf(w, "s UNSATISFIABLE\n")
	default:
		fmt.Fprintf(w, "s INDETERMINATE\n")
	}
}
