// Package solver gives access to a simple SAT solver implementing the
// classical DPLL procedure: a depth-first backtracking search over variable
// assignments, with unit propagation performed each time a variable is
// bound.
//
// The main type is Solver. A Solver is created from a Problem, which is
// typically parsed from DIMACS CNF content:
//
//	pb, err := solver.ParseCNF(f)
//	if err != nil {
//	    // Deal with the parse error
//	}
//	s := solver.New(pb)
//	status := s.Solve()
//
// Problems can also be built programmatically from slices of CNF literals
// with ParseSlice. Once Solve returns Sat, Model returns a satisfying
// binding for every variable, and OutputModel writes the conclusion using
// the DIMACS solution conventions. CountModels, used instead of Solve,
// returns the total number of satisfying assignments.
//
// The solver is not safe for concurrent use: a Solver is exclusively owned
// by one search at a time. Independent problems can be solved in parallel
// by independent Solvers.
package solver
