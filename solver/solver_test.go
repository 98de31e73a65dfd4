package solver

import (
	"bytes"
	"math/rand"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, cnf string) *Problem {
	t.Helper()
	pb, err := ParseCNF(strings.NewReader(cnf))
	require.NoError(t, err)
	return pb
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name     string
		cnf      string
		expected Status
	}{
		{
			name:     "single unit clause",
			cnf:      "p cnf 1 1\n1 0\n",
			expected: Sat,
		},
		{
			name:     "contradictory units",
			cnf:      "p cnf 1 2\n1 0\n-1 0\n",
			expected: Unsat,
		},
		{
			name:     "unit propagation derives var 2",
			cnf:      "p cnf 2 2\n1 2 0\n-1 2 0\n",
			expected: Sat,
		},
		{
			name:     "three vars",
			cnf:      "p cnf 3 3\n1 2 3 0\n-1 -2 0\n-1 -3 0\n",
			expected: Sat,
		},
		{
			name:     "empty clause set",
			cnf:      "p cnf 2 0\n",
			expected: Sat,
		},
		{
			name:     "empty clause",
			cnf:      "p cnf 2 1\n0\n",
			expected: Unsat,
		},
		{
			name:     "only tautologies",
			cnf:      "p cnf 2 2\n1 -1 0\n2 -2 0\n",
			expected: Sat,
		},
		{
			name:     "all binary combinations over two vars",
			cnf:      "p cnf 2 4\n1 2 0\n1 -2 0\n-1 2 0\n-1 -2 0\n",
			expected: Unsat,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pb := parseString(t, test.cnf)
			s := New(pb)
			assert.Equal(t, test.expected, s.Solve())
			if test.expected == Sat {
				assertModelSatisfies(t, pb, s.Model())
			}
		})
	}
}

// assertModelSatisfies checks that every retained clause has at least one
// literal whose variable is bound to the matching polarity.
func assertModelSatisfies(t *testing.T, pb *Problem, model []bool) {
	t.Helper()
	require.Equal(t, pb.NbVars, len(model))
	a := newAssignment(pb.NbVars)
	for v, val := range model {
		a.assign(Var(v).SignedLit(!val))
	}
	for i, c := range pb.Clauses {
		assert.True(t, c.satisfiedBy(a), "clause %d (%s) not satisfied by model %v", i, c.CNF(), model)
	}
}

func TestSolveFiles(t *testing.T) {
	tests := []struct {
		path     string
		expected Status
	}{
		{"testcnf/simple-sat.cnf", Sat},
		{"testcnf/simple-unsat.cnf", Unsat},
		{"testcnf/chain-sat.cnf", Sat},
		{"testcnf/php-3-2.cnf", Unsat},
	}
	for _, test := range tests {
		t.Run(test.path, func(t *testing.T) {
			f, err := os.Open(test.path)
			require.NoError(t, err)
			defer f.Close()
			pb, err := ParseCNF(f)
			require.NoError(t, err)
			s := New(pb)
			assert.Equal(t, test.expected, s.Solve())
		})
	}
}

func TestSolveChainPropagation(t *testing.T) {
	f, err := os.Open("testcnf/chain-sat.cnf")
	require.NoError(t, err)
	defer f.Close()
	pb, err := ParseCNF(f)
	require.NoError(t, err)
	s := New(pb)
	require.Equal(t, Sat, s.Solve())
	for v, val := range s.Model() {
		assert.True(t, val, "var %d should be forced to true", v+1)
	}
	// One decision on var 1; everything else follows from propagation.
	assert.Equal(t, 1, s.Stats.NbDecisions)
	assert.Equal(t, 9, s.Stats.NbPropagations)
}

func TestUnitPropagationDerivesVariable(t *testing.T) {
	pb := parseString(t, "p cnf 2 2\n1 2 0\n-1 2 0\n")
	s := New(pb)
	require.Equal(t, Sat, s.Solve())
	assert.True(t, s.Model()[1], "var 2 should be true in any model")
}

// A Problem must stay reusable: a Sat solve leaves its bindings in place
// on the solver, and none of that state may leak into clauses shared with
// the Problem.
func TestProblemReusableAfterSolve(t *testing.T) {
	pb := parseString(t, "p cnf 2 1\n1 2 0\n")
	require.Equal(t, Sat, New(pb).Solve())
	s := New(pb)
	require.Equal(t, Sat, s.Solve())
	assertModelSatisfies(t, pb, s.Model())
	assert.Equal(t, 3, New(pb).CountModels())
}

func TestSolveIsIdempotent(t *testing.T) {
	pb := parseString(t, "p cnf 1 2\n1 0\n-1 0\n")
	s := New(pb)
	assert.Equal(t, Unsat, s.Solve())
	assert.Equal(t, Unsat, s.Solve())
}

func TestModelPanicsOnUnsat(t *testing.T) {
	pb := parseString(t, "p cnf 1 2\n1 0\n-1 0\n")
	s := New(pb)
	s.Solve()
	assert.Panics(t, func() { s.Model() })
}

func TestCountModels(t *testing.T) {
	tests := []struct {
		name     string
		cnf      string
		expected int
	}{
		{
			name:     "free variables",
			cnf:      "p cnf 2 0\n",
			expected: 4,
		},
		{
			name:     "one binary clause",
			cnf:      "p cnf 2 1\n1 2 0\n",
			expected: 3,
		},
		{
			name:     "contradiction",
			cnf:      "p cnf 1 2\n1 0\n-1 0\n",
			expected: 0,
		},
		{
			name:     "tautologies only",
			cnf:      "p cnf 3 2\n1 -1 0\n2 -2 0\n",
			expected: 8,
		},
		{
			name:     "forced chain",
			cnf:      "p cnf 3 3\n1 0\n-1 2 0\n-2 3 0\n",
			expected: 1,
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			pb := parseString(t, test.cnf)
			s := New(pb)
			assert.Equal(t, test.expected, s.CountModels())
		})
	}
}

func TestOutputModel(t *testing.T) {
	pb := parseString(t, "p cnf 2 2\n1 0\n-2 0\n")
	s := New(pb)
	require.Equal(t, Sat, s.Solve())
	var buf bytes.Buffer
	s.OutputModel(&buf)
	assert.Equal(t, "s SATISFIABLE\nv 1 -2 0\n", buf.String())

	pb = parseString(t, "p cnf 1 2\n1 0\n-1 0\n")
	s = New(pb)
	s.Solve()
	buf.Reset()
	s.OutputModel(&buf)
	assert.Equal(t, "s UNSATISFIABLE\n", buf.String())
}

// bruteForce enumerates every assignment over pb.NbVars variables and
// returns the number of them satisfying every retained clause.
func bruteForce(pb *Problem) int {
	nb := 0
	for bits := 0; bits < 1<<pb.NbVars; bits++ {
		a := newAssignment(pb.NbVars)
		for v := 0; v < pb.NbVars; v++ {
			a.assign(Var(v).SignedLit(bits&(1<<v) == 0))
		}
		ok := true
		for _, c := range pb.Clauses {
			if !c.satisfiedBy(a) {
				ok = false
				break
			}
		}
		if ok {
			nb++
		}
	}
	return nb
}

// TestSolveMatchesTruthTable cross-checks the search against exhaustive
// enumeration on small random formulas.
func TestSolveMatchesTruthTable(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 500; i++ {
		nbVars := 1 + rng.Intn(6)
		nbClauses := 1 + rng.Intn(10)
		cnf := make([][]int, nbClauses)
		for j := range cnf {
			clause := make([]int, 1+rng.Intn(3))
			for k := range clause {
				v := 1 + rng.Intn(nbVars)
				if rng.Intn(2) == 0 {
					v = -v
				}
				clause[k] = v
			}
			cnf[j] = clause
		}
		pb, err := ParseSlice(cnf)
		require.NoError(t, err)
		pb.NbVars = nbVars // Some vars may appear in no retained clause
		expected := bruteForce(pb)

		s := New(pb)
		status := s.Solve()
		if expected == 0 {
			assert.Equal(t, Unsat, status, "formula %v", cnf)
		} else {
			require.Equal(t, Sat, status, "formula %v", cnf)
			assertModelSatisfies(t, pb, s.Model())
		}

		s = New(pb)
		assert.Equal(t, expected, s.CountModels(), "formula %v", cnf)
	}
}
