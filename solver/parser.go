package solver

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// parseHeader parses a DIMACS problem line, i.e "p cnf <nbVars> <nbClauses>".
func parseHeader(line string) (nbVars, nbClauses int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return 0, 0, errors.Errorf("invalid syntax %q in problem line: expected 4 fields, got %d", line, len(fields))
	}
	if fields[0] != "p" || fields[1] != "cnf" {
		return 0, 0, errors.Errorf("invalid problem line %q: expected %q format", line, "p cnf <vars> <clauses>")
	}
	nbVars, err = strconv.Atoi(fields[2])
	if err != nil || nbVars < 1 {
		return 0, 0, errors.Errorf("invalid number of vars %q in problem line", fields[2])
	}
	nbClauses, err = strconv.Atoi(fields[3])
	if err != nil || nbClauses < 0 {
		return 0, 0, errors.Errorf("invalid number of clauses %q in problem line", fields[3])
	}
	return nbVars, nbClauses, nil
}

// readProblemLine skips comment lines and returns the first non-comment line.
func readProblemLine(r *bufio.Reader) (string, error) {
	for {
		line, err := r.ReadString('\n')
		if line != "" && !strings.HasPrefix(line, "c") {
			return line, nil
		}
		if err == io.EOF {
			return "", errors.New("missing problem line")
		}
		if err != nil {
			return "", errors.Wrap(err, "could not read problem line")
		}
	}
}

// ParseCNF parses DIMACS CNF content and returns the corresponding Problem.
// The number of clauses read must match the problem line exactly; fewer or
// more is an error, as is any content after the last clause other than
// whitespace.
func ParseCNF(f io.Reader) (*Problem, error) {
	r := bufio.NewReader(f)
	line, err := readProblemLine(r)
	if err != nil {
		return nil, err
	}
	nbVars, nbClauses, err := parseHeader(line)
	if err != nil {
		return nil, errors.Wrap(err, "cannot parse CNF header")
	}
	pb := &Problem{
		NbVars:  nbVars,
		Clauses: make([]*Clause, 0, nbClauses),
	}
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	var (
		lits      []Lit
		tautology bool
		nbRead    int
	)
	for scanner.Scan() {
		if nbRead == nbClauses {
			return nil, errors.Errorf("too many clauses: expected %d", nbClauses)
		}
		token := scanner.Text()
		val, err := strconv.Atoi(token)
		if err != nil || strings.HasPrefix(token, "+") { // DIMACS literals carry no explicit plus sign
			return nil, errors.Errorf("invalid literal %q in clause %d", token, nbRead+1)
		}
		if val == 0 { // End of clause
			nbRead++
			if !tautology {
				if len(lits) == 0 {
					pb.Status = Unsat
				}
				pb.Clauses = append(pb.Clauses, NewClause(lits))
			}
			lits = nil
			tautology = false
			continue
		}
		if val > nbVars || -val > nbVars {
			return nil, errors.Errorf("invalid literal %d for problem with %d vars only", val, nbVars)
		}
		if tautology {
			continue
		}
		lit := IntToLit(val)
		if containsLit(lits, lit.Negation()) {
			tautology = true // Clause is always true: drop it whole
			continue
		}
		lits = append(lits, lit)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "could not read clauses")
	}
	if len(lits) != 0 || tautology || nbRead < nbClauses {
		return nil, errors.Errorf("not enough clauses: expected %d, got %d", nbClauses, nbRead)
	}
	return pb, nil
}
