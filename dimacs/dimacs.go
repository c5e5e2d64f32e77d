// Package dimacs parses the DIMACS CNF format used to feed formulas into
// the solver. Unlike a lenient reader, it requires exactly one problem
// line and validates every variable against the declared count, per the
// external-interface contract: a malformed input is reported once and
// aborted, never patched up silently.
package dimacs

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Clause is a disjunction of signed literals; 0 never appears (the
// terminating zero is consumed by the parser, not returned).
type Clause []int

// Problem is a fully parsed CNF instance.
type Problem struct {
	NumVars    int
	NumClauses int
	Clauses    []Clause
}

// ParseFile opens path and parses it as DIMACS CNF.
func ParseFile(path string) (*Problem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads r as DIMACS CNF. Exactly one "p cnf <nvars> <nclauses>"
// header is required; it may appear after leading comment/blank lines but
// before any clause. Every other non-empty, non-comment line is a clause:
// whitespace-separated nonzero integers terminated by a 0, which may
// share a line with the clause's literals or appear on its own.
func Parse(r io.Reader) (*Problem, error) {
	s := bufio.NewScanner(r)
	var numVars, numClauses int
	haveHeader := false

	var clauses []Clause
	var cur Clause
	maxVar := 0

	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "c") {
			continue
		}
		if strings.HasPrefix(line, "p") {
			if haveHeader {
				return nil, errors.New("malformed header: multiple problem lines")
			}
			if len(clauses) > 0 || len(cur) > 0 {
				return nil, errors.New("malformed header: problem line appears after clauses")
			}
			fields := strings.Fields(line)
			if len(fields) != 4 || fields[0] != "p" || fields[1] != "cnf" {
				return nil, errors.Errorf("malformed header %q", line)
			}
			var err error
			numVars, err = strconv.Atoi(fields[2])
			if err != nil || numVars < 0 {
				return nil, errors.Errorf("malformed header: invalid var count %q", fields[2])
			}
			numClauses, err = strconv.Atoi(fields[3])
			if err != nil || numClauses < 0 {
				return nil, errors.Errorf("malformed header: invalid clause count %q", fields[3])
			}
			haveHeader = true
			continue
		}
		if !haveHeader {
			return nil, errors.New("malformed header: clause appears before problem line")
		}
		for _, tok := range strings.Fields(line) {
			n, err := strconv.Atoi(tok)
			if err != nil {
				return nil, errors.Wrapf(err, "non-integer token %q", tok)
			}
			if n == 0 {
				clauses = append(clauses, cur)
				cur = nil
				continue
			}
			v := n
			if v < 0 {
				v = -v
			}
			if v > numVars {
				return nil, errors.Errorf("variable %d out of range [1,%d]", v, numVars)
			}
			if v > maxVar {
				maxVar = v
			}
			cur = append(cur, n)
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read input")
	}
	if !haveHeader {
		return nil, errors.New("malformed header: missing problem line")
	}
	if len(cur) > 0 {
		return nil, errors.New("clause missing terminating 0")
	}
	if len(clauses) != numClauses {
		return nil, errors.Errorf("problem line declares %d clauses, found %d", numClauses, len(clauses))
	}

	return &Problem{NumVars: numVars, NumClauses: numClauses, Clauses: clauses}, nil
}
