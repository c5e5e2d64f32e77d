package dimacs

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestParse(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
		want [][]int
	}{
		{
			name: "empty",
			text: "c no vars or clauses\np cnf 0 0\n",
			want: [][]int{},
		},
		{
			name: "single unit clause",
			text: "c 1 var, 1 clause\np cnf 1 1\n1 0\n",
			want: [][]int{{1}},
		},
		{
			name: "multiple clauses and comments interleaved",
			text: "c header\np cnf 4 3\n1 3 -4 0\nc mid-file comment\n4 2 0\n-3 0\n",
			want: [][]int{{1, 3, -4}, {4, 2}, {-3}},
		},
		{
			name: "clause split across lines",
			text: "p cnf 3 1\n1 2\n-3 0\n",
			want: [][]int{{1, 2, -3}},
		},
		{
			name: "blank lines ignored",
			text: "\np cnf 2 1\n\n1 -2 0\n\n",
			want: [][]int{{1, -2}},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			prob, err := Parse(strings.NewReader(tt.text))
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			clauses := make([][]int, len(prob.Clauses))
			for i, c := range prob.Clauses {
				clauses[i] = []int(c)
			}
			if diff := cmp.Diff(tt.want, clauses, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Parse clauses mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	for _, tt := range []struct {
		name string
		text string
	}{
		{name: "missing header", text: "1 -2 0\n"},
		{name: "header after clause", text: "p cnf 2 1\n1 2 0\np cnf 2 1\n"},
		{name: "multiple headers", text: "p cnf 2 1\np cnf 2 1\n1 2 0\n"},
		{name: "malformed header field count", text: "p cnf 2\n1 0\n"},
		{name: "non-cnf format", text: "p sat 2 1\n1 2 0\n"},
		{name: "non-integer token", text: "p cnf 2 1\n1 x 0\n"},
		{name: "variable out of range", text: "p cnf 2 1\n1 3 0\n"},
		{name: "missing terminating zero", text: "p cnf 2 1\n1 2\n"},
		{name: "clause count mismatch", text: "p cnf 2 2\n1 2 0\n"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.text)); err == nil {
				t.Fatalf("Parse(%q): expected error, got nil", tt.text)
			}
		})
	}
}
