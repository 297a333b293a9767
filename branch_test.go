// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sel_test

import (
	"errors"
	"testing"

	"code.hybscloud.com/sel"
)

func TestConfigurationErrors(t *testing.T) {
	cases := []struct {
		name    string
		clauses []sel.Clause[int]
		want    error
		msg     string
	}{
		{"no branch", nil, sel.ErrNoBranch, "sel: no branch"},
		{"only default", []sel.Clause[int]{sel.Default(constant(1))}, sel.ErrNoBranch, "sel: no branch except default"},
		{"only complete", []sel.Clause[int]{sel.Complete(constant(1))}, sel.ErrNoBranch, "sel: no branch except complete"},
		{"default and complete", []sel.Clause[int]{sel.Default(constant(1)), sel.Complete(constant(2))}, sel.ErrNoBranch, "sel: no branch except default and complete"},
		{"two defaults", []sel.Clause[int]{sel.Case(ready(1), identity[int]), sel.Default(constant(1)), sel.Default(constant(2))}, sel.ErrDuplicateDefault, ""},
		{"two completes", []sel.Clause[int]{sel.Case(ready(1), identity[int]), sel.Complete(constant(1)), sel.Complete(constant(2))}, sel.ErrDuplicateComplete, ""},
		{"nil clause", []sel.Clause[int]{sel.Case(ready(1), identity[int]), nil}, sel.ErrNilClause, ""},
		{"nil clause after default", []sel.Clause[int]{sel.Case(ready(1), identity[int]), sel.Default(constant(1)), nil}, sel.ErrNilClause, "sel: nil clause: clause 2"},
		{"nil handler", []sel.Clause[int]{sel.Case[int, int](ready(1), nil)}, sel.ErrNilClause, ""},
		{"nil open", []sel.Clause[int]{sel.Case[int](nil, identity[int])}, sel.ErrNilClause, ""},
		{"nil default", []sel.Clause[int]{sel.Case(ready(1), identity[int]), sel.Default[int](nil)}, sel.ErrNilClause, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s, err := sel.New(tc.clauses...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
			if s != nil {
				t.Fatal("expected nil select on error")
			}
			if tc.msg != "" && err.Error() != tc.msg {
				t.Fatalf("message %q, want %q", err.Error(), tc.msg)
			}
		})
	}
}

func TestConfigurationErrorOpensNothing(t *testing.T) {
	p := &probe[int]{value: 1}
	var opened int
	_, err := sel.New(
		sel.Case(open(p, &opened), identity[int]),
		sel.Default(constant(1)),
		sel.Default(constant(2)),
	)
	if !errors.Is(err, sel.ErrDuplicateDefault) {
		t.Fatalf("got %v, want ErrDuplicateDefault", err)
	}
	if opened != 0 || p.polls != 0 {
		t.Fatalf("opened %d, polled %d; want 0, 0", opened, p.polls)
	}
}

func TestDisabledNilConstructorAccepted(t *testing.T) {
	r, err := sel.Run(
		sel.CaseIf[int](false, nil, identity[int]),
		sel.Case(ready(2), identity[int]),
	)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if r != 2 {
		t.Fatalf("got %d, want 2", r)
	}
}

func TestOpenInDeclarationOrderAfterConditions(t *testing.T) {
	var trace []string
	cond := func(name string, v bool) bool {
		trace = append(trace, "cond "+name)
		return v
	}
	opener := func(name string) func() sel.Op[int] {
		return func() sel.Op[int] {
			trace = append(trace, "open "+name)
			return sel.Pending[int]()
		}
	}
	s, err := sel.New(
		sel.CaseIf(cond("a", true), opener("a"), identity[int]),
		sel.CaseIf(cond("b", false), opener("b"), identity[int]),
		sel.CaseIf(cond("c", true), opener("c"), identity[int]),
		sel.Default(constant(0)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	want := []string{"cond a", "cond b", "cond c", "open a", "open c"}
	if len(trace) != len(want) {
		t.Fatalf("trace %v, want %v", trace, want)
	}
	for i := range want {
		if trace[i] != want[i] {
			t.Fatalf("trace %v, want %v", trace, want)
		}
	}
	if s.CompletedBranches() != 1 {
		t.Fatalf("completed %d, want 1", s.CompletedBranches())
	}
}

func TestHeterogeneousBranches(t *testing.T) {
	r, err := sel.RunBiased(
		sel.Case(pending[int](), func(n int) string { return "int" }),
		sel.CaseMatch(true, ready("x"), sel.Equal("y"), func(s string) string { return "y" }),
		sel.Case(ready(3.5), func(f float64) string { return "float" }),
		sel.Complete(constant("complete")),
	)
	if err != nil {
		t.Fatalf("RunBiased: %v", err)
	}
	if r != "float" {
		t.Fatalf("got %q, want %q", r, "float")
	}
}

func TestPanickingMatchCompletesBranch(t *testing.T) {
	s, err := sel.New(
		sel.CaseMatch(true, ready(1), sel.Where(func(int) bool { panic("match") }), identity[int]),
		sel.Complete(constant(7)),
	)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic from match")
			}
		}()
		_, _ = s.Poll()
	}()
	r, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if r != 7 {
		t.Fatalf("got %d, want 7", r)
	}
}
