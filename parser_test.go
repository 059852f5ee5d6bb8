package goscheme

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var valueCmp = cmp.AllowUnexported(Value{})

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"()", "()"},
		{"(1)", "(1)"},
		{"(1.512)", "(1.512)"},
		{`("Hello")`, `("Hello")`},
		{"(+ 1 2)", "(+ 1 2)"},
		{"(  1\n 2 )", "(1 2)"},
		{"((define r 10)(define pi 314)(* pi (* r r)))",
			"((define r 10) (define pi 314) (* pi (* r r)))"},
	}
	for _, test := range tests {
		node, err := Parse(test.input)
		if err != nil {
			t.Errorf("Parse(%q): %v", test.input, err)
			continue
		}
		if diff := cmp.Diff(test.want, node.String()); diff != "" {
			t.Errorf("tree mismatch for %q (-want +got):\n%s", test.input, diff)
		}
	}
}

func TestParseTree(t *testing.T) {
	node, err := Parse("(+ 1 2)")
	if err != nil {
		t.Fatal(err)
	}
	want := &Value{t: ValueList, list: []*Value{
		{t: ValueSymbol, v: "+"},
		{t: ValueInt, v: int64(1)},
		{t: ValueInt, v: int64(2)},
	}}
	if diff := cmp.Diff(want, node, valueCmp); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1", "Parse error: expected (, found 1"},
		{"pi", "Parse error: expected (, found pi"},
		{"", "Parse error: expected (, found end of input"},
		{"(1", "Parse error: unexpected EOF"},
		{"((1)", "Parse error: unexpected EOF"},
		{`(format"hi")`, `Parse error: Unexpected character " (line 1, column 8)`},
	}
	for _, test := range tests {
		_, err := Parse(test.input)
		if err == nil {
			t.Errorf("Parse(%q): want error %q, got none", test.input, test.want)
			continue
		}
		if diff := cmp.Diff(test.want, err.Error()); diff != "" {
			t.Errorf("error mismatch for %q (-want +got):\n%s", test.input, diff)
		}
	}
}
